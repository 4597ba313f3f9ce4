// Package apperr is the error type returned across the billing layers. It
// carries an errs.ErrCode and a message meant for the operator.
package apperr

import (
	"errors"
	"fmt"

	"encore.dev/beta/errs"
)

type Error struct {
	code    errs.ErrCode
	message string
	details any
}

func New(code errs.ErrCode, message string) *Error {
	return &Error{code: code, message: message}
}

func Newf(code errs.ErrCode, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// WithDetails attaches structured details and returns e.
func (e *Error) WithDetails(details any) *Error {
	e.details = details
	return e
}

func (e *Error) Error() string {
	if e.message == "" {
		return e.code.String()
	}
	return e.code.String() + ": " + e.message
}

// ErrorMessage returns the message without the code prefix.
func (e *Error) ErrorMessage() string { return e.message }

func (e *Error) Code() errs.ErrCode { return e.code }

func (e *Error) Details() any { return e.details }

// Code returns the code carried by err. A nil error is OK and an error
// without a code is Unknown.
func Code(err error) errs.ErrCode {
	if err == nil {
		return errs.OK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return errs.Unknown
}

// Message returns the operator-facing text of err, falling back to
// err.Error() when no message was set.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) && e.message != "" {
		return e.message
	}
	return err.Error()
}

// Details returns the details attached to err, if any.
func Details(err error) any {
	var e *Error
	if errors.As(err, &e) {
		return e.details
	}
	return nil
}
