package model

import (
	"encoding/json"
	"strings"

	"encore.dev/beta/errs"

	"admin.app/billing/apperr"
)

// Response is the envelope every backend endpoint wraps its payload in.
type Response[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    T        `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// Ack is the envelope of write endpoints whose data is an id or a plain string.
type Ack = Response[json.RawMessage]

// ResponseErrors carries the backend's error list on a logical failure.
type ResponseErrors struct {
	Errors []string `json:"errors"`
}

// Err converts a logical failure (success=false) into a FailedPrecondition error.
// fallback is used when the backend sent neither a message nor an error list.
func (r *Response[T]) Err(fallback string) error {
	if r == nil {
		return apperr.New(errs.Unknown, fallback)
	}
	if r.Success {
		return nil
	}

	msg := strings.TrimSpace(r.Message)
	if len(r.Errors) > 0 {
		msg = strings.Join(r.Errors, "; ")
	}
	if msg == "" {
		msg = fallback
	}

	e := apperr.New(errs.FailedPrecondition, msg)
	if len(r.Errors) > 0 {
		e.WithDetails(ResponseErrors{Errors: r.Errors})
	}
	return e
}
