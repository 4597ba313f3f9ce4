package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"encore.dev/beta/errs"
	"github.com/tidwall/gjson"

	"admin.app/billing/apperr"
)

func transportError(ctx context.Context, err error) error {
	switch {
	case errors.Is(ctx.Err(), context.Canceled):
		return apperr.New(errs.Canceled, "request canceled")
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return apperr.New(errs.DeadlineExceeded, "request deadline exceeded")
	}

	var timeout interface{ Timeout() bool }
	if errors.As(err, &timeout) && timeout.Timeout() {
		return apperr.New(errs.DeadlineExceeded, "request timed out")
	}
	return apperr.New(errs.Unavailable, "backend unreachable")
}

// statusError maps a non-2xx answer onto an error code. The backend usually
// still answers with its envelope, so its message is preferred when present.
func statusError(status int, body []byte) error {
	msg := fmt.Sprintf("backend answered %d", status)
	if gjson.ValidBytes(body) {
		if m := strings.TrimSpace(gjson.GetBytes(body, "message").String()); m != "" {
			msg = m
		} else if title := strings.TrimSpace(gjson.GetBytes(body, "title").String()); title != "" {
			msg = title
		}
	}

	var code errs.ErrCode
	switch {
	case status == http.StatusBadRequest:
		code = errs.InvalidArgument
	case status == http.StatusUnauthorized:
		code = errs.Unauthenticated
	case status == http.StatusForbidden:
		code = errs.PermissionDenied
	case status == http.StatusNotFound:
		code = errs.NotFound
	case status == http.StatusConflict:
		code = errs.AlreadyExists
	case status >= http.StatusInternalServerError:
		code = errs.Unavailable
	default:
		code = errs.Unknown
	}
	return apperr.New(code, msg)
}
