package model

import (
	"encore.dev/beta/errs"
	"github.com/go-playground/validator/v10"

	"admin.app/billing/apperr"
)

var validate = validator.New()

// Validate checks the validate struct tags of v and reports failures as
// InvalidArgument.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return apperr.New(errs.InvalidArgument, err.Error())
	}
	return nil
}
