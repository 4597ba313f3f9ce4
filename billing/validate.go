package billing

import (
	"encore.dev/beta/errs"
	"github.com/go-playground/validator/v10"

	"admin.app/billing/apperr"
)

var validate = validator.New()

func validateStruct(r any) error {
	if err := validate.Struct(r); err != nil {
		return apperr.New(errs.InvalidArgument, err.Error())
	}
	return nil
}
