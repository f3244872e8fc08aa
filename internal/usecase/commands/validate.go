package commands

import (
	"errors"

	"hotel-desk/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateParams reports the first failing field of p.
func validateParams(p any) error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return errs.Wrapf(ErrInvalidParams, "%s failed on %s", fe.Field(), fe.Tag())
	}
	return errs.Wrap(ErrInvalidParams, err.Error())
}
