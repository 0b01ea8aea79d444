// Package validator adapts the shared struct validator to echo.
package validator

import (
	domainerrors "rently/internal/domain/errors"
	"rently/internal/errors"
	"rently/internal/validation"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the echo validator with the account tags registered.
func New() *CustomValidator {
	return &CustomValidator{validate: validation.New()}
}

// Validate returns ErrValidationFailed carrying the failed fields as details.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(validation.Describe(err)))
	}

	return nil
}
