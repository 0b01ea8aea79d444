// Package validation builds the struct validator shared by the HTTP layer and the use cases.
package validation

import (
	"fmt"
	"strings"

	"rently/internal/domain/entity"
	"rently/internal/errors"

	"github.com/go-playground/validator/v10"
)

// TagAccountRole accepts the closed set of account roles.
const TagAccountRole = "account_role"

// New returns a validator with the custom account tags registered.
func New() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Registration of a static tag cannot fail.
	_ = validate.RegisterValidation(TagAccountRole, func(fl validator.FieldLevel) bool {
		return entity.Role(fl.Field().String()).IsValid()
	})

	return validate
}

// Describe flattens validation errors into "Field: rule" pairs for error details.
// Errors that are not validation errors are returned verbatim.
func Describe(err error) string {
	validationErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		if fieldErr.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", fieldErr.Field(), fieldErr.Tag(), fieldErr.Param()))

			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", fieldErr.Field(), fieldErr.Tag()))
	}

	return strings.Join(parts, "; ")
}
