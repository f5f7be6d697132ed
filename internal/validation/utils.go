// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library's `required` rule to find absent request
// fields and renders them into a format the client can understand.
package validation

import (
	"github.com/deppfellow/authgate/internal/errs"
	"github.com/go-playground/validator/v10"
)

// validate is safe for concurrent use once built.
var validate = validator.New()

// MissingFields returns the names in required whose value in body is absent.
//
// A field is absent when the key is missing, its value is nil, or the value
// is the zero value of its type (empty string, 0, false). Order follows
// required.
func MissingFields(body map[string]any, required []string) []string {
	missing := make([]string, 0, len(required))

	for _, name := range required {
		value, ok := body[name]
		if !ok || value == nil {
			missing = append(missing, name)
			continue
		}

		if err := validate.Var(value, "required"); err != nil {
			missing = append(missing, name)
		}
	}

	return missing
}

// FieldErrors renders one "is required" entry per missing field.
func FieldErrors(missing []string) []errs.FieldError {
	if len(missing) == 0 {
		return nil
	}

	fieldErrors := make([]errs.FieldError, 0, len(missing))
	for _, name := range missing {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: name,
			Error: "is required",
		})
	}

	return fieldErrors
}
