package httpapi

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/azacreation/adminsdk/pkg/errors"
)

var validate = validator.New()

// ValidateStruct validates a request struct against its validate tags
// before it goes on the wire. Returns a validation AppError listing
// every failing field, or nil.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(err, errors.ErrCodeValidation, "Validation failed")
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, formatValidationMessage(fieldErr))
	}
	return errors.New(errors.ErrCodeValidation, strings.Join(messages, "; "))
}

// formatValidationMessage formats validation error messages
func formatValidationMessage(err validator.FieldError) string {
	field := strings.ToLower(err.Field())
	switch err.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "url":
		return field + " must be a valid URL"
	case "min":
		return field + " must be at least " + err.Param() + " characters"
	case "max":
		return field + " must be at most " + err.Param() + " characters"
	case "gt":
		return field + " must be greater than " + err.Param()
	case "gte":
		return field + " must be greater than or equal to " + err.Param()
	default:
		return field + " is invalid"
	}
}
