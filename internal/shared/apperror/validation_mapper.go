package apperror

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldError is one entry of a structured validation error list.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func formatFieldName(s string) string {
	// recipient_phone -> Recipient Phone
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

func fieldMessage(e validator.FieldError) string {
	name := formatFieldName(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", name, e.Param())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", name, e.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", name, e.Param())
	case "uuid", "uuid4":
		return fmt.Sprintf("%s must be a valid UUID", name)
	case "datetime":
		return fmt.Sprintf("%s must match %s", name, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}

// ValidationDetails flattens binding errors into a field error list.
// Non-validator errors (malformed JSON, bad query types) yield a single
// entry with an empty field.
func ValidationDetails(err error) []FieldError {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		out := make([]FieldError, 0, len(errs))
		for _, e := range errs {
			out = append(out, FieldError{
				Field:   e.Field(),
				Tag:     e.Tag(),
				Message: fieldMessage(e),
			})
		}
		return out
	}
	return []FieldError{{Message: err.Error()}}
}

// MapValidationError converts a binding error into an AppError carrying
// the full field error list.
func MapValidationError(err error) *AppError {
	return ErrValidation.WithDetails(ValidationDetails(err))
}
