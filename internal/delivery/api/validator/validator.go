// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "authproxy/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator validates request DTOs through `validate` struct tags.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports fields by their json names.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	return &Validator{validate: validate}
}

// Validate returns ErrValidationFailed carrying a readable message.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "failed to validate request")
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		messages = append(messages, fieldMessage(fieldErr))
	}

	return domainerrors.ErrValidationFailed.WithMessage(strings.Join(messages, "; "))
}

func fieldMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s: field required", fieldErr.Field())
	case "email":
		return fmt.Sprintf("%s: value is not a valid email address", fieldErr.Field())
	case "min":
		return fmt.Sprintf("%s: must be at least %s characters", fieldErr.Field(), fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s: must be at most %s characters", fieldErr.Field(), fieldErr.Param())
	default:
		return fmt.Sprintf("%s: failed on %s", fieldErr.Field(), fieldErr.Tag())
	}
}
