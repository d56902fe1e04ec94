package common

import (
	"context"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"

	"go-user-api/mediator"
)

var validate = validator.New()

// StructValidator validates a request against its `validate` struct tags and
// reports each failed tag as a mediator.ValidationFailure. The field name and
// the tag name identify the failure; the message is a client-readable
// translation of the tag.
type StructValidator struct {
	name string
}

func NewStructValidator(name string) *StructValidator {
	return &StructValidator{name: name}
}

func (v *StructValidator) Name() string {
	return v.name
}

func (v *StructValidator) Validate(ctx context.Context, request mediator.Request) []mediator.ValidationFailure {
	err := validate.StructCtx(ctx, request)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// validator.InvalidValidationError: the request was not a struct.
		return []mediator.ValidationFailure{{Rule: "struct", Message: err.Error()}}
	}

	failures := make([]mediator.ValidationFailure, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		failures = append(failures, mediator.ValidationFailure{
			Field:   fieldErr.Field(),
			Rule:    fieldErr.Tag(),
			Message: messageForTag(fieldErr),
		})
	}
	return failures
}

func messageForTag(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fieldErr.Type().Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fieldErr.Param())
		}
		return fmt.Sprintf("must be at least %s", fieldErr.Param())
	case "max":
		if fieldErr.Type().Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fieldErr.Param())
		}
		return fmt.Sprintf("must not exceed %s", fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fieldErr.Param())
	default:
		if fieldErr.Param() != "" {
			return fmt.Sprintf("failed rule %s:%s", fieldErr.Tag(), fieldErr.Param())
		}
		return fmt.Sprintf("failed rule %s", fieldErr.Tag())
	}
}
