// internal/validate/validate.go
package validate

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
)

var global = New()

// New builds the validator used for client-side precondition checks.
func New() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// Struct validates a request struct and reduces the first violation to a
// short human-readable message. These checks run before any network call.
func Struct(ctx context.Context, structure any) error {
	return firstViolation(global.StructCtx(ctx, structure))
}

func firstViolation(err error) error {
	if err == nil {
		return nil
	}
	var vErrors validator.ValidationErrors
	if !errors.As(err, &vErrors) || len(vErrors) == 0 {
		return err
	}
	ve := vErrors[0]
	var msg string
	switch ve.Tag() {
	case "required":
		msg = "field is required"
	case "min", "gte":
		msg = "value is below the minimum"
	case "max", "lte":
		msg = "value exceeds the maximum"
	case "oneof":
		msg = "value is not one of the allowed options"
	default:
		msg = "invalid value"
	}
	return errors.New(ve.Field() + ": " + msg)
}
