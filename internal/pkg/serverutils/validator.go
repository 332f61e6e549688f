package serverutils

import (
	"fmt"
	"strings"

	"contentcraft-be/internal/apperrors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks a parsed DTO against its validate tags and turns
// the first failure into a ValidationError with a readable message.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return apperrors.NewValidation("Invalid request body")
	}

	fe := validationErrors[0]
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required":
		return apperrors.NewValidation(fmt.Sprintf("%s is required", capitalize(field)))
	case "email":
		return apperrors.NewValidation("A valid email address is required")
	case "min":
		return apperrors.NewValidation(fmt.Sprintf("%s must be at least %s characters", capitalize(field), fe.Param()))
	case "oneof":
		return apperrors.NewValidation(fmt.Sprintf("%s must be one of: %s", capitalize(field), fe.Param()))
	default:
		return apperrors.NewValidation(fmt.Sprintf("%s is invalid", capitalize(field)))
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
