package validation

import (
	"fmt"
	"reflect"
	"strings"

	"lifehub/internal/models"
	"lifehub/internal/services"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("ledger_category", validateLedgerCategory)
	_ = v.RegisterValidation("janken_hand", validateJankenHand)
	_ = v.RegisterValidation("username", validateUsername)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

func (v *Validator) Struct(i interface{}) error {
	return v.validate.Struct(i)
}

func validateLedgerCategory(fl validator.FieldLevel) bool {
	return models.LedgerCategory(fl.Field().String()).Valid()
}

func validateJankenHand(fl validator.FieldLevel) bool {
	return services.IsJankenHand(fl.Field().String())
}

func validateUsername(fl validator.FieldLevel) bool {
	return models.ValidUsername(fl.Field().String())
}

// FieldErrors maps each failed field (by json name) to its message.
func FieldErrors(errs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		out[fe.Field()] = FormatFieldError(fe)
	}
	return out
}

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "datetime":
		return fmt.Sprintf("must be a date formatted as %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "ledger_category":
		return "must be income or expense"
	case "janken_hand":
		return "must be one of グー, チョキ, パー"
	case "username":
		return "may contain letters, digits and @.+-_ only (3-150 characters)"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
