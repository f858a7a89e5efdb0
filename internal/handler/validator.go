package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator with the catalog validations
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("sessionkind", validateSessionKind)
	_ = v.RegisterValidation("category", validateCategory)
	_ = v.RegisterValidation("tier", validateTier)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

func validateSessionKind(fl validator.FieldLevel) bool {
	return domain.SessionKind(fl.Field().String()).Valid()
}

func validateCategory(fl validator.FieldLevel) bool {
	return domain.ItemCategory(fl.Field().String()).Valid()
}

func validateTier(fl validator.FieldLevel) bool {
	return domain.Tier(fl.Field().String()).Valid()
}

// FormatValidationError formats validation errors into a user-friendly map.
// This prevents leaking internal struct names.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "sessionkind":
			errs[field] = "Unknown session kind"
		case "category":
			errs[field] = "Unknown item category"
		case "tier":
			errs[field] = "Unknown tier"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		case "gte":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "lte":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}
