// internal/utils/validator.go
package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var skuPattern = regexp.MustCompile(`^[A-Z0-9-]+$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("sku", validateSKU)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// SKUs are uppercase alphanumeric plus hyphens.
func validateSKU(fl validator.FieldLevel) bool {
	return skuPattern.MatchString(fl.Field().String())
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func FormatValidationErrors(errs validator.ValidationErrors) []ValidationError {
	var validationErrors []ValidationError

	for _, e := range errs {
		validationErrors = append(validationErrors, ValidationError{
			Field:   strings.ToLower(e.Field()[:1]) + e.Field()[1:],
			Tag:     e.Tag(),
			Message: getValidationMessage(e),
		})
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gte":
		return e.Field() + " must be at least " + e.Param()
	case "lte":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of " + e.Param()
	case "url":
		return e.Field() + " must be a valid URL"
	case "sku":
		return "SKU must be uppercase alphanumeric with hyphens"
	default:
		return e.Field() + " is invalid"
	}
}
