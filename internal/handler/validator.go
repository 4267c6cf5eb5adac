package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Outfitter_Go/internal/auth"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json names so field errors match the request body
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("loginid", validateLoginID)

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

// FormatValidationError formats validation errors into a user-friendly map
// keyed by the json path of the offending field (e.g. "items[1].count").
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
		field := fieldPath(e)
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "loginid":
			errs[field] = "Use lowercase letters and digits only"
		case "eqfield":
			errs[field] = fmt.Sprintf("Must match %s", e.Param())
		case "max":
			errs[field] = limitMessage("at most", e)
		case "min":
			errs[field] = limitMessage("at least", e)
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// fieldPath drops the root struct name from the namespace
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if _, rest, found := strings.Cut(ns, "."); found {
		return rest
	}
	return e.Field()
}

func limitMessage(bound string, e validator.FieldError) string {
	switch e.Kind() {
	case reflect.String:
		return fmt.Sprintf("Must be %s %s characters", bound, e.Param())
	case reflect.Slice, reflect.Array:
		return fmt.Sprintf("Must contain %s %s entries", bound, e.Param())
	default:
		return fmt.Sprintf("Must be %s %s", bound, e.Param())
	}
}

func validateLoginID(fl validator.FieldLevel) bool {
	id := fl.Field().String()
	// Emptiness is left to the required tag
	if id == "" {
		return true
	}
	return auth.IsValidLoginID(id)
}
