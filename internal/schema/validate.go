package schema

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Validator instance shared by both entity schemas
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report errors under the wire-level field names, not Go field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// FieldError describes a single invalid or missing input field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// check runs struct validation and converts the result into field-level
// errors. A nil return means the input is valid.
func check(v interface{}) []FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var errors []FieldError
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			errors = append(errors, FieldError{
				Field:   e.Field(),
				Message: getErrorMessage(e),
			})
		}
	} else {
		errors = append(errors, FieldError{Field: "", Message: "invalid input"})
	}

	return errors
}

func getErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "url":
		return "Invalid URL"
	case "min":
		if e.Kind() == reflect.Slice {
			return "At least " + e.Param() + " item is required"
		}
		return "Value is too short"
	case "max":
		return "Value is too long"
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
	case "gte":
		return "Value must be greater than or equal to " + e.Param()
	case "lte":
		return "Value must be less than or equal to " + e.Param()
	default:
		return "Invalid value"
	}
}

// NormalizeCategory rewrites a category value to have its first letter
// capitalized and the rest lowercased, so case-insensitive input still
// matches the fixed category set.
func NormalizeCategory(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
