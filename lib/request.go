package lib

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Field formats from the user schema. Phone numbers are either
// country-code-prefixed (+249) or local 10-digit numbers starting 01;
// emails are restricted to a small TLD set.
var (
	phonePattern = regexp.MustCompile(`^(?:\+249|0)?(01\d{8})$`)
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9.]+@[A-Za-z0-9]+\.(com|net|org|info)$`)
)

func init() {
	_ = validate.RegisterValidation("sdphone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("catalogemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return IsValidSlug(fl.Field().String())
	})
}

// IsValidPhone reports whether s matches the mobile number format.
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// IsValidEmail reports whether s matches the restricted email format.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// FieldError represents a clean validation error for APIs
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is a structured validation error
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// ExtractAndValidateBody extracts and validates the request body into the provided struct type T
func ExtractAndValidateBody[T any](r *http.Request) (*T, error) {
	defer r.Body.Close()

	var body T

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&body); err != nil {
		return nil, err
	}

	if err := validate.Struct(body); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return nil, mapValidationErrors(ve)
		}
		return nil, err
	}

	return &body, nil
}

// ValidateStruct runs the shared validator against any tagged struct.
func ValidateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return mapValidationErrors(ve)
		}
		return err
	}
	return nil
}

func mapValidationErrors(errs validator.ValidationErrors) *ValidationError {
	out := &ValidationError{}

	for _, e := range errs {
		field := strings.ToLower(e.Field())

		var message string
		switch e.Tag() {
		case "required":
			message = "is required"
		case "email":
			message = "must be a valid email address"
		case "catalogemail":
			message = "must be entered in the format: `abc@abc.com`"
		case "sdphone":
			message = "must be entered in the format: `+24901XXXXXXXX`"
		case "slug":
			message = "may only contain letters, numbers, underscores, or hyphens"
		case "uuid4":
			message = "must be a valid UUID"
		case "min":
			message = "must be at least " + e.Param() + " characters"
		case "max":
			message = "must be at most " + e.Param() + " characters"
		case "gte":
			message = "must be greater than or equal to " + e.Param()
		case "lte":
			message = "must be less than or equal to " + e.Param()
		case "oneof":
			message = "must be one of: " + e.Param()
		case "eqfield":
			message = "must match " + strings.ToLower(e.Param())
		case "dive":
			// nested validation tag, the actual error is reported by the nested field
			continue
		default:
			message = "is invalid"
		}

		out.Errors = append(out.Errors, FieldError{
			Field:   field,
			Message: message,
		})
	}

	return out
}

// SanitizeString trims a query/form value; optionally strips spaces and lowers it.
func SanitizeString(s string, trim bool, lower bool) string {
	if trim {
		s = strings.TrimSpace(s)
	}
	if lower {
		s = strings.ToLower(s)
	}
	return s
}
