package validation

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/blaisecz/sleep-diary/pkg/clock"
	"github.com/blaisecz/sleep-diary/pkg/problem"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return toSnakeCase(fld.Name)
		}
		return name
	})

	// IANA timezone name
	validate.RegisterValidation("timezone", func(fl validator.FieldLevel) bool {
		_, err := time.LoadLocation(fl.Field().String())
		return err == nil
	})

	// 24h HH:MM clock time
	validate.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return clock.Valid(fl.Field().String())
	})

	// YYYY-MM-DD calendar date
	validate.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		return clock.ValidDate(fl.Field().String())
	})
}

// Validate validates a struct and returns field errors
func Validate(s interface{}) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []problem.FieldError{{Field: "body", Message: "is invalid"}}
	}

	fieldErrors := make([]problem.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   fieldPath(fe),
			Message: getValidationMessage(fe),
		})
	}
	return fieldErrors
}

// Var validates a single value against a tag, reporting it under field.
func Var(field string, value any, tag string) []problem.FieldError {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return []problem.FieldError{{Field: field, Message: "is invalid"}}
	}
	return []problem.FieldError{{Field: field, Message: getValidationMessage(validationErrors[0])}}
}

// fieldPath drops the root struct name, keeping nested paths like sessions[0].end_time.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func getValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + err.Param()
	case "max":
		return "must be at most " + err.Param()
	case "oneof":
		return "must be one of: " + err.Param()
	case "unique":
		return "must not contain duplicates"
	case "gtfield":
		return "must be after " + toSnakeCase(err.Param())
	case "timezone":
		return "must be a valid IANA timezone"
	case "clock":
		return "must be a 24h time in HH:MM format"
	case "date":
		return "must be a date in YYYY-MM-DD format"
	default:
		return "is invalid"
	}
}

func toSnakeCase(s string) string {
	var result []byte
	for i, c := range s {
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				result = append(result, '_')
			}
			result = append(result, byte(c+'a'-'A'))
		} else {
			result = append(result, byte(c))
		}
	}
	return string(result)
}
