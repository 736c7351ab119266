package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const RequiredMessage = "This field is required."

// FieldErrors turns binding errors into messages keyed by form field name.
// ok is false when err is not a validation error (e.g. malformed JSON).
func FieldErrors(err error, form any) (map[string]string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	t := reflect.TypeOf(form)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := formName(t, fe.StructField())
		if _, seen := out[name]; seen {
			continue
		}
		out[name] = message(fe)
	}
	return out, true
}

func formName(t reflect.Type, field string) string {
	if t != nil && t.Kind() == reflect.Struct {
		if f, ok := t.FieldByName(field); ok {
			if tag := f.Tag.Get("form"); tag != "" && tag != "-" {
				return strings.Split(tag, ",")[0]
			}
		}
	}
	return strings.ToLower(field)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return RequiredMessage
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Number must be at most %s.", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Field must be at least %s characters long.", fe.Param())
		}
		return fmt.Sprintf("Number must be at least %s.", fe.Param())
	case "email":
		return "Invalid email address."
	case "url":
		return "Invalid URL."
	default:
		return fmt.Sprintf("Invalid value (%s).", fe.Tag())
	}
}
