package pubapi

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldValidationMessage maps a generic validation error to a human-readable message about
// the field, without naming it.
func FieldValidationMessage(fe validator.FieldError) string {
	switch fe.ActualTag() {
	case "required":
		return "is required"
	case "oneof":
		opts := strings.Split(fe.Param(), " ")

		return fmt.Sprintf("must be one of %s", strings.Join(opts, ", "))
	case "max":
		if reflect.TypeOf(fe.Value()).Kind() == reflect.Slice {
			return fmt.Sprintf("must have at most %s items", fe.Param())
		}
		return fmt.Sprintf("must have at most %s characters", fe.Param())
	case "gt":
		if fe.Param() == "0" {
			return "must not be empty"
		}
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "number", "numeric":
		return "must be a number"
	case "url":
		return "must be a valid URL"
	case "us_state":
		return "must be a two-letter US state code"
	case "genre":
		return fmt.Sprintf("contains an unknown genre `%v`", fe.Value())
	case "phone":
		return "must be formatted as 123-456-7890"
	case "datetime":
		return fmt.Sprintf("should be in the format '%s'", fe.Param())
	}

	return "is invalid"
}

// AdaptFieldValidationError maps generic validation error to human-readable error
// messages, to be returned in the response.
func AdaptFieldValidationError(fe validator.FieldError) string {
	return fmt.Sprintf("field `%s` %s", FieldName(fe), FieldValidationMessage(fe))
}

// FieldName is the name the field was submitted under. Errors on slice items, such as
// "genres[1]", are reported on the slice itself.
func FieldName(fe validator.FieldError) string {
	name := fe.Field()
	if i := strings.IndexByte(name, '['); i > 0 {
		name = name[:i]
	}
	return name
}
