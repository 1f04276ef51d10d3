package api

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/fyyur/fyyur-backend/models"
	"github.com/fyyur/fyyur-backend/pubapi"
)

// formFieldMessage is the message displayed under an invalid form field.
func formFieldMessage(fe validator.FieldError) string {
	switch fe.ActualTag() {
	case "required":
		return "This field is required."
	case "us_state", "genre", "oneof":
		return "Not a valid choice."
	case "url":
		return "Invalid URL."
	case "phone":
		return "Invalid phone number, expected format 123-456-7890."
	case "number", "numeric":
		return "Not a valid integer value."
	case "max":
		return fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param())
	}
	return pubapi.FieldValidationMessage(fe)
}

// adaptBindingError turns form binding errors into per field messages. Errors that are not
// about a field, such as an unreadable body, are returned as bad parameter errors.
func adaptBindingError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(models.BadParameterError, err.Error())
	}

	fieldErrors := make(models.FieldValidationError, len(verrs))
	for _, fe := range verrs {
		name := pubapi.FieldName(fe)
		if _, ok := fieldErrors[name]; !ok {
			fieldErrors[name] = formFieldMessage(fe)
		}
	}
	return fieldErrors
}

// formData is what the creation and edition pages are rendered with.
type formData struct {
	Action string
	Id     int64
	Form   any
	Errors models.FieldValidationError
}
