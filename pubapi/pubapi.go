package pubapi

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/fyyur/fyyur-backend/models"
)

var initValidatorOnce sync.Once

// InitValidator configures gin's validator: field names are reported by their json or form
// tag, and the listing specific tags are registered.
func InitValidator() {
	initValidatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(fieldNameFromTag)
		_ = v.RegisterValidation("us_state", func(fl validator.FieldLevel) bool {
			// the usecases upper-case the state before storing it
			return models.IsKnownState(strings.ToUpper(strings.TrimSpace(fl.Field().String())))
		})
		_ = v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
			return models.IsKnownGenre(fl.Field().String())
		})
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return models.IsValidPhone(fl.Field().String())
		})
	})
}

func fieldNameFromTag(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if len(name) > 0 {
		if name == "-" {
			return ""
		}
		return name
	}

	name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
	if len(name) > 0 {
		return name
	}

	return ""
}
