package employee

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
)

// IsValidMobile checks the candidate against international numbering plans.
// The value itself is never normalized here; clients submit E.164 with a
// leading "+". Parse failures mean invalid, not an error.
func IsValidMobile(value string) bool {
	num, err := phonenumbers.Parse(value, "")
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(num)
}

// RegisterValidations wires the custom "phone" binding tag into gin's
// validator engine. Call once at startup, after apperror.Init.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return IsValidMobile(fl.Field().String())
		})
	}
}
