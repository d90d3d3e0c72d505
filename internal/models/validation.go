package models

import (
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators hooks the custom rules into gin's binding engine.
// Call once at startup before any request is served.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("nodigits", noDigits)
	}
}

// noDigits rejects names containing digit characters.
func noDigits(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
