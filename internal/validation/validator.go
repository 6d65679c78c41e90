// Package validation provides custom validators for the application
package validation

import (
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("tcpport", validateTCPPort); err != nil {
		panic(err)
	}
	return v
}

// Struct validates s against its `validate` tags
func Struct(s interface{}) error {
	return validate.Struct(s)
}

// validateTCPPort checks that a string holds a port number in 1-65535
func validateTCPPort(fl validator.FieldLevel) bool {
	port, err := strconv.Atoi(fl.Field().String())
	if err != nil {
		return false
	}
	return port > 0 && port <= 65535
}
