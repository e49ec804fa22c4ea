// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	validatorlib "github.com/go-playground/validator/v10"
)

// Validator wraps a validator instance for echo.
type Validator struct {
	validate *validatorlib.Validate
}

// New creates the request validator used by the HTTP server.
func New() *Validator {
	return &Validator{
		validate: validatorlib.New(validatorlib.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
