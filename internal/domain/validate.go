package domain

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validator exposes the shared instance so other packages evaluate the
// struct tags declared on the domain types the same way.
func Validator() *validator.Validate {
	return validate
}
