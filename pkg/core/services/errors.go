package services

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrValidation indicates input that fails schema constraints. It is
// rejected before any write reaches the store; callers recover by
// correcting the input.
var ErrValidation = errors.New("validation failed")

var validate = validator.New()

// validationErr wraps ErrValidation with the offending field so callers
// can render a specific message
func validationErr(field, reason string) error {
	return fmt.Errorf("%s %s: %w", field, reason, ErrValidation)
}

// requireUUID rejects ids that are not well-formed UUIDs
func requireUUID(field, value string) error {
	if err := validate.Var(value, "required,uuid"); err != nil {
		return validationErr(field, "must be a UUID")
	}
	return nil
}
