package models

import (
	"errors"
	"fmt"
)

// ValidationKind classifies why a field was rejected.
type ValidationKind string

const (
	EmptyField    ValidationKind = "empty_field"
	NegativeValue ValidationKind = "negative_value"
	InvalidFormat ValidationKind = "invalid_format"
)

// ValidationError reports the single field that failed its contract.
type ValidationError struct {
	Field string         `json:"field"`
	Kind  ValidationKind `json:"kind"`
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case EmptyField:
		return fmt.Sprintf("%s is required", e.Field)
	case NegativeValue:
		return fmt.Sprintf("%s cannot be negative", e.Field)
	case InvalidFormat:
		return fmt.Sprintf("%s has an invalid format", e.Field)
	default:
		return fmt.Sprintf("%s is invalid", e.Field)
	}
}

// AsValidationError extracts a ValidationError from err's chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
