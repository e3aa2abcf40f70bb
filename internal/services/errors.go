package services

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is returned when a required field is missing.
	ErrValidation = errors.New("validation error")
	// ErrMissingID is returned when an operation is called without an identifier.
	ErrMissingID = fmt.Errorf("%w: missing id", ErrValidation)
	// ErrNotFound is returned when an id or slug does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrProxy is returned when the origin of a media link cannot be fetched.
	ErrProxy = errors.New("proxy error")
)

// required returns a validation error naming the first empty value.
func required(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return fmt.Errorf("%w: missing %s", ErrValidation, pairs[i])
		}
	}
	return nil
}
