package measurements

import "errors"

var (
	ErrNotFound     = errors.New("measurement not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyURL     = errors.New("mannequin url is required")
)

// ValidationError is an intake rejection with a user-facing message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
