package surveys

import "errors"

var ErrInvalidInput = errors.New("invalid survey")

// ValidationError names the question that blocked submission.
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
