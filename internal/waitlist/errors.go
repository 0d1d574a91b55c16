package waitlist

import "errors"

var (
	ErrInvalidEmail  = errors.New("invalid email")
	ErrAlreadyJoined = errors.New("email already on the waitlist")
)
