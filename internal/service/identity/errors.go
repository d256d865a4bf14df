package identity

import "errors"

var (
	ErrEmailAlreadyInUse = errors.New("email already in use")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrWeakPassword      = errors.New("weak password")
	ErrAccountNotFound   = errors.New("account not found")
)
