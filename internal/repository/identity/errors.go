package identity

import "errors"

var (
	ErrEmailTaken       = errors.New("email already taken")
	ErrIdentityNotFound = errors.New("identity not found")
)
