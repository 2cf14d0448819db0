package credential

import "errors"

// Credential-related errors
var (
	ErrEmptyTitle         = errors.New("credential title cannot be empty")
	ErrEmptySecret        = errors.New("credential password cannot be empty")
	ErrInvalidID          = errors.New("invalid credential ID")
	ErrCredentialNotFound = errors.New("credential not found")
)
