package credential

import "errors"

// Registration and lookup errors
var (
	ErrIdentityNotFound = errors.New("identity not found")
	ErrUsernameTaken    = errors.New("username already taken")
)

// Authentication errors. All credential verification failures collapse to
// ErrInvalidCredentials so callers cannot distinguish an unknown username
// from a wrong secret.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Precondition errors
var (
	ErrUsernameRequired = errors.New("username is required")
	ErrSecretRequired   = errors.New("secret is required")
	ErrNoStore          = errors.New("credential store is required")
)
