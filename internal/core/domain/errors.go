package domain

import "errors"

// Registration failures, in the order the workflow checks them.
var (
	ErrUsernameTaken          = errors.New("username is already taken")
	ErrCredentialsNotDistinct = errors.New("username and password must be different")
	ErrConfirmationMismatch   = errors.New("password and confirm password must match")
	ErrWeakPassword           = errors.New("password does not meet complexity requirements")
)

// Login and request-level failures. ErrInvalidCredentials deliberately covers
// both "no such user" and "wrong password" so responses cannot be used for
// username enumeration.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrRateLimited        = errors.New("too many login attempts")
	ErrUnauthorized       = errors.New("authentication required")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrNotFound           = errors.New("resource not found")
)
