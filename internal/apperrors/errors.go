// Package apperrors defines the error taxonomy shared by services,
// repositories and HTTP handlers. Handlers match these with errors.Is
// and translate them to status codes; anything else is a server error.
package apperrors

import "errors"

var (
	// common errors
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")

	// auth-specific errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("not authorized")

	// generation-specific errors
	ErrUpstream = errors.New("generation service failure")
)
