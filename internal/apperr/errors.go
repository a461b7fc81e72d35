package apperr

import "errors"

var (
	// auth-specific errors
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email/password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnknownAccount     = errors.New("unknown account")

	// classifier-specific errors
	ErrUpstream = errors.New("classification service failure")
)
