package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrWeakPassword       = errors.New("password must have at least 6 characters")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)
