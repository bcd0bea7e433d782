package user

import (
	"errors"
)

var (
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUserDoesNotExist      = errors.New("user does not exist")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrSessionDoesNotExist   = errors.New("session does not exist")
)

// ErrInvalidOrExpiredToken intentionally does not tell an expired token
// from a forged one.
var ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
