package user

import (
	"errors"
)

var (
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUserDoesNotExist      = errors.New("user does not exist")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUserIsNotActive       = errors.New("user is not active")
	ErrSessionDoesNotExist   = errors.New("session does not exist")
	ErrInvalidOrExpiredToken = errors.New("token is invalid or has expired")
	ErrPermissionDenied      = errors.New("permission denied")
	ErrTokenSendingFailed    = errors.New("could not send token email")
)
