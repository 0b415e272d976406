package service

import "errors"

// Domain errors surfaced to the shell. Handlers print the message and
// return to the menu.
var (
	ErrLoginTaken         = errors.New("login already taken")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrGameNotFound       = errors.New("game not found in catalog")
	ErrOrderNotFound      = errors.New("order not found")
	ErrTrackingNotFound   = errors.New("tracking record not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrIDSpaceExhausted   = errors.New("could not allocate a unique id")
)
