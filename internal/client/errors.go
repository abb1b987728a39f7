package client

import "errors"

var (
	ErrNoCommand          = errors.New("no command given")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrInvalidCredentials = errors.New("invalid phone or password")
	ErrSignupRejected     = errors.New("signup rejected: phone is empty or already registered")
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrSessionInvalidated = errors.New("session was rejected by the storage server")
)
