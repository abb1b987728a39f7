package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrRoleNotAllowed        = errors.New("only USER accounts can be created")
	ErrValidationNoUserID    = errors.New("no user ID was given")
	ErrVersionIsNotSpecified = errors.New("version is not specified")
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrFetchUsers       = errors.New("failed to fetch users")
	ErrPersistSession   = errors.New("failed to persist session")
	ErrDashboardReset   = errors.New("dashboard was reset during refresh")
)
