package admin

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrAdminNotFound = errors.New("admin not found")
	ErrConflict      = errors.New("admin already exists")
)
