package driver

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidName           = errors.New("invalid driver name")
	ErrInvalidLogin          = errors.New("invalid login")
	ErrInvalidPin            = errors.New("invalid pin")
	ErrInvalidStatus         = errors.New("invalid driver status")

	ErrDriverNotFound     = errors.New("driver not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrConflict           = errors.New("driver already exists")
)
