package user

import "errors"

var (
	ErrInvalidRole = errors.New("invalid role")
	ErrEmptyID     = errors.New("admin id cannot be empty")
)
