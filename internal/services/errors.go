package services

import "errors"

// Service-level errors. Handlers map these to HTTP statuses with errors.Is;
// anything not listed here surfaces as an internal error.
var (
	ErrValidation        = errors.New("required field missing")
	ErrUserNotFound      = errors.New("user not found")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrConflict          = errors.New("username or email already exists")
	ErrEmployeeNotFound  = errors.New("employee not found")
)
