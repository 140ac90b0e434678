package services

import (
	"errors"
)

// Validation errors: the request is malformed, nothing is mutated and the
// caller re-renders the form with a message.
var (
	ErrEmptyItem      = errors.New("item name is required")
	ErrInvalidPrice   = errors.New("price must be a non-negative number")
	ErrEmptyUsername  = errors.New("username is required")
	ErrEmptyPassword  = errors.New("password is required")
	ErrUsernameExists = errors.New("username already exists")
)

// Authentication and authorization errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPendingApproval    = errors.New("account is pending admin approval")
)

// Not-found conditions the handlers treat as informational no-ops.
var (
	ErrEmployeeNotFound = errors.New("employee not found")
)

// ErrAdminProtected guards the sentinel admin account against deletion.
var ErrAdminProtected = errors.New("admin accounts cannot be deleted")
