package domain

import "errors"

// Credential errors surfaced to callers of signup/signin.
var (
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailTaken         = errors.New("email is already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRoleNotFound       = errors.New("role not found")
)

// Authorization errors produced by the access decision.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("access forbidden")
)

// Entity lookup and invariant errors.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrStudentNotFound = errors.New("student not found")
	// ErrLastRole guards the invariant that every user holds at least one role.
	ErrLastRole = errors.New("user must retain at least one role")
)
