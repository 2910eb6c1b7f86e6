package domain

import "errors"

var (
	// ErrEmailTaken is returned when registering with an email that
	// already has an account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so login responses never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers a bad signature, a malformed payload and
	// an expired token alike.
	ErrInvalidToken = errors.New("invalid token")

	ErrUserNotFound = errors.New("user not found")

	// ErrTaskNotFound is returned when a task id does not exist or is
	// owned by someone else; callers cannot tell the two apart.
	ErrTaskNotFound = errors.New("task not found")

	ErrEmptyDescription = errors.New("task description is required")
)
