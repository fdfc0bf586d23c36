package service

import "errors"

// Sentinel errors returned by the service layer to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
	ErrWrongPassword = errors.New("wrong password")

	ErrSecurityAnswerMismatch = errors.New("security answers do not match")
	ErrInvalidResetState      = errors.New("invalid password reset state")

	ErrRecordNotFound  = errors.New("record not found")
	ErrDuplicateRecord = errors.New("record already exists in collection")
	ErrInvalidRating   = errors.New("rating must be an integer between 1 and 5")

	ErrInvalidBackupFormat = errors.New("invalid backup format")
)
