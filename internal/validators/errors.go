package validators

import "errors"

var (
	// ErrWeakPassword is returned when a password fails the strength policy.
	// The wrapped message names the first unmet requirement.
	ErrWeakPassword = errors.New("password does not meet strength requirements")

	// ErrPasswordsDoNotMatch is returned when a password and its
	// confirmation differ.
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
)
