package validators

import (
	"fmt"
	"unicode"
)

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 8

// PasswordValidator implements [CredentialValidator] with the application's
// strength policy: at least 8 characters with at least one uppercase letter,
// one lowercase letter, and one digit.
type PasswordValidator struct {
}

// NewPasswordValidator constructs a new PasswordValidator and returns it as
// the CredentialValidator interface.
func NewPasswordValidator() CredentialValidator {
	return &PasswordValidator{}
}

// Validate implements [CredentialValidator].
func (v *PasswordValidator) Validate(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrWeakPassword, minPasswordLength)
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper {
		return fmt.Errorf("%w: must contain an uppercase letter", ErrWeakPassword)
	}
	if !hasLower {
		return fmt.Errorf("%w: must contain a lowercase letter", ErrWeakPassword)
	}
	if !hasDigit {
		return fmt.Errorf("%w: must contain a digit", ErrWeakPassword)
	}

	return nil
}

// ValidateConfirmation implements [CredentialValidator].
func (v *PasswordValidator) ValidateConfirmation(password, confirmation string) error {
	if password != confirmation {
		return ErrPasswordsDoNotMatch
	}

	return v.Validate(password)
}
