package validators

//go:generate mockgen -source=interfaces.go -destination=../mock/validators_mock.go -package=mock

// CredentialValidator checks caller-supplied passwords before they are
// accepted for registration, change, or reset.
type CredentialValidator interface {
	// Validate checks the password against the strength policy.
	Validate(password string) error

	// ValidateConfirmation checks that password and confirmation match and
	// that the password satisfies the strength policy.
	ValidateConfirmation(password, confirmation string) error
}
