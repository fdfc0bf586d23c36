package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyChainService derives and verifies login credentials from passwords.
// Implementations must guarantee that the same (password, salt) pair always
// produces the same credential and that verification never stores or logs
// the plaintext password.
type KeyChainService interface {
	// GenerateSalt returns a fresh random salt for credential derivation.
	GenerateSalt() ([]byte, error)

	// DeriveCredential computes the stored credential for a password and salt.
	DeriveCredential(password string, salt []byte) []byte

	// VerifyCredential reports whether password matches the stored credential
	// in constant time.
	VerifyCredential(password string, salt []byte, credential []byte) bool
}
