package models

import (
	"strings"
	"time"
)

// UserProfile represents a registered account in the local catalog.
// It is keyed by Username inside the "users" mapping of the store;
// the username is also the sole join key to the user's collection.
// Credential fields must never hold plaintext passwords.
type UserProfile struct {
	// Username is the unique account identifier and the join key to the
	// user's collection.
	Username string `json:"username"`

	// CredentialHash is the base64-encoded argon2id output derived from the
	// user's password and Salt. Never a plaintext password.
	CredentialHash string `json:"credential_hash"`

	// Salt is the base64-encoded random salt mixed into the credential
	// derivation. Regenerated whenever the password changes.
	Salt string `json:"salt"`

	// StreamingService is the user's preferred streaming platform.
	StreamingService StreamingService `json:"streaming_service"`

	// SecurityQuestions holds the two recovery question/answer pairs.
	// Answers are stored normalized (lowercase, trimmed).
	SecurityQuestions SecurityQuestions `json:"security_questions"`

	// ProfilePictureURL is an optional data URL or external URL.
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`

	// Theme is the UI theme preference.
	Theme Theme `json:"theme"`

	// CreatedAt is the timestamp when the account was registered.
	CreatedAt time.Time `json:"created_at"`
}

// SecurityQuestions holds the two recovery question/answer pairs used by the
// password-reset flow. Answers must be normalized via [NormalizeAnswer]
// before storage and before comparison.
type SecurityQuestions struct {
	Question1 string `json:"q1"`
	Answer1   string `json:"a1"`
	Question2 string `json:"q2"`
	Answer2   string `json:"a2"`
}

// NormalizeAnswer canonicalizes a security-question answer so that stored and
// submitted answers compare equal regardless of case and surrounding spaces.
func NormalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
