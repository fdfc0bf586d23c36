package models

import "time"

// Session is the persisted remember-me state. It is written to the store
// when a user logs in with the remember flag set and consulted on the next
// launch to restore the signed-in account.
type Session struct {
	// Username of the signed-in account. Restore requires that this
	// username still exists in the users mapping.
	Username string `json:"username"`

	// RememberMe indicates whether the session should survive a restart.
	RememberMe bool `json:"remember_me"`

	// Token is the signed session token verified on restore.
	Token string `json:"token"`

	// At is when the session was persisted.
	At time.Time `json:"at"`
}
