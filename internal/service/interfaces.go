package service

import (
	"context"
	"io"

	"github.com/simonxoxoo/vinyl-app/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RegisterRequest carries everything needed to create a new account.
// Security-question answers are supplied raw; the service normalizes them
// before storage.
type RegisterRequest struct {
	Username          string
	Password          string
	ConfirmPassword   string
	StreamingService  models.StreamingService
	SecurityQuestions models.SecurityQuestions
	Theme             models.Theme
}

// ProfileUpdate describes a partial profile update. Nil fields are left
// unchanged.
type ProfileUpdate struct {
	StreamingService  *models.StreamingService
	Theme             *models.Theme
	ProfilePictureURL *string
}

// AuthService handles account lifecycle and session management.
type AuthService interface {
	// Register creates a new account. Fails with ErrUsernameTaken when the
	// username is already in use, or a validation error for weak or
	// mismatched passwords.
	Register(ctx context.Context, req RegisterRequest) (models.UserProfile, error)

	// Login verifies the credential and, when remember is set, persists a
	// signed session that survives restarts.
	Login(ctx context.Context, username, password string, remember bool) (models.UserProfile, error)

	// RestoreSession returns the remembered account, if a valid remembered
	// session exists and its user still exists.
	RestoreSession(ctx context.Context) (models.UserProfile, bool)

	// Logout clears the persisted session.
	Logout(ctx context.Context) error

	// ChangePassword re-derives the credential with a fresh salt after
	// verifying the current password.
	ChangePassword(ctx context.Context, username, currentPassword, newPassword, confirmation string) error

	// UpdateProfile applies a partial profile update and returns the
	// updated profile.
	UpdateProfile(ctx context.Context, username string, update ProfileUpdate) (models.UserProfile, error)

	// DeleteAccount removes the account after verifying the password and
	// cascades to the user's collection and any persisted session.
	DeleteAccount(ctx context.Context, username, password string) error
}

// CatalogService manages one user's record collection. Every mutation runs a
// read-entire-collection, mutate-in-memory, write-entire-collection cycle;
// the last writer wins.
type CatalogService interface {
	// Records returns the user's collection, empty when absent.
	Records(ctx context.Context, username string) []models.CatalogRecord

	// AddRecord creates a record with a fresh id and DateAdded. Fails with
	// ErrDuplicateRecord when the collection already holds the same
	// case-insensitive trimmed (artist, title) pair, leaving storage
	// untouched.
	AddRecord(ctx context.Context, username string, input models.RecordInput) (models.CatalogRecord, error)

	// UpdateRecord merges the provided fields over the stored record.
	// ID and DateAdded are preserved; the duplicate invariant is not
	// re-checked. Fails with ErrRecordNotFound when the id is absent.
	UpdateRecord(ctx context.Context, username, id string, update models.RecordUpdate) (models.CatalogRecord, error)

	// DeleteRecord removes one record by id. Deleting a missing id is a
	// silent no-op, not an error.
	DeleteRecord(ctx context.Context, username, id string) error

	// DeleteRecords removes every record whose id is in ids and returns
	// the number removed (zero when nothing matched).
	DeleteRecords(ctx context.Context, username string, ids []string) (int, error)

	// ToggleWishlist flips the wishlist flag in place; no-op when the id
	// is not found.
	ToggleWishlist(ctx context.Context, username, id string) error

	// BulkSetRating sets the rating on every record whose id is in ids.
	// The rating must be in [1,5]; returns the number of records changed.
	BulkSetRating(ctx context.Context, username string, ids []string, rating int) (int, error)

	// ClearCollection empties the user's collection.
	ClearCollection(ctx context.Context, username string) error
}

// TransferService produces and consumes portable representations of a user's
// data: CSV/JSON exports and full backup snapshots.
type TransferService interface {
	// ExportCSV writes the collection as CSV with the fixed header
	// "Artist,Title,Rating,Wishlist,Date Added".
	ExportCSV(ctx context.Context, username string, w io.Writer) error

	// ExportJSON writes the collection as indented JSON.
	ExportJSON(ctx context.Context, username string, w io.Writer) error

	// BuildBackup assembles the {user, collection, timestamp} snapshot.
	BuildBackup(ctx context.Context, username string) (models.Backup, error)

	// WriteBackup serializes the backup snapshot to w.
	WriteBackup(ctx context.Context, username string, w io.Writer) error

	// Restore validates a backup payload and replaces the user's profile
	// and collection with its contents. Fails with ErrInvalidBackupFormat
	// when either the user or collection key is missing or malformed.
	Restore(ctx context.Context, username string, raw []byte) (models.Backup, error)
}
