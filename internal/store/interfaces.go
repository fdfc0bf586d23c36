package store

import (
	"context"

	"github.com/simonxoxoo/vinyl-app/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KVRepository is the low-level flat key-value namespace backing the catalog.
// Every value is an opaque serialized payload; partitioning into logical
// tables happens one layer up, in [CatalogStore].
type KVRepository interface {
	// Get returns the payload stored under name and whether it exists.
	Get(ctx context.Context, name string) (string, bool, error)

	// Set overwrites the payload stored under name.
	Set(ctx context.Context, name string, payload string) error

	// Delete removes the entry stored under name. Deleting a missing entry
	// is not an error.
	Delete(ctx context.Context, name string) error
}

// CatalogStore is the persistence façade over the two logical mappings of
// the application — users and collections — plus the session entries.
//
// Reads return whole-mapping snapshots and fail open: absent or malformed
// payloads yield an empty mapping, never an error. Writes serialize and
// replace the whole mapping (callers follow a read-modify-write cycle;
// last writer wins).
type CatalogStore interface {
	// LoadUsers returns the username → profile mapping, or an empty mapping
	// when the entry is absent or corrupt.
	LoadUsers(ctx context.Context) map[string]models.UserProfile

	// SaveUsers serializes and overwrites the entire users mapping.
	SaveUsers(ctx context.Context, users map[string]models.UserProfile) error

	// LoadCollections returns the username → record list mapping, or an
	// empty mapping when the entry is absent or corrupt.
	LoadCollections(ctx context.Context) map[string][]models.CatalogRecord

	// SaveCollections serializes and overwrites the entire collections mapping.
	SaveCollections(ctx context.Context, collections map[string][]models.CatalogRecord) error

	// CollectionFor returns one user's record list, empty when absent.
	CollectionFor(ctx context.Context, username string) []models.CatalogRecord

	// SetCollectionFor loads the full collections mapping, replaces the
	// entry for username, and saves the full mapping back.
	SetCollectionFor(ctx context.Context, username string, records []models.CatalogRecord) error

	// LoadSession returns the persisted session and whether one exists.
	LoadSession(ctx context.Context) (models.Session, bool)

	// SaveSession persists the remember-me session entries.
	SaveSession(ctx context.Context, session models.Session) error

	// ClearSession removes the session entries. Clearing an absent session
	// is a no-op.
	ClearSession(ctx context.Context) error
}
