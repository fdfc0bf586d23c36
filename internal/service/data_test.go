package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/simonxoxoo/vinyl-app/internal/logger"
	"github.com/simonxoxoo/vinyl-app/models"
)

// memStore is an in-memory CatalogStore with the same snapshot semantics as
// the SQLite-backed store: every load returns a deep copy, every save
// replaces the whole mapping. Error fields let tests force write failures.
type memStore struct {
	users       map[string]models.UserProfile
	collections map[string][]models.CatalogRecord
	session     *models.Session

	saveUsersErr       error
	saveCollectionsErr error
}

func newMemStore() *memStore {
	return &memStore{
		users:       map[string]models.UserProfile{},
		collections: map[string][]models.CatalogRecord{},
	}
}

func (s *memStore) LoadUsers(_ context.Context) map[string]models.UserProfile {
	copied := map[string]models.UserProfile{}
	deepCopy(s.users, &copied)
	return copied
}

func (s *memStore) SaveUsers(_ context.Context, users map[string]models.UserProfile) error {
	if s.saveUsersErr != nil {
		return s.saveUsersErr
	}
	copied := map[string]models.UserProfile{}
	deepCopy(users, &copied)
	s.users = copied
	return nil
}

func (s *memStore) LoadCollections(_ context.Context) map[string][]models.CatalogRecord {
	copied := map[string][]models.CatalogRecord{}
	deepCopy(s.collections, &copied)
	return copied
}

func (s *memStore) SaveCollections(_ context.Context, collections map[string][]models.CatalogRecord) error {
	if s.saveCollectionsErr != nil {
		return s.saveCollectionsErr
	}
	copied := map[string][]models.CatalogRecord{}
	deepCopy(collections, &copied)
	s.collections = copied
	return nil
}

func (s *memStore) CollectionFor(ctx context.Context, username string) []models.CatalogRecord {
	records, exists := s.LoadCollections(ctx)[username]
	if !exists {
		return []models.CatalogRecord{}
	}
	return records
}

func (s *memStore) SetCollectionFor(ctx context.Context, username string, records []models.CatalogRecord) error {
	collections := s.LoadCollections(ctx)
	collections[username] = records
	return s.SaveCollections(ctx, collections)
}

func (s *memStore) LoadSession(_ context.Context) (models.Session, bool) {
	if s.session == nil {
		return models.Session{}, false
	}
	return *s.session, true
}

func (s *memStore) SaveSession(_ context.Context, session models.Session) error {
	s.session = &session
	return nil
}

func (s *memStore) ClearSession(_ context.Context) error {
	s.session = nil
	return nil
}

// deepCopy round-trips src through JSON into dst, mirroring how the real
// store serializes snapshots.
func deepCopy(src, dst any) {
	raw, err := json.Marshal(src)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		panic(err)
	}
}

// fixedGenerator hands out predictable sequential ids.
type fixedGenerator struct {
	prefix string
	next   int
}

func (g *fixedGenerator) Generate() string {
	g.next++
	return g.prefix + string(rune('0'+g.next))
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	return logger.Nop()
}

func testRecord(id, artist, title string, rating int, wishlist bool, added time.Time) models.CatalogRecord {
	return models.CatalogRecord{
		ID:        id,
		Artist:    artist,
		Title:     title,
		Rating:    rating,
		Wishlist:  wishlist,
		DateAdded: added,
	}
}
