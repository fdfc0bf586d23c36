// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/simonxoxoo/vinyl-app/internal/logger"
	"github.com/simonxoxoo/vinyl-app/models"
)

// Names of the flat KV entries. The users and collections entries each hold
// one whole mapping serialized as JSON; the session is split across the
// currentUser and rememberMe entries.
const (
	entryUsers       = "users"
	entryCollections = "collections"
	entryCurrentUser = "currentUser"
	entryRememberMe  = "rememberMe"
)

// catalogStore implements [CatalogStore] on top of a [KVRepository].
//
// The mutex guards the read-modify-write cycles (SetCollectionFor). There is
// a single logical writer, so this is not a transaction, just a serializer.
type catalogStore struct {
	kv     KVRepository
	mu     sync.Mutex
	logger *logger.Logger
}

func NewCatalogStore(kv KVRepository, logger *logger.Logger) CatalogStore {
	return &catalogStore{
		kv:     kv,
		logger: logger,
	}
}

func (s *catalogStore) LoadUsers(ctx context.Context) map[string]models.UserProfile {
	var users map[string]models.UserProfile
	if !s.loadEntry(ctx, entryUsers, &users) || users == nil {
		return make(map[string]models.UserProfile)
	}
	return users
}

func (s *catalogStore) SaveUsers(ctx context.Context, users map[string]models.UserProfile) error {
	return s.saveEntry(ctx, entryUsers, users)
}

func (s *catalogStore) LoadCollections(ctx context.Context) map[string][]models.CatalogRecord {
	var collections map[string][]models.CatalogRecord
	if !s.loadEntry(ctx, entryCollections, &collections) || collections == nil {
		return make(map[string][]models.CatalogRecord)
	}
	return collections
}

func (s *catalogStore) SaveCollections(ctx context.Context, collections map[string][]models.CatalogRecord) error {
	return s.saveEntry(ctx, entryCollections, collections)
}

func (s *catalogStore) CollectionFor(ctx context.Context, username string) []models.CatalogRecord {
	records := s.LoadCollections(ctx)[username]
	if records == nil {
		records = []models.CatalogRecord{}
	}
	return records
}

func (s *catalogStore) SetCollectionFor(ctx context.Context, username string, records []models.CatalogRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	collections := s.LoadCollections(ctx)
	collections[username] = records
	return s.SaveCollections(ctx, collections)
}

func (s *catalogStore) LoadSession(ctx context.Context) (models.Session, bool) {
	payload, found, err := s.kv.Get(ctx, entryCurrentUser)
	if err != nil || !found {
		return models.Session{}, false
	}

	var session models.Session
	if err := json.Unmarshal([]byte(payload), &session); err != nil {
		s.logger.Warn().Err(err).Str("entry", entryCurrentUser).Msg("corrupt session entry, ignoring")
		return models.Session{}, false
	}

	if remember, found, err := s.kv.Get(ctx, entryRememberMe); err == nil && found {
		session.RememberMe, _ = strconv.ParseBool(remember)
	}

	return session, true
}

func (s *catalogStore) SaveSession(ctx context.Context, session models.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session entry: %w", err)
	}

	if err := s.kv.Set(ctx, entryCurrentUser, string(payload)); err != nil {
		return fmt.Errorf("save session entry: %w", err)
	}
	if err := s.kv.Set(ctx, entryRememberMe, strconv.FormatBool(session.RememberMe)); err != nil {
		return fmt.Errorf("save remember flag: %w", err)
	}

	return nil
}

func (s *catalogStore) ClearSession(ctx context.Context) error {
	if err := s.kv.Delete(ctx, entryCurrentUser); err != nil {
		return fmt.Errorf("clear session entry: %w", err)
	}
	if err := s.kv.Delete(ctx, entryRememberMe); err != nil {
		return fmt.Errorf("clear remember flag: %w", err)
	}
	return nil
}

// loadEntry deserializes one whole-mapping entry into dst and reports
// whether dst holds a usable value. Absent and malformed payloads both
// report false so callers substitute the empty mapping: corrupt storage must
// never crash the application.
func (s *catalogStore) loadEntry(ctx context.Context, name string, dst any) bool {
	payload, found, err := s.kv.Get(ctx, name)
	if err != nil {
		s.logger.Warn().Err(err).Str("entry", name).Msg("kv read failed, treating as empty")
		return false
	}
	if !found {
		return false
	}

	if err := json.Unmarshal([]byte(payload), dst); err != nil {
		s.logger.Warn().Err(err).Str("entry", name).Msg("corrupt kv entry, treating as empty")
		return false
	}

	return true
}

func (s *catalogStore) saveEntry(ctx context.Context, name string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s entry: %w", name, err)
	}

	if err := s.kv.Set(ctx, name, string(payload)); err != nil {
		return fmt.Errorf("save %s entry: %w", name, err)
	}

	return nil
}
