package service_test

import (
	. "github.com/simonxoxoo/vinyl-app/internal/service"

	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonxoxoo/vinyl-app/models"
)

func newTestTransferSvc(t *testing.T) (TransferService, *memStore) {
	t.Helper()
	store := newMemStore()
	svc := NewTransferService(store, testLogger(t))
	return svc, store
}

func seedUser(t *testing.T, store *memStore, username string) models.UserProfile {
	t.Helper()
	profile := models.UserProfile{
		Username:       username,
		CredentialHash: "hash",
		Salt:           "salt",
		Theme:          models.ThemeDark,
		CreatedAt:      time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.SaveUsers(context.Background(), map[string]models.UserProfile{username: profile}))
	return profile
}

// ── CSV export ───────────────────────────────────────────────────────────────

func TestTransferService_ExportCSV(t *testing.T) {
	svc, store := newTestTransferSvc(t)
	ctx := context.Background()

	added := time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)
	require.NoError(t, store.SetCollectionFor(ctx, "alice", []models.CatalogRecord{
		testRecord("r1", "Pink Floyd", "The Wall", 4, false, added),
		testRecord("r2", "Radiohead", "OK Computer", 0, true, added.Add(24*time.Hour)),
	}))

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(ctx, "alice", &buf))

	want := "Artist,Title,Rating,Wishlist,Date Added\n" +
		"\"Pink Floyd\",\"The Wall\",4,false,2025-03-15\n" +
		"\"Radiohead\",\"OK Computer\",0,true,2025-03-16\n"
	assert.Equal(t, want, buf.String())
}

func TestTransferService_ExportCSV_EscapesQuotes(t *testing.T) {
	svc, store := newTestTransferSvc(t)
	ctx := context.Background()

	added := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.SetCollectionFor(ctx, "alice", []models.CatalogRecord{
		testRecord("r1", `Sigur "Ros"`, "( )", 5, false, added),
	}))

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(ctx, "alice", &buf))

	assert.Contains(t, buf.String(), `"Sigur ""Ros""","( )",5,false,2025-03-15`)
}

func TestTransferService_ExportCSV_EmptyCollection(t *testing.T) {
	svc, _ := newTestTransferSvc(t)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(context.Background(), "alice", &buf))

	assert.Equal(t, "Artist,Title,Rating,Wishlist,Date Added\n", buf.String())
}

// ── JSON export ──────────────────────────────────────────────────────────────

func TestTransferService_ExportJSON(t *testing.T) {
	svc, store := newTestTransferSvc(t)
	ctx := context.Background()

	added := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	seeded := []models.CatalogRecord{
		testRecord("r1", "Pink Floyd", "The Wall", 4, false, added),
	}
	require.NoError(t, store.SetCollectionFor(ctx, "alice", seeded))

	var buf bytes.Buffer
	require.NoError(t, svc.ExportJSON(ctx, "alice", &buf))

	var decoded []models.CatalogRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, seeded, decoded)
}

// ── Backup and restore ───────────────────────────────────────────────────────

func TestTransferService_BackupRoundTrip(t *testing.T) {
	svc, store := newTestTransferSvc(t)
	ctx := context.Background()

	profile := seedUser(t, store, "alice")
	added := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	records := []models.CatalogRecord{
		testRecord("r1", "Pink Floyd", "The Wall", 4, false, added),
		testRecord("r2", "Radiohead", "OK Computer", 5, true, added.Add(time.Hour)),
	}
	require.NoError(t, store.SetCollectionFor(ctx, "alice", records))

	var buf bytes.Buffer
	require.NoError(t, svc.WriteBackup(ctx, "alice", &buf))

	// Wipe everything, then restore from the snapshot.
	require.NoError(t, store.SaveUsers(ctx, map[string]models.UserProfile{}))
	require.NoError(t, store.SaveCollections(ctx, map[string][]models.CatalogRecord{}))

	restored, err := svc.Restore(ctx, "alice", buf.Bytes())
	require.NoError(t, err)

	assert.Equal(t, profile.CredentialHash, restored.User.CredentialHash)
	assert.Equal(t, records, restored.Collection)
	assert.Equal(t, records, store.CollectionFor(ctx, "alice"))

	stored, exists := store.LoadUsers(ctx)["alice"]
	require.True(t, exists)
	assert.Equal(t, profile.Theme, stored.Theme)
}

func TestTransferService_BackupRoundTrip_EmptyCollection(t *testing.T) {
	svc, store := newTestTransferSvc(t)
	ctx := context.Background()

	seedUser(t, store, "alice")

	var buf bytes.Buffer
	require.NoError(t, svc.WriteBackup(ctx, "alice", &buf))

	restored, err := svc.Restore(ctx, "alice", buf.Bytes())
	require.NoError(t, err)
	assert.NotNil(t, restored.Collection)
	assert.Empty(t, restored.Collection)
}

func TestTransferService_BuildBackup_UnknownUser(t *testing.T) {
	svc, _ := newTestTransferSvc(t)

	_, err := svc.BuildBackup(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestTransferService_Restore_RejectsMalformedPayloads(t *testing.T) {
	svc, store := newTestTransferSvc(t)
	ctx := context.Background()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "not JSON", raw: "not json at all"},
		{name: "missing user", raw: `{"collection": [], "timestamp": "2025-03-15T00:00:00Z"}`},
		{name: "missing collection", raw: `{"user": {"username": "alice"}, "timestamp": "2025-03-15T00:00:00Z"}`},
		{name: "collection wrong shape", raw: `{"user": {"username": "alice"}, "collection": "nope"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Restore(ctx, "alice", []byte(tt.raw))
			assert.ErrorIs(t, err, ErrInvalidBackupFormat)
		})
	}

	// Nothing was written by any of the failed restores.
	assert.Empty(t, store.LoadUsers(ctx))
}

func TestTransferService_Restore_ForcesTargetUsername(t *testing.T) {
	svc, store := newTestTransferSvc(t)
	ctx := context.Background()

	raw := []byte(`{"user": {"username": "mallory"}, "collection": []}`)

	restored, err := svc.Restore(ctx, "alice", raw)
	require.NoError(t, err)
	assert.Equal(t, "alice", restored.User.Username)

	users := store.LoadUsers(ctx)
	_, exists := users["mallory"]
	assert.False(t, exists, "a foreign backup cannot create another account")
	_, exists = users["alice"]
	assert.True(t, exists)
}
