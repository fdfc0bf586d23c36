// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/simonxoxoo/vinyl-app/internal/logger"
	"github.com/simonxoxoo/vinyl-app/internal/store"
	"github.com/simonxoxoo/vinyl-app/models"
)

// transferService is the concrete implementation of TransferService.
type transferService struct {
	store  store.CatalogStore
	logger *logger.Logger
}

// NewTransferService constructs a new TransferService wired to the given
// catalog store.
func NewTransferService(catalogStore store.CatalogStore, logger *logger.Logger) TransferService {
	return &transferService{
		store:  catalogStore,
		logger: logger,
	}
}

// csvHeader is the fixed first row of every CSV export.
const csvHeader = "Artist,Title,Rating,Wishlist,Date Added"

// ExportCSV writes the user's collection as CSV. Artist and title are always
// double-quoted, which encoding/csv does not guarantee, so rows are built by
// hand with standard double-quote escaping.
func (t *transferService) ExportCSV(ctx context.Context, username string, w io.Writer) error {
	records := t.store.CollectionFor(ctx, username)

	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteString("\n")
	for _, record := range records {
		b.WriteString(quoteCSVField(record.Artist))
		b.WriteString(",")
		b.WriteString(quoteCSVField(record.Title))
		b.WriteString(",")
		b.WriteString(strconv.Itoa(record.Rating))
		b.WriteString(",")
		b.WriteString(strconv.FormatBool(record.Wishlist))
		b.WriteString(",")
		b.WriteString(record.DateAdded.Format("2006-01-02"))
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write CSV export: %w", err)
	}

	return nil
}

func quoteCSVField(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// ExportJSON writes the user's collection as indented JSON.
func (t *transferService) ExportJSON(ctx context.Context, username string, w io.Writer) error {
	records := t.store.CollectionFor(ctx, username)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to write JSON export: %w", err)
	}

	return nil
}

// BuildBackup assembles a full backup snapshot of the user's profile and
// collection. Fails with ErrUserNotFound when the account does not exist.
func (t *transferService) BuildBackup(ctx context.Context, username string) (models.Backup, error) {
	profile, exists := t.store.LoadUsers(ctx)[username]
	if !exists {
		return models.Backup{}, ErrUserNotFound
	}

	return models.Backup{
		User:       profile,
		Collection: t.store.CollectionFor(ctx, username),
		Timestamp:  time.Now(),
	}, nil
}

// WriteBackup serializes the backup snapshot to w.
func (t *transferService) WriteBackup(ctx context.Context, username string, w io.Writer) error {
	backup, err := t.BuildBackup(ctx, username)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}

	return nil
}

// Restore validates a backup payload and replaces the user's stored profile
// and collection with its contents. Both the "user" and "collection" keys
// must be present and well-formed, otherwise the call fails with
// ErrInvalidBackupFormat and nothing is written.
//
// The restored profile is always stored under username; a backup made under
// a different account name does not hijack someone else's entry.
func (t *transferService) Restore(ctx context.Context, username string, raw []byte) (models.Backup, error) {
	log := logger.FromContext(ctx)

	var envelope struct {
		User       json.RawMessage `json:"user"`
		Collection json.RawMessage `json:"collection"`
		Timestamp  time.Time       `json:"timestamp"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		log.Error().Err(err).Msg("backup payload is not valid JSON")
		return models.Backup{}, ErrInvalidBackupFormat
	}
	if envelope.User == nil || envelope.Collection == nil {
		log.Error().Msg("backup payload is missing user or collection")
		return models.Backup{}, ErrInvalidBackupFormat
	}

	var profile models.UserProfile
	if err := json.Unmarshal(envelope.User, &profile); err != nil {
		return models.Backup{}, ErrInvalidBackupFormat
	}
	var collection []models.CatalogRecord
	if err := json.Unmarshal(envelope.Collection, &collection); err != nil {
		return models.Backup{}, ErrInvalidBackupFormat
	}
	if collection == nil {
		collection = []models.CatalogRecord{}
	}
	profile.Username = username

	users := t.store.LoadUsers(ctx)
	users[username] = profile
	if err := t.store.SaveUsers(ctx, users); err != nil {
		log.Err(err).Str("username", username).Msg("failed to restore profile")
		return models.Backup{}, fmt.Errorf("failed to restore profile: %w", err)
	}
	if err := t.store.SetCollectionFor(ctx, username, collection); err != nil {
		log.Err(err).Str("username", username).Msg("failed to restore collection")
		return models.Backup{}, fmt.Errorf("failed to restore collection: %w", err)
	}

	return models.Backup{
		User:       profile,
		Collection: collection,
		Timestamp:  envelope.Timestamp,
	}, nil
}
