// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/simonxoxoo/vinyl-app/internal/logger"
	"github.com/simonxoxoo/vinyl-app/internal/store"
	"github.com/simonxoxoo/vinyl-app/internal/utils"
	"github.com/simonxoxoo/vinyl-app/models"
)

// catalogService is the concrete implementation of CatalogService.
// Every mutation loads the user's collection snapshot, applies the change in
// memory, and writes the whole collection back. The store serializes writes,
// so concurrent mutations resolve last-writer-wins.
type catalogService struct {
	store     store.CatalogStore
	generator utils.Generator
	logger    *logger.Logger
}

// NewCatalogService constructs a new CatalogService wired to the given
// catalog store. Record IDs come from the supplied generator.
func NewCatalogService(catalogStore store.CatalogStore, generator utils.Generator, logger *logger.Logger) CatalogService {
	return &catalogService{
		store:     catalogStore,
		generator: generator,
		logger:    logger,
	}
}

// Records returns the user's collection. A user with no stored collection
// gets an empty slice, never nil access errors.
func (c *catalogService) Records(ctx context.Context, username string) []models.CatalogRecord {
	return c.store.CollectionFor(ctx, username)
}

// AddRecord validates the input and appends a new record to the collection.
//
// Duplicates are detected case-insensitively on the artist+title pair and
// rejected with ErrDuplicateRecord; the stored collection is left untouched.
// A zero rating means unrated; any other value must be within 1..5.
func (c *catalogService) AddRecord(ctx context.Context, username string, input models.RecordInput) (models.CatalogRecord, error) {
	log := logger.FromContext(ctx)

	artist := strings.TrimSpace(input.Artist)
	title := strings.TrimSpace(input.Title)
	if artist == "" || title == "" {
		log.Error().Str("username", username).Msg("record is missing artist or title")
		return models.CatalogRecord{}, ErrInvalidDataProvided
	}
	if input.Rating != 0 && (input.Rating < 1 || input.Rating > 5) {
		return models.CatalogRecord{}, ErrInvalidRating
	}

	records := c.store.CollectionFor(ctx, username)

	key := models.RecordKey(artist, title)
	for _, existing := range records {
		if existing.Key() == key {
			log.Error().Str("username", username).Str("artist", artist).Str("title", title).Msg("duplicate record rejected")
			return models.CatalogRecord{}, ErrDuplicateRecord
		}
	}

	record := models.CatalogRecord{
		ID:         c.generator.Generate(),
		Artist:     artist,
		Title:      title,
		Rating:     input.Rating,
		Wishlist:   input.Wishlist,
		DateAdded:  time.Now(),
		ArtworkURL: input.ArtworkURL,
	}

	records = append(records, record)
	if err := c.store.SetCollectionFor(ctx, username, records); err != nil {
		log.Err(err).Str("username", username).Msg("failed to persist new record")
		return models.CatalogRecord{}, fmt.Errorf("failed to persist new record: %w", err)
	}

	return record, nil
}

// UpdateRecord applies the non-nil fields of update to the record with the
// given id, preserving its id and date added. Returns ErrRecordNotFound when
// no record matches. The duplicate check runs on add only, so a rename may
// legitimately converge on another record's artist+title pair.
func (c *catalogService) UpdateRecord(ctx context.Context, username, id string, update models.RecordUpdate) (models.CatalogRecord, error) {
	log := logger.FromContext(ctx)

	records := c.store.CollectionFor(ctx, username)

	index := -1
	for i := range records {
		if records[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return models.CatalogRecord{}, ErrRecordNotFound
	}

	record := records[index]
	if update.Artist != nil {
		artist := strings.TrimSpace(*update.Artist)
		if artist == "" {
			return models.CatalogRecord{}, ErrInvalidDataProvided
		}
		record.Artist = artist
	}
	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return models.CatalogRecord{}, ErrInvalidDataProvided
		}
		record.Title = title
	}
	if update.Rating != nil {
		if *update.Rating != 0 && (*update.Rating < 1 || *update.Rating > 5) {
			return models.CatalogRecord{}, ErrInvalidRating
		}
		record.Rating = *update.Rating
	}
	if update.Wishlist != nil {
		record.Wishlist = *update.Wishlist
	}
	if update.ArtworkURL != nil {
		record.ArtworkURL = *update.ArtworkURL
	}

	records[index] = record
	if err := c.store.SetCollectionFor(ctx, username, records); err != nil {
		log.Err(err).Str("username", username).Str("id", id).Msg("failed to persist record update")
		return models.CatalogRecord{}, fmt.Errorf("failed to persist record update: %w", err)
	}

	return record, nil
}

// DeleteRecord removes the record with the given id. Deleting an id that is
// not present is a silent no-op.
func (c *catalogService) DeleteRecord(ctx context.Context, username, id string) error {
	records := c.store.CollectionFor(ctx, username)

	for i := range records {
		if records[i].ID == id {
			records = append(records[:i], records[i+1:]...)
			if err := c.store.SetCollectionFor(ctx, username, records); err != nil {
				return fmt.Errorf("failed to persist record deletion: %w", err)
			}
			break
		}
	}

	return nil
}

// DeleteRecords removes every record whose id appears in ids and reports how
// many were removed. Unknown ids are skipped silently, so a stale selection
// deletes zero records without error.
func (c *catalogService) DeleteRecords(ctx context.Context, username string, ids []string) (int, error) {
	records := c.store.CollectionFor(ctx, username)

	selected := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		selected[id] = struct{}{}
	}

	kept := records[:0]
	removed := 0
	for _, record := range records {
		if _, ok := selected[record.ID]; ok {
			removed++
			continue
		}
		kept = append(kept, record)
	}
	if removed == 0 {
		return 0, nil
	}

	if err := c.store.SetCollectionFor(ctx, username, kept); err != nil {
		return 0, fmt.Errorf("failed to persist bulk deletion: %w", err)
	}

	return removed, nil
}

// ToggleWishlist flips the wishlist flag of the record with the given id.
// An unknown id is a silent no-op.
func (c *catalogService) ToggleWishlist(ctx context.Context, username, id string) error {
	records := c.store.CollectionFor(ctx, username)

	for i := range records {
		if records[i].ID == id {
			records[i].Wishlist = !records[i].Wishlist
			if err := c.store.SetCollectionFor(ctx, username, records); err != nil {
				return fmt.Errorf("failed to persist wishlist toggle: %w", err)
			}
			break
		}
	}

	return nil
}

// BulkSetRating assigns rating to every record whose id appears in ids and
// reports how many records were updated. The rating must be within 1..5;
// unknown ids are skipped silently.
func (c *catalogService) BulkSetRating(ctx context.Context, username string, ids []string, rating int) (int, error) {
	if rating < 1 || rating > 5 {
		return 0, ErrInvalidRating
	}

	records := c.store.CollectionFor(ctx, username)

	selected := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		selected[id] = struct{}{}
	}

	updated := 0
	for i := range records {
		if _, ok := selected[records[i].ID]; ok {
			records[i].Rating = rating
			updated++
		}
	}
	if updated == 0 {
		return 0, nil
	}

	if err := c.store.SetCollectionFor(ctx, username, records); err != nil {
		return 0, fmt.Errorf("failed to persist bulk rating: %w", err)
	}

	return updated, nil
}

// ClearCollection replaces the user's collection with an empty one.
func (c *catalogService) ClearCollection(ctx context.Context, username string) error {
	if err := c.store.SetCollectionFor(ctx, username, []models.CatalogRecord{}); err != nil {
		return fmt.Errorf("failed to clear collection: %w", err)
	}

	return nil
}
