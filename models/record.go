package models

import (
	"strings"
	"time"
)

// CatalogRecord is a single item in a user's collection.
// ID and DateAdded are assigned at creation and never change afterwards.
type CatalogRecord struct {
	// ID is the unique, immutable identifier of the record.
	ID string `json:"id"`

	// Artist is the artist name, trimmed on write, never empty.
	Artist string `json:"artist"`

	// Title is the release title, trimmed on write, never empty.
	Title string `json:"title"`

	// Rating is the user rating in [0,5]; 0 means unrated.
	Rating int `json:"rating"`

	// Wishlist marks the record as wanted rather than owned.
	Wishlist bool `json:"wishlist"`

	// DateAdded is set once when the record is created.
	DateAdded time.Time `json:"date_added"`

	// ArtworkURL is an optional cover image (data URL or external URL).
	ArtworkURL string `json:"artwork_url,omitempty"`
}

// Key returns the case-insensitive trimmed (artist, title) identity used for
// duplicate detection within a collection.
func (r CatalogRecord) Key() string {
	return RecordKey(r.Artist, r.Title)
}

// RecordKey builds the duplicate-detection key for an (artist, title) pair.
func RecordKey(artist, title string) string {
	return strings.ToLower(strings.TrimSpace(artist)) + "\x00" + strings.ToLower(strings.TrimSpace(title))
}

// RecordInput carries the caller-supplied fields for creating a record.
// ID and DateAdded are assigned by the catalog service.
type RecordInput struct {
	Artist     string `json:"artist"`
	Title      string `json:"title"`
	Rating     int    `json:"rating"`
	Wishlist   bool   `json:"wishlist"`
	ArtworkURL string `json:"artwork_url,omitempty"`
}

// RecordUpdate describes a partial update of a record. Nil fields are left
// unchanged; ID and DateAdded can never be updated.
type RecordUpdate struct {
	Artist     *string `json:"artist,omitempty"`
	Title      *string `json:"title,omitempty"`
	Rating     *int    `json:"rating,omitempty"`
	Wishlist   *bool   `json:"wishlist,omitempty"`
	ArtworkURL *string `json:"artwork_url,omitempty"`
}
