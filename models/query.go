package models

import "strconv"

// View selects which subset of the collection a query operates on.
type View string

const (
	// ViewAll keeps every record.
	ViewAll View = "all"

	// ViewWishlist keeps only records with Wishlist set.
	ViewWishlist View = "wishlist"
)

// SortKey selects the ordering of the derived record list.
type SortKey string

const (
	// SortDateAdded orders by DateAdded, most recent first. Default.
	SortDateAdded SortKey = "dateAdded"

	SortArtistAsc  SortKey = "artist-asc"
	SortArtistDesc SortKey = "artist-desc"
	SortRatingAsc  SortKey = "rating-asc"
	SortRatingDesc SortKey = "rating-desc"
)

// RatingFilter narrows records by rating. Supported values are
// RatingFilterAll, RatingFilterUnrated, and the digits "1".."5" which keep
// records rated at or above that value.
type RatingFilter string

const (
	RatingFilterAll     RatingFilter = "all"
	RatingFilterUnrated RatingFilter = "unrated"
)

// Minimum returns the numeric lower bound encoded in f and true when f is a
// digit filter. RatingFilterAll and RatingFilterUnrated return (0, false).
func (f RatingFilter) Minimum() (int, bool) {
	if f == RatingFilterAll || f == RatingFilterUnrated || f == "" {
		return 0, false
	}
	n, err := strconv.Atoi(string(f))
	if err != nil || n < 1 || n > 5 {
		return 0, false
	}
	return n, true
}

// QueryState is the full description of a derived view over a collection:
// which records to keep and in what order. The zero value means
// "all records, no search, default date ordering".
type QueryState struct {
	View         View         `json:"view"`
	SearchTerm   string       `json:"search_term"`
	RatingFilter RatingFilter `json:"rating_filter"`
	SortBy       SortKey      `json:"sort_by"`
}
