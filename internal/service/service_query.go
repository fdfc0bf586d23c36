// SPDX-License-Identifier: Apache-2.0

package service

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/simonxoxoo/vinyl-app/models"
)

// artistCollator orders artist names the way a record-shop shelf would:
// case-insensitive and locale-aware, so accented names sort next to their
// unaccented forms.
var artistCollator = collate.New(language.English, collate.IgnoreCase)

// FilterSortRecords runs the query pipeline over records and returns a new
// slice; the input is never mutated. Stages always apply in the same order:
//
//  1. view      — wishlist view keeps wishlist records only.
//  2. search    — case-insensitive substring match on artist or title.
//  3. rating    — "unrated" keeps rating 0; a numeric filter N keeps
//     records rated N or higher.
//  4. sort      — stable sort by the requested key; records that compare
//     equal keep their relative order.
//
// The default sort is newest-first by date added.
func FilterSortRecords(records []models.CatalogRecord, query models.QueryState) []models.CatalogRecord {
	filtered := make([]models.CatalogRecord, 0, len(records))

	search := strings.ToLower(strings.TrimSpace(query.SearchTerm))
	minimum, hasMinimum := query.RatingFilter.Minimum()

	for _, record := range records {
		if query.View == models.ViewWishlist && !record.Wishlist {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(record.Artist), search) &&
			!strings.Contains(strings.ToLower(record.Title), search) {
			continue
		}
		if query.RatingFilter == models.RatingFilterUnrated && record.Rating != 0 {
			continue
		}
		if hasMinimum && record.Rating < minimum {
			continue
		}
		filtered = append(filtered, record)
	}

	sortRecords(filtered, query.SortBy)

	return filtered
}

func sortRecords(records []models.CatalogRecord, key models.SortKey) {
	switch key {
	case models.SortArtistAsc:
		sort.SliceStable(records, func(i, j int) bool {
			return artistCollator.CompareString(records[i].Artist, records[j].Artist) < 0
		})
	case models.SortArtistDesc:
		sort.SliceStable(records, func(i, j int) bool {
			return artistCollator.CompareString(records[i].Artist, records[j].Artist) > 0
		})
	case models.SortRatingAsc:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Rating < records[j].Rating
		})
	case models.SortRatingDesc:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Rating > records[j].Rating
		})
	default: // SortDateAdded, newest first
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].DateAdded.After(records[j].DateAdded)
		})
	}
}
