package service_test

import (
	. "github.com/simonxoxoo/vinyl-app/internal/service"

	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonxoxoo/vinyl-app/models"
)

func queryFixture() []models.CatalogRecord {
	base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	return []models.CatalogRecord{
		testRecord("r1", "The Beatles", "Abbey Road", 5, false, base),
		testRecord("r2", "Pink Floyd", "The Wall", 4, true, base.Add(24*time.Hour)),
		testRecord("r3", "Radiohead", "OK Computer", 0, false, base.Add(48*time.Hour)),
		testRecord("r4", "The Beatles", "Revolver", 3, true, base.Add(72*time.Hour)),
	}
}

func recordIDs(records []models.CatalogRecord) []string {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestFilterSortRecords_DefaultOrderIsNewestFirst(t *testing.T) {
	got := FilterSortRecords(queryFixture(), models.QueryState{})

	assert.Equal(t, []string{"r4", "r3", "r2", "r1"}, recordIDs(got))
}

func TestFilterSortRecords_NewerRecordSortsBeforeOlder(t *testing.T) {
	records := []models.CatalogRecord{
		testRecord("beatles", "The Beatles", "Abbey Road", 5, false,
			time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)),
		testRecord("floyd", "Pink Floyd", "The Wall", 4, false,
			time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC)),
	}

	got := FilterSortRecords(records, models.QueryState{SortBy: models.SortDateAdded})

	require.Len(t, got, 2)
	assert.Equal(t, "floyd", got[0].ID, "the record added later must come first")
	assert.Equal(t, "beatles", got[1].ID)
}

func TestFilterSortRecords_WishlistView(t *testing.T) {
	got := FilterSortRecords(queryFixture(), models.QueryState{View: models.ViewWishlist})

	assert.Equal(t, []string{"r4", "r2"}, recordIDs(got))
}

func TestFilterSortRecords_SearchMatchesArtistAndTitle(t *testing.T) {
	records := queryFixture()

	byArtist := FilterSortRecords(records, models.QueryState{SearchTerm: "beatles"})
	assert.Equal(t, []string{"r4", "r1"}, recordIDs(byArtist))

	byTitle := FilterSortRecords(records, models.QueryState{SearchTerm: "ok comp"})
	assert.Equal(t, []string{"r3"}, recordIDs(byTitle))

	trimmed := FilterSortRecords(records, models.QueryState{SearchTerm: "  WALL  "})
	assert.Equal(t, []string{"r2"}, recordIDs(trimmed))
}

func TestFilterSortRecords_RatingFilterIsALowerBound(t *testing.T) {
	got := FilterSortRecords(queryFixture(), models.QueryState{RatingFilter: "4"})

	assert.Equal(t, []string{"r2", "r1"}, recordIDs(got))
}

func TestFilterSortRecords_UnratedFilter(t *testing.T) {
	got := FilterSortRecords(queryFixture(), models.QueryState{RatingFilter: models.RatingFilterUnrated})

	assert.Equal(t, []string{"r3"}, recordIDs(got))
}

func TestFilterSortRecords_UnratedFilterOnFullyRatedCollection(t *testing.T) {
	base := time.Now()
	records := []models.CatalogRecord{
		testRecord("a", "A", "One", 3, false, base),
		testRecord("b", "B", "Two", 5, false, base),
	}

	got := FilterSortRecords(records, models.QueryState{RatingFilter: models.RatingFilterUnrated})

	assert.Empty(t, got)
}

func TestFilterSortRecords_ArtistSortIsCaseInsensitive(t *testing.T) {
	base := time.Now()
	records := []models.CatalogRecord{
		testRecord("b", "beastie boys", "Ill Communication", 4, false, base),
		testRecord("a", "ABBA", "Arrival", 5, false, base),
		testRecord("c", "Cream", "Disraeli Gears", 3, false, base),
	}

	asc := FilterSortRecords(records, models.QueryState{SortBy: models.SortArtistAsc})
	assert.Equal(t, []string{"a", "b", "c"}, recordIDs(asc))

	desc := FilterSortRecords(records, models.QueryState{SortBy: models.SortArtistDesc})
	assert.Equal(t, []string{"c", "b", "a"}, recordIDs(desc))
}

func TestFilterSortRecords_RatingSortIsStableOnTies(t *testing.T) {
	base := time.Now()
	records := []models.CatalogRecord{
		testRecord("first", "A", "One", 4, false, base),
		testRecord("second", "B", "Two", 4, false, base),
		testRecord("third", "C", "Three", 5, false, base),
	}

	got := FilterSortRecords(records, models.QueryState{SortBy: models.SortRatingDesc})

	// Equal ratings keep their input order.
	assert.Equal(t, []string{"third", "first", "second"}, recordIDs(got))
}

func TestFilterSortRecords_StagesCompose(t *testing.T) {
	got := FilterSortRecords(queryFixture(), models.QueryState{
		View:         models.ViewWishlist,
		SearchTerm:   "the",
		RatingFilter: "4",
		SortBy:       models.SortArtistAsc,
	})

	// Only r2 survives: wishlist + contains "the" + rated >= 4.
	assert.Equal(t, []string{"r2"}, recordIDs(got))
}

func TestFilterSortRecords_IsIdempotent(t *testing.T) {
	query := models.QueryState{SearchTerm: "beatles", SortBy: models.SortRatingDesc}

	once := FilterSortRecords(queryFixture(), query)
	twice := FilterSortRecords(once, query)

	assert.Equal(t, once, twice)
}

func TestFilterSortRecords_DoesNotMutateInput(t *testing.T) {
	records := queryFixture()
	original := make([]models.CatalogRecord, len(records))
	copy(original, records)

	FilterSortRecords(records, models.QueryState{SortBy: models.SortArtistAsc})
	FilterSortRecords(records, models.QueryState{View: models.ViewWishlist, SortBy: models.SortRatingAsc})

	assert.Equal(t, original, records)
}

func TestFilterSortRecords_EmptyInput(t *testing.T) {
	got := FilterSortRecords(nil, models.QueryState{SearchTerm: "anything"})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}
