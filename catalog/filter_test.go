package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cowebsLB/mounifull/models"
)

func fixtureProducts(now time.Time) []models.Product {
	return []models.Product{
		{ID: 1, NameEn: "Pure Honey", NameAr: "عسل صافي", Description: "raw mountain honey", Price: 18, Category: "sweets", Rating: 4.8, InStock: true, DateAdded: now.AddDate(0, 0, -5)},
		{ID: 2, NameEn: "Kishik 500g", Description: "fermented wheat and yogurt", Price: 12, Category: "pantry", Rating: 4.5, InStock: true, DateAdded: now.AddDate(0, 0, -60)},
		{ID: 3, NameEn: "Grape Molasses", Description: "thick and dark", Price: 9, Category: "sweets", Rating: 4.0, InStock: false, DateAdded: now.AddDate(0, 0, -10)},
		{ID: 4, NameEn: "Labneh", Description: "strained yogurt", Price: 6, Category: "dairy", Rating: 3.5, InStock: true, DateAdded: now.AddDate(0, 0, -90)},
	}
}

func TestApplyNoFiltersReturnsAll(t *testing.T) {
	now := time.Now()
	products := fixtureProducts(now)
	got := Apply(products, Filters{Now: now}, "en")
	assert.Len(t, got, len(products))
}

func TestApplySearchMatchesNameOrDescription(t *testing.T) {
	now := time.Now()
	products := fixtureProducts(now)

	got := Apply(products, Filters{Search: "honey", Now: now}, "en")
	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].ID)

	// Description hit
	got = Apply(products, Filters{Search: "yogurt", Now: now}, "en")
	assert.Len(t, got, 2)

	// Arabic search matches the Arabic name
	got = Apply(products, Filters{Search: "عسل", Now: now}, "ar")
	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].ID)
}

func TestApplyPriceBoundsInclusive(t *testing.T) {
	now := time.Now()
	products := fixtureProducts(now)

	min, max := 9.0, 12.0
	got := Apply(products, Filters{PriceMin: &min, PriceMax: &max, Now: now}, "en")
	require.Len(t, got, 2)
	assert.Equal(t, uint(2), got[0].ID)
	assert.Equal(t, uint(3), got[1].ID)
}

func TestApplyCategories(t *testing.T) {
	now := time.Now()
	got := Apply(fixtureProducts(now), Filters{Categories: []string{"sweets", "dairy"}, Now: now}, "en")
	assert.Len(t, got, 3)
}

func TestApplyAvailability(t *testing.T) {
	now := time.Now()
	products := fixtureProducts(now)

	got := Apply(products, Filters{Availability: AvailabilityInStock, Now: now}, "en")
	assert.Len(t, got, 3)

	// "new" keeps only items listed in the last 30 days
	got = Apply(products, Filters{Availability: AvailabilityNew, Now: now}, "en")
	require.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].ID)
	assert.Equal(t, uint(3), got[1].ID)
}

func TestApplyMinRating(t *testing.T) {
	now := time.Now()
	got := Apply(fixtureProducts(now), Filters{MinRating: 4.5, Now: now}, "en")
	assert.Len(t, got, 2)
}

func TestApplyDateRange(t *testing.T) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now
	got := Apply(fixtureProducts(now), Filters{DateFrom: &from, DateTo: &to, Now: now}, "en")
	assert.Len(t, got, 2)
}

func TestApplyFiltersCombineAsConjunction(t *testing.T) {
	now := time.Now()
	got := Apply(fixtureProducts(now), Filters{
		Search:       "honey",
		Categories:   []string{"pantry"},
		Availability: AvailabilityInStock,
		Now:          now,
	}, "en")
	assert.Empty(t, got)
}

func TestApplyAlwaysReturnsNonNil(t *testing.T) {
	got := Apply(nil, Filters{Search: "anything"}, "en")
	require.NotNil(t, got)
	assert.Empty(t, got)
}
