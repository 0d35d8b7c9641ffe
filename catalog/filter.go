package catalog

import (
	"strings"
	"time"

	"github.com/cowebsLB/mounifull/models"
)

type Availability string

const (
	AvailabilityAll     Availability = "all"
	AvailabilityInStock Availability = "in-stock"
	AvailabilityNew     Availability = "new" // added within the last 30 days
)

const newWindow = 30 * 24 * time.Hour

// Filters is the transient per-request filter configuration. Nil pointer
// fields mean "not set"; bounds are inclusive.
type Filters struct {
	Search       string
	PriceMin     *float64
	PriceMax     *float64
	Categories   []string
	Availability Availability
	DateFrom     *time.Time
	DateTo       *time.Time
	MinRating    float64

	// Now anchors the "new" window; zero means time.Now. Tests pin it.
	Now time.Time
}

// Apply returns the products passing every active predicate, in input
// order. The result is always non-nil so callers can tell "no matches"
// apart from "catalog not loaded" (nil).
func Apply(products []models.Product, f Filters, lang string) []models.Product {
	now := f.Now
	if now.IsZero() {
		now = time.Now()
	}

	visible := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matches(p, f, lang, now) {
			visible = append(visible, p)
		}
	}
	return visible
}

func matches(p models.Product, f Filters, lang string, now time.Time) bool {
	if f.Search != "" {
		query := strings.ToLower(f.Search)
		name := strings.ToLower(p.DisplayName(lang))
		desc := strings.ToLower(p.DisplayDescription(lang))
		if !strings.Contains(name, query) && !strings.Contains(desc, query) {
			return false
		}
	}

	if f.PriceMin != nil && p.Price < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && p.Price > *f.PriceMax {
		return false
	}

	if len(f.Categories) > 0 && !containsString(f.Categories, p.Category) {
		return false
	}

	switch f.Availability {
	case AvailabilityInStock:
		if !p.InStock {
			return false
		}
	case AvailabilityNew:
		if p.ListedAt().Before(now.Add(-newWindow)) {
			return false
		}
	}

	if f.DateFrom != nil && p.ListedAt().Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && p.ListedAt().After(*f.DateTo) {
		return false
	}

	if f.MinRating > 0 && p.Rating < f.MinRating {
		return false
	}

	return true
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
