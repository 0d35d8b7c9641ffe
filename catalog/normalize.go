package catalog

import (
	"time"

	"github.com/cowebsLB/mounifull/models"
)

// RawProduct mirrors every field spelling the product sources have used:
// the hosted table (snake_case), the legacy static snapshot (camelCase) and
// the oldest records (bare "name"/"image"/"date"). It exists so that all
// source-format normalization happens in Normalize and nowhere else.
type RawProduct struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	NameEn        string  `json:"name_en"`
	NameEnCamel   string  `json:"nameEn"`
	NameAr        string  `json:"name_ar"`
	NameArCamel   string  `json:"nameAr"`
	Description   string  `json:"description"`
	DescriptionAr string  `json:"description_ar"`
	Price         float64 `json:"price"`
	Weight        string  `json:"weight"`
	Packaging     string  `json:"packaging"`
	Category      string  `json:"category"`
	Rating        float64 `json:"rating"`
	Image         string  `json:"image"`
	ImageURL      string  `json:"image_url"`
	Date          string  `json:"date"`
	DateAdded     string  `json:"date_added"`
	CreatedAt     string  `json:"created_at"`

	// Stock has shipped as bool, number and string depending on the source.
	InStock      interface{} `json:"in_stock"`
	InStockCamel interface{} `json:"inStock"`
}

const defaultName = "Unnamed Product"

// Normalize folds a raw record into the canonical Product.
//
// Stock is fail-open: only the literal values false, 0, "false" and "0"
// mean out of stock. Anything else, including an absent field, counts as in
// stock.
func Normalize(raw RawProduct) models.Product {
	nameEn := firstNonEmpty(raw.NameEn, raw.NameEnCamel, raw.Name)
	nameAr := firstNonEmpty(raw.NameAr, raw.NameArCamel)
	if nameEn == "" && nameAr == "" {
		nameEn = defaultName
	}

	rating := raw.Rating
	if rating == 0 {
		rating = 4.5
	}

	listed := parseDate(raw.DateAdded, raw.Date, raw.CreatedAt)

	return models.Product{
		ID:            raw.ID,
		NameEn:        nameEn,
		NameAr:        nameAr,
		Description:   raw.Description,
		DescriptionAr: raw.DescriptionAr,
		Price:         raw.Price,
		Weight:        raw.Weight,
		Packaging:     firstNonEmpty(raw.Packaging, "jar"),
		Category:      raw.Category,
		Rating:        rating,
		InStock:       stockFlag(raw.InStock, raw.InStockCamel),
		ImageURL:      firstNonEmpty(raw.ImageURL, raw.Image),
		DateAdded:     listed,
		CreatedAt:     listed,
	}
}

func stockFlag(values ...interface{}) bool {
	for _, v := range values {
		switch s := v.(type) {
		case bool:
			if !s {
				return false
			}
			return true
		case float64: // JSON numbers decode to float64
			if s == 0 {
				return false
			}
			return true
		case string:
			if s == "false" || s == "0" {
				return false
			}
			if s != "" {
				return true
			}
		}
	}
	return true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func parseDate(values ...string) time.Time {
	for _, v := range values {
		if v == "" {
			continue
		}
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
		if t, err := time.Parse("2006-01-02", v); err == nil {
			return t
		}
	}
	return time.Time{}
}
