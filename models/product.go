package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is the single canonical catalog record. Source payloads have used
// several spellings for the same fields over time (name vs name_en vs nameEn,
// in_stock vs inStock); all of them are folded into this shape at the
// data-access boundary by catalog.Normalize, never downstream.
type Product struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	NameEn        string         `gorm:"not null" json:"name_en"`
	NameAr        string         `json:"name_ar"`
	Description   string         `json:"description"`
	DescriptionAr string         `json:"description_ar"`
	Price         float64        `gorm:"not null" json:"price"`
	Weight        string         `json:"weight"`    // display label, e.g. "500g"
	Packaging     string         `json:"packaging"` // e.g. "jar", "bag"
	Category      string         `json:"category"`
	Rating        float64        `json:"rating"` // 0-5
	InStock       bool           `json:"in_stock"`
	ImageURL      string         `json:"image_url"`
	DateAdded     time.Time      `json:"date_added"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// DisplayName returns the name for the active language, falling back to the
// opposite language when the active field is empty.
func (p Product) DisplayName(lang string) string {
	if lang == "ar" {
		if p.NameAr != "" {
			return p.NameAr
		}
		return p.NameEn
	}
	if p.NameEn != "" {
		return p.NameEn
	}
	return p.NameAr
}

// DisplayDescription mirrors DisplayName for the description fields.
func (p Product) DisplayDescription(lang string) string {
	if lang == "ar" {
		if p.DescriptionAr != "" {
			return p.DescriptionAr
		}
		return p.Description
	}
	if p.Description != "" {
		return p.Description
	}
	return p.DescriptionAr
}

// ListedAt is the timestamp used for "newest first" ordering and the
// added-within-30-days availability filter.
func (p Product) ListedAt() time.Time {
	if !p.DateAdded.IsZero() {
		return p.DateAdded
	}
	return p.CreatedAt
}
