package catalog

import (
	"regexp"
	"strings"

	"github.com/cowebsLB/mounifull/models"
)

// Recognized trailing pack-size tokens. Anything else stays part of the
// product name.
var weightToken = regexp.MustCompile(`(?i)(\s|^)(200g|250g|250ml|330g|500g|500ml|1000g)\s*$`)

const primaryWeight = "500g"

// BaseName strips a trailing recognized weight token from a product name.
func BaseName(name string) string {
	return strings.TrimSpace(weightToken.ReplaceAllString(name, ""))
}

// packSize is the variant's effective pack size: the weight field when set,
// otherwise the trailing token in the English name. Older records carry the
// size only in the name.
func packSize(p models.Product) string {
	if p.Weight != "" {
		return p.Weight
	}
	if m := weightToken.FindStringSubmatch(p.NameEn); m != nil {
		return m[2]
	}
	return ""
}

// Group is a derived, never-persisted aggregation of pack-size variants of
// one product, used so the catalog doesn't show near-duplicate cards.
type Group struct {
	Key        string           `json:"key"` // lower-cased English base name, Arabic when no English exists
	BaseNameEn string           `json:"base_name_en"`
	BaseNameAr string           `json:"base_name_ar"`
	Primary    models.Product   `json:"primary"`
	Items      []models.Product `json:"items"`
	MinPrice   float64          `json:"min_price"`
	MaxPrice   float64          `json:"max_price"`
}

// GroupVariants collapses the list into display groups, keyed by the
// English base name (Arabic base names join too, so a product whose English
// spelling drifted still lands in its siblings' group). Groups come out in
// first-seen order; the primary item prefers a 500g variant.
func GroupVariants(products []models.Product) []Group {
	groups := make([]Group, 0, len(products))
	byEn := make(map[string]int)
	byAr := make(map[string]int)

	for _, p := range products {
		baseEn := BaseName(p.NameEn)
		baseAr := BaseName(p.NameAr)
		keyEn := strings.ToLower(baseEn)
		keyAr := strings.ToLower(baseAr)

		// Empty keys never join anything: an Arabic-only product must not
		// land in another Arabic-only product's group just because both
		// lack an English name.
		var idx int
		var ok bool
		if keyEn != "" {
			idx, ok = byEn[keyEn]
		}
		if !ok && keyAr != "" {
			idx, ok = byAr[keyAr]
		}
		if !ok {
			groups = append(groups, Group{
				Key:        firstNonEmpty(keyEn, keyAr),
				BaseNameEn: baseEn,
				BaseNameAr: baseAr,
				Primary:    p,
				MinPrice:   p.Price,
				MaxPrice:   p.Price,
			})
			idx = len(groups) - 1
			if keyEn != "" {
				byEn[keyEn] = idx
			}
			if keyAr != "" {
				byAr[keyAr] = idx
			}
		}

		g := &groups[idx]
		g.Items = append(g.Items, p)
		if p.Price < g.MinPrice {
			g.MinPrice = p.Price
		}
		if p.Price > g.MaxPrice {
			g.MaxPrice = p.Price
		}
		if g.BaseNameAr == "" && baseAr != "" {
			g.BaseNameAr = baseAr
			byAr[keyAr] = idx
		}
		if !strings.EqualFold(packSize(g.Primary), primaryWeight) && strings.EqualFold(packSize(p), primaryWeight) {
			g.Primary = p
		}
	}
	return groups
}

// VariantsOf returns every product sharing a base name with p, p included.
// Used by the product detail page to offer weight/packaging choices.
func VariantsOf(products []models.Product, p models.Product) []models.Product {
	keyEn := strings.ToLower(BaseName(p.NameEn))
	keyAr := strings.ToLower(BaseName(p.NameAr))

	var variants []models.Product
	for _, q := range products {
		if keyEn != "" && strings.ToLower(BaseName(q.NameEn)) == keyEn {
			variants = append(variants, q)
			continue
		}
		if keyAr != "" && strings.ToLower(BaseName(q.NameAr)) == keyAr {
			variants = append(variants, q)
		}
	}
	return variants
}
