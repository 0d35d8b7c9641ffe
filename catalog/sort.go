package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/cowebsLB/mounifull/models"
)

type SortKey string

const (
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortDateAsc   SortKey = "date-asc"
	SortDateDesc  SortKey = "date-desc"
)

// Sort orders products in place. Name keys compare the active language's
// field (with opposite-language fallback) under that language's collation;
// an unknown key leaves the prior order untouched. The sort is stable, so
// ties keep their previous relative order.
func Sort(products []models.Product, key SortKey, lang string) {
	switch key {
	case SortNameAsc, SortNameDesc:
		col := collatorFor(lang)
		sort.SliceStable(products, func(i, j int) bool {
			cmp := col.CompareString(products[i].DisplayName(lang), products[j].DisplayName(lang))
			if key == SortNameDesc {
				return cmp > 0
			}
			return cmp < 0
		})
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case SortDateAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].ListedAt().Before(products[j].ListedAt()) })
	case SortDateDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].ListedAt().After(products[j].ListedAt()) })
	}
}

func collatorFor(lang string) *collate.Collator {
	tag := language.English
	if lang == "ar" {
		tag = language.Arabic
	}
	return collate.New(tag)
}
