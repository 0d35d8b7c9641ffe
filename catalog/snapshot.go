package catalog

import (
	_ "embed"
	"encoding/json"
	"sort"

	"github.com/cowebsLB/mounifull/models"
)

// Bundled fallback snapshot, served when the database is unreachable. Same
// role as the static products.json the site shipped before moving to a
// hosted table, so it keeps the old mixed field spellings on purpose.
//
//go:embed data/products.json
var snapshotJSON []byte

// Snapshot decodes and normalizes the bundled product list, newest first.
func Snapshot() ([]models.Product, error) {
	var raws []RawProduct
	if err := json.Unmarshal(snapshotJSON, &raws); err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(raws))
	for _, raw := range raws {
		products = append(products, Normalize(raw))
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].ListedAt().After(products[j].ListedAt())
	})
	return products, nil
}
