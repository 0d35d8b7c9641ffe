package catalog

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	"github.com/cowebsLB/mounifull/models"
)

// Source is where the catalog is read from. The production source is the
// postgres table; tests substitute their own.
type Source interface {
	FetchAll(ctx context.Context) ([]models.Product, error)
}

type gormSource struct {
	db *gorm.DB
}

func (s gormSource) FetchAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Loader fetches the full catalog, newest first. A source failure falls back
// to the bundled snapshot; if that fails too the result is empty. Callers
// render an empty state, they never see an error. An empty source result is
// not a failure.
type Loader struct {
	src Source
	sfg singleflight.Group // collapses concurrent page loads into one fetch
}

func NewLoader(db *gorm.DB) *Loader {
	return &Loader{src: gormSource{db: db}}
}

func NewLoaderWithSource(src Source) *Loader {
	return &Loader{src: src}
}

func (l *Loader) FetchAll(ctx context.Context) []models.Product {
	v, _, _ := l.sfg.Do("catalog", func() (interface{}, error) {
		products, err := l.src.FetchAll(ctx)
		if err == nil {
			return products, nil
		}
		log.Warn().Err(err).Msg("catalog source failed, falling back to bundled snapshot")

		products, err = Snapshot()
		if err != nil {
			log.Error().Err(err).Msg("bundled snapshot unreadable, serving empty catalog")
			return []models.Product(nil), nil
		}
		return products, nil
	})
	return v.([]models.Product)
}
