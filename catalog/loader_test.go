package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cowebsLB/mounifull/models"
)

type stubSource struct {
	products []models.Product
	err      error
}

func (s stubSource) FetchAll(context.Context) ([]models.Product, error) {
	return s.products, s.err
}

func TestLoaderReturnsSourceProducts(t *testing.T) {
	loader := NewLoaderWithSource(stubSource{products: []models.Product{{ID: 1, NameEn: "Honey"}}})
	got := loader.FetchAll(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, "Honey", got[0].NameEn)
}

func TestLoaderFallsBackToSnapshot(t *testing.T) {
	loader := NewLoaderWithSource(stubSource{err: errors.New("connection refused")})
	got := loader.FetchAll(context.Background())
	assert.NotEmpty(t, got, "snapshot should back a failing source")
}

func TestLoaderEmptySourceIsNotFailure(t *testing.T) {
	loader := NewLoaderWithSource(stubSource{products: []models.Product{}})
	got := loader.FetchAll(context.Background())
	assert.Empty(t, got)
}

func TestSnapshotNormalized(t *testing.T) {
	products, err := Snapshot()
	require.NoError(t, err)
	require.NotEmpty(t, products)

	for _, p := range products {
		assert.NotEmpty(t, p.NameEn, "every snapshot record gets a name")
		assert.NotZero(t, p.Rating)
		assert.NotEmpty(t, p.Packaging)
	}

	// Newest first
	for i := 1; i < len(products); i++ {
		assert.False(t, products[i-1].ListedAt().Before(products[i].ListedAt()))
	}
}
