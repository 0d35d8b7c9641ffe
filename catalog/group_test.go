package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cowebsLB/mounifull/models"
)

func TestBaseName(t *testing.T) {
	assert.Equal(t, "Kishik", BaseName("Kishik 500g"))
	assert.Equal(t, "Kishik", BaseName("Kishik 1000G"))
	assert.Equal(t, "Rose Water", BaseName("Rose Water 250ml"))
	assert.Equal(t, "Pure Honey", BaseName("Pure Honey"))
	// Only the recognized tokens are stripped
	assert.Equal(t, "Olives 300g", BaseName("Olives 300g"))
	// Mid-name tokens stay
	assert.Equal(t, "500g Kishik", BaseName("500g Kishik"))
}

func TestGroupVariantsCollapsesWeights(t *testing.T) {
	products := []models.Product{
		{ID: 1, NameEn: "Kishik 250g", NameAr: "كشك", Price: 8, Weight: "250g"},
		{ID: 2, NameEn: "Pure Honey", Price: 18},
		{ID: 3, NameEn: "Kishik 500g", NameAr: "كشك", Price: 14, Weight: "500g"},
	}

	groups := GroupVariants(products)
	require.Len(t, groups, 2)

	kishik := groups[0]
	assert.Equal(t, "kishik", kishik.Key)
	assert.Equal(t, "Kishik", kishik.BaseNameEn)
	assert.Equal(t, "كشك", kishik.BaseNameAr)
	assert.Len(t, kishik.Items, 2)
	assert.Equal(t, 8.0, kishik.MinPrice)
	assert.Equal(t, 14.0, kishik.MaxPrice)

	// 500g wins the primary slot even when seen later
	assert.Equal(t, uint(3), kishik.Primary.ID)

	honey := groups[1]
	assert.Equal(t, uint(2), honey.Primary.ID)
	assert.Len(t, honey.Items, 1)
}

func TestGroupVariantsPrimaryFromNameToken(t *testing.T) {
	// Older records carry the pack size only in the name, never in the
	// weight field. The 500g variant still has to lead its group.
	products := []models.Product{
		{ID: 1, NameEn: "Kishik 250g", Price: 8},
		{ID: 2, NameEn: "Kishik 500g", Price: 14},
	}
	groups := GroupVariants(products)
	require.Len(t, groups, 1)
	assert.Equal(t, uint(2), groups[0].Primary.ID)
}

func TestGroupVariantsArabicOnlyProductsStayDistinct(t *testing.T) {
	products := []models.Product{
		{ID: 1, NameAr: "عسل صافي", Price: 18},
		{ID: 2, NameAr: "كشك", Price: 8},
	}
	groups := GroupVariants(products)
	require.Len(t, groups, 2)
	assert.Equal(t, "عسل صافي", groups[0].Key)
	assert.Equal(t, "كشك", groups[1].Key)
}

func TestVariantsOfArabicOnlyProduct(t *testing.T) {
	products := []models.Product{
		{ID: 1, NameAr: "عسل صافي"},
		{ID: 2, NameAr: "كشك"},
	}
	variants := VariantsOf(products, products[0])
	require.Len(t, variants, 1)
	assert.Equal(t, uint(1), variants[0].ID)
}

func TestGroupVariantsJoinsOnArabicName(t *testing.T) {
	products := []models.Product{
		{ID: 1, NameEn: "Kishik 250g", NameAr: "كشك", Price: 8},
		{ID: 2, NameEn: "Kishk 500g", NameAr: "كشك", Price: 14}, // English spelling drifted
	}
	groups := GroupVariants(products)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Items, 2)
}

func TestGroupVariantsFirstSeenOrder(t *testing.T) {
	products := []models.Product{
		{ID: 1, NameEn: "Labneh"},
		{ID: 2, NameEn: "Apple Vinegar"},
		{ID: 3, NameEn: "Labneh 500g"},
	}
	groups := GroupVariants(products)
	require.Len(t, groups, 2)
	assert.Equal(t, "labneh", groups[0].Key)
	assert.Equal(t, "apple vinegar", groups[1].Key)
}

func TestVariantsOf(t *testing.T) {
	products := []models.Product{
		{ID: 1, NameEn: "Kishik 250g"},
		{ID: 2, NameEn: "Kishik 500g"},
		{ID: 3, NameEn: "Pure Honey"},
	}
	variants := VariantsOf(products, products[0])
	require.Len(t, variants, 2)
	assert.Equal(t, uint(1), variants[0].ID)
	assert.Equal(t, uint(2), variants[1].ID)
}
