package services

import (
	"testing"

	"github.com/fiorella-shop/fiorella-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newTestProduct(id uint, name, categoryName string, images ...models.ProductImage) models.Product {
	return models.Product{
		ID:          id,
		Name:        name,
		Description: "description of " + name,
		Price:       decimal.NewFromFloat(19.99),
		Category:    models.Category{Name: categoryName},
		Images:      images,
	}
}

func TestMapToSummaries(t *testing.T) {
	products := []models.Product{
		newTestProduct(1, "Rose Bouquet", "Bouquets",
			models.ProductImage{Name: "rose-main.jpg", IsMain: true},
			models.ProductImage{Name: "rose-side.jpg"},
		),
		newTestProduct(2, "Orchid Pot", "Pots",
			models.ProductImage{Name: "orchid-side.jpg"},
			models.ProductImage{Name: "orchid-main.jpg", IsMain: true},
		),
	}

	summaries, err := MapToSummaries(products)

	assert.NoError(t, err)
	assert.Len(t, summaries, 2)
	assert.Equal(t, "rose-main.jpg", summaries[0].Image)
	assert.Equal(t, "orchid-main.jpg", summaries[1].Image)
	assert.Equal(t, "Bouquets", summaries[0].Category)
	assert.Equal(t, uint(2), summaries[1].ID)
	assert.True(t, summaries[0].Price.Equal(decimal.NewFromFloat(19.99)))
}

func TestMapToSummariesNoMainImage(t *testing.T) {
	products := []models.Product{
		newTestProduct(7, "Tulip Bundle", "Bouquets",
			models.ProductImage{Name: "tulip-1.jpg"},
			models.ProductImage{Name: "tulip-2.jpg"},
		),
	}

	summaries, err := MapToSummaries(products)

	assert.Nil(t, summaries)
	assert.ErrorIs(t, err, ErrNoMainImage)
	assert.Contains(t, err.Error(), "product 7")
}

func TestMapToSummariesEmpty(t *testing.T) {
	summaries, err := MapToSummaries(nil)

	assert.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestPageCount(t *testing.T) {
	testCases := []struct {
		count    int64
		expected int
	}{
		{count: 0, expected: 0},
		{count: 1, expected: 1},
		{count: 4, expected: 1},
		{count: 5, expected: 2},
		{count: 8, expected: 2},
		{count: 9, expected: 3},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, PageCount(tc.count), "count=%d", tc.count)
	}
}
