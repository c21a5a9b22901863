package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	apperrors "storefront/pkg/errors"
)

func catalogWith(products ...*entity.Product) *CatalogUseCase {
	return NewCatalogUseCase(&fakeProductRepo{products: products}, 0)
}

func TestSearchSortsByPrice(t *testing.T) {
	uc := catalogWith(
		&entity.Product{ID: "a", Title: "A", Price: 10},
		&entity.Product{ID: "b", Title: "B", Price: 30},
		&entity.Product{ID: "c", Title: "C", Price: 20},
	)

	result, err := uc.Search(context.Background(), SearchParams{Sort: PriceSortAsc})
	require.NoError(t, err)

	prices := []float64{}
	for _, product := range result.Products {
		prices = append(prices, product.Price)
	}
	assert.Equal(t, []float64{10, 20, 30}, prices)

	result, err = uc.Search(context.Background(), SearchParams{Sort: PriceSortDesc})
	require.NoError(t, err)
	assert.Equal(t, float64(30), result.Products[0].Price)
}

func TestSearchFiltersByCategory(t *testing.T) {
	uc := catalogWith(
		&entity.Product{ID: "a", Title: "A", Category: "audio"},
		&entity.Product{ID: "b", Title: "B", Category: "video"},
		&entity.Product{ID: "c", Title: "C", Category: "audio"},
	)

	result, err := uc.Search(context.Background(), SearchParams{Category: "audio"})
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.Total)
	for _, product := range result.Products {
		assert.Equal(t, "audio", product.Category)
	}
}

func TestSearchFuzzyMatchesAlteredSubstring(t *testing.T) {
	uc := catalogWith(
		&entity.Product{ID: "a", Title: "Wireless Mouse"},
		&entity.Product{ID: "b", Title: "Coffee Grinder"},
	)

	// One character altered relative to the title substring.
	result, err := uc.Search(context.Background(), SearchParams{Search: "Wureless"})
	require.NoError(t, err)

	require.Equal(t, int64(1), result.Total)
	assert.Equal(t, "a", result.Products[0].ID)
}

func TestSearchDisjointTextReturnsNothing(t *testing.T) {
	uc := catalogWith(
		&entity.Product{ID: "a", Title: "Wireless Mouse"},
		&entity.Product{ID: "b", Title: "Coffee Grinder"},
	)

	result, err := uc.Search(context.Background(), SearchParams{Search: "zzzz"})
	require.NoError(t, err)

	assert.Equal(t, int64(0), result.Total)
	assert.Empty(t, result.Products)
}

func TestSearchSupersedesPriorOrdering(t *testing.T) {
	uc := catalogWith(
		&entity.Product{ID: "far", Title: "Wired Mouse"},
		&entity.Product{ID: "near", Title: "Wireless Mouse"},
	)

	result, err := uc.Search(context.Background(), SearchParams{Search: "Wireless Mouse"})
	require.NoError(t, err)

	// Relevance order, not catalog order: the exact title wins.
	require.Len(t, result.Products, 2)
	assert.Equal(t, "near", result.Products[0].ID)
}

func TestSearchPaginationPartitionsFilteredSet(t *testing.T) {
	products := []*entity.Product{
		{ID: "a", Price: 1}, {ID: "b", Price: 2}, {ID: "c", Price: 3},
		{ID: "d", Price: 4}, {ID: "e", Price: 5},
	}
	uc := catalogWith(products...)

	seen := map[string]int{}
	var collected []string
	for page := 1; page <= 3; page++ {
		result, err := uc.Search(context.Background(), SearchParams{Page: page, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(5), result.Total)
		assert.LessOrEqual(t, len(result.Products), 2)
		for _, product := range result.Products {
			seen[product.ID]++
			collected = append(collected, product.ID)
		}
	}

	assert.Len(t, collected, 5)
	for id, count := range seen {
		assert.Equal(t, 1, count, "product %s appeared %d times", id, count)
	}
}

func TestSearchPageBeyondEndIsEmpty(t *testing.T) {
	uc := catalogWith(&entity.Product{ID: "a"})

	result, err := uc.Search(context.Background(), SearchParams{Page: 4, Limit: 20})
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.Total)
	assert.Empty(t, result.Products)
}

func TestSearchPropagatesStoreFailure(t *testing.T) {
	uc := NewCatalogUseCase(&fakeProductRepo{err: apperrors.Internal("store down", nil)}, 0)

	_, err := uc.Search(context.Background(), SearchParams{})
	assert.Error(t, err)
}
