package usecase

import (
	"context"
	"sort"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/pkg/fuzzy"
)

const (
	PriceSortAsc  = "price_asc"
	PriceSortDesc = "price_desc"
)

type CatalogUseCase struct {
	productRepo repository.ProductRepository
	threshold   float64
}

func NewCatalogUseCase(productRepo repository.ProductRepository, fuzzyThreshold float64) *CatalogUseCase {
	if fuzzyThreshold <= 0 {
		fuzzyThreshold = fuzzy.DefaultThreshold
	}
	return &CatalogUseCase{
		productRepo: productRepo,
		threshold:   fuzzyThreshold,
	}
}

type SearchParams struct {
	Search   string
	Category string
	Sort     string
	Page     int
	Limit    int
}

type SearchResult struct {
	Products []*entity.Product
	Total    int64
}

// Search loads the full catalog and applies, in order: exact category
// filter, fuzzy title match, price sort, page slice. A fuzzy match replaces
// the candidate set in relevance order; it supersedes prior ordering rather
// than filtering within it. Total counts the filtered set before slicing.
func (uc *CatalogUseCase) Search(ctx context.Context, params SearchParams) (*SearchResult, error) {
	products, err := uc.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := products
	if params.Category != "" {
		filtered = make([]*entity.Product, 0, len(products))
		for _, product := range products {
			if product.Category == params.Category {
				filtered = append(filtered, product)
			}
		}
	}

	if params.Search != "" {
		titles := make([]string, len(filtered))
		for i, product := range filtered {
			titles[i] = product.Title
		}

		ranks := fuzzy.Match(params.Search, titles, uc.threshold)
		matched := make([]*entity.Product, 0, len(ranks))
		for _, rank := range ranks {
			matched = append(matched, filtered[rank.Index])
		}
		filtered = matched
	}

	switch params.Sort {
	case PriceSortAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case PriceSortDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	}

	total := int64(len(filtered))

	page := params.Page
	if page <= 0 {
		page = 1
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	start := (page - 1) * limit
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + limit
	if end > len(filtered) {
		end = len(filtered)
	}

	return &SearchResult{
		Products: filtered[start:end],
		Total:    total,
	}, nil
}
