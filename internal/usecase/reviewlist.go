package usecase

import (
	"fmt"
	"sort"

	"storefront/internal/domain/entity"
)

const (
	DateSortNewest = "newest"
	DateSortOldest = "oldest"
	RatingSortHigh = "rating-high"
	RatingSortLow  = "rating-low"
)

// MergeReviews unions reviews embedded in the product record with the
// independently stored ones: embedded first, each source keeping its own
// order, no deduplication. Source tells copies of the same logical review
// apart. Embedded entries arrive keyless and get a synthetic key so the
// display list is uniformly addressable.
func MergeReviews(productID string, embedded, independent []entity.Review) []entity.Review {
	merged := make([]entity.Review, 0, len(embedded)+len(independent))

	for i, review := range embedded {
		review.Source = entity.ReviewSourceEmbedded
		if review.ID == "" {
			review.ID = fmt.Sprintf("embedded-%s-%d", productID, i)
		}
		if review.ProductID == "" {
			review.ProductID = productID
		}
		merged = append(merged, review)
	}

	for _, review := range independent {
		review.Source = entity.ReviewSourceStore
		merged = append(merged, review)
	}

	return merged
}

// SortReviews reorders the list in place. The date key is applied first,
// then the rating key as a stable re-sort of the result, so the two
// selectors compose instead of competing. Empty options leave the current
// order untouched; ties always keep prior relative order.
func SortReviews(reviews []entity.Review, dateSort, ratingSort string) {
	switch dateSort {
	case DateSortNewest:
		sort.SliceStable(reviews, func(i, j int) bool {
			return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
		})
	case DateSortOldest:
		sort.SliceStable(reviews, func(i, j int) bool {
			return reviews[i].CreatedAt.Before(reviews[j].CreatedAt)
		})
	}

	switch ratingSort {
	case RatingSortHigh:
		sort.SliceStable(reviews, func(i, j int) bool {
			return reviews[i].Rating > reviews[j].Rating
		})
	case RatingSortLow:
		sort.SliceStable(reviews, func(i, j int) bool {
			return reviews[i].Rating < reviews[j].Rating
		})
	}
}
