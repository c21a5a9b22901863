package usecase

import (
	"context"
	stderrors "errors"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/pkg/errors"
)

// ErrSuperseded is returned when a load resolves after a newer load has
// already been issued for the same session. The stale result is discarded.
var ErrSuperseded = stderrors.New("load superseded by a newer navigation")

type DetailUseCase struct {
	source     repository.ProductSource
	reviewRepo repository.ReviewRepository
	reviews    *ReviewUseCase
}

func NewDetailUseCase(
	source repository.ProductSource,
	reviewRepo repository.ReviewRepository,
	reviews *ReviewUseCase,
) *DetailUseCase {
	return &DetailUseCase{
		source:     source,
		reviewRepo: reviewRepo,
		reviews:    reviews,
	}
}

type ProductDetail struct {
	Product *entity.Product `json:"product"`
	Reviews []entity.Review `json:"reviews"`
}

// GetProductDetail fetches the product and its independent reviews, merges
// both review sources and applies the requested sort keys.
func (uc *DetailUseCase) GetProductDetail(ctx context.Context, id, dateSort, ratingSort string) (*ProductDetail, error) {
	product, err := uc.source.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	independent, err := uc.reviewRepo.ListByProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	display := MergeReviews(id, product.Reviews, independent)
	SortReviews(display, dateSort, ratingSort)

	// Embedded reviews already appear in the merged list.
	view := *product
	view.Reviews = nil

	return &ProductDetail{Product: &view, Reviews: display}, nil
}

// NewSession creates a detail session holding a mutable display list for a
// long-lived consumer.
func (uc *DetailUseCase) NewSession() *DetailSession {
	return &DetailSession{uc: uc}
}

// DetailSession owns the display list for one consumer. Every Load carries
// a generation number; a fetch that resolves after a newer Load was issued
// is discarded instead of overwriting fresher state. All mutations address
// reviews by their stable key, never by display position.
type DetailSession struct {
	uc *DetailUseCase

	mu        sync.Mutex
	gen       uint64
	productID string
	product   *entity.Product
	display   []entity.Review
}

func (s *DetailSession) Load(ctx context.Context, productID string) (*ProductDetail, error) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	detail, err := s.uc.GetProductDetail(ctx, productID, "", "")

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}

	s.productID = productID
	s.product = detail.Product
	s.display = detail.Reviews

	return detail, nil
}

// Sort reorders the current display list cumulatively and returns a copy.
func (s *DetailSession) Sort(dateSort, ratingSort string) []entity.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	SortReviews(s.display, dateSort, ratingSort)
	return append([]entity.Review(nil), s.display...)
}

func (s *DetailSession) Reviews() []entity.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Review(nil), s.display...)
}

func (s *DetailSession) Submit(ctx context.Context, input SubmitReviewInput) (*entity.Review, error) {
	s.mu.Lock()
	if input.ProductID == "" {
		input.ProductID = s.productID
	}
	s.mu.Unlock()

	review, err := s.uc.reviews.Submit(ctx, input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.display = append([]entity.Review{*review}, s.display...)

	return review, nil
}

func (s *DetailSession) Edit(ctx context.Context, reviewID string, input EditReviewInput) (*entity.Review, error) {
	if err := s.rejectEmbedded(reviewID, "edited"); err != nil {
		return nil, err
	}

	review, err := s.uc.reviews.Edit(ctx, reviewID, input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexOf(reviewID); idx >= 0 {
		s.display[idx] = *review
	}

	return review, nil
}

func (s *DetailSession) Delete(ctx context.Context, reviewID string) error {
	if err := s.rejectEmbedded(reviewID, "deleted"); err != nil {
		return err
	}

	if err := s.uc.reviews.Delete(ctx, reviewID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexOf(reviewID); idx >= 0 {
		s.display = append(s.display[:idx], s.display[idx+1:]...)
	}

	return nil
}

// rejectEmbedded refuses mutations on reviews that only exist inside the
// product record; those have no backing document to persist to.
func (s *DetailSession) rejectEmbedded(reviewID, verb string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.indexOf(reviewID); idx >= 0 && s.display[idx].Source == entity.ReviewSourceEmbedded {
		return errors.BadRequest("Embedded reviews cannot be "+verb, nil)
	}
	return nil
}

func (s *DetailSession) indexOf(reviewID string) int {
	for i := range s.display {
		if s.display[i].ID == reviewID {
			return i
		}
	}
	return -1
}
