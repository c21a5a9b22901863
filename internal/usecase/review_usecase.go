package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/pkg/errors"
)

type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewUseCase(reviewRepo repository.ReviewRepository) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
	}
}

type SubmitReviewInput struct {
	ProductID string
	Author    string
	Rating    float64
	Comment   string
}

type EditReviewInput struct {
	Author  string
	Rating  float64
	Comment string
}

// Submit persists a new independent review. The result is explicit: a
// failed write is an error the caller sees, never a silent drop.
func (uc *ReviewUseCase) Submit(ctx context.Context, input SubmitReviewInput) (*entity.Review, error) {
	if err := entity.ValidateRating(input.Rating); err != nil {
		return nil, errors.BadRequest(err.Error(), err)
	}

	review := &entity.Review{
		ProductID: input.ProductID,
		Author:    input.Author,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Source:    entity.ReviewSourceStore,
		CreatedAt: time.Now(),
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// Edit replaces a review's author, rating and comment, addressed by its
// stable key. The change is persisted, not applied to a client-side copy.
func (uc *ReviewUseCase) Edit(ctx context.Context, reviewID string, input EditReviewInput) (*entity.Review, error) {
	if err := entity.ValidateRating(input.Rating); err != nil {
		return nil, errors.BadRequest(err.Error(), err)
	}

	review, err := uc.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	review.Author = input.Author
	review.Rating = input.Rating
	review.Comment = input.Comment

	if err := uc.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	review.Source = entity.ReviewSourceStore
	return review, nil
}

func (uc *ReviewUseCase) Delete(ctx context.Context, reviewID string) error {
	if _, err := uc.reviewRepo.GetByID(ctx, reviewID); err != nil {
		return err
	}

	return uc.reviewRepo.Delete(ctx, reviewID)
}
