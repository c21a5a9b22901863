package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	apperrors "storefront/pkg/errors"
)

func newDetailFixture(products map[string]*entity.Product, reviews []entity.Review) (*DetailUseCase, *fakeReviewRepo) {
	var list []*entity.Product
	for _, product := range products {
		list = append(list, product)
	}
	productRepo := &fakeProductRepo{products: list}
	reviewRepo := &fakeReviewRepo{reviews: reviews}
	reviewUC := NewReviewUseCase(reviewRepo)
	return NewDetailUseCase(productRepo, reviewRepo, reviewUC), reviewRepo
}

func TestGetProductDetailMergesBothSources(t *testing.T) {
	now := time.Now()
	uc, _ := newDetailFixture(
		map[string]*entity.Product{
			"p1": {
				ID:    "p1",
				Title: "Wireless Mouse",
				Reviews: []entity.Review{
					{Author: "seed@example.com", Rating: 4, Comment: "solid", CreatedAt: now},
				},
			},
		},
		[]entity.Review{
			{ID: "r1", ProductID: "p1", Author: "a@example.com", Rating: 5, CreatedAt: now},
			{ID: "x1", ProductID: "other", Author: "b@example.com", Rating: 1, CreatedAt: now},
		},
	)

	detail, err := uc.GetProductDetail(context.Background(), "p1", "", "")
	require.NoError(t, err)

	require.Len(t, detail.Reviews, 2)
	assert.Equal(t, entity.ReviewSourceEmbedded, detail.Reviews[0].Source)
	assert.Equal(t, "r1", detail.Reviews[1].ID)
	assert.Nil(t, detail.Product.Reviews)
}

func TestGetProductDetailNotFound(t *testing.T) {
	uc, _ := newDetailFixture(map[string]*entity.Product{}, nil)

	_, err := uc.GetProductDetail(context.Background(), "missing", "", "")
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}

func TestGetProductDetailAppliesSortKeys(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	uc, _ := newDetailFixture(
		map[string]*entity.Product{"p1": {ID: "p1"}},
		[]entity.Review{
			{ID: "old", ProductID: "p1", Rating: 5, CreatedAt: base},
			{ID: "new", ProductID: "p1", Rating: 3, CreatedAt: base.Add(time.Hour)},
		},
	)

	detail, err := uc.GetProductDetail(context.Background(), "p1", DateSortNewest, "")
	require.NoError(t, err)
	assert.Equal(t, "new", detail.Reviews[0].ID)

	detail, err = uc.GetProductDetail(context.Background(), "p1", DateSortNewest, RatingSortHigh)
	require.NoError(t, err)
	assert.Equal(t, "old", detail.Reviews[0].ID)
}

func TestSessionDiscardsStaleLoad(t *testing.T) {
	source := &slowSource{
		products: map[string]*entity.Product{
			"p1": {ID: "p1", Title: "First"},
			"p2": {ID: "p2", Title: "Second"},
		},
		slow:    map[string]bool{"p1": true},
		started: make(chan string, 1),
		gate:    make(chan struct{}),
	}
	reviewRepo := &fakeReviewRepo{}
	uc := NewDetailUseCase(source, reviewRepo, NewReviewUseCase(reviewRepo))
	session := uc.NewSession()

	staleErr := make(chan error, 1)
	go func() {
		_, err := session.Load(context.Background(), "p1")
		staleErr <- err
	}()

	// Wait for the first load to be in flight, then navigate away.
	<-source.started
	detail, err := session.Load(context.Background(), "p2")
	require.NoError(t, err)
	assert.Equal(t, "p2", detail.Product.ID)

	close(source.gate)
	assert.ErrorIs(t, <-staleErr, ErrSuperseded)
}

func TestSessionSubmitPrependsAndPersists(t *testing.T) {
	uc, reviewRepo := newDetailFixture(
		map[string]*entity.Product{"p1": {ID: "p1"}},
		[]entity.Review{{ID: "r1", ProductID: "p1", Rating: 2, CreatedAt: time.Now()}},
	)
	session := uc.NewSession()

	_, err := session.Load(context.Background(), "p1")
	require.NoError(t, err)

	review, err := session.Submit(context.Background(), SubmitReviewInput{
		Author:  "a@example.com",
		Rating:  4.5,
		Comment: "nice",
	})
	require.NoError(t, err)
	assert.Equal(t, 4.5, review.Rating)
	assert.Equal(t, "p1", review.ProductID)

	display := session.Reviews()
	require.Len(t, display, 2)
	assert.Equal(t, review.ID, display[0].ID)

	persisted, err := reviewRepo.GetByID(context.Background(), review.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, persisted.Rating)
}

func TestSessionDeleteRemovesExactlyOne(t *testing.T) {
	now := time.Now()
	uc, _ := newDetailFixture(
		map[string]*entity.Product{"p1": {ID: "p1"}},
		[]entity.Review{
			{ID: "r1", ProductID: "p1", CreatedAt: now},
			{ID: "r2", ProductID: "p1", CreatedAt: now},
			{ID: "r3", ProductID: "p1", CreatedAt: now},
		},
	)
	session := uc.NewSession()

	_, err := session.Load(context.Background(), "p1")
	require.NoError(t, err)

	before := session.Reviews()
	require.NoError(t, session.Delete(context.Background(), before[0].ID))

	after := session.Reviews()
	require.Len(t, after, len(before)-1)
	assert.Equal(t, before[1].ID, after[0].ID)
	assert.Equal(t, before[2].ID, after[1].ID)
}

func TestSessionEditUpdatesDisplayAndStore(t *testing.T) {
	uc, reviewRepo := newDetailFixture(
		map[string]*entity.Product{"p1": {ID: "p1"}},
		[]entity.Review{{ID: "r1", ProductID: "p1", Author: "a@example.com", Rating: 2, Comment: "meh", CreatedAt: time.Now()}},
	)
	session := uc.NewSession()

	_, err := session.Load(context.Background(), "p1")
	require.NoError(t, err)

	review, err := session.Edit(context.Background(), "r1", EditReviewInput{
		Author:  "a@example.com",
		Rating:  5,
		Comment: "actually great",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(5), review.Rating)

	display := session.Reviews()
	assert.Equal(t, "actually great", display[0].Comment)

	persisted, err := reviewRepo.GetByID(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "actually great", persisted.Comment)
}

func TestSessionRejectsEmbeddedMutation(t *testing.T) {
	uc, _ := newDetailFixture(
		map[string]*entity.Product{
			"p1": {
				ID:      "p1",
				Reviews: []entity.Review{{Author: "seed@example.com", Rating: 4, CreatedAt: time.Now()}},
			},
		},
		nil,
	)
	session := uc.NewSession()

	_, err := session.Load(context.Background(), "p1")
	require.NoError(t, err)

	embeddedID := session.Reviews()[0].ID

	_, err = session.Edit(context.Background(), embeddedID, EditReviewInput{Rating: 3})
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))

	err = session.Delete(context.Background(), embeddedID)
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
	assert.Len(t, session.Reviews(), 1)
}

func TestSessionEditUnknownKeyIsNotFound(t *testing.T) {
	uc, _ := newDetailFixture(map[string]*entity.Product{"p1": {ID: "p1"}}, nil)
	session := uc.NewSession()

	_, err := session.Load(context.Background(), "p1")
	require.NoError(t, err)

	_, err = session.Edit(context.Background(), "ghost", EditReviewInput{Rating: 3})
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}
