package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront/internal/domain/entity"
	"storefront/pkg/errors"
)

type fakeProductRepo struct {
	mu       sync.Mutex
	products []*entity.Product
	err      error
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, product := range r.products {
		if product.ID == id {
			cp := *product
			return &cp, nil
		}
	}
	return nil, errors.NotFound("Product", nil)
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	cp := *product
	r.products = append(r.products, &cp)
	return nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.products {
		if existing.ID == product.ID {
			cp := *product
			r.products[i] = &cp
			return nil
		}
	}
	return errors.NotFound("Product", nil)
}

func (r *fakeProductRepo) ListAll(ctx context.Context) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*entity.Product, len(r.products))
	for i, product := range r.products {
		cp := *product
		out[i] = &cp
	}
	return out, nil
}

type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews []entity.Review
	err     error
}

func (r *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	now := time.Now()
	if review.CreatedAt.IsZero() {
		review.CreatedAt = now
	}
	review.UpdatedAt = now
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *fakeReviewRepo) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, review := range r.reviews {
		if review.ID == id {
			cp := review
			return &cp, nil
		}
	}
	return nil, errors.NotFound("Review", nil)
}

func (r *fakeReviewRepo) ListByProduct(ctx context.Context, productID string) ([]entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []entity.Review
	for _, review := range r.reviews {
		if review.ProductID == productID {
			out = append(out, review)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) Update(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.reviews {
		if r.reviews[i].ID == review.ID {
			review.UpdatedAt = time.Now()
			r.reviews[i] = *review
			return nil
		}
	}
	return errors.NotFound("Review", nil)
}

func (r *fakeReviewRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.reviews {
		if r.reviews[i].ID == id {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return nil
		}
	}
	return errors.NotFound("Review", nil)
}

// slowSource blocks configured product IDs until the gate opens, so tests
// can interleave two in-flight loads deterministically.
type slowSource struct {
	products map[string]*entity.Product
	slow     map[string]bool
	started  chan string
	gate     chan struct{}
}

func (s *slowSource) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if s.slow[id] {
		s.started <- id
		<-s.gate
	}
	product, ok := s.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	cp := *product
	return &cp, nil
}
