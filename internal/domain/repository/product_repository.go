package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductSource fetches a single product by ID. Two interchangeable
// implementations exist: the Firestore repository and the remote HTTP API
// adapter. Callers treat both failure and not-found as terminal for the
// current fetch cycle; neither implementation retries.
type ProductSource interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
}

type ProductRepository interface {
	ProductSource
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	ListAll(ctx context.Context) ([]*entity.Product, error)
}
