package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/pkg/errors"
)

type httpProductSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPProductSource fetches products from a remote REST API at
// {base}/products/{id}. Interchangeable with the Firestore repository.
func NewHTTPProductSource(baseURL string) repository.ProductSource {
	return &httpProductSource{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *httpProductSource) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	url := fmt.Sprintf("%s/products/%s", s.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Internal("Failed to build product request", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Internal("Failed to fetch product", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.NotFound("Product", nil)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Internal(fmt.Sprintf("Product API returned status %d", resp.StatusCode), nil)
	}

	var product entity.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}
	if product.ID == "" {
		product.ID = id
	}

	return &product, nil
}
