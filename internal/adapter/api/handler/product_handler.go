package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
	"storefront/pkg/logger"
	"storefront/pkg/response"
	"storefront/pkg/utils"
)

type ProductHandler struct {
	catalogUseCase *usecase.CatalogUseCase
	detailUseCase  *usecase.DetailUseCase
}

func NewProductHandler(catalogUseCase *usecase.CatalogUseCase, detailUseCase *usecase.DetailUseCase) *ProductHandler {
	return &ProductHandler{
		catalogUseCase: catalogUseCase,
		detailUseCase:  detailUseCase,
	}
}

type listProductsResponse struct {
	Products []*entity.Product `json:"products"`
	Total    int64             `json:"total"`
}

// ListProducts handles GET /v1/products. The response shape is the bare
// {products, total} pair; any store failure collapses to a generic 500
// without detail leakage.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	result, err := h.catalogUseCase.Search(c.Request().Context(), usecase.SearchParams{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Sort:     c.QueryParam("sort"),
		Page:     pagination.Page,
		Limit:    pagination.PageSize,
	})
	if err != nil {
		logger.Error("Product search failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Error fetching products",
		})
	}

	products := result.Products
	if products == nil {
		products = []*entity.Product{}
	}

	return c.JSON(http.StatusOK, listProductsResponse{
		Products: products,
		Total:    result.Total,
	})
}

// GetProduct handles GET /v1/products/:id. The dateSort and ratingSort
// query parameters order the merged review list.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id := c.Param("id")

	detail, err := h.detailUseCase.GetProductDetail(
		c.Request().Context(),
		id,
		c.QueryParam("dateSort"),
		c.QueryParam("ratingSort"),
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, detail)
}
