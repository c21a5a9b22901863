package handler

import (
	"github.com/labstack/echo/v4"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
	"storefront/pkg/errors"
	"storefront/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type reviewRequest struct {
	Author  string        `json:"author" validate:"required"`
	Rating  entity.Rating `json:"rating"`
	Comment string        `json:"comment" validate:"required"`
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	productID := c.Param("id")
	if productID == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.Submit(c.Request().Context(), usecase.SubmitReviewInput{
		ProductID: productID,
		Author:    req.Author,
		Rating:    float64(req.Rating),
		Comment:   req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	reviewID := c.Param("id")

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.Edit(c.Request().Context(), reviewID, usecase.EditReviewInput{
		Author:  req.Author,
		Rating:  float64(req.Rating),
		Comment: req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review)
}

func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	reviewID := c.Param("id")

	if err := h.reviewUseCase.Delete(c.Request().Context(), reviewID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Review deleted",
	})
}
