package router

import (
	"storefront/internal/adapter/api/handler"
	"storefront/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	authenticated := e.Group("")
	authenticated.Use(authMiddleware.Authenticate)

	authenticated.POST("/v1/products/:id/reviews", reviewHandler.CreateReview)
	authenticated.PUT("/v1/reviews/:id", reviewHandler.UpdateReview)
	authenticated.DELETE("/v1/reviews/:id", reviewHandler.DeleteReview)
}
