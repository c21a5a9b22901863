package router

import (
	"storefront/internal/adapter/api/handler"
	"storefront/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	productHandler := handler.GetProductHandler()

	// The listing endpoint is public.
	e.GET("/v1/products", productHandler.ListProducts)

	// The detail view is gated behind sign-in.
	detail := e.Group("/v1/products")
	detail.Use(authMiddleware.Authenticate)
	detail.GET("/:id", productHandler.GetProduct)
}
