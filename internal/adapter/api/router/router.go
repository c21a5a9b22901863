package router

import (
	"storefront/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupProductRouter(e, authMiddleware)
	SetupReviewRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
