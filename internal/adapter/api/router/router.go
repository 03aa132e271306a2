package router

import (
	"linkup/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupProfileRouter(e, authMiddleware)
	SetupMatchingRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
