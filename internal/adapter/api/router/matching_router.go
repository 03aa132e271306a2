package router

import (
	"linkup/internal/adapter/api/handler"
	"linkup/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupMatchingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	matchingHandler := handler.GetMatchingHandler()

	mentors := e.Group("/v1/mentors")

	mentors.GET("/me/matching", matchingHandler.GetMatchingPage, authMiddleware.Authenticate)
	mentors.GET("/:mentorId/stats", matchingHandler.GetMentoringStats)
}
