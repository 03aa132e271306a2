package router

import (
	"linkup/internal/adapter/api/handler"
	"linkup/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupProfileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	profileHandler := handler.GetProfileHandler()
	activityHandler := handler.GetActivityHandler()
	matchingHandler := handler.GetMatchingHandler()

	profiles := e.Group("/v1/profiles")
	profiles.Use(authMiddleware.OptionalAuthenticate)

	profiles.GET("/:nickname", profileHandler.GetProfile)
	profiles.GET("/:nickname/activity", activityHandler.GetActivitySummary)
	profiles.GET("/:nickname/activity/posts", activityHandler.GetPosts)
	profiles.GET("/:nickname/activity/comments", activityHandler.GetComments)
	profiles.GET("/:nickname/talents", matchingHandler.GetCommunityTalents)
}
