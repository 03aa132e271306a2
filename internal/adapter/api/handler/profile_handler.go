package handler

import (
	"linkup/internal/adapter/api/middleware"
	"linkup/internal/usecase"
	"linkup/pkg/response"

	"github.com/labstack/echo/v4"
)

type ProfileHandler struct {
	profileUseCase *usecase.ProfileUseCase
}

func NewProfileHandler(profileUseCase *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	nickname := c.Param("nickname")
	principal := middleware.PrincipalFromContext(c)

	profile, err := h.profileUseCase.GetProfileByNickname(c.Request().Context(), nickname, principal)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}
