package handler

import (
	"strconv"

	"linkup/internal/adapter/api/middleware"
	"linkup/internal/usecase"
	"linkup/pkg/response"

	"github.com/labstack/echo/v4"
)

type MatchingHandler struct {
	mentorUseCase *usecase.MentorUseCase
}

func NewMatchingHandler(mentorUseCase *usecase.MentorUseCase) *MatchingHandler {
	return &MatchingHandler{
		mentorUseCase: mentorUseCase,
	}
}

func (h *MatchingHandler) GetMatchingPage(c echo.Context) error {
	principal := middleware.PrincipalFromContext(c)

	page, err := h.mentorUseCase.GetMatchingPageByPrincipal(c.Request().Context(), principal)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, page)
}

func (h *MatchingHandler) GetMentoringStats(c echo.Context) error {
	mentorID := c.Param("mentorId")

	stats, err := h.mentorUseCase.GetMentoringStats(c.Request().Context(), mentorID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}

func (h *MatchingHandler) GetCommunityTalents(c echo.Context) error {
	nickname := c.Param("nickname")

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 || limit > 20 {
		limit = 4
	}

	talents, err := h.mentorUseCase.GetCommunityTalents(c.Request().Context(), nickname, limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, talents)
}
