package handler

import (
	"linkup/internal/usecase"
	"linkup/pkg/response"
	"linkup/pkg/utils"

	"github.com/labstack/echo/v4"
)

type ActivityHandler struct {
	activityUseCase *usecase.ActivityUseCase
}

func NewActivityHandler(activityUseCase *usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{
		activityUseCase: activityUseCase,
	}
}

func (h *ActivityHandler) GetActivitySummary(c echo.Context) error {
	nickname := c.Param("nickname")

	summary, err := h.activityUseCase.GetActivitySummary(c.Request().Context(), nickname)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, summary)
}

func (h *ActivityHandler) GetPosts(c echo.Context) error {
	nickname := c.Param("nickname")
	params := utils.GetPaginationParams(c)

	posts, total, err := h.activityUseCase.GetPostsPaged(c.Request().Context(), nickname, params.Page, params.Size)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, posts, total, params.Page, params.Size)
}

func (h *ActivityHandler) GetComments(c echo.Context) error {
	nickname := c.Param("nickname")
	params := utils.GetPaginationParams(c)

	comments, total, err := h.activityUseCase.GetCommentsPaged(c.Request().Context(), nickname, params.Page, params.Size)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, comments, total, params.Page, params.Size)
}
