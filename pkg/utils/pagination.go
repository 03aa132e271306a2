package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// PaginationParams represents pagination parameters. Page is zero-based;
// the paged activity queries use (page, size) directly.
type PaginationParams struct {
	Page int
	Size int
}

// GetPaginationParams extracts pagination parameters from request
func GetPaginationParams(c echo.Context) PaginationParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))

	if page < 0 {
		page = 0
	}

	if size <= 0 || size > 100 {
		size = 10 // Default page size
	}

	return PaginationParams{
		Page: page,
		Size: size,
	}
}
