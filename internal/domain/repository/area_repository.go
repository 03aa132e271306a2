package repository

import (
	"context"

	"linkup/internal/domain/entity"
)

type AreaRepository interface {
	// GetByID returns (nil, nil) when the area does not exist; callers treat
	// absence as a degraded display field, never a failure.
	GetByID(ctx context.Context, areaID int) (*entity.Area, error)

	// GetSigungu looks up a sub-region by the composite (area code, sigungu
	// code) key. Returns (nil, nil) when there is no match.
	GetSigungu(ctx context.Context, areaCode int, sigunguCode string) (*entity.Sigungu, error)
}
