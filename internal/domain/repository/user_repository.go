package repository

import (
	"context"

	"linkup/internal/domain/entity"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByNickname(ctx context.Context, nickname string) (*entity.User, error)
	GetByProvider(ctx context.Context, provider, providerID string) (*entity.User, error)

	// FindUserIDByNickname returns the internal id for a nickname, or ""
	// when no user matches. Absence is a valid answer, not an error.
	FindUserIDByNickname(ctx context.Context, nickname string) (string, error)
}
