package repository

import (
	"context"

	"linkup/internal/domain/projection"
)

type ReviewRepository interface {
	// FindReceivedReviews returns the mentor's most recent received reviews
	// as positional rows, newest first.
	FindReceivedReviews(ctx context.Context, mentorID string, limit int) ([]projection.Row, error)
}
