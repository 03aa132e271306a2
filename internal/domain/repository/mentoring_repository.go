package repository

import (
	"context"

	"linkup/internal/domain/entity"
	"linkup/internal/domain/projection"
)

type MentoringRepository interface {
	// GetStatistics returns the pre-aggregated statistics record for a
	// mentor, or (nil, nil) when no record exists. A zero-session mentor has
	// a record with zero values.
	GetStatistics(ctx context.Context, mentorUserID string) (*entity.MentorStatisticsView, error)

	// CountByInterest returns (interest, count) rows for the mentor's
	// completed sessions.
	CountByInterest(ctx context.Context, mentorUserID string) ([]projection.Row, error)
}

type MatchingRepository interface {
	FindOngoing(ctx context.Context, mentorID string, limit int) ([]entity.OngoingMatching, error)
}
