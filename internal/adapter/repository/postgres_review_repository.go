package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"linkup/internal/domain/projection"
	"linkup/internal/domain/repository"
)

type postgresReviewRepository struct {
	db *pgxpool.Pool
}

func NewPostgresReviewRepository(db *pgxpool.Pool) repository.ReviewRepository {
	return &postgresReviewRepository{db: db}
}

// Review rows: reviewer name, reviewer profile image, created_at, star,
// content.
func (r *postgresReviewRepository) FindReceivedReviews(ctx context.Context, mentorID string, limit int) ([]projection.Row, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.name, u.profile_image_url, rv.created_at, rv.star::float8, rv.content
		FROM reviews rv
		JOIN users u ON u.id = rv.reviewer_id
		WHERE rv.mentor_id = $1
		ORDER BY rv.created_at DESC
		LIMIT $2
	`, mentorID, limit)
	if err != nil {
		return nil, err
	}
	return collectRows(rows)
}
