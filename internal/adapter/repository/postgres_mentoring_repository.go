package repository

import (
	"context"
	stderrors "errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"linkup/internal/domain/entity"
	"linkup/internal/domain/projection"
	"linkup/internal/domain/repository"
)

type postgresMentoringRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMentoringRepository(db *pgxpool.Pool) repository.MentoringRepository {
	return &postgresMentoringRepository{db: db}
}

func (r *postgresMentoringRepository) GetStatistics(ctx context.Context, mentorUserID string) (*entity.MentorStatisticsView, error) {
	var (
		view   entity.MentorStatisticsView
		rating float64
	)
	err := r.db.QueryRow(ctx, `
		SELECT mentor_user_id, total_sessions, ongoing_sessions, average_rating::float8
		FROM mentor_statistics_view
		WHERE mentor_user_id = $1
	`, mentorUserID).Scan(&view.MentorUserID, &view.TotalSessions, &view.OngoingSessions, &rating)
	if err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	view.AverageRating = decimal.NewFromFloat(rating)
	return &view, nil
}

// Interest count rows: interest, session count.
func (r *postgresMentoringRepository) CountByInterest(ctx context.Context, mentorUserID string) ([]projection.Row, error) {
	rows, err := r.db.Query(ctx, `
		SELECT interest, COUNT(*)::bigint
		FROM mentoring_sessions
		WHERE mentor_user_id = $1
		GROUP BY interest
	`, mentorUserID)
	if err != nil {
		return nil, err
	}
	return collectRows(rows)
}

type postgresMatchingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMatchingRepository(db *pgxpool.Pool) repository.MatchingRepository {
	return &postgresMatchingRepository{db: db}
}

func (r *postgresMatchingRepository) FindOngoing(ctx context.Context, mentorID string, limit int) ([]entity.OngoingMatching, error) {
	rows, err := r.db.Query(ctx, `
		SELECT m.id, u.nickname, u.profile_image_url, m.interest, m.started_at, m.status
		FROM mentoring_matchings m
		JOIN users u ON u.id = m.mentee_user_id
		WHERE m.mentor_user_id = $1 AND m.status = 'ONGOING'
		ORDER BY m.started_at DESC
		LIMIT $2
	`, mentorID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matchings []entity.OngoingMatching
	for rows.Next() {
		var m entity.OngoingMatching
		if err := rows.Scan(
			&m.MatchingID,
			&m.MenteeNickname,
			&m.MenteeProfileImageURL,
			&m.Interest,
			&m.StartedAt,
			&m.Status,
		); err != nil {
			return nil, err
		}
		matchings = append(matchings, m)
	}
	return matchings, rows.Err()
}
