package repository

import (
	"context"
	stderrors "errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"linkup/internal/domain/entity"
	"linkup/internal/domain/repository"
	"linkup/pkg/errors"
)

type postgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) repository.UserRepository {
	return &postgresUserRepository{db: db}
}

const userColumns = `
	id, provider, provider_id, name, nickname, role, profile_image_url,
	account_disabled, area_id, sigungu_code, introduction, interest,
	activity_time, activity_type, contact_link, match_status, profile_tag,
	created_at, updated_at
`

func (r *postgresUserRepository) scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID,
		&u.Provider,
		&u.ProviderID,
		&u.Name,
		&u.Nickname,
		&u.Role,
		&u.ProfileImageURL,
		&u.AccountDisabled,
		&u.AreaID,
		&u.SigunguCode,
		&u.Introduction,
		&u.Interest,
		&u.ActivityTime,
		&u.ActivityType,
		&u.ContactLink,
		&u.MatchStatus,
		&u.ProfileTag,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *postgresUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := r.scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}
	return user, nil
}

func (r *postgresUserRepository) GetByNickname(ctx context.Context, nickname string) (*entity.User, error) {
	user, err := r.scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE nickname = $1`, nickname))
	if err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}
	return user, nil
}

func (r *postgresUserRepository) GetByProvider(ctx context.Context, provider, providerID string) (*entity.User, error) {
	user, err := r.scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE provider = $1 AND provider_id = $2`,
		provider, providerID))
	if err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}
	return user, nil
}

func (r *postgresUserRepository) FindUserIDByNickname(ctx context.Context, nickname string) (string, error) {
	var id string
	err := r.db.QueryRow(ctx, `SELECT id FROM users WHERE nickname = $1`, nickname).Scan(&id)
	if err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return id, nil
}
