package repository

import (
	"context"
	stderrors "errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"linkup/internal/domain/entity"
	"linkup/internal/domain/repository"
)

type postgresAreaRepository struct {
	db *pgxpool.Pool
}

func NewPostgresAreaRepository(db *pgxpool.Pool) repository.AreaRepository {
	return &postgresAreaRepository{db: db}
}

func (r *postgresAreaRepository) GetByID(ctx context.Context, areaID int) (*entity.Area, error) {
	var a entity.Area
	err := r.db.QueryRow(ctx,
		`SELECT id, area_code, area_name FROM areas WHERE id = $1`,
		areaID).Scan(&a.ID, &a.AreaCode, &a.AreaName)
	if err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *postgresAreaRepository) GetSigungu(ctx context.Context, areaCode int, sigunguCode string) (*entity.Sigungu, error) {
	var s entity.Sigungu
	err := r.db.QueryRow(ctx,
		`SELECT area_code, sigungu_code, sigungu_name FROM sigungus WHERE area_code = $1 AND sigungu_code = $2`,
		areaCode, sigunguCode).Scan(&s.AreaCode, &s.SigunguCode, &s.SigunguName)
	if err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
