package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/souravverma/portfolio-backend/internal/domain/entity"
	"github.com/souravverma/portfolio-backend/internal/domain/repository"
)

type ServiceRepository struct {
	pool *pgxpool.Pool
}

func NewServiceRepository(pool *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{pool: pool}
}

func (r *ServiceRepository) Create(s *entity.Service) error {
	ctx := context.Background()
	if s.Features == nil {
		s.Features = []string{}
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO services (name, description, price_inr, features)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_active, created_at, updated_at
	`, s.Name, s.Description, s.PriceINR, s.Features)

	return mapError(row.Scan(&s.ID, &s.IsActive, &s.CreatedAt, &s.UpdatedAt))
}

func (r *ServiceRepository) List(activeOnly bool) ([]*entity.Service, error) {
	ctx := context.Background()
	q := `
		SELECT id, name, description, price_inr, features, is_active, created_at, updated_at
		FROM services
	`
	if activeOnly {
		q += ` WHERE is_active`
	}
	q += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*entity.Service
	for rows.Next() {
		s := &entity.Service{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.PriceINR,
			&s.Features, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func (r *ServiceRepository) Update(s *entity.Service) error {
	if _, err := uuid.Parse(s.ID); err != nil {
		return repository.ErrNotFound
	}
	ctx := context.Background()
	s.UpdatedAt = time.Now()
	if s.Features == nil {
		s.Features = []string{}
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE services
		SET name = $1, description = $2, price_inr = $3, features = $4,
		    is_active = $5, updated_at = $6
		WHERE id = $7
		RETURNING created_at
	`, s.Name, s.Description, s.PriceINR, s.Features, s.IsActive, s.UpdatedAt, s.ID)

	if err := row.Scan(&s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return mapError(err)
	}
	return nil
}

func (r *ServiceRepository) Delete(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return repository.ErrNotFound
	}
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ServiceRepository) Count() (int64, error) {
	ctx := context.Background()
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM services`).Scan(&n)
	return n, err
}

var _ repository.ServiceRepository = (*ServiceRepository)(nil)
