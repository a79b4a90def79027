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

type PortfolioRepository struct {
	pool *pgxpool.Pool
}

func NewPortfolioRepository(pool *pgxpool.Pool) *PortfolioRepository {
	return &PortfolioRepository{pool: pool}
}

func (r *PortfolioRepository) Create(p *entity.PortfolioItem) error {
	ctx := context.Background()
	if p.Tags == nil {
		p.Tags = []string{}
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO portfolio_items (title, description, category, image_url, tags)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_active, created_at, updated_at
	`, p.Title, p.Description, string(p.Category), p.ImageURL, p.Tags)

	return mapError(row.Scan(&p.ID, &p.IsActive, &p.CreatedAt, &p.UpdatedAt))
}

func (r *PortfolioRepository) List(activeOnly bool) ([]*entity.PortfolioItem, error) {
	ctx := context.Background()
	q := `
		SELECT id, title, description, category, image_url, tags, is_active, created_at, updated_at
		FROM portfolio_items
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

	var items []*entity.PortfolioItem
	for rows.Next() {
		p := &entity.PortfolioItem{}
		var category string
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &category, &p.ImageURL,
			&p.Tags, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.Category = entity.PortfolioCategory(category)
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *PortfolioRepository) Update(p *entity.PortfolioItem) error {
	if _, err := uuid.Parse(p.ID); err != nil {
		return repository.ErrNotFound
	}
	ctx := context.Background()
	p.UpdatedAt = time.Now()
	if p.Tags == nil {
		p.Tags = []string{}
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE portfolio_items
		SET title = $1, description = $2, category = $3, image_url = $4,
		    tags = $5, is_active = $6, updated_at = $7
		WHERE id = $8
		RETURNING created_at
	`, p.Title, p.Description, string(p.Category), p.ImageURL, p.Tags,
		p.IsActive, p.UpdatedAt, p.ID)

	if err := row.Scan(&p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return mapError(err)
	}
	return nil
}

func (r *PortfolioRepository) Delete(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return repository.ErrNotFound
	}
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `DELETE FROM portfolio_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PortfolioRepository) Count() (int64, error) {
	ctx := context.Background()
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM portfolio_items`).Scan(&n)
	return n, err
}

var _ repository.PortfolioRepository = (*PortfolioRepository)(nil)
