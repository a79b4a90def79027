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

type AdminRepository struct {
	pool *pgxpool.Pool
}

func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

func (r *AdminRepository) Create(a *entity.Admin) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO admins (username, password_hash, email, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, a.Username, a.Password, a.Email, string(a.Role))

	return mapError(row.Scan(&a.ID, &a.CreatedAt))
}

func (r *AdminRepository) GetByID(id string) (*entity.Admin, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrNotFound
	}
	return r.getByField("id", id)
}

func (r *AdminRepository) GetByUsername(username string) (*entity.Admin, error) {
	return r.getByField("username", username)
}

func (r *AdminRepository) getByField(field, value string) (*entity.Admin, error) {
	ctx := context.Background()
	a := &entity.Admin{}
	var role string

	row := r.pool.QueryRow(ctx, `
		SELECT id, username, password_hash, email, role, created_at, last_login
		FROM admins
		WHERE `+field+` = $1
	`, value)

	if err := row.Scan(&a.ID, &a.Username, &a.Password, &a.Email, &role,
		&a.CreatedAt, &a.LastLogin); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	a.Role = entity.AdminRole(role)

	return a, nil
}

func (r *AdminRepository) TouchLastLogin(id string, at time.Time) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `
		UPDATE admins SET last_login = $1 WHERE id = $2
	`, at, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.AdminRepository = (*AdminRepository)(nil)
