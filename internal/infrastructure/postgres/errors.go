package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/souravverma/portfolio-backend/internal/domain/repository"
)

const uniqueViolation = "23505"

// mapError translates pgx errors into repository sentinels.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return repository.ErrConflict
	}
	return err
}
