package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/souravverma/portfolio-backend/internal/domain/entity"
	"github.com/souravverma/portfolio-backend/internal/domain/repository"
)

const contactColumns = `id, name, email, COALESCE(phone, ''), service, message, status, created_at`

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) Create(m *entity.Contact) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO contacts (name, email, phone, service, message)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5)
		RETURNING id, status, created_at
	`, m.Name, m.Email, m.Phone, string(m.Service), m.Message)

	var status string
	if err := row.Scan(&m.ID, &status, &m.CreatedAt); err != nil {
		return mapError(err)
	}
	m.Status = entity.ContactStatus(status)
	return nil
}

func (r *ContactRepository) GetByID(id string) (*entity.Contact, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrNotFound
	}
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id)
	return scanContact(row)
}

// List applies the filter and returns the requested page newest first,
// together with the total number of matching rows.
func (r *ContactRepository) List(f repository.ContactFilter) ([]*entity.Contact, int64, error) {
	ctx := context.Background()

	where, args := buildContactWhere(f)

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM contacts`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 10
	}
	page := f.Page
	if page <= 0 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)
	q := fmt.Sprintf(`SELECT %s FROM contacts%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		contactColumns, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]*entity.Contact, 0, limit)
	for rows.Next() {
		m, err := scanContact(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, m)
	}
	return items, total, rows.Err()
}

func (r *ContactRepository) UpdateStatus(id string, status entity.ContactStatus) (*entity.Contact, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrNotFound
	}
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		UPDATE contacts SET status = $1 WHERE id = $2
		RETURNING `+contactColumns+`
	`, string(status), id)

	m, err := scanContact(row)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, mapError(err)
	}
	return m, nil
}

func (r *ContactRepository) Delete(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return repository.ErrNotFound
	}
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ContactRepository) Stats() (*repository.ContactStats, error) {
	ctx := context.Background()
	s := &repository.ContactStats{}

	row := r.pool.QueryRow(ctx, `
		SELECT
			count(*),
			count(*) FILTER (WHERE status = 'new'),
			count(*) FILTER (WHERE status = 'read'),
			count(*) FILTER (WHERE status = 'replied'),
			count(*) FILTER (WHERE created_at >= now() - interval '7 days')
		FROM contacts
	`)
	if err := row.Scan(&s.TotalMessages, &s.NewMessages, &s.ReadMessages,
		&s.RepliedMessages, &s.RecentMessages); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT service, count(*) FROM contacts GROUP BY service ORDER BY count(*) DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var sc repository.ServiceCount
		if err := rows.Scan(&sc.Service, &sc.Count); err != nil {
			return nil, err
		}
		s.MessagesByService = append(s.MessagesByService, sc)
	}
	return s, rows.Err()
}

func buildContactWhere(f repository.ContactFilter) (string, []any) {
	var conds []string
	var args []any

	if f.Status != "" && f.Status != "all" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Service != "" && f.Service != "all" {
		args = append(args, f.Service)
		conds = append(conds, fmt.Sprintf("service = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+escapeLike(f.Search)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d OR message ILIKE $%d)", n, n, n))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// escapeLike neutralizes LIKE metacharacters so user input matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (*entity.Contact, error) {
	m := &entity.Contact{}
	var service, status string
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &service, &m.Message,
		&status, &m.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	m.Service = entity.ContactService(service)
	m.Status = entity.ContactStatus(status)
	return m, nil
}

var _ repository.ContactRepository = (*ContactRepository)(nil)
