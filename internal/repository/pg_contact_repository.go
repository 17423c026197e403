package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lumenworks/backend/internal/model"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

var _ ContactRepository = (*PgContactRepository)(nil)

const contactColumns = `id, full_name, COALESCE(company_name, ''), email,
	COALESCE(project_type, ''), message, status, created_at, updated_at`

func scanContact(row pgx.Row) (*model.Contact, error) {
	var c model.Contact
	err := row.Scan(&c.ID, &c.FullName, &c.CompanyName, &c.Email,
		&c.ProjectType, &c.Message, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns contacts newest-first. limit <= 0 returns all rows.
func (r *PgContactRepository) List(ctx context.Context, limit int) ([]*model.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts ORDER BY created_at DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := []*model.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (r *PgContactRepository) GetByID(ctx context.Context, id string) (*model.Contact, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	c, err := scanContact(r.pool.QueryRow(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return c, err
}

// Create inserts a new contacts row and populates c.ID and timestamps from
// the RETURNING clause.
func (r *PgContactRepository) Create(ctx context.Context, c *model.Contact) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contacts (full_name, company_name, email, project_type, message, status)
		 VALUES ($1, NULLIF($2, ''), $3, NULLIF($4, ''), $5, $6)
		 RETURNING id, created_at, updated_at`,
		c.FullName, c.CompanyName, c.Email, c.ProjectType, c.Message, c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// Update replaces every mutable column of the row and refreshes updated_at.
func (r *PgContactRepository) Update(ctx context.Context, c *model.Contact) error {
	if err := checkID(c.ID); err != nil {
		return err
	}
	err := r.pool.QueryRow(ctx,
		`UPDATE contacts
		 SET full_name = $1, company_name = NULLIF($2, ''), email = $3,
		     project_type = NULLIF($4, ''), message = $5, status = $6, updated_at = NOW()
		 WHERE id = $7
		 RETURNING updated_at`,
		c.FullName, c.CompanyName, c.Email, c.ProjectType, c.Message, c.Status, c.ID,
	).Scan(&c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *PgContactRepository) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
