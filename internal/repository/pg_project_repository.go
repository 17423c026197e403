package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lumenworks/backend/internal/model"
)

// PgProjectRepository is the PostgreSQL implementation of ProjectRepository.
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository creates a PgProjectRepository backed by the given pool.
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

const projectColumns = `id, title, description, category, COALESCE(image, ''),
	technologies, COALESCE(link, ''), status, created_at, updated_at`

func scanProject(row pgx.Row) (*model.Project, error) {
	var p model.Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.Image,
		&p.Technologies, &p.Link, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	return &p, nil
}

// List returns projects newest-first. limit <= 0 returns all rows.
func (r *PgProjectRepository) List(ctx context.Context, limit int) ([]*model.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC`
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

	projects := []*model.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *PgProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	p, err := scanProject(r.pool.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

// Create inserts a new projects row and populates p.ID and timestamps from
// the RETURNING clause. technologies is text[]; its element order is kept.
func (r *PgProjectRepository) Create(ctx context.Context, p *model.Project) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO projects (title, description, category, image, technologies, link, status)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), $7)
		 RETURNING id, created_at, updated_at`,
		p.Title, p.Description, p.Category, p.Image, p.Technologies, p.Link, p.Status,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// Update replaces every mutable column of the row and refreshes updated_at.
func (r *PgProjectRepository) Update(ctx context.Context, p *model.Project) error {
	if err := checkID(p.ID); err != nil {
		return err
	}
	err := r.pool.QueryRow(ctx,
		`UPDATE projects
		 SET title = $1, description = $2, category = $3, image = NULLIF($4, ''),
		     technologies = $5, link = NULLIF($6, ''), status = $7, updated_at = NOW()
		 WHERE id = $8
		 RETURNING updated_at`,
		p.Title, p.Description, p.Category, p.Image, p.Technologies, p.Link, p.Status, p.ID,
	).Scan(&p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *PgProjectRepository) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
