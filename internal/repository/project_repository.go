package repository

import (
	"context"

	"github.com/lumenworks/backend/internal/model"
)

// ProjectRepository defines the persistence interface for portfolio projects.
type ProjectRepository interface {
	// List returns projects newest-first. limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, p *model.Project) error
	Update(ctx context.Context, p *model.Project) error
	Delete(ctx context.Context, id string) error
}
