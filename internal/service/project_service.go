package service

import (
	"context"

	"github.com/lumenworks/backend/internal/model"
)

// ProjectService defines the business logic for portfolio projects. It is
// the sole mutator of the projects store.
type ProjectService interface {
	// List returns projects newest-first. limit <= 0 returns all.
	List(ctx context.Context, limit int) ([]*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, p *model.Project) error
	Update(ctx context.Context, p *model.Project) error
	Delete(ctx context.Context, id string) error
}
