package service

import (
	"context"

	"github.com/lumenworks/backend/internal/model"
	"github.com/lumenworks/backend/internal/repository"
)

// projectServiceImpl is the production implementation of ProjectService.
type projectServiceImpl struct {
	repo repository.ProjectRepository
}

// NewProjectService creates a ProjectService backed by the given repository.
func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectServiceImpl{repo: repo}
}

func (s *projectServiceImpl) List(ctx context.Context, limit int) ([]*model.Project, error) {
	return s.repo.List(ctx, limit)
}

func (s *projectServiceImpl) GetByID(ctx context.Context, id string) (*model.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *projectServiceImpl) Create(ctx context.Context, p *model.Project) error {
	p.ApplyDefaults()
	if err := p.Validate(); err != nil {
		return err
	}
	return s.repo.Create(ctx, p)
}

// Update validates the merged record with the same rules as Create. Writes
// are last-writer-wins: there is no version check, a concurrent update is
// simply overwritten.
func (s *projectServiceImpl) Update(ctx context.Context, p *model.Project) error {
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	if err := p.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, p)
}

func (s *projectServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
