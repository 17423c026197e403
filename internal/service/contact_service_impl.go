package service

import (
	"context"

	"github.com/lumenworks/backend/internal/model"
	"github.com/lumenworks/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

func (s *contactServiceImpl) List(ctx context.Context, limit int) ([]*model.Contact, error) {
	return s.repo.List(ctx, limit)
}

func (s *contactServiceImpl) GetByID(ctx context.Context, id string) (*model.Contact, error) {
	return s.repo.GetByID(ctx, id)
}

// Create applies defaults, validates and persists a new submission. The
// store assigns the id and both timestamps.
func (s *contactServiceImpl) Create(ctx context.Context, c *model.Contact) error {
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return err
	}
	return s.repo.Create(ctx, c)
}

// Update validates the merged record with the same rules as Create, then
// persists it. The store bumps the modification timestamp.
func (s *contactServiceImpl) Update(ctx context.Context, c *model.Contact) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, c)
}

func (s *contactServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
