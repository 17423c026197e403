package service

import (
	"context"

	"github.com/lumenworks/backend/internal/model"
)

// ContactService defines the business logic for contact submissions. It is
// the sole mutator of the contacts store.
type ContactService interface {
	// List returns submissions newest-first. limit <= 0 returns all.
	List(ctx context.Context, limit int) ([]*model.Contact, error)

	// GetByID returns the submission or repository.ErrNotFound /
	// repository.ErrInvalidID.
	GetByID(ctx context.Context, id string) (*model.Contact, error)

	// Create validates the submission, persists it and populates ID and
	// timestamps. A failed constraint returns *model.ValidationError.
	Create(ctx context.Context, c *model.Contact) error

	// Update validates the full (merged) record and persists it.
	Update(ctx context.Context, c *model.Contact) error

	Delete(ctx context.Context, id string) error
}
