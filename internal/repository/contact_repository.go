package repository

import (
	"context"

	"github.com/lumenworks/backend/internal/model"
)

// ContactRepository defines the persistence interface for contact
// submissions. Defined here (in repository) to avoid an import cycle with
// service.
type ContactRepository interface {
	// List returns contacts newest-first. limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]*model.Contact, error)
	GetByID(ctx context.Context, id string) (*model.Contact, error)
	// Create inserts the contact and populates ID and timestamps from the
	// database.
	Create(ctx context.Context, c *model.Contact) error
	// Update replaces every mutable column and refreshes UpdatedAt.
	Update(ctx context.Context, c *model.Contact) error
	Delete(ctx context.Context, id string) error
}
