// Package store persists contact records. Implementations return sentinel
// errors so the service layer can translate them into domain errors
// exactly once.
package store

import (
	"context"

	"github.com/google/uuid"

	"contacthub/internal/contact/models"
)

// Store is the narrow persistence interface for contacts.
type Store interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Contact, error)
	List(ctx context.Context) ([]*models.Contact, error)
	Create(ctx context.Context, contact *models.Contact) error
	Update(ctx context.Context, id uuid.UUID, contact *models.Contact) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByNameAndCategory(ctx context.Context, name string, category models.Category) (*models.Contact, error)
	Count(ctx context.Context) (int, error)
}
