// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocketfin/backend/internal/domain/entity"
)

// ProfileRepository defines the interface for profile persistence operations.
type ProfileRepository interface {
	// Create creates a new profile in the database.
	Create(ctx context.Context, profile *entity.Profile) error

	// FindByID retrieves a profile by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindByName retrieves a profile by its unique name.
	FindByName(ctx context.Context, name string) (*entity.Profile, error)

	// ExistsByName checks whether a profile with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)
}
