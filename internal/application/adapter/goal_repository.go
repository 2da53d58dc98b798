// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocketfin/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Save upserts a goal by id.
	Save(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByProfile retrieves all goals for a given profile.
	FindByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.Goal, error)

	// Delete removes a goal from the database (hard delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
