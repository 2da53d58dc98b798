// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocketfin/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for ledger persistence operations.
// No ordering is guaranteed by the store; ordering is applied at read time.
type TransactionRepository interface {
	// Save upserts a transaction by id; every write is a full record replace.
	Save(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByProfile retrieves all transactions for a given profile.
	FindByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.Transaction, error)

	// FindByProfileAndMonth retrieves a profile's transactions within a year-month bucket.
	FindByProfileAndMonth(ctx context.Context, profileID uuid.UUID, month string) ([]*entity.Transaction, error)

	// Delete removes a transaction from the database (hard delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
