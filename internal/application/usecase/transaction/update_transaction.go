// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocketfin/backend/internal/application/adapter"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	ProfileID     uuid.UUID
	RawTransactionInput
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase replaces a transaction's fields with a freshly
// normalized record. The record is never mutated in place: every write is a
// full replace for that id.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	existing, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	if existing.ProfileID != input.ProfileID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	normalized, err := normalizeInput(input.RawTransactionInput)
	if err != nil {
		return nil, err
	}

	// Full replace; id and creation time survive the edit.
	existing.Kind = normalized.Kind
	existing.Amount = normalized.Amount
	existing.Category = normalized.Category
	existing.Account = normalized.Account
	existing.Note = normalized.Note
	existing.SetDate(normalized.Date)

	if err := uc.transactionRepo.Save(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: toTransactionOutput(existing),
	}, nil
}
