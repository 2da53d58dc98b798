// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/domain/entity"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	ProfileID uuid.UUID
	RawTransactionInput
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase validates and normalizes raw entries before they
// enter the ledger store.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction creation. Validation happens before any
// write; a rejected input leaves the ledger untouched.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	normalized, err := normalizeInput(input.RawTransactionInput)
	if err != nil {
		return nil, err
	}

	transaction := entity.NewTransaction(
		input.ProfileID,
		normalized.Kind,
		normalized.Amount,
		normalized.Category,
		normalized.Account,
		normalized.Date,
		normalized.Note,
	)

	if err := uc.transactionRepo.Save(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: toTransactionOutput(transaction),
	}, nil
}
