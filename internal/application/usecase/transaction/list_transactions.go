// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/application/usecase/report"
	"github.com/pocketfin/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	ProfileID uuid.UUID
	Month     *string // Optional year-month filter
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
}

// ListTransactionsUseCase lists a profile's transactions in display order.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute lists transactions sorted by date descending, newest entry first
// among same-day records.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	var (
		transactions []*entity.Transaction
		err          error
	)
	if input.Month != nil {
		transactions, err = uc.transactionRepo.FindByProfileAndMonth(ctx, input.ProfileID, *input.Month)
	} else {
		transactions, err = uc.transactionRepo.FindByProfile(ctx, input.ProfileID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	report.SortTransactions(transactions)

	outputs := make([]*TransactionOutput, len(transactions))
	for i, t := range transactions {
		outputs[i] = toTransactionOutput(t)
	}
	return &ListTransactionsOutput{Transactions: outputs}, nil
}
