// Package report contains the aggregation engine and report use cases.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/domain/entity"
)

// GetCategoryBreakdownInput represents the input for the category breakdown.
type GetCategoryBreakdownInput struct {
	ProfileID uuid.UUID
	Month     *string // Optional year-month filter
}

// CategoryBreakdownItem represents a single category in the breakdown.
type CategoryBreakdownItem struct {
	Category   string
	Amount     decimal.Decimal
	Percentage float64
}

// GetCategoryBreakdownOutput represents the expense breakdown by category.
type GetCategoryBreakdownOutput struct {
	Items        []CategoryBreakdownItem
	TotalExpense decimal.Decimal
}

// GetCategoryBreakdownUseCase derives a profile's expense breakdown by category.
type GetCategoryBreakdownUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(transactionRepo adapter.TransactionRepository) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the breakdown, optionally scoped to a single month.
func (uc *GetCategoryBreakdownUseCase) Execute(
	ctx context.Context,
	input GetCategoryBreakdownInput,
) (*GetCategoryBreakdownOutput, error) {
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
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	breakdown := SumExpensesByCategory(transactions)

	items := make([]CategoryBreakdownItem, 0, len(breakdown.Items))
	for _, item := range breakdown.Items {
		var percentage float64
		if !breakdown.Total.IsZero() {
			pct := item.Amount.Mul(decimal.NewFromInt(100)).Div(breakdown.Total)
			percentage, _ = pct.Round(2).Float64()
		}
		items = append(items, CategoryBreakdownItem{
			Category:   item.Category,
			Amount:     item.Amount,
			Percentage: percentage,
		})
	}

	return &GetCategoryBreakdownOutput{
		Items:        items,
		TotalExpense: breakdown.Total,
	}, nil
}
