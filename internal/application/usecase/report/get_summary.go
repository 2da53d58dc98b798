// Package report contains the aggregation engine and report use cases.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/domain/entity"
)

// GetSummaryInput represents the input for the summary report.
type GetSummaryInput struct {
	ProfileID uuid.UUID
	Month     *string // Optional year-month filter for the month section
}

// GetSummaryOutput represents the derived summary for a profile.
type GetSummaryOutput struct {
	Accounts AccountBalances
	Goals    GoalTotals
	Free     FreeFunds

	// OverCommittedCash/Card flag accounts whose earmarks exceed their
	// balance. This can happen after deleting a transaction that funded a
	// goal; it is surfaced to the caller rather than silently corrected.
	OverCommittedCash bool
	OverCommittedCard bool

	// Month carries the month-scoped balances when a month filter was given.
	Month *MonthSummary
}

// MonthSummary holds the balances derived from a single month's transactions.
type MonthSummary struct {
	Month    string
	Balances AccountBalances
}

// GetSummaryUseCase derives a profile's balance and goal summary.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	goalRepo        adapter.GoalRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	goalRepo adapter.GoalRepository,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
		goalRepo:        goalRepo,
	}
}

// Execute computes the summary from the profile's full record set.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	var (
		transactions []*entity.Transaction
		goals        []*entity.Goal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = uc.transactionRepo.FindByProfile(gctx, input.ProfileID)
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = uc.goalRepo.FindByProfile(gctx, input.ProfileID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load profile records: %w", err)
	}

	balances := CalcAccountBalances(transactions)
	totals := CalcGoalTotals(goals)
	free := CalcFreeFunds(balances, totals)

	output := &GetSummaryOutput{
		Accounts:          balances,
		Goals:             totals,
		Free:              free,
		OverCommittedCash: free.OverCommitted(entity.AccountCash),
		OverCommittedCard: free.OverCommitted(entity.AccountCard),
	}

	if input.Month != nil {
		monthly := make([]*entity.Transaction, 0, len(transactions))
		for _, t := range transactions {
			if t.Month == *input.Month {
				monthly = append(monthly, t)
			}
		}
		output.Month = &MonthSummary{
			Month:    *input.Month,
			Balances: CalcAccountBalances(monthly),
		}
	}

	return output, nil
}
