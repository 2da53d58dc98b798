// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/application/usecase/report"
	"github.com/pocketfin/backend/internal/domain/entity"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	ProfileID uuid.UUID
}

// GoalOutput represents a goal with its progress and allocation context.
type GoalOutput struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	Title     string
	Target    decimal.Decimal
	SavedCash decimal.Decimal
	SavedCard decimal.Decimal
	Saved     decimal.Decimal
	Progress  float64 // Percentage of target reached, capped at 100
	CreatedAt time.Time
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*GoalOutput

	// FreeCash/FreeCard is what remains available to allocate per account.
	FreeCash decimal.Decimal
	FreeCard decimal.Decimal
}

// ListGoalsUseCase lists a profile's goals newest first, together with the
// free funds available for further allocations.
type ListGoalsUseCase struct {
	transactionRepo adapter.TransactionRepository
	goalRepo        adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(
	transactionRepo adapter.TransactionRepository,
	goalRepo adapter.GoalRepository,
) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		transactionRepo: transactionRepo,
		goalRepo:        goalRepo,
	}
}

// Execute lists the goals.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
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

	sort.SliceStable(goals, func(i, j int) bool {
		return goals[i].CreatedAt.After(goals[j].CreatedAt)
	})

	outputs := make([]*GoalOutput, len(goals))
	for i, goal := range goals {
		outputs[i] = toGoalOutput(goal)
	}

	balances := report.CalcAccountBalances(transactions)
	totals := report.CalcGoalTotals(goals)
	free := report.CalcFreeFunds(balances, totals)

	return &ListGoalsOutput{
		Goals:    outputs,
		FreeCash: free.Cash,
		FreeCard: free.Card,
	}, nil
}

// toGoalOutput converts a goal entity to the use case output shape.
func toGoalOutput(goal *entity.Goal) *GoalOutput {
	saved := goal.Saved()

	var progress float64
	if goal.Target.IsPositive() {
		pct := saved.Mul(decimal.NewFromInt(100)).Div(goal.Target)
		progress, _ = pct.Round(2).Float64()
		if progress > 100 {
			progress = 100
		}
	}

	return &GoalOutput{
		ID:        goal.ID,
		ProfileID: goal.ProfileID,
		Title:     goal.Title,
		Target:    goal.Target,
		SavedCash: goal.SavedCash,
		SavedCard: goal.SavedCard,
		Saved:     saved,
		Progress:  progress,
		CreatedAt: goal.CreatedAt,
	}
}
