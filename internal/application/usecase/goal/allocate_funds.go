// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/application/usecase/report"
	"github.com/pocketfin/backend/internal/domain/entity"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
)

// AllocateFundsInput represents a request to earmark uncommitted account
// funds to a goal. Amount arrives as raw text.
type AllocateFundsInput struct {
	GoalID    uuid.UUID
	ProfileID uuid.UUID
	Amount    string
	Account   string
}

// AllocateFundsOutput represents the output of a fund allocation.
type AllocateFundsOutput struct {
	Goal *entity.Goal

	// FreeFunds is the account's uncommitted balance after the allocation.
	FreeFunds decimal.Decimal
}

// AllocateFundsUseCase moves uncommitted account funds into a goal's earmark.
//
// The read-check-write sequence is serialized per profile so two concurrent
// allocations cannot both pass the uncommitted-funds check against stale
// data. Repeating a request allocates again; this is a monotonic increment,
// not an idempotent operation.
type AllocateFundsUseCase struct {
	transactionRepo adapter.TransactionRepository
	goalRepo        adapter.GoalRepository

	mu       sync.Mutex
	profiles map[uuid.UUID]*sync.Mutex
}

// NewAllocateFundsUseCase creates a new AllocateFundsUseCase instance.
func NewAllocateFundsUseCase(
	transactionRepo adapter.TransactionRepository,
	goalRepo adapter.GoalRepository,
) *AllocateFundsUseCase {
	return &AllocateFundsUseCase{
		transactionRepo: transactionRepo,
		goalRepo:        goalRepo,
		profiles:        make(map[uuid.UUID]*sync.Mutex),
	}
}

// Execute performs the allocation. Fails with an insufficient-funds error when
// the amount exceeds the account's uncommitted funds (within epsilon); a
// rejected request leaves the goal store unchanged.
func (uc *AllocateFundsUseCase) Execute(ctx context.Context, input AllocateFundsInput) (*AllocateFundsOutput, error) {
	amount, err := entity.ParseAmount(input.Amount)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidAllocationAmount,
			"amount must be a number greater than zero",
			domainerror.ErrInvalidAllocationAmount,
		)
	}

	account := entity.Account(strings.ToLower(strings.TrimSpace(input.Account)))
	if !entity.ValidAccount(account) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnknownAccount,
			"account must be 'cash' or 'card'",
			domainerror.ErrUnknownAccount,
		)
	}

	lock := uc.profileLock(input.ProfileID)
	lock.Lock()
	defer lock.Unlock()

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

	balances := report.CalcAccountBalances(transactions)
	totals := report.CalcGoalTotals(goals)
	free := balances.Balance(account).Sub(totals.Committed(account))

	if amount.GreaterThan(free.Add(entity.Epsilon)) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInsufficientFunds,
			fmt.Sprintf("requested %s exceeds uncommitted %s funds of %s", amount, account, free),
			domainerror.ErrInsufficientFunds,
		)
	}

	var goal *entity.Goal
	for _, candidate := range goals {
		if candidate.ID == input.GoalID {
			goal = candidate
			break
		}
	}
	if goal == nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	goal.AddSaved(account, amount)

	if err := uc.goalRepo.Save(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to save goal: %w", err)
	}

	return &AllocateFundsOutput{
		Goal:      goal,
		FreeFunds: free.Sub(amount),
	}, nil
}

// profileLock returns the mutex serializing allocations for one profile.
func (uc *AllocateFundsUseCase) profileLock(profileID uuid.UUID) *sync.Mutex {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	lock, ok := uc.profiles[profileID]
	if !ok {
		lock = &sync.Mutex{}
		uc.profiles[profileID] = lock
	}
	return lock
}
