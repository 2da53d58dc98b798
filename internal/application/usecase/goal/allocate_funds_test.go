// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketfin/backend/internal/domain/entity"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
)

// fakeTransactionRepository is an in-memory stand-in for the ledger store.
type fakeTransactionRepository struct {
	mu           sync.Mutex
	transactions map[uuid.UUID]*entity.Transaction
}

func newFakeTransactionRepository() *fakeTransactionRepository {
	return &fakeTransactionRepository{
		transactions: make(map[uuid.UUID]*entity.Transaction),
	}
}

func (r *fakeTransactionRepository) Save(_ context.Context, t *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *t
	r.transactions[t.ID] = &copied
	return nil
}

func (r *fakeTransactionRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTransactionRepository) FindByProfile(_ context.Context, profileID uuid.UUID) ([]*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Transaction
	for _, t := range r.transactions {
		if t.ProfileID == profileID {
			copied := *t
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeTransactionRepository) FindByProfileAndMonth(_ context.Context, profileID uuid.UUID, month string) ([]*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Transaction
	for _, t := range r.transactions {
		if t.ProfileID == profileID && t.Month == month {
			copied := *t
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeTransactionRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.transactions, id)
	return nil
}

// fakeGoalRepository is an in-memory stand-in for the goal store.
type fakeGoalRepository struct {
	mu    sync.Mutex
	goals map[uuid.UUID]*entity.Goal
}

func newFakeGoalRepository() *fakeGoalRepository {
	return &fakeGoalRepository{
		goals: make(map[uuid.UUID]*entity.Goal),
	}
}

func (r *fakeGoalRepository) Save(_ context.Context, g *entity.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *g
	r.goals[g.ID] = &copied
	return nil
}

func (r *fakeGoalRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	copied := *g
	return &copied, nil
}

func (r *fakeGoalRepository) FindByProfile(_ context.Context, profileID uuid.UUID) ([]*entity.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Goal
	for _, g := range r.goals {
		if g.ProfileID == profileID {
			copied := *g
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeGoalRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.goals, id)
	return nil
}

func seedIncome(t *testing.T, repo *fakeTransactionRepository, profileID uuid.UUID, amount string, account entity.Account) {
	t.Helper()
	date, _ := time.ParseInLocation(entity.DateLayout, "2025-03-01", time.UTC)
	tx := entity.NewTransaction(
		profileID,
		entity.TransactionKindIncome,
		decimal.RequireFromString(amount),
		"Salary",
		account,
		date,
		"",
	)
	if err := repo.Save(context.Background(), tx); err != nil {
		t.Fatalf("failed to seed income: %v", err)
	}
}

func TestAllocateFundsUseCase_Execute(t *testing.T) {
	t.Run("allocates within free funds", func(t *testing.T) {
		profileID := uuid.New()
		transactionRepo := newFakeTransactionRepository()
		goalRepo := newFakeGoalRepository()
		seedIncome(t, transactionRepo, profileID, "1000", entity.AccountCard)

		g := entity.NewGoal(profileID, "Vacation", decimal.RequireFromString("500"))
		if err := goalRepo.Save(context.Background(), g); err != nil {
			t.Fatalf("failed to seed goal: %v", err)
		}

		uc := NewAllocateFundsUseCase(transactionRepo, goalRepo)
		output, err := uc.Execute(context.Background(), AllocateFundsInput{
			GoalID:    g.ID,
			ProfileID: profileID,
			Amount:    "300",
			Account:   "card",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Goal.SavedCard.Equal(decimal.RequireFromString("300")) {
			t.Errorf("expected saved card 300, got %s", output.Goal.SavedCard)
		}
		if !output.FreeFunds.Equal(decimal.RequireFromString("700")) {
			t.Errorf("expected remaining free funds 700, got %s", output.FreeFunds)
		}

		stored, err := goalRepo.FindByID(context.Background(), g.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !stored.SavedCard.Equal(decimal.RequireFromString("300")) {
			t.Errorf("expected persisted earmark 300, got %s", stored.SavedCard)
		}
	})

	t.Run("rejects allocations above free funds", func(t *testing.T) {
		profileID := uuid.New()
		transactionRepo := newFakeTransactionRepository()
		goalRepo := newFakeGoalRepository()
		seedIncome(t, transactionRepo, profileID, "1000", entity.AccountCard)

		g := entity.NewGoal(profileID, "Vacation", decimal.RequireFromString("2000"))
		g.AddSaved(entity.AccountCard, decimal.RequireFromString("300"))
		if err := goalRepo.Save(context.Background(), g); err != nil {
			t.Fatalf("failed to seed goal: %v", err)
		}

		uc := NewAllocateFundsUseCase(transactionRepo, goalRepo)
		_, err := uc.Execute(context.Background(), AllocateFundsInput{
			GoalID:    g.ID,
			ProfileID: profileID,
			Amount:    "800",
			Account:   "card",
		})
		assertGoalErrorCode(t, err, domainerror.ErrCodeInsufficientFunds)

		// The rejected request leaves the goal store unchanged.
		stored, findErr := goalRepo.FindByID(context.Background(), g.ID)
		if findErr != nil {
			t.Fatalf("unexpected error: %v", findErr)
		}
		if !stored.SavedCard.Equal(decimal.RequireFromString("300")) {
			t.Errorf("expected earmark unchanged at 300, got %s", stored.SavedCard)
		}
	})

	t.Run("allocation up to exactly free funds succeeds", func(t *testing.T) {
		profileID := uuid.New()
		transactionRepo := newFakeTransactionRepository()
		goalRepo := newFakeGoalRepository()
		seedIncome(t, transactionRepo, profileID, "100", entity.AccountCash)

		g := entity.NewGoal(profileID, "Bike", decimal.RequireFromString("100"))
		if err := goalRepo.Save(context.Background(), g); err != nil {
			t.Fatalf("failed to seed goal: %v", err)
		}

		uc := NewAllocateFundsUseCase(transactionRepo, goalRepo)
		output, err := uc.Execute(context.Background(), AllocateFundsInput{
			GoalID:    g.ID,
			ProfileID: profileID,
			Amount:    "100",
			Account:   "cash",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.FreeFunds.IsZero() {
			t.Errorf("expected zero free funds, got %s", output.FreeFunds)
		}
	})

	t.Run("accounts are segregated", func(t *testing.T) {
		profileID := uuid.New()
		transactionRepo := newFakeTransactionRepository()
		goalRepo := newFakeGoalRepository()
		seedIncome(t, transactionRepo, profileID, "1000", entity.AccountCard)

		g := entity.NewGoal(profileID, "Vacation", decimal.RequireFromString("500"))
		if err := goalRepo.Save(context.Background(), g); err != nil {
			t.Fatalf("failed to seed goal: %v", err)
		}

		// All the money sits on card; cash has nothing to give.
		uc := NewAllocateFundsUseCase(transactionRepo, goalRepo)
		_, err := uc.Execute(context.Background(), AllocateFundsInput{
			GoalID:    g.ID,
			ProfileID: profileID,
			Amount:    "100",
			Account:   "cash",
		})
		assertGoalErrorCode(t, err, domainerror.ErrCodeInsufficientFunds)
	})

	t.Run("rejects invalid amount and account before any read", func(t *testing.T) {
		uc := NewAllocateFundsUseCase(newFakeTransactionRepository(), newFakeGoalRepository())

		_, err := uc.Execute(context.Background(), AllocateFundsInput{
			GoalID:    uuid.New(),
			ProfileID: uuid.New(),
			Amount:    "-5",
			Account:   "card",
		})
		assertGoalErrorCode(t, err, domainerror.ErrCodeInvalidAllocationAmount)

		_, err = uc.Execute(context.Background(), AllocateFundsInput{
			GoalID:    uuid.New(),
			ProfileID: uuid.New(),
			Amount:    "10",
			Account:   "wallet",
		})
		assertGoalErrorCode(t, err, domainerror.ErrCodeUnknownAccount)
	})

	t.Run("funds check runs before the goal lookup", func(t *testing.T) {
		// With an empty ledger even an unknown goal reports insufficient
		// funds, not not-found.
		uc := NewAllocateFundsUseCase(newFakeTransactionRepository(), newFakeGoalRepository())
		_, err := uc.Execute(context.Background(), AllocateFundsInput{
			GoalID:    uuid.New(),
			ProfileID: uuid.New(),
			Amount:    "10",
			Account:   "card",
		})
		assertGoalErrorCode(t, err, domainerror.ErrCodeInsufficientFunds)
	})

	t.Run("unknown goal yields not-found", func(t *testing.T) {
		profileID := uuid.New()
		transactionRepo := newFakeTransactionRepository()
		seedIncome(t, transactionRepo, profileID, "1000", entity.AccountCard)

		uc := NewAllocateFundsUseCase(transactionRepo, newFakeGoalRepository())
		_, err := uc.Execute(context.Background(), AllocateFundsInput{
			GoalID:    uuid.New(),
			ProfileID: profileID,
			Amount:    "100",
			Account:   "card",
		})
		assertGoalErrorCode(t, err, domainerror.ErrCodeGoalNotFound)
	})

	t.Run("concurrent allocations never overdraw the account", func(t *testing.T) {
		profileID := uuid.New()
		transactionRepo := newFakeTransactionRepository()
		goalRepo := newFakeGoalRepository()
		seedIncome(t, transactionRepo, profileID, "100", entity.AccountCard)

		g := entity.NewGoal(profileID, "Vacation", decimal.RequireFromString("1000"))
		if err := goalRepo.Save(context.Background(), g); err != nil {
			t.Fatalf("failed to seed goal: %v", err)
		}

		uc := NewAllocateFundsUseCase(transactionRepo, goalRepo)

		const workers = 10
		var wg sync.WaitGroup
		var succeeded sync.Map
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := uc.Execute(context.Background(), AllocateFundsInput{
					GoalID:    g.ID,
					ProfileID: profileID,
					Amount:    "60",
					Account:   "card",
				})
				succeeded.Store(i, err == nil)
			}(i)
		}
		wg.Wait()

		// Only one 60 allocation fits into 100.
		var wins int
		succeeded.Range(func(_, v any) bool {
			if v.(bool) {
				wins++
			}
			return true
		})
		if wins != 1 {
			t.Errorf("expected exactly 1 successful allocation, got %d", wins)
		}

		stored, err := goalRepo.FindByID(context.Background(), g.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !stored.SavedCard.Equal(decimal.RequireFromString("60")) {
			t.Errorf("expected total earmark 60, got %s", stored.SavedCard)
		}
	})
}

func TestCreateGoalUseCase_Execute(t *testing.T) {
	profileID := uuid.New()

	t.Run("creates a goal with parsed target", func(t *testing.T) {
		goalRepo := newFakeGoalRepository()
		uc := NewCreateGoalUseCase(goalRepo)

		output, err := uc.Execute(context.Background(), CreateGoalInput{
			ProfileID: profileID,
			Title:     "  Vacation  ",
			Target:    "1 500,00",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.Title != "Vacation" {
			t.Errorf("expected trimmed title, got %q", output.Goal.Title)
		}
		if !output.Goal.Target.Equal(decimal.RequireFromString("1500.00")) {
			t.Errorf("expected target 1500.00, got %s", output.Goal.Target)
		}
		if !output.Goal.SavedCash.IsZero() || !output.Goal.SavedCard.IsZero() {
			t.Error("expected new goal to start with zero earmarks")
		}
	})

	t.Run("rejects empty title", func(t *testing.T) {
		uc := NewCreateGoalUseCase(newFakeGoalRepository())
		_, err := uc.Execute(context.Background(), CreateGoalInput{
			ProfileID: profileID,
			Title:     "   ",
			Target:    "100",
		})
		assertGoalErrorCode(t, err, domainerror.ErrCodeEmptyGoalTitle)
	})

	t.Run("rejects non-positive target", func(t *testing.T) {
		uc := NewCreateGoalUseCase(newFakeGoalRepository())
		_, err := uc.Execute(context.Background(), CreateGoalInput{
			ProfileID: profileID,
			Title:     "Vacation",
			Target:    "0",
		})
		assertGoalErrorCode(t, err, domainerror.ErrCodeInvalidGoalTarget)
	})
}

func TestListGoalsUseCase_Execute(t *testing.T) {
	profileID := uuid.New()
	transactionRepo := newFakeTransactionRepository()
	goalRepo := newFakeGoalRepository()
	seedIncome(t, transactionRepo, profileID, "1000", entity.AccountCard)

	older := entity.NewGoal(profileID, "Older", decimal.RequireFromString("100"))
	newer := entity.NewGoal(profileID, "Newer", decimal.RequireFromString("200"))
	newer.CreatedAt = older.CreatedAt.Add(time.Second)
	newer.AddSaved(entity.AccountCard, decimal.RequireFromString("100"))
	for _, g := range []*entity.Goal{older, newer} {
		if err := goalRepo.Save(context.Background(), g); err != nil {
			t.Fatalf("failed to seed goal: %v", err)
		}
	}

	uc := NewListGoalsUseCase(transactionRepo, goalRepo)
	output, err := uc.Execute(context.Background(), ListGoalsInput{ProfileID: profileID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Goals) != 2 {
		t.Fatalf("expected 2 goals, got %d", len(output.Goals))
	}
	if output.Goals[0].Title != "Newer" {
		t.Errorf("expected newest goal first, got %q", output.Goals[0].Title)
	}
	if output.Goals[0].Progress != 50 {
		t.Errorf("expected 50%% progress, got %v", output.Goals[0].Progress)
	}
	if !output.FreeCard.Equal(decimal.RequireFromString("900")) {
		t.Errorf("expected free card funds 900, got %s", output.FreeCard)
	}
}

func assertGoalErrorCode(t *testing.T, err error, code domainerror.GoalErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	var goalErr *domainerror.GoalError
	if !errors.As(err, &goalErr) {
		t.Fatalf("expected a GoalError, got %T: %v", err, err)
	}
	if goalErr.Code != code {
		t.Errorf("expected code %s, got %s", code, goalErr.Code)
	}
}
