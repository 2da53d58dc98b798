// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketfin/backend/internal/domain/entity"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
)

// fakeTransactionRepository is an in-memory stand-in for the persistence layer.
type fakeTransactionRepository struct {
	transactions map[uuid.UUID]*entity.Transaction
}

func newFakeTransactionRepository() *fakeTransactionRepository {
	return &fakeTransactionRepository{
		transactions: make(map[uuid.UUID]*entity.Transaction),
	}
}

func (r *fakeTransactionRepository) Save(_ context.Context, t *entity.Transaction) error {
	copied := *t
	r.transactions[t.ID] = &copied
	return nil
}

func (r *fakeTransactionRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	t, ok := r.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTransactionRepository) FindByProfile(_ context.Context, profileID uuid.UUID) ([]*entity.Transaction, error) {
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
	delete(r.transactions, id)
	return nil
}

func TestCreateTransactionUseCase_Execute(t *testing.T) {
	profileID := uuid.New()

	t.Run("creates a fully specified transaction", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		uc := NewCreateTransactionUseCase(repo)

		output, err := uc.Execute(context.Background(), CreateTransactionInput{
			ProfileID: profileID,
			RawTransactionInput: RawTransactionInput{
				Kind:     "income",
				Amount:   "1000",
				Category: "Salary",
				Account:  "card",
				Date:     "2025-03-15",
				Note:     "march pay",
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := output.Transaction
		if got.Kind != entity.TransactionKindIncome {
			t.Errorf("expected income, got %s", got.Kind)
		}
		if !got.Amount.Equal(decimal.RequireFromString("1000")) {
			t.Errorf("expected amount 1000, got %s", got.Amount)
		}
		if got.Month != "2025-03" {
			t.Errorf("expected derived month 2025-03, got %s", got.Month)
		}
		if len(repo.transactions) != 1 {
			t.Errorf("expected 1 stored transaction, got %d", len(repo.transactions))
		}
	})

	t.Run("applies defaults for missing fields", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		uc := NewCreateTransactionUseCase(repo)

		output, err := uc.Execute(context.Background(), CreateTransactionInput{
			ProfileID: profileID,
			RawTransactionInput: RawTransactionInput{
				Amount: "25",
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := output.Transaction
		if got.Kind != entity.TransactionKindExpense {
			t.Errorf("expected default kind expense, got %s", got.Kind)
		}
		if got.Category != entity.FallbackCategory {
			t.Errorf("expected fallback category %q, got %q", entity.FallbackCategory, got.Category)
		}
		if got.Account != entity.DefaultAccount {
			t.Errorf("expected default account %s, got %s", entity.DefaultAccount, got.Account)
		}
		today := time.Now().UTC().Format(entity.DateLayout)
		if got.Date.Format(entity.DateLayout) != today {
			t.Errorf("expected default date %s, got %s", today, got.Date.Format(entity.DateLayout))
		}
	})

	t.Run("parses amounts with comma and whitespace", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		uc := NewCreateTransactionUseCase(repo)

		output, err := uc.Execute(context.Background(), CreateTransactionInput{
			ProfileID: profileID,
			RawTransactionInput: RawTransactionInput{
				Amount: " 1 234,56 ",
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Transaction.Amount.Equal(decimal.RequireFromString("1234.56")) {
			t.Errorf("expected amount 1234.56, got %s", output.Transaction.Amount)
		}
	})

	t.Run("normalizes account casing", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		uc := NewCreateTransactionUseCase(repo)

		output, err := uc.Execute(context.Background(), CreateTransactionInput{
			ProfileID: profileID,
			RawTransactionInput: RawTransactionInput{
				Amount:  "10",
				Account: " CASH ",
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Transaction.Account != entity.AccountCash {
			t.Errorf("expected cash account, got %s", output.Transaction.Account)
		}
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		uc := NewCreateTransactionUseCase(repo)

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			ProfileID: profileID,
			RawTransactionInput: RawTransactionInput{
				Kind:   "transfer",
				Amount: "10",
			},
		})
		assertTransactionErrorCode(t, err, domainerror.ErrCodeInvalidTransactionKind)
		if len(repo.transactions) != 0 {
			t.Error("expected no writes after a rejected input")
		}
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		uc := NewCreateTransactionUseCase(repo)

		for _, amount := range []string{"0", "-5", "abc", ""} {
			_, err := uc.Execute(context.Background(), CreateTransactionInput{
				ProfileID: profileID,
				RawTransactionInput: RawTransactionInput{
					Amount: amount,
				},
			})
			assertTransactionErrorCode(t, err, domainerror.ErrCodeInvalidTransactionAmount)
		}
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		uc := NewCreateTransactionUseCase(repo)

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			ProfileID: profileID,
			RawTransactionInput: RawTransactionInput{
				Amount: "10",
				Date:   "15-03-2025",
			},
		})
		assertTransactionErrorCode(t, err, domainerror.ErrCodeInvalidTransactionDate)
	})
}

func TestNormalizeInput_Idempotent(t *testing.T) {
	raw := RawTransactionInput{
		Kind:     "income",
		Amount:   " 1 234,50 ",
		Category: " Salary ",
		Account:  " CARD ",
		Date:     "2025-03-15",
		Note:     " pay ",
	}

	first, err := normalizeInput(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Feed the normalized fields back through as raw input.
	second, err := normalizeInput(RawTransactionInput{
		Kind:     string(first.Kind),
		Amount:   first.Amount.String(),
		Category: first.Category,
		Account:  string(first.Account),
		Date:     first.Date.Format(entity.DateLayout),
		Note:     first.Note,
	})
	if err != nil {
		t.Fatalf("unexpected error on second pass: %v", err)
	}

	if second.Kind != first.Kind ||
		!second.Amount.Equal(first.Amount) ||
		second.Category != first.Category ||
		second.Account != first.Account ||
		!second.Date.Equal(first.Date) ||
		second.Note != first.Note {
		t.Errorf("expected normalization to be idempotent, got %+v then %+v", first, second)
	}
}

func TestUpdateTransactionUseCase_Execute(t *testing.T) {
	profileID := uuid.New()

	t.Run("full replace keeps id and creation time", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		create := NewCreateTransactionUseCase(repo)
		update := NewUpdateTransactionUseCase(repo)

		created, err := create.Execute(context.Background(), CreateTransactionInput{
			ProfileID: profileID,
			RawTransactionInput: RawTransactionInput{
				Kind:   "expense",
				Amount: "50",
				Date:   "2025-03-01",
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		updated, err := update.Execute(context.Background(), UpdateTransactionInput{
			TransactionID: created.Transaction.ID,
			ProfileID:     profileID,
			RawTransactionInput: RawTransactionInput{
				Kind:     "income",
				Amount:   "75",
				Category: "Salary",
				Account:  "cash",
				Date:     "2025-04-02",
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if updated.Transaction.ID != created.Transaction.ID {
			t.Error("expected the id to survive the edit")
		}
		if !updated.Transaction.CreatedAt.Equal(created.Transaction.CreatedAt) {
			t.Error("expected the creation time to survive the edit")
		}
		if updated.Transaction.Month != "2025-04" {
			t.Errorf("expected month recomputed to 2025-04, got %s", updated.Transaction.Month)
		}
	})

	t.Run("rejects updates across profiles", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		create := NewCreateTransactionUseCase(repo)
		update := NewUpdateTransactionUseCase(repo)

		created, err := create.Execute(context.Background(), CreateTransactionInput{
			ProfileID: profileID,
			RawTransactionInput: RawTransactionInput{
				Amount: "50",
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = update.Execute(context.Background(), UpdateTransactionInput{
			TransactionID: created.Transaction.ID,
			ProfileID:     uuid.New(),
			RawTransactionInput: RawTransactionInput{
				Amount: "75",
			},
		})
		assertTransactionErrorCode(t, err, domainerror.ErrCodeTransactionNotFound)
	})
}

func TestDeleteTransactionUseCase_Execute(t *testing.T) {
	profileID := uuid.New()

	t.Run("deletes an owned transaction", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		create := NewCreateTransactionUseCase(repo)
		del := NewDeleteTransactionUseCase(repo)

		created, err := create.Execute(context.Background(), CreateTransactionInput{
			ProfileID: profileID,
			RawTransactionInput: RawTransactionInput{
				Amount: "50",
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := del.Execute(context.Background(), DeleteTransactionInput{
			TransactionID: created.Transaction.ID,
			ProfileID:     profileID,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.transactions) != 0 {
			t.Error("expected the transaction to be removed")
		}
	})

	t.Run("unknown id yields not-found", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		del := NewDeleteTransactionUseCase(repo)

		err := del.Execute(context.Background(), DeleteTransactionInput{
			TransactionID: uuid.New(),
			ProfileID:     profileID,
		})
		assertTransactionErrorCode(t, err, domainerror.ErrCodeTransactionNotFound)
	})
}

func assertTransactionErrorCode(t *testing.T, err error, code domainerror.TransactionErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	var transactionErr *domainerror.TransactionError
	if !errors.As(err, &transactionErr) {
		t.Fatalf("expected a TransactionError, got %T: %v", err, err)
	}
	if transactionErr.Code != code {
		t.Errorf("expected code %s, got %s", code, transactionErr.Code)
	}
}
