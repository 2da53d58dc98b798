// Package transaction contains transaction-related use cases.
package transaction

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketfin/backend/internal/domain/entity"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
)

// RawTransactionInput carries the raw user-entered fields of a transaction.
// All fields arrive as text and are normalized before any write.
type RawTransactionInput struct {
	Kind     string
	Amount   string
	Category string
	Account  string
	Date     string
	Note     string
}

// normalizedTransaction holds the validated, normalized fields.
type normalizedTransaction struct {
	Kind     entity.TransactionKind
	Amount   decimal.Decimal
	Category string
	Account  entity.Account
	Date     time.Time
	Note     string
}

// normalizeInput validates and normalizes raw fields:
//   - kind: empty defaults to expense; anything else must be a known kind
//   - amount: whitespace stripped, ',' accepted as decimal separator, must be > 0
//   - category: trimmed; blank falls back to the designated fallback category
//   - account: unknown or blank falls back to the default account
//   - date: blank defaults to the current calendar date
//
// Normalizing an already-normalized input yields the same fields.
func normalizeInput(input RawTransactionInput) (*normalizedTransaction, error) {
	kind := entity.TransactionKind(strings.TrimSpace(input.Kind))
	if kind == "" {
		kind = entity.TransactionKindExpense
	}
	if !entity.ValidTransactionKind(kind) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionKind,
			"kind must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionKind,
		)
	}

	amount, err := entity.ParseAmount(input.Amount)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be a number greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = entity.FallbackCategory
	}

	account := entity.Account(strings.ToLower(strings.TrimSpace(input.Account)))
	if !entity.ValidAccount(account) {
		account = entity.DefaultAccount
	}

	var date time.Time
	if dateStr := strings.TrimSpace(input.Date); dateStr == "" {
		now := time.Now().UTC()
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		date, err = time.ParseInLocation(entity.DateLayout, dateStr, time.UTC)
		if err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionDate,
				"date must be a calendar date in YYYY-MM-DD format",
				domainerror.ErrInvalidTransactionDate,
			)
		}
	}

	return &normalizedTransaction{
		Kind:     kind,
		Amount:   amount,
		Category: category,
		Account:  account,
		Date:     date,
		Note:     strings.TrimSpace(input.Note),
	}, nil
}
