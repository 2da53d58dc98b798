// Package transaction contains transaction-related use cases.
package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketfin/backend/internal/domain/entity"
)

// TransactionOutput represents a transaction as returned by use cases.
type TransactionOutput struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	Kind      entity.TransactionKind
	Amount    decimal.Decimal
	Category  string
	Account   entity.Account
	Date      time.Time
	Month     string
	Note      string
	CreatedAt time.Time
}

// toTransactionOutput converts a domain entity to the use case output shape.
func toTransactionOutput(t *entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:        t.ID,
		ProfileID: t.ProfileID,
		Kind:      t.Kind,
		Amount:    t.Amount,
		Category:  t.Category,
		Account:   t.Account,
		Date:      t.Date,
		Month:     t.Month,
		Note:      t.Note,
		CreatedAt: t.CreatedAt,
	}
}
