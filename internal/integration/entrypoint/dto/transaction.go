// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pocketfin/backend/internal/application/usecase/transaction"
	"github.com/pocketfin/backend/internal/domain/entity"
)

// TransactionRequest represents the request body for transaction creation and
// update. Every field arrives as text; missing fields fall back to defaults
// during normalization.
type TransactionRequest struct {
	Kind     string `json:"kind"`
	Amount   string `json:"amount" binding:"required"`
	Category string `json:"category"`
	Account  string `json:"account"`
	Date     string `json:"date"`
	Note     string `json:"note"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	Account   string    `json:"account"`
	Date      string    `json:"date"`
	Month     string    `json:"month"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a transaction output to its API shape.
func ToTransactionResponse(t *transaction.TransactionOutput) TransactionResponse {
	return TransactionResponse{
		ID:        t.ID.String(),
		Kind:      string(t.Kind),
		Amount:    t.Amount.InexactFloat64(),
		Category:  t.Category,
		Account:   string(t.Account),
		Date:      t.Date.Format(entity.DateLayout),
		Month:     t.Month,
		Note:      t.Note,
		CreatedAt: t.CreatedAt,
	}
}

// ToTransactionListResponse converts a list of transaction outputs.
func ToTransactionListResponse(outputs []*transaction.TransactionOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(outputs))
	for i, output := range outputs {
		transactions[i] = ToTransactionResponse(output)
	}
	return TransactionListResponse{
		Transactions: transactions,
	}
}
