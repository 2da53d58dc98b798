// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketfin/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// Records are hard-deleted; the ledger keeps no tombstones.
type TransactionModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProfileID uuid.UUID       `gorm:"type:uuid;not null;index;index:idx_transactions_profile_month"`
	Kind      string          `gorm:"type:varchar(10);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category  string          `gorm:"type:varchar(100);not null"`
	Account   string          `gorm:"type:varchar(10);not null"`
	Date      time.Time       `gorm:"type:date;not null"`
	Month     string          `gorm:"type:varchar(7);not null;index:idx_transactions_profile_month"`
	Note      string          `gorm:"type:text"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:        m.ID,
		ProfileID: m.ProfileID,
		Kind:      entity.TransactionKind(m.Kind),
		Amount:    m.Amount,
		Category:  m.Category,
		Account:   entity.Account(m.Account),
		Date:      m.Date,
		Month:     m.Month,
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(t *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:        t.ID,
		ProfileID: t.ProfileID,
		Kind:      string(t.Kind),
		Amount:    t.Amount,
		Category:  t.Category,
		Account:   string(t.Account),
		Date:      t.Date,
		Month:     t.Month,
		Note:      t.Note,
		CreatedAt: t.CreatedAt,
	}
}
