// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind represents the direction of a transaction (income or expense).
type TransactionKind string

const (
	TransactionKindIncome  TransactionKind = "income"
	TransactionKindExpense TransactionKind = "expense"
)

// Account represents one of the closed set of settlement accounts.
type Account string

const (
	AccountCash Account = "cash"
	AccountCard Account = "card"
)

// DefaultAccount is used when the entered account is missing or unknown.
const DefaultAccount = AccountCard

// FallbackCategory is assigned when the entered category is missing or blank.
const FallbackCategory = "Other"

// IncomeCategories and ExpenseCategories are the fixed, disjoint category
// catalogs offered per transaction kind.
var (
	IncomeCategories  = []string{"Salary", "Support", "Crypto"}
	ExpenseCategories = []string{"Food", "Transport", "Subscriptions", "Housing", "Entertainment", "Health", "Gifts", "Other"}
)

// DateLayout is the wire format for transaction dates (calendar date, no time).
const DateLayout = "2006-01-02"

// MonthLayout is the derived year-month bucket format.
const MonthLayout = "2006-01"

// MonthKey returns the year-month bucket for a date.
func MonthKey(date time.Time) string {
	return date.Format(MonthLayout)
}

// Transaction represents a single income or expense record in a profile's ledger.
type Transaction struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	Kind      TransactionKind
	Amount    decimal.Decimal // Always positive; sign is derived from Kind
	Category  string
	Account   Account
	Date      time.Time
	Month     string // Derived from Date, never set independently
	Note      string
	CreatedAt time.Time
}

// NewTransaction creates a new Transaction entity with a derived month bucket.
func NewTransaction(
	profileID uuid.UUID,
	kind TransactionKind,
	amount decimal.Decimal,
	category string,
	account Account,
	date time.Time,
	note string,
) *Transaction {
	t := &Transaction{
		ID:        uuid.New(),
		ProfileID: profileID,
		Kind:      kind,
		Amount:    amount,
		Category:  category,
		Account:   account,
		Note:      note,
		CreatedAt: time.Now().UTC(),
	}
	t.SetDate(date)
	return t
}

// SetDate sets the transaction date and recomputes the derived month bucket.
func (t *Transaction) SetDate(date time.Time) {
	t.Date = date
	t.Month = MonthKey(date)
}

// SignedAmount returns the transaction's contribution to its account balance:
// +Amount for income, -Amount for expense.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Kind == TransactionKindIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}

// ValidAccount reports whether the account is one of the enumerated accounts.
func ValidAccount(account Account) bool {
	return account == AccountCash || account == AccountCard
}

// ValidTransactionKind reports whether the kind is income or expense.
func ValidTransactionKind(kind TransactionKind) bool {
	return kind == TransactionKindIncome || kind == TransactionKindExpense
}
