// Package report contains the aggregation engine and report use cases.
//
// Every figure is recomputed from the full per-profile record set on each
// call; there is no incremental caching. Profile data sets are small and the
// design favors correctness over incremental recomputation.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/pocketfin/backend/internal/domain/entity"
)

// AccountBalances holds the derived balances for a transaction set.
type AccountBalances struct {
	Cash    decimal.Decimal
	Card    decimal.Decimal
	Income  decimal.Decimal
	Expense decimal.Decimal
	Total   decimal.Decimal
}

// CalcAccountBalances derives account balances from a transaction snapshot in
// a single pass. Income adds, expense subtracts, segregated per account.
func CalcAccountBalances(transactions []*entity.Transaction) AccountBalances {
	var b AccountBalances
	for _, t := range transactions {
		signed := t.SignedAmount()
		switch t.Kind {
		case entity.TransactionKindIncome:
			b.Income = b.Income.Add(t.Amount)
		case entity.TransactionKindExpense:
			b.Expense = b.Expense.Add(t.Amount)
		}
		if t.Account == entity.AccountCash {
			b.Cash = b.Cash.Add(signed)
		} else {
			b.Card = b.Card.Add(signed)
		}
	}
	b.Total = b.Cash.Add(b.Card)
	return b
}

// Balance returns the balance for a single account.
func (b AccountBalances) Balance(account entity.Account) decimal.Decimal {
	if account == entity.AccountCash {
		return b.Cash
	}
	return b.Card
}

// GoalTotals holds the summed earmarks across a goal snapshot.
type GoalTotals struct {
	SavedCash decimal.Decimal
	SavedCard decimal.Decimal
	Total     decimal.Decimal
}

// CalcGoalTotals sums the per-account earmarks across all goals.
func CalcGoalTotals(goals []*entity.Goal) GoalTotals {
	var t GoalTotals
	for _, g := range goals {
		t.SavedCash = t.SavedCash.Add(g.SavedCash)
		t.SavedCard = t.SavedCard.Add(g.SavedCard)
	}
	t.Total = t.SavedCash.Add(t.SavedCard)
	return t
}

// Committed returns the earmarked total for a single account.
func (t GoalTotals) Committed(account entity.Account) decimal.Decimal {
	if account == entity.AccountCash {
		return t.SavedCash
	}
	return t.SavedCard
}

// CategoryAmount is one category's expense total.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// CategoryBreakdown holds per-category expense totals sorted descending by
// amount, plus the overall expense total for the same transaction set.
type CategoryBreakdown struct {
	Items []CategoryAmount
	Total decimal.Decimal
}

// SumExpensesByCategory groups expense transactions by category. Income
// transactions do not contribute. Ties keep insertion order (stable sort).
func SumExpensesByCategory(transactions []*entity.Transaction) CategoryBreakdown {
	sums := make(map[string]decimal.Decimal)
	var order []string
	total := decimal.Zero

	for _, t := range transactions {
		if t.Kind != entity.TransactionKindExpense {
			continue
		}
		total = total.Add(t.Amount)
		if _, seen := sums[t.Category]; !seen {
			order = append(order, t.Category)
		}
		sums[t.Category] = sums[t.Category].Add(t.Amount)
	}

	items := make([]CategoryAmount, 0, len(order))
	for _, category := range order {
		items = append(items, CategoryAmount{Category: category, Amount: sums[category]})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Amount.GreaterThan(items[j].Amount)
	})

	return CategoryBreakdown{Items: items, Total: total}
}

// FreeFunds holds an account's uncommitted funds. A negative value means the
// profile's goals earmark more than the account holds; this is reported, not
// clamped, so callers can surface the inconsistency.
type FreeFunds struct {
	Cash decimal.Decimal
	Card decimal.Decimal
}

// CalcFreeFunds derives the uncommitted funds per account.
func CalcFreeFunds(balances AccountBalances, totals GoalTotals) FreeFunds {
	return FreeFunds{
		Cash: balances.Cash.Sub(totals.SavedCash),
		Card: balances.Card.Sub(totals.SavedCard),
	}
}

// On returns the free funds for a single account.
func (f FreeFunds) On(account entity.Account) decimal.Decimal {
	if account == entity.AccountCash {
		return f.Cash
	}
	return f.Card
}

// OverCommitted reports whether the account's earmarks exceed its balance
// beyond epsilon tolerance.
func (f FreeFunds) OverCommitted(account entity.Account) bool {
	return f.On(account).LessThan(entity.Epsilon.Neg())
}

// SortTransactions orders transactions for display: date descending,
// tie-broken by creation time descending (most recently entered first).
func SortTransactions(transactions []*entity.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		a, b := transactions[i], transactions[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}
