// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/pocketfin/backend/internal/application/usecase/report"
)

// AccountBalancesResponse represents derived balances in API responses.
type AccountBalancesResponse struct {
	Cash    float64 `json:"cash"`
	Card    float64 `json:"card"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Total   float64 `json:"total"`
}

// GoalTotalsResponse represents summed goal earmarks in API responses.
type GoalTotalsResponse struct {
	SavedCash float64 `json:"saved_cash"`
	SavedCard float64 `json:"saved_card"`
	Total     float64 `json:"total"`
}

// FreeFundsResponse represents uncommitted funds per account.
type FreeFundsResponse struct {
	Cash float64 `json:"cash"`
	Card float64 `json:"card"`
}

// MonthSummaryResponse represents month-scoped balances.
type MonthSummaryResponse struct {
	Month    string                  `json:"month"`
	Balances AccountBalancesResponse `json:"balances"`
}

// SummaryResponse represents the full balance and goal summary.
type SummaryResponse struct {
	Accounts          AccountBalancesResponse `json:"accounts"`
	Goals             GoalTotalsResponse      `json:"goals"`
	Free              FreeFundsResponse       `json:"free"`
	OverCommittedCash bool                    `json:"over_committed_cash"`
	OverCommittedCard bool                    `json:"over_committed_card"`
	Month             *MonthSummaryResponse   `json:"month,omitempty"`
}

// CategoryBreakdownItemResponse represents one category in the breakdown.
type CategoryBreakdownItemResponse struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// CategoryBreakdownResponse represents the expense breakdown by category.
type CategoryBreakdownResponse struct {
	Items        []CategoryBreakdownItemResponse `json:"items"`
	TotalExpense float64                         `json:"total_expense"`
}

// ToSummaryResponse converts a summary output to its API shape.
func ToSummaryResponse(output *report.GetSummaryOutput) SummaryResponse {
	response := SummaryResponse{
		Accounts: toAccountBalancesResponse(output.Accounts),
		Goals: GoalTotalsResponse{
			SavedCash: output.Goals.SavedCash.InexactFloat64(),
			SavedCard: output.Goals.SavedCard.InexactFloat64(),
			Total:     output.Goals.Total.InexactFloat64(),
		},
		Free: FreeFundsResponse{
			Cash: output.Free.Cash.InexactFloat64(),
			Card: output.Free.Card.InexactFloat64(),
		},
		OverCommittedCash: output.OverCommittedCash,
		OverCommittedCard: output.OverCommittedCard,
	}

	if output.Month != nil {
		response.Month = &MonthSummaryResponse{
			Month:    output.Month.Month,
			Balances: toAccountBalancesResponse(output.Month.Balances),
		}
	}

	return response
}

// ToCategoryBreakdownResponse converts a breakdown output to its API shape.
func ToCategoryBreakdownResponse(output *report.GetCategoryBreakdownOutput) CategoryBreakdownResponse {
	items := make([]CategoryBreakdownItemResponse, len(output.Items))
	for i, item := range output.Items {
		items[i] = CategoryBreakdownItemResponse{
			Category:   item.Category,
			Amount:     item.Amount.InexactFloat64(),
			Percentage: item.Percentage,
		}
	}
	return CategoryBreakdownResponse{
		Items:        items,
		TotalExpense: output.TotalExpense.InexactFloat64(),
	}
}

func toAccountBalancesResponse(b report.AccountBalances) AccountBalancesResponse {
	return AccountBalancesResponse{
		Cash:    b.Cash.InexactFloat64(),
		Card:    b.Card.InexactFloat64(),
		Income:  b.Income.InexactFloat64(),
		Expense: b.Expense.InexactFloat64(),
		Total:   b.Total.InexactFloat64(),
	}
}
