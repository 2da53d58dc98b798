// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketfin/backend/internal/application/usecase/goal"
	"github.com/pocketfin/backend/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Title  string `json:"title" binding:"required"`
	Target string `json:"target" binding:"required"`
}

// AllocateFundsRequest represents the request body for a fund allocation.
type AllocateFundsRequest struct {
	Amount  string `json:"amount" binding:"required"`
	Account string `json:"account" binding:"required"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Target    float64   `json:"target"`
	SavedCash float64   `json:"saved_cash"`
	SavedCard float64   `json:"saved_card"`
	Saved     float64   `json:"saved"`
	Progress  float64   `json:"progress"`
	CreatedAt time.Time `json:"created_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals    []GoalResponse `json:"goals"`
	FreeCash float64        `json:"free_cash"`
	FreeCard float64        `json:"free_card"`
}

// AllocateFundsResponse represents the response for a fund allocation.
type AllocateFundsResponse struct {
	Goal      GoalResponse `json:"goal"`
	FreeFunds float64      `json:"free_funds"`
}

// ToGoalResponse converts a goal use case output to its API shape.
func ToGoalResponse(output *goal.GoalOutput) GoalResponse {
	return GoalResponse{
		ID:        output.ID.String(),
		Title:     output.Title,
		Target:    output.Target.InexactFloat64(),
		SavedCash: output.SavedCash.InexactFloat64(),
		SavedCard: output.SavedCard.InexactFloat64(),
		Saved:     output.Saved.InexactFloat64(),
		Progress:  output.Progress,
		CreatedAt: output.CreatedAt,
	}
}

// ToGoalEntityResponse converts a goal entity to its API shape.
func ToGoalEntityResponse(g *entity.Goal) GoalResponse {
	saved := g.Saved()

	var progress float64
	if g.Target.IsPositive() {
		pct, _ := saved.Mul(hundred).Div(g.Target).Round(2).Float64()
		progress = pct
		if progress > 100 {
			progress = 100
		}
	}

	return GoalResponse{
		ID:        g.ID.String(),
		Title:     g.Title,
		Target:    g.Target.InexactFloat64(),
		SavedCash: g.SavedCash.InexactFloat64(),
		SavedCard: g.SavedCard.InexactFloat64(),
		Saved:     saved.InexactFloat64(),
		Progress:  progress,
		CreatedAt: g.CreatedAt,
	}
}

// ToGoalListResponse converts a list goals output to its API shape.
func ToGoalListResponse(output *goal.ListGoalsOutput) GoalListResponse {
	goals := make([]GoalResponse, len(output.Goals))
	for i, g := range output.Goals {
		goals[i] = ToGoalResponse(g)
	}
	return GoalListResponse{
		Goals:    goals,
		FreeCash: output.FreeCash.InexactFloat64(),
		FreeCard: output.FreeCard.InexactFloat64(),
	}
}
