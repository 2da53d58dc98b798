// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal represents a savings goal with funds earmarked from the profile's accounts.
type Goal struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	Title     string
	Target    decimal.Decimal
	SavedCash decimal.Decimal // Earmarked from the cash account, never negative
	SavedCard decimal.Decimal // Earmarked from the card account, never negative
	CreatedAt time.Time
}

// NewGoal creates a new Goal entity with zero earmarked funds.
func NewGoal(profileID uuid.UUID, title string, target decimal.Decimal) *Goal {
	return &Goal{
		ID:        uuid.New(),
		ProfileID: profileID,
		Title:     title,
		Target:    target,
		SavedCash: decimal.Zero,
		SavedCard: decimal.Zero,
		CreatedAt: time.Now().UTC(),
	}
}

// Saved returns the total amount earmarked to the goal across all accounts.
func (g *Goal) Saved() decimal.Decimal {
	return g.SavedCash.Add(g.SavedCard)
}

// SavedOn returns the amount earmarked to the goal from the given account.
func (g *Goal) SavedOn(account Account) decimal.Decimal {
	if account == AccountCash {
		return g.SavedCash
	}
	return g.SavedCard
}

// AddSaved increments the goal's earmark for the given account.
func (g *Goal) AddSaved(account Account, amount decimal.Decimal) {
	if account == AccountCash {
		g.SavedCash = g.SavedCash.Add(amount)
		return
	}
	g.SavedCard = g.SavedCard.Add(amount)
}
