// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketfin/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProfileID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title     string          `gorm:"type:varchar(255);not null"`
	Target    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	SavedCash decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	SavedCard decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:        m.ID,
		ProfileID: m.ProfileID,
		Title:     m.Title,
		Target:    m.Target,
		SavedCash: m.SavedCash,
		SavedCard: m.SavedCard,
		CreatedAt: m.CreatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:        goal.ID,
		ProfileID: goal.ProfileID,
		Title:     goal.Title,
		Target:    goal.Target,
		SavedCash: goal.SavedCash,
		SavedCard: goal.SavedCard,
		CreatedAt: goal.CreatedAt,
	}
}
