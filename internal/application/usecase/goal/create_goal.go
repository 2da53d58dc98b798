// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pocketfin/backend/internal/application/adapter"
	"github.com/pocketfin/backend/internal/domain/entity"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation. The target arrives
// as raw text and is parsed like any other money amount.
type CreateGoalInput struct {
	ProfileID uuid.UUID
	Title     string
	Target    string
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeEmptyGoalTitle,
			"title must not be empty",
			domainerror.ErrEmptyGoalTitle,
		)
	}

	target, err := entity.ParseAmount(input.Target)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalTarget,
			"target must be a number greater than zero",
			domainerror.ErrInvalidGoalTarget,
		)
	}

	goal := entity.NewGoal(input.ProfileID, title, target)

	if err := uc.goalRepo.Save(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to save goal: %w", err)
	}

	return &CreateGoalOutput{Goal: goal}, nil
}
