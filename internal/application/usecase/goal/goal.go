// Package goal contains savings goal use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// MaxDeadlineMonths caps a goal's horizon at fifty years.
const MaxDeadlineMonths = 600

// CreateGoalInput represents the input for savings goal creation.
type CreateGoalInput struct {
	UserID         uuid.UUID
	Name           string
	TargetAmount   decimal.Decimal
	SavedAmount    decimal.Decimal
	DeadlineMonths *int
}

// UpdateGoalInput represents the input for savings goal update. Nil fields
// are left unchanged.
type UpdateGoalInput struct {
	GoalID         uuid.UUID
	UserID         uuid.UUID
	Name           *string
	TargetAmount   *decimal.Decimal
	SavedAmount    *decimal.Decimal
	DeadlineMonths *int
}

// GoalOutput wraps a single savings goal.
type GoalOutput struct {
	Goal *entity.SavingsGoal
}

// ListGoalsOutput wraps a user's savings goals.
type ListGoalsOutput struct {
	Goals []*entity.SavingsGoal
}

// GoalUseCase handles savings goal CRUD.
type GoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGoalUseCase creates a new GoalUseCase instance.
func NewGoalUseCase(goalRepo adapter.GoalRepository) *GoalUseCase {
	return &GoalUseCase{
		goalRepo: goalRepo,
	}
}

// Create registers a new savings goal.
func (uc *GoalUseCase) Create(ctx context.Context, input CreateGoalInput) (*GoalOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"goal name is required",
			nil,
		)
	}
	if err := validateGoalAmounts(input.TargetAmount, input.SavedAmount); err != nil {
		return nil, err
	}
	if err := validateDeadline(input.DeadlineMonths); err != nil {
		return nil, err
	}

	goal := entity.NewSavingsGoal(input.UserID, input.Name, input.TargetAmount, input.SavedAmount, input.DeadlineMonths)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create savings goal: %w", err)
	}

	return &GoalOutput{Goal: goal}, nil
}

// List retrieves all goals of a user.
func (uc *GoalUseCase) List(ctx context.Context, userID uuid.UUID) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list savings goals: %w", err)
	}

	return &ListGoalsOutput{Goals: goals}, nil
}

// Update changes an existing goal's fields.
func (uc *GoalUseCase) Update(ctx context.Context, input UpdateGoalInput) (*GoalOutput, error) {
	goal, err := uc.findOwned(ctx, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeMissingGoalFields,
				"goal name is required",
				nil,
			)
		}
		goal.Name = *input.Name
	}

	target := goal.TargetAmount
	saved := goal.SavedAmount
	if input.TargetAmount != nil {
		target = *input.TargetAmount
	}
	if input.SavedAmount != nil {
		saved = *input.SavedAmount
	}
	if err := validateGoalAmounts(target, saved); err != nil {
		return nil, err
	}
	goal.TargetAmount = target
	goal.SavedAmount = saved

	if input.DeadlineMonths != nil {
		if err := validateDeadline(input.DeadlineMonths); err != nil {
			return nil, err
		}
		goal.DeadlineMonths = input.DeadlineMonths
	}

	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update savings goal: %w", err)
	}

	return &GoalOutput{Goal: goal}, nil
}

// Delete removes a goal.
func (uc *GoalUseCase) Delete(ctx context.Context, goalID, userID uuid.UUID) error {
	goal, err := uc.findOwned(ctx, goalID, userID)
	if err != nil {
		return err
	}

	if err := uc.goalRepo.Delete(ctx, goal.ID); err != nil {
		return fmt.Errorf("failed to delete savings goal: %w", err)
	}

	return nil
}

func (uc *GoalUseCase) findOwned(ctx context.Context, goalID, userID uuid.UUID) (*entity.SavingsGoal, error) {
	goal, err := uc.goalRepo.FindByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"savings goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find savings goal: %w", err)
	}

	if goal.UserID != userID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeNotAuthorizedGoal,
			"not authorized to modify this goal",
			domainerror.ErrNotAuthorizedToModifyGoal,
		)
	}

	return goal, nil
}

func validateGoalAmounts(target, saved decimal.Decimal) error {
	if !target.IsPositive() || saved.IsNegative() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalAmount,
			"target must be positive and saved amount non-negative",
			domainerror.ErrInvalidGoalAmount,
		)
	}
	return nil
}

func validateDeadline(months *int) error {
	if months == nil {
		return nil
	}
	if *months < 1 || *months > MaxDeadlineMonths {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalDeadline,
			fmt.Sprintf("deadline must be between 1 and %d months", MaxDeadlineMonths),
			domainerror.ErrInvalidGoalDeadline,
		)
	}
	return nil
}
