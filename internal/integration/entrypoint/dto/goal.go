// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for savings goal creation.
type CreateGoalRequest struct {
	Name           string  `json:"name" binding:"required,min=1,max=100"`
	TargetAmount   float64 `json:"target_amount" binding:"required"`
	SavedAmount    float64 `json:"saved_amount,omitempty"`
	DeadlineMonths *int    `json:"deadline_months,omitempty"`
}

// UpdateGoalRequest represents the request body for savings goal update.
type UpdateGoalRequest struct {
	Name           *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	TargetAmount   *float64 `json:"target_amount,omitempty"`
	SavedAmount    *float64 `json:"saved_amount,omitempty"`
	DeadlineMonths *int     `json:"deadline_months,omitempty"`
}

// GoalResponse represents a single savings goal in API responses.
type GoalResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	TargetAmount   string    `json:"target_amount"`
	SavedAmount    string    `json:"saved_amount"`
	Progress       string    `json:"progress"`
	DeadlineMonths *int      `json:"deadline_months,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ListGoalsResponse represents the response for savings goal listing.
type ListGoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain SavingsGoal entity to a GoalResponse DTO.
func ToGoalResponse(goal *entity.SavingsGoal) GoalResponse {
	return GoalResponse{
		ID:             goal.ID.String(),
		Name:           goal.Name,
		TargetAmount:   goal.TargetAmount.String(),
		SavedAmount:    goal.SavedAmount.String(),
		Progress:       goal.Progress().String(),
		DeadlineMonths: goal.DeadlineMonths,
		CreatedAt:      goal.CreatedAt,
		UpdatedAt:      goal.UpdatedAt,
	}
}
