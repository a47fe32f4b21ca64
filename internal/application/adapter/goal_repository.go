// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// GoalRepository defines the interface for savings goal persistence operations.
type GoalRepository interface {
	// Create creates a new savings goal in the database.
	Create(ctx context.Context, goal *entity.SavingsGoal) error

	// FindByID retrieves a savings goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SavingsGoal, error)

	// FindByUser retrieves all savings goals for a given user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SavingsGoal, error)

	// Update updates an existing savings goal in the database.
	Update(ctx context.Context, goal *entity.SavingsGoal) error

	// Delete soft-deletes a savings goal from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
