// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// FixedBillRepository defines the interface for fixed bill persistence operations.
type FixedBillRepository interface {
	// Create creates a new fixed bill in the database.
	Create(ctx context.Context, bill *entity.FixedBill) error

	// FindByID retrieves a fixed bill by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FixedBill, error)

	// FindByUser retrieves all fixed bills for a given user, ordered by due day.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FixedBill, error)

	// Update updates an existing fixed bill in the database.
	Update(ctx context.Context, bill *entity.FixedBill) error

	// Delete soft-deletes a fixed bill from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
