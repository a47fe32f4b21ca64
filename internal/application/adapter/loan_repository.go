// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// LoanRepository defines the interface for financing persistence operations.
// A user keeps at most one loan record per kind (home, auto).
type LoanRepository interface {
	// FindByUserAndKind retrieves the user's loan of the given kind.
	FindByUserAndKind(ctx context.Context, userID uuid.UUID, kind entity.LoanKind) (*entity.Loan, error)

	// Save inserts the loan if the user has none of that kind, otherwise
	// replaces the existing record's fields.
	Save(ctx context.Context, loan *entity.Loan) error

	// Delete removes the user's loan of the given kind.
	Delete(ctx context.Context, userID uuid.UUID, kind entity.LoanKind) error
}
