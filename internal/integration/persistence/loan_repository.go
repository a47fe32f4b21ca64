// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/persistence/model"
)

// loanRepository implements the adapter.LoanRepository interface.
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a new loan repository instance.
func NewLoanRepository(db *gorm.DB) adapter.LoanRepository {
	return &loanRepository{
		db: db,
	}
}

// FindByUserAndKind retrieves the user's loan of the given kind.
func (r *loanRepository) FindByUserAndKind(ctx context.Context, userID uuid.UUID, kind entity.LoanKind) (*entity.Loan, error) {
	var loanModel model.LoanModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ?", userID, string(kind)).
		First(&loanModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrLoanNotFound
		}
		return nil, result.Error
	}
	return loanModel.ToEntity(), nil
}

// Save upserts the loan. The unique (user_id, kind) index makes Save safe
// against duplicate records.
func (r *loanRepository) Save(ctx context.Context, loan *entity.Loan) error {
	loanModel := model.LoanFromEntity(loan)
	result := r.db.WithContext(ctx).Save(loanModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes the user's loan of the given kind.
func (r *loanRepository) Delete(ctx context.Context, userID uuid.UUID, kind entity.LoanKind) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ?", userID, string(kind)).
		Delete(&model.LoanModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrLoanNotFound
	}
	return nil
}
