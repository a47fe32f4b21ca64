// Package loan contains financing record use cases.
package loan

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

// SaveLoanInput represents the input for saving a financing record. Saving
// replaces the user's existing record of the same kind.
type SaveLoanInput struct {
	UserID            uuid.UUID
	Kind              entity.LoanKind
	TotalValue        decimal.Decimal
	FinancedValue     decimal.Decimal
	DownPayment       decimal.Decimal
	InstallmentValue  decimal.Decimal
	InstallmentsTotal int
	InstallmentsPaid  int
	InterestRate      decimal.Decimal
	ConstructionRate  decimal.Decimal
	CarModel          string
	StartDate         *time.Time
}

// LoanOutput wraps a single financing record.
type LoanOutput struct {
	Loan *entity.Loan
}

// LoanUseCase handles the per-kind financing records (home, auto).
type LoanUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewLoanUseCase creates a new LoanUseCase instance.
func NewLoanUseCase(loanRepo adapter.LoanRepository) *LoanUseCase {
	return &LoanUseCase{
		loanRepo: loanRepo,
	}
}

// Get retrieves the user's financing record of the given kind.
func (uc *LoanUseCase) Get(ctx context.Context, userID uuid.UUID, kind entity.LoanKind) (*LoanOutput, error) {
	if !entity.ValidLoanKind(kind) {
		return nil, domainerror.NewLoanError(
			domainerror.ErrCodeInvalidLoanKind,
			"loan kind must be 'home' or 'auto'",
			domainerror.ErrInvalidLoanKind,
		)
	}

	loan, err := uc.loanRepo.FindByUserAndKind(ctx, userID, kind)
	if err != nil {
		if errors.Is(err, domainerror.ErrLoanNotFound) {
			return nil, domainerror.NewLoanError(
				domainerror.ErrCodeLoanNotFound,
				"no financing record for this kind",
				domainerror.ErrLoanNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find loan: %w", err)
	}

	return &LoanOutput{Loan: loan}, nil
}

// Save upserts the user's financing record of the given kind.
func (uc *LoanUseCase) Save(ctx context.Context, input SaveLoanInput) (*LoanOutput, error) {
	if !entity.ValidLoanKind(input.Kind) {
		return nil, domainerror.NewLoanError(
			domainerror.ErrCodeInvalidLoanKind,
			"loan kind must be 'home' or 'auto'",
			domainerror.ErrInvalidLoanKind,
		)
	}

	if input.TotalValue.IsNegative() || input.FinancedValue.IsNegative() ||
		input.DownPayment.IsNegative() || input.InstallmentValue.IsNegative() {
		return nil, domainerror.NewLoanError(
			domainerror.ErrCodeInvalidLoanValues,
			"monetary values must not be negative",
			domainerror.ErrInvalidLoanValues,
		)
	}

	if input.InstallmentsTotal < 0 || input.InstallmentsPaid < 0 ||
		input.InstallmentsPaid > input.InstallmentsTotal {
		return nil, domainerror.NewLoanError(
			domainerror.ErrCodeInvalidLoanValues,
			"paid installments cannot exceed the total",
			domainerror.ErrInvalidLoanValues,
		)
	}

	loan, err := uc.loanRepo.FindByUserAndKind(ctx, input.UserID, input.Kind)
	if err != nil {
		if !errors.Is(err, domainerror.ErrLoanNotFound) {
			return nil, fmt.Errorf("failed to find loan: %w", err)
		}
		loan = entity.NewLoan(input.UserID, input.Kind)
	}

	loan.TotalValue = input.TotalValue
	loan.FinancedValue = input.FinancedValue
	loan.DownPayment = input.DownPayment
	loan.InstallmentValue = input.InstallmentValue
	loan.InstallmentsTotal = input.InstallmentsTotal
	loan.InstallmentsPaid = input.InstallmentsPaid
	loan.InterestRate = input.InterestRate
	loan.ConstructionRate = input.ConstructionRate
	loan.CarModel = input.CarModel
	loan.StartDate = input.StartDate
	loan.UpdatedAt = time.Now().UTC()

	if err := uc.loanRepo.Save(ctx, loan); err != nil {
		return nil, fmt.Errorf("failed to save loan: %w", err)
	}

	return &LoanOutput{Loan: loan}, nil
}

// Delete removes the user's financing record of the given kind.
func (uc *LoanUseCase) Delete(ctx context.Context, userID uuid.UUID, kind entity.LoanKind) error {
	if !entity.ValidLoanKind(kind) {
		return domainerror.NewLoanError(
			domainerror.ErrCodeInvalidLoanKind,
			"loan kind must be 'home' or 'auto'",
			domainerror.ErrInvalidLoanKind,
		)
	}

	if err := uc.loanRepo.Delete(ctx, userID, kind); err != nil {
		if errors.Is(err, domainerror.ErrLoanNotFound) {
			return domainerror.NewLoanError(
				domainerror.ErrCodeLoanNotFound,
				"no financing record for this kind",
				domainerror.ErrLoanNotFound,
			)
		}
		return fmt.Errorf("failed to delete loan: %w", err)
	}

	return nil
}
