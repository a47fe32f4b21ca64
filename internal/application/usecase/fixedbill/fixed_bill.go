// Package fixedbill contains recurring bill use cases.
package fixedbill

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

// CreateBillInput represents the input for fixed bill creation.
type CreateBillInput struct {
	UserID   uuid.UUID
	Name     string
	Amount   decimal.Decimal
	DueDay   int
	Category string
}

// UpdateBillInput represents the input for fixed bill update. Nil fields are
// left unchanged.
type UpdateBillInput struct {
	BillID   uuid.UUID
	UserID   uuid.UUID
	Name     *string
	Amount   *decimal.Decimal
	DueDay   *int
	Category *string
	Active   *bool
}

// BillOutput wraps a single fixed bill.
type BillOutput struct {
	Bill *entity.FixedBill
}

// ListBillsOutput wraps a user's fixed bills plus the monthly total of the
// active ones.
type ListBillsOutput struct {
	Bills        []*entity.FixedBill
	MonthlyTotal decimal.Decimal
}

// FixedBillUseCase handles recurring bill CRUD.
type FixedBillUseCase struct {
	billRepo adapter.FixedBillRepository
}

// NewFixedBillUseCase creates a new FixedBillUseCase instance.
func NewFixedBillUseCase(billRepo adapter.FixedBillRepository) *FixedBillUseCase {
	return &FixedBillUseCase{
		billRepo: billRepo,
	}
}

// Create registers a new fixed bill.
func (uc *FixedBillUseCase) Create(ctx context.Context, input CreateBillInput) (*BillOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeMissingBillFields,
			"bill name is required",
			nil,
		)
	}
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeInvalidBillAmount,
			"bill amount must be greater than zero",
			domainerror.ErrInvalidBillAmount,
		)
	}
	if input.DueDay < 1 || input.DueDay > 31 {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeInvalidBillDueDay,
			"due day must be between 1 and 31",
			domainerror.ErrInvalidBillDueDay,
		)
	}

	bill := entity.NewFixedBill(input.UserID, input.Name, input.Amount, input.DueDay, input.Category)

	if err := uc.billRepo.Create(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to create fixed bill: %w", err)
	}

	return &BillOutput{Bill: bill}, nil
}

// List retrieves a user's fixed bills and sums the active ones, which is the
// dashboard's committed-spending figure.
func (uc *FixedBillUseCase) List(ctx context.Context, userID uuid.UUID) (*ListBillsOutput, error) {
	bills, err := uc.billRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed bills: %w", err)
	}

	total := decimal.Zero
	for _, bill := range bills {
		if bill.Active {
			total = total.Add(bill.Amount)
		}
	}

	return &ListBillsOutput{Bills: bills, MonthlyTotal: total}, nil
}

// Update changes an existing bill's fields.
func (uc *FixedBillUseCase) Update(ctx context.Context, input UpdateBillInput) (*BillOutput, error) {
	bill, err := uc.findOwned(ctx, input.BillID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeMissingBillFields,
				"bill name is required",
				nil,
			)
		}
		bill.Name = *input.Name
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeInvalidBillAmount,
				"bill amount must be greater than zero",
				domainerror.ErrInvalidBillAmount,
			)
		}
		bill.Amount = *input.Amount
	}

	if input.DueDay != nil {
		if *input.DueDay < 1 || *input.DueDay > 31 {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeInvalidBillDueDay,
				"due day must be between 1 and 31",
				domainerror.ErrInvalidBillDueDay,
			)
		}
		bill.DueDay = *input.DueDay
	}

	if input.Category != nil {
		bill.Category = *input.Category
	}

	if input.Active != nil {
		bill.Active = *input.Active
	}

	bill.UpdatedAt = time.Now().UTC()

	if err := uc.billRepo.Update(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to update fixed bill: %w", err)
	}

	return &BillOutput{Bill: bill}, nil
}

// Delete removes a fixed bill.
func (uc *FixedBillUseCase) Delete(ctx context.Context, billID, userID uuid.UUID) error {
	bill, err := uc.findOwned(ctx, billID, userID)
	if err != nil {
		return err
	}

	if err := uc.billRepo.Delete(ctx, bill.ID); err != nil {
		return fmt.Errorf("failed to delete fixed bill: %w", err)
	}

	return nil
}

func (uc *FixedBillUseCase) findOwned(ctx context.Context, billID, userID uuid.UUID) (*entity.FixedBill, error) {
	bill, err := uc.billRepo.FindByID(ctx, billID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBillNotFound) {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeBillNotFound,
				"fixed bill not found",
				domainerror.ErrBillNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find fixed bill: %w", err)
	}

	if bill.UserID != userID {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeNotAuthorizedBill,
			"not authorized to modify this bill",
			domainerror.ErrNotAuthorizedToModifyBill,
		)
	}

	return bill, nil
}
