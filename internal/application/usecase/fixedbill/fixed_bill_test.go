package fixedbill

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

type fakeBillRepo struct {
	bills map[uuid.UUID]*entity.FixedBill
}

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{bills: make(map[uuid.UUID]*entity.FixedBill)}
}

func (f *fakeBillRepo) Create(_ context.Context, bill *entity.FixedBill) error {
	f.bills[bill.ID] = bill
	return nil
}

func (f *fakeBillRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.FixedBill, error) {
	bill, ok := f.bills[id]
	if !ok {
		return nil, domainerror.ErrBillNotFound
	}
	return bill, nil
}

func (f *fakeBillRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.FixedBill, error) {
	var result []*entity.FixedBill
	for _, bill := range f.bills {
		if bill.UserID == userID {
			result = append(result, bill)
		}
	}
	return result, nil
}

func (f *fakeBillRepo) Update(_ context.Context, bill *entity.FixedBill) error {
	f.bills[bill.ID] = bill
	return nil
}

func (f *fakeBillRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.bills, id)
	return nil
}

func TestCreateBillActiveByDefault(t *testing.T) {
	uc := NewFixedBillUseCase(newFakeBillRepo())

	output, err := uc.Create(context.Background(), CreateBillInput{
		UserID:   uuid.New(),
		Name:     "Aluguel",
		Amount:   decimal.RequireFromString("1800.00"),
		DueDay:   5,
		Category: "Moradia",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Bill.Active {
		t.Error("new bills must start active")
	}
}

func TestCreateBillValidation(t *testing.T) {
	uc := NewFixedBillUseCase(newFakeBillRepo())

	tests := []struct {
		name         string
		input        CreateBillInput
		expectedCode domainerror.BillErrorCode
	}{
		{
			name:         "missing name",
			input:        CreateBillInput{Amount: decimal.NewFromInt(100), DueDay: 5},
			expectedCode: domainerror.ErrCodeMissingBillFields,
		},
		{
			name:         "zero amount",
			input:        CreateBillInput{Name: "Internet", Amount: decimal.Zero, DueDay: 5},
			expectedCode: domainerror.ErrCodeInvalidBillAmount,
		},
		{
			name:         "due day out of range",
			input:        CreateBillInput{Name: "Internet", Amount: decimal.NewFromInt(100), DueDay: 32},
			expectedCode: domainerror.ErrCodeInvalidBillDueDay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.UserID = uuid.New()
			_, err := uc.Create(context.Background(), tt.input)

			var billErr *domainerror.BillError
			if !errors.As(err, &billErr) || billErr.Code != tt.expectedCode {
				t.Fatalf("expected code %s, got %v", tt.expectedCode, err)
			}
		})
	}
}

func TestListBillsSumsOnlyActive(t *testing.T) {
	repo := newFakeBillRepo()
	userID := uuid.New()

	rent := entity.NewFixedBill(userID, "Aluguel", decimal.RequireFromString("1800.00"), 5, "Moradia")
	internet := entity.NewFixedBill(userID, "Internet", decimal.RequireFromString("99.90"), 10, "Moradia")
	gym := entity.NewFixedBill(userID, "Academia", decimal.RequireFromString("120.00"), 15, "Saúde")
	gym.Active = false

	repo.bills[rent.ID] = rent
	repo.bills[internet.ID] = internet
	repo.bills[gym.ID] = gym

	uc := NewFixedBillUseCase(repo)

	output, err := uc.List(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Bills) != 3 {
		t.Fatalf("expected 3 bills, got %d", len(output.Bills))
	}
	if !output.MonthlyTotal.Equal(decimal.RequireFromString("1899.90")) {
		t.Errorf("expected monthly total 1899.90, got %s", output.MonthlyTotal.String())
	}
}

func TestUpdateBillToggleActive(t *testing.T) {
	repo := newFakeBillRepo()
	userID := uuid.New()
	bill := entity.NewFixedBill(userID, "Streaming", decimal.RequireFromString("39.90"), 20, "Lazer")
	repo.bills[bill.ID] = bill

	uc := NewFixedBillUseCase(repo)
	inactive := false

	output, err := uc.Update(context.Background(), UpdateBillInput{
		BillID: bill.ID,
		UserID: userID,
		Active: &inactive,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Bill.Active {
		t.Error("expected bill to be inactive")
	}
}

func TestDeleteBillRejectsOtherUser(t *testing.T) {
	repo := newFakeBillRepo()
	bill := entity.NewFixedBill(uuid.New(), "Streaming", decimal.RequireFromString("39.90"), 20, "Lazer")
	repo.bills[bill.ID] = bill

	uc := NewFixedBillUseCase(repo)

	err := uc.Delete(context.Background(), bill.ID, uuid.New())

	var billErr *domainerror.BillError
	if !errors.As(err, &billErr) || billErr.Code != domainerror.ErrCodeNotAuthorizedBill {
		t.Fatalf("expected not authorized error, got %v", err)
	}
}
