package loan

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

type loanKey struct {
	userID uuid.UUID
	kind   entity.LoanKind
}

type fakeLoanRepo struct {
	loans map[loanKey]*entity.Loan
}

func newFakeLoanRepo() *fakeLoanRepo {
	return &fakeLoanRepo{loans: make(map[loanKey]*entity.Loan)}
}

func (f *fakeLoanRepo) FindByUserAndKind(_ context.Context, userID uuid.UUID, kind entity.LoanKind) (*entity.Loan, error) {
	loan, ok := f.loans[loanKey{userID, kind}]
	if !ok {
		return nil, domainerror.ErrLoanNotFound
	}
	return loan, nil
}

func (f *fakeLoanRepo) Save(_ context.Context, loan *entity.Loan) error {
	f.loans[loanKey{loan.UserID, loan.Kind}] = loan
	return nil
}

func (f *fakeLoanRepo) Delete(_ context.Context, userID uuid.UUID, kind entity.LoanKind) error {
	key := loanKey{userID, kind}
	if _, ok := f.loans[key]; !ok {
		return domainerror.ErrLoanNotFound
	}
	delete(f.loans, key)
	return nil
}

func homeInput(userID uuid.UUID) SaveLoanInput {
	return SaveLoanInput{
		UserID:            userID,
		Kind:              entity.LoanKindHome,
		TotalValue:        decimal.RequireFromString("400000.00"),
		FinancedValue:     decimal.RequireFromString("320000.00"),
		InstallmentValue:  decimal.RequireFromString("2100.00"),
		InstallmentsTotal: 360,
		InstallmentsPaid:  24,
		InterestRate:      decimal.RequireFromString("9.5"),
	}
}

func TestSaveLoanCreatesThenReplaces(t *testing.T) {
	repo := newFakeLoanRepo()
	uc := NewLoanUseCase(repo)
	userID := uuid.New()

	first, err := uc.Save(context.Background(), homeInput(userID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Saving again with new figures replaces the record, not duplicates it.
	input := homeInput(userID)
	input.InstallmentsPaid = 36
	second, err := uc.Save(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if second.Loan.ID != first.Loan.ID {
		t.Error("expected the same record to be updated")
	}
	if second.Loan.InstallmentsPaid != 36 {
		t.Errorf("expected 36 paid installments, got %d", second.Loan.InstallmentsPaid)
	}
	if len(repo.loans) != 1 {
		t.Errorf("expected 1 stored loan, got %d", len(repo.loans))
	}
}

func TestSaveLoanKindsAreIndependent(t *testing.T) {
	repo := newFakeLoanRepo()
	uc := NewLoanUseCase(repo)
	userID := uuid.New()

	if _, err := uc.Save(context.Background(), homeInput(userID)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	auto := SaveLoanInput{
		UserID:            userID,
		Kind:              entity.LoanKindAuto,
		TotalValue:        decimal.RequireFromString("90000.00"),
		FinancedValue:     decimal.RequireFromString("60000.00"),
		DownPayment:       decimal.RequireFromString("30000.00"),
		InstallmentValue:  decimal.RequireFromString("1500.00"),
		InstallmentsTotal: 48,
		CarModel:          "Onix 1.0",
	}
	if _, err := uc.Save(context.Background(), auto); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.loans) != 2 {
		t.Fatalf("expected 2 stored loans, got %d", len(repo.loans))
	}
}

func TestSaveLoanValidation(t *testing.T) {
	uc := NewLoanUseCase(newFakeLoanRepo())
	userID := uuid.New()

	badKind := homeInput(userID)
	badKind.Kind = "boat"
	if _, err := uc.Save(context.Background(), badKind); err == nil {
		t.Error("expected an error for an unknown kind")
	}

	negative := homeInput(userID)
	negative.FinancedValue = decimal.NewFromInt(-1)
	if _, err := uc.Save(context.Background(), negative); err == nil {
		t.Error("expected an error for a negative value")
	}

	overpaid := homeInput(userID)
	overpaid.InstallmentsPaid = overpaid.InstallmentsTotal + 1
	_, err := uc.Save(context.Background(), overpaid)
	var loanErr *domainerror.LoanError
	if !errors.As(err, &loanErr) || loanErr.Code != domainerror.ErrCodeInvalidLoanValues {
		t.Fatalf("expected invalid values error, got %v", err)
	}
}

func TestLoanOutstandingBalance(t *testing.T) {
	uc := NewLoanUseCase(newFakeLoanRepo())
	userID := uuid.New()

	output, err := uc.Save(context.Background(), homeInput(userID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Loan.RemainingInstallments() != 336 {
		t.Errorf("expected 336 remaining installments, got %d", output.Loan.RemainingInstallments())
	}
	expected := decimal.RequireFromString("2100.00").Mul(decimal.NewFromInt(336))
	if !output.Loan.OutstandingBalance().Equal(expected) {
		t.Errorf("expected outstanding balance %s, got %s", expected.String(), output.Loan.OutstandingBalance().String())
	}
}

func TestGetLoanNotFound(t *testing.T) {
	uc := NewLoanUseCase(newFakeLoanRepo())

	_, err := uc.Get(context.Background(), uuid.New(), entity.LoanKindAuto)

	var loanErr *domainerror.LoanError
	if !errors.As(err, &loanErr) || loanErr.Code != domainerror.ErrCodeLoanNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestDeleteLoan(t *testing.T) {
	repo := newFakeLoanRepo()
	uc := NewLoanUseCase(repo)
	userID := uuid.New()

	if _, err := uc.Save(context.Background(), homeInput(userID)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := uc.Delete(context.Background(), userID, entity.LoanKindHome); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.loans) != 0 {
		t.Error("expected the loan to be removed")
	}
}
