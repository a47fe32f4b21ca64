// Package statement contains card statement use cases.
package statement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/domain/valueobject"
)

// PayStatementInput represents the input for a statement payment.
type PayStatementInput struct {
	UserID         uuid.UUID
	CardID         uuid.UUID
	Amount         decimal.Decimal
	PaymentDate    time.Time
	BankAccount    string
	RecordAsEntry  bool
	ReferenceMonth string // month the payment is recorded against; used only when RecordAsEntry is set
}

// PayStatementOutput represents the output of a statement payment.
type PayStatementOutput struct {
	Card         *entity.Card
	PaymentEntry *entity.LedgerEntry
}

// PayStatementUseCase registers a statement payment: the paid amount is
// released from the card's used limit and optionally recorded as an expense
// in the ledger.
type PayStatementUseCase struct {
	ledgerRepo adapter.LedgerRepository
	cardRepo   adapter.CardRepository
}

// NewPayStatementUseCase creates a new PayStatementUseCase instance.
func NewPayStatementUseCase(ledgerRepo adapter.LedgerRepository, cardRepo adapter.CardRepository) *PayStatementUseCase {
	return &PayStatementUseCase{
		ledgerRepo: ledgerRepo,
		cardRepo:   cardRepo,
	}
}

// Execute performs the statement payment. The used limit is decremented by
// the paid amount, floored at zero so a payment above the outstanding value
// never drives the limit negative. The optional payment entry carries no
// card reference, so it never shows up on a statement as a new charge.
func (uc *PayStatementUseCase) Execute(ctx context.Context, input PayStatementInput) (*PayStatementOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewStatementError(
			domainerror.ErrCodeInvalidPaymentAmount,
			"payment amount must be greater than zero",
			domainerror.ErrInvalidPaymentAmount,
		)
	}

	if input.RecordAsEntry && !valueobject.ValidBucket(input.ReferenceMonth) {
		return nil, domainerror.NewStatementError(
			domainerror.ErrCodeInvalidStatementMonth,
			"reference month must be in YYYY-MM format",
			nil,
		)
	}

	card, err := uc.cardRepo.FindByID(ctx, input.CardID)
	if err != nil || card.UserID != input.UserID {
		return nil, domainerror.NewStatementError(
			domainerror.ErrCodeStatementCardNotFound,
			"card not found",
			domainerror.ErrCardNotFound,
		)
	}

	var paymentEntry *entity.LedgerEntry
	if input.RecordAsEntry {
		paymentEntry = entity.NewLedgerEntry(
			input.UserID,
			entity.EntryKindExpense,
			"Fatura do cartão",
			fmt.Sprintf("Pagamento fatura %s", card.Name),
			input.Amount,
			input.PaymentDate,
			input.ReferenceMonth,
			entity.PaymentMethodTransfer,
			input.BankAccount,
			nil, // no card reference: the payment is not a card charge
			"",
		)
	}

	// The limit release and the optional payment entry commit together, so
	// the ledger never loses the payment record after the limit moved.
	if err := uc.ledgerRepo.RecordStatementPayment(ctx, card.ID, input.Amount, paymentEntry); err != nil {
		return nil, fmt.Errorf("failed to record statement payment: %w", err)
	}

	return &PayStatementOutput{Card: card, PaymentEntry: paymentEntry}, nil
}
