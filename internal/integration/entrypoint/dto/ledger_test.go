package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

func TestToEntryResponseFormatsAmount(t *testing.T) {
	entry := entity.NewLedgerEntry(
		uuid.New(),
		entity.EntryKindExpense,
		"Mercado",
		"Compra do mês",
		decimal.RequireFromString("1234.56"),
		time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
		"2025-03",
		entity.PaymentMethodPix,
		"",
		nil,
		"",
	)

	resp := ToEntryResponse(entry)

	if resp.Amount != "1234.56" {
		t.Errorf("expected raw amount 1234.56, got %s", resp.Amount)
	}
	if resp.AmountFormatted != "R$ 1.234,56" {
		t.Errorf("expected formatted amount R$ 1.234,56, got %s", resp.AmountFormatted)
	}
}

func TestToStatementHistoryResponseFormatsTotals(t *testing.T) {
	months := []*entity.StatementSummary{
		{ReferenceMonth: "2025-04", Total: decimal.RequireFromString("900.00"), Count: 4},
	}

	resp := ToStatementHistoryResponse(months)

	if resp.Months[0].Total != "900" && resp.Months[0].Total != "900.00" {
		t.Errorf("unexpected raw total %s", resp.Months[0].Total)
	}
	if resp.Months[0].TotalFormatted != "R$ 900,00" {
		t.Errorf("expected formatted total R$ 900,00, got %s", resp.Months[0].TotalFormatted)
	}
}
