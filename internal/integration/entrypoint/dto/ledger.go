// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-dashboard/backend/internal/application/usecase/ledger"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	"github.com/finance-dashboard/backend/internal/domain/valueobject"
)

// CreateEntryRequest represents the request body for ledger entry creation.
type CreateEntryRequest struct {
	Kind          string  `json:"kind" binding:"required,oneof=expense income"`
	Category      string  `json:"category" binding:"required,min=1,max=100"`
	Description   string  `json:"description" binding:"required,min=1,max=200"`
	Amount        float64 `json:"amount" binding:"required"`
	Date          string  `json:"date" binding:"required"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	BankAccount   string  `json:"bank_account,omitempty"`
	CardID        *string `json:"card_id,omitempty"`
	Installments  *int    `json:"installments,omitempty"`
	Notes         string  `json:"notes,omitempty" binding:"omitempty,max=500"`
}

// UpdateEntryRequest represents the request body for ledger entry update.
type UpdateEntryRequest struct {
	Category    *string  `json:"category,omitempty" binding:"omitempty,min=1,max=100"`
	Description *string  `json:"description,omitempty" binding:"omitempty,min=1,max=200"`
	Amount      *float64 `json:"amount,omitempty"`
	Date        *string  `json:"date,omitempty"`
	BankAccount *string  `json:"bank_account,omitempty"`
	Notes       *string  `json:"notes,omitempty" binding:"omitempty,max=500"`
}

// EntryResponse represents a single ledger entry in API responses.
type EntryResponse struct {
	ID               string    `json:"id"`
	Kind             string    `json:"kind"`
	Category         string    `json:"category"`
	Description      string    `json:"description"`
	Amount           string    `json:"amount"`
	AmountFormatted  string    `json:"amount_formatted"`
	Date             string    `json:"date"`
	ReferenceMonth   string    `json:"reference_month"`
	PaymentMethod    string    `json:"payment_method"`
	BankAccount      string    `json:"bank_account,omitempty"`
	CardID           *string   `json:"card_id,omitempty"`
	PurchaseID       *string   `json:"purchase_id,omitempty"`
	InstallmentIndex *int      `json:"installment_index,omitempty"`
	InstallmentCount *int      `json:"installment_count,omitempty"`
	InstallmentLabel string    `json:"installment_label"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// EntryTotalsResponse represents aggregated totals for a set of entries.
type EntryTotalsResponse struct {
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Balance string `json:"balance"`
}

// ListEntriesResponse represents the response for ledger entry listing.
type ListEntriesResponse struct {
	Entries []EntryResponse     `json:"entries"`
	Totals  EntryTotalsResponse `json:"totals"`
}

// CreateEntryResponse represents the response for ledger entry creation.
// A parceled purchase returns every generated installment.
type CreateEntryResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// DeletePurchaseResponse represents the response for purchase group deletion.
type DeletePurchaseResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// CategoriesResponse lists the suggested categories for the entry forms.
type CategoriesResponse struct {
	EntryCategories []string `json:"entry_categories"`
	BillCategories  []string `json:"bill_categories"`
}

// ToEntryResponse converts a domain LedgerEntry entity to an EntryResponse DTO.
func ToEntryResponse(entry *entity.LedgerEntry) EntryResponse {
	resp := EntryResponse{
		ID:               entry.ID.String(),
		Kind:             string(entry.Kind),
		Category:         entry.Category,
		Description:      entry.Description,
		Amount:           entry.Amount.String(),
		AmountFormatted:  valueobject.FormatBRL(entry.Amount),
		Date:             entry.Date.Format("2006-01-02"),
		ReferenceMonth:   entry.ReferenceMonth,
		PaymentMethod:    string(entry.PaymentMethod),
		BankAccount:      entry.BankAccount,
		InstallmentIndex: entry.InstallmentIndex,
		InstallmentCount: entry.InstallmentCount,
		InstallmentLabel: entry.InstallmentLabel(),
		Notes:            entry.Notes,
		CreatedAt:        entry.CreatedAt,
		UpdatedAt:        entry.UpdatedAt,
	}

	if entry.CardID != nil {
		cardID := entry.CardID.String()
		resp.CardID = &cardID
	}
	if entry.PurchaseID != nil {
		purchaseID := entry.PurchaseID.String()
		resp.PurchaseID = &purchaseID
	}

	return resp
}

// ToListEntriesResponse converts a ledger listing output to its response DTO.
func ToListEntriesResponse(output *ledger.ListEntriesOutput) ListEntriesResponse {
	entries := make([]EntryResponse, len(output.Entries))
	for i, entry := range output.Entries {
		entries[i] = ToEntryResponse(entry)
	}

	return ListEntriesResponse{
		Entries: entries,
		Totals: EntryTotalsResponse{
			Income:  output.Totals.IncomeTotal.String(),
			Expense: output.Totals.ExpenseTotal.String(),
			Balance: output.Totals.Balance.String(),
		},
	}
}
