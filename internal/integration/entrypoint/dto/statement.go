// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finance-dashboard/backend/internal/domain/entity"
	"github.com/finance-dashboard/backend/internal/domain/valueobject"
)

// PayStatementRequest represents the request body for a statement payment.
type PayStatementRequest struct {
	Amount         float64 `json:"amount" binding:"required"`
	PaymentDate    string  `json:"payment_date" binding:"required"`
	BankAccount    string  `json:"bank_account,omitempty"`
	RecordAsEntry  bool    `json:"record_as_entry,omitempty"`
	ReferenceMonth string  `json:"reference_month,omitempty"`
}

// StatementLineResponse represents one line of a card statement.
type StatementLineResponse struct {
	Entry EntryResponse `json:"entry"`
	Label string        `json:"label"`
}

// StatementResponse represents a card's statement for one reference month.
type StatementResponse struct {
	CardID         string                  `json:"card_id"`
	ReferenceMonth string                  `json:"reference_month"`
	Total          string                  `json:"total"`
	TotalFormatted string                  `json:"total_formatted"`
	Count          int                     `json:"count"`
	Lines          []StatementLineResponse `json:"lines"`
}

// StatementSummaryResponse represents one row of a card's statement history.
type StatementSummaryResponse struct {
	ReferenceMonth string `json:"reference_month"`
	Total          string `json:"total"`
	TotalFormatted string `json:"total_formatted"`
	Count          int    `json:"count"`
}

// StatementHistoryResponse represents the response for statement history.
type StatementHistoryResponse struct {
	Months []StatementSummaryResponse `json:"months"`
}

// PayStatementResponse represents the response for a statement payment.
type PayStatementResponse struct {
	Card         CardResponse   `json:"card"`
	PaymentEntry *EntryResponse `json:"payment_entry,omitempty"`
}

// ToStatementResponse converts a domain Statement to its response DTO.
func ToStatementResponse(statement *entity.Statement) StatementResponse {
	lines := make([]StatementLineResponse, len(statement.Lines))
	for i, line := range statement.Lines {
		lines[i] = StatementLineResponse{
			Entry: ToEntryResponse(line.Entry),
			Label: line.Label,
		}
	}

	return StatementResponse{
		CardID:         statement.CardID.String(),
		ReferenceMonth: statement.ReferenceMonth,
		Total:          statement.Total.String(),
		TotalFormatted: valueobject.FormatBRL(statement.Total),
		Count:          statement.Count,
		Lines:          lines,
	}
}

// ToStatementHistoryResponse converts statement summaries to their response DTO.
func ToStatementHistoryResponse(months []*entity.StatementSummary) StatementHistoryResponse {
	rows := make([]StatementSummaryResponse, len(months))
	for i, month := range months {
		rows[i] = StatementSummaryResponse{
			ReferenceMonth: month.ReferenceMonth,
			Total:          month.Total.String(),
			TotalFormatted: valueobject.FormatBRL(month.Total),
			Count:          month.Count,
		}
	}
	return StatementHistoryResponse{Months: rows}
}
