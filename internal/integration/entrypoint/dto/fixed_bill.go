// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// CreateBillRequest represents the request body for fixed bill creation.
type CreateBillRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=100"`
	Amount   float64 `json:"amount" binding:"required"`
	DueDay   int     `json:"due_day" binding:"required,min=1,max=31"`
	Category string  `json:"category" binding:"required,min=1,max=100"`
}

// UpdateBillRequest represents the request body for fixed bill update.
type UpdateBillRequest struct {
	Name     *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Amount   *float64 `json:"amount,omitempty"`
	DueDay   *int     `json:"due_day,omitempty" binding:"omitempty,min=1,max=31"`
	Category *string  `json:"category,omitempty" binding:"omitempty,min=1,max=100"`
	Active   *bool    `json:"active,omitempty"`
}

// BillResponse represents a single fixed bill in API responses.
type BillResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Amount    string    `json:"amount"`
	DueDay    int       `json:"due_day"`
	Category  string    `json:"category"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListBillsResponse represents the response for fixed bill listing. The
// monthly total sums only the active bills.
type ListBillsResponse struct {
	Bills        []BillResponse `json:"bills"`
	MonthlyTotal string         `json:"monthly_total"`
}

// ToBillResponse converts a domain FixedBill entity to a BillResponse DTO.
func ToBillResponse(bill *entity.FixedBill) BillResponse {
	return BillResponse{
		ID:        bill.ID.String(),
		Name:      bill.Name,
		Amount:    bill.Amount.String(),
		DueDay:    bill.DueDay,
		Category:  bill.Category,
		Active:    bill.Active,
		CreatedAt: bill.CreatedAt,
		UpdatedAt: bill.UpdatedAt,
	}
}
