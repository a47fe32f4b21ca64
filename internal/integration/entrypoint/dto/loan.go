// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// SaveLoanRequest represents the request body for loan upsert. One loan is
// kept per kind ("home" or "auto"); saving replaces the existing record.
type SaveLoanRequest struct {
	TotalValue        float64 `json:"total_value" binding:"required"`
	FinancedValue     float64 `json:"financed_value" binding:"required"`
	DownPayment       float64 `json:"down_payment,omitempty"`
	InstallmentValue  float64 `json:"installment_value" binding:"required"`
	InstallmentsTotal int     `json:"installments_total" binding:"required,min=1"`
	InstallmentsPaid  int     `json:"installments_paid,omitempty"`
	InterestRate      float64 `json:"interest_rate,omitempty"`
	ConstructionRate  float64 `json:"construction_rate,omitempty"`
	CarModel          string  `json:"car_model,omitempty"`
	StartDate         *string `json:"start_date,omitempty"`
}

// LoanResponse represents a single loan in API responses.
type LoanResponse struct {
	ID                    string    `json:"id"`
	Kind                  string    `json:"kind"`
	TotalValue            string    `json:"total_value"`
	FinancedValue         string    `json:"financed_value"`
	DownPayment           string    `json:"down_payment"`
	InstallmentValue      string    `json:"installment_value"`
	InstallmentsTotal     int       `json:"installments_total"`
	InstallmentsPaid      int       `json:"installments_paid"`
	RemainingInstallments int       `json:"remaining_installments"`
	OutstandingBalance    string    `json:"outstanding_balance"`
	InterestRate          string    `json:"interest_rate"`
	ConstructionRate      string    `json:"construction_rate,omitempty"`
	CarModel              string    `json:"car_model,omitempty"`
	StartDate             *string   `json:"start_date,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// ToLoanResponse converts a domain Loan entity to a LoanResponse DTO.
func ToLoanResponse(loan *entity.Loan) LoanResponse {
	resp := LoanResponse{
		ID:                    loan.ID.String(),
		Kind:                  string(loan.Kind),
		TotalValue:            loan.TotalValue.String(),
		FinancedValue:         loan.FinancedValue.String(),
		DownPayment:           loan.DownPayment.String(),
		InstallmentValue:      loan.InstallmentValue.String(),
		InstallmentsTotal:     loan.InstallmentsTotal,
		InstallmentsPaid:      loan.InstallmentsPaid,
		RemainingInstallments: loan.RemainingInstallments(),
		OutstandingBalance:    loan.OutstandingBalance().String(),
		InterestRate:          loan.InterestRate.String(),
		ConstructionRate:      loan.ConstructionRate.String(),
		CarModel:              loan.CarModel,
		CreatedAt:             loan.CreatedAt,
		UpdatedAt:             loan.UpdatedAt,
	}

	if loan.StartDate != nil {
		startDate := loan.StartDate.Format("2006-01-02")
		resp.StartDate = &startDate
	}

	return resp
}
