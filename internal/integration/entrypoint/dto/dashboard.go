// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finance-dashboard/backend/internal/application/usecase/dashboard"
)

// MonthlySummaryResponse represents a month's income, expense and balance.
type MonthlySummaryResponse struct {
	ReferenceMonth string `json:"reference_month"`
	Income         string `json:"income"`
	Expense        string `json:"expense"`
	Balance        string `json:"balance"`
	EntryCount     int    `json:"entry_count"`
}

// CategoryTotalResponse represents one slice of the expense breakdown.
type CategoryTotalResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
	Count    int    `json:"count"`
}

// CategoryBreakdownResponse represents the expense breakdown by category.
type CategoryBreakdownResponse struct {
	ReferenceMonth string                  `json:"reference_month"`
	Categories     []CategoryTotalResponse `json:"categories"`
	ExpenseTotal   string                  `json:"expense_total"`
}

// MonthPointResponse represents one point of the evolution series.
type MonthPointResponse struct {
	ReferenceMonth string `json:"reference_month"`
	Income         string `json:"income"`
	Expense        string `json:"expense"`
	Balance        string `json:"balance"`
}

// MonthlyEvolutionResponse represents the evolution series, oldest first.
type MonthlyEvolutionResponse struct {
	Points []MonthPointResponse `json:"points"`
}

// ToMonthlySummaryResponse converts a summary output to its response DTO.
func ToMonthlySummaryResponse(output *dashboard.MonthlySummaryOutput) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		ReferenceMonth: output.ReferenceMonth,
		Income:         output.IncomeTotal.String(),
		Expense:        output.ExpenseTotal.String(),
		Balance:        output.Balance.String(),
		EntryCount:     output.EntryCount,
	}
}

// ToCategoryBreakdownResponse converts a breakdown output to its response DTO.
func ToCategoryBreakdownResponse(output *dashboard.CategoryBreakdownOutput) CategoryBreakdownResponse {
	categories := make([]CategoryTotalResponse, len(output.Categories))
	for i, category := range output.Categories {
		categories[i] = CategoryTotalResponse{
			Category: category.Category,
			Total:    category.Total.String(),
			Count:    category.Count,
		}
	}

	return CategoryBreakdownResponse{
		ReferenceMonth: output.ReferenceMonth,
		Categories:     categories,
		ExpenseTotal:   output.ExpenseTotal.String(),
	}
}

// ToMonthlyEvolutionResponse converts an evolution output to its response DTO.
func ToMonthlyEvolutionResponse(output *dashboard.MonthlyEvolutionOutput) MonthlyEvolutionResponse {
	points := make([]MonthPointResponse, len(output.Points))
	for i, point := range output.Points {
		points[i] = MonthPointResponse{
			ReferenceMonth: point.ReferenceMonth,
			Income:         point.IncomeTotal.String(),
			Expense:        point.ExpenseTotal.String(),
			Balance:        point.Balance.String(),
		}
	}
	return MonthlyEvolutionResponse{Points: points}
}
