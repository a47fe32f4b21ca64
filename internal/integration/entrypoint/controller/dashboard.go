// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finance-dashboard/backend/internal/application/usecase/dashboard"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard aggregation endpoints.
type DashboardController struct {
	monthlySummaryUseCase    *dashboard.MonthlySummaryUseCase
	categoryBreakdownUseCase *dashboard.CategoryBreakdownUseCase
	monthlyEvolutionUseCase  *dashboard.MonthlyEvolutionUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	monthlySummaryUseCase *dashboard.MonthlySummaryUseCase,
	categoryBreakdownUseCase *dashboard.CategoryBreakdownUseCase,
	monthlyEvolutionUseCase *dashboard.MonthlyEvolutionUseCase,
) *DashboardController {
	return &DashboardController{
		monthlySummaryUseCase:    monthlySummaryUseCase,
		categoryBreakdownUseCase: categoryBreakdownUseCase,
		monthlyEvolutionUseCase:  monthlyEvolutionUseCase,
	}
}

// Summary handles GET /dashboard/summary requests.
func (c *DashboardController) Summary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.monthlySummaryUseCase.Execute(ctx.Request.Context(), dashboard.MonthlySummaryInput{
		UserID:         userID,
		ReferenceMonth: ctx.Query("month"),
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(output))
}

// Categories handles GET /dashboard/categories requests.
func (c *DashboardController) Categories(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.categoryBreakdownUseCase.Execute(ctx.Request.Context(), dashboard.CategoryBreakdownInput{
		UserID:         userID,
		ReferenceMonth: ctx.Query("month"),
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output))
}

// Evolution handles GET /dashboard/evolution requests. The "months" query
// parameter sets the trailing window size.
func (c *DashboardController) Evolution(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	months := 0
	if rawMonths := ctx.Query("months"); rawMonths != "" {
		parsed, err := strconv.Atoi(rawMonths)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid months parameter",
			})
			return
		}
		months = parsed
	}

	output, err := c.monthlyEvolutionUseCase.Execute(ctx.Request.Context(), dashboard.MonthlyEvolutionInput{
		UserID:         userID,
		ReferenceMonth: ctx.Query("month"),
		Months:         months,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyEvolutionResponse(output))
}

// handleDashboardError handles dashboard errors. The dashboard reuses the
// ledger error type since its inputs are ledger filters.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		statusCode := http.StatusBadRequest
		if ledgerErr.Code == domainerror.ErrCodeEntryNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
