// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/usecase/loan"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/middleware"
)

// LoanController handles loan tracking endpoints. The loan kind ("home" or
// "auto") comes from the URL path.
type LoanController struct {
	loanUseCase *loan.LoanUseCase
}

// NewLoanController creates a new loan controller instance.
func NewLoanController(loanUseCase *loan.LoanUseCase) *LoanController {
	return &LoanController{
		loanUseCase: loanUseCase,
	}
}

// Get handles GET /loans/:kind requests.
func (c *LoanController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.loanUseCase.Get(ctx.Request.Context(), userID, entity.LoanKind(ctx.Param("kind")))
	if err != nil {
		c.handleLoanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoanResponse(output.Loan))
}

// Save handles PUT /loans/:kind requests. Saving replaces the user's
// existing loan of that kind.
func (c *LoanController) Save(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.SaveLoanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := loan.SaveLoanInput{
		UserID:            userID,
		Kind:              entity.LoanKind(ctx.Param("kind")),
		TotalValue:        decimal.NewFromFloat(req.TotalValue),
		FinancedValue:     decimal.NewFromFloat(req.FinancedValue),
		DownPayment:       decimal.NewFromFloat(req.DownPayment),
		InstallmentValue:  decimal.NewFromFloat(req.InstallmentValue),
		InstallmentsTotal: req.InstallmentsTotal,
		InstallmentsPaid:  req.InstallmentsPaid,
		InterestRate:      decimal.NewFromFloat(req.InterestRate),
		ConstructionRate:  decimal.NewFromFloat(req.ConstructionRate),
		CarModel:          req.CarModel,
	}

	if req.StartDate != nil {
		startDate, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format, expected YYYY-MM-DD",
			})
			return
		}
		input.StartDate = &startDate
	}

	output, err := c.loanUseCase.Save(ctx.Request.Context(), input)
	if err != nil {
		c.handleLoanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoanResponse(output.Loan))
}

// Delete handles DELETE /loans/:kind requests.
func (c *LoanController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	if err := c.loanUseCase.Delete(ctx.Request.Context(), userID, entity.LoanKind(ctx.Param("kind"))); err != nil {
		c.handleLoanError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleLoanError handles loan errors and returns appropriate HTTP responses.
func (c *LoanController) handleLoanError(ctx *gin.Context, err error) {
	var loanErr *domainerror.LoanError
	if errors.As(err, &loanErr) {
		statusCode := c.getStatusCodeForLoanError(loanErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: loanErr.Message,
			Code:  string(loanErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForLoanError maps loan error codes to HTTP status codes.
func (c *LoanController) getStatusCodeForLoanError(code domainerror.LoanErrorCode) int {
	switch code {
	case domainerror.ErrCodeLoanNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidLoanKind,
		domainerror.ErrCodeInvalidLoanValues:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
