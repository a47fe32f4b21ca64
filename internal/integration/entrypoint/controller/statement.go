// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/usecase/statement"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/middleware"
)

// StatementController handles card statement endpoints.
type StatementController struct {
	getStatementUseCase     *statement.GetStatementUseCase
	payStatementUseCase     *statement.PayStatementUseCase
	statementHistoryUseCase *statement.StatementHistoryUseCase
}

// NewStatementController creates a new statement controller instance.
func NewStatementController(
	getStatementUseCase *statement.GetStatementUseCase,
	payStatementUseCase *statement.PayStatementUseCase,
	statementHistoryUseCase *statement.StatementHistoryUseCase,
) *StatementController {
	return &StatementController{
		getStatementUseCase:     getStatementUseCase,
		payStatementUseCase:     payStatementUseCase,
		statementHistoryUseCase: statementHistoryUseCase,
	}
}

// Get handles GET /cards/:id/statement requests. The month comes from the
// "month" query parameter in YYYY-MM format.
func (c *StatementController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	cardID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid card ID format",
		})
		return
	}

	output, err := c.getStatementUseCase.Execute(ctx.Request.Context(), statement.GetStatementInput{
		UserID:         userID,
		CardID:         cardID,
		ReferenceMonth: ctx.Query("month"),
	})
	if err != nil {
		c.handleStatementError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStatementResponse(output.Statement))
}

// Pay handles POST /cards/:id/statement/pay requests.
func (c *StatementController) Pay(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	cardID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid card ID format",
		})
		return
	}

	var req dto.PayStatementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	paymentDate, err := time.Parse("2006-01-02", req.PaymentDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payment_date format, expected YYYY-MM-DD",
		})
		return
	}

	output, err := c.payStatementUseCase.Execute(ctx.Request.Context(), statement.PayStatementInput{
		UserID:         userID,
		CardID:         cardID,
		Amount:         decimal.NewFromFloat(req.Amount),
		PaymentDate:    paymentDate,
		BankAccount:    req.BankAccount,
		RecordAsEntry:  req.RecordAsEntry,
		ReferenceMonth: req.ReferenceMonth,
	})
	if err != nil {
		c.handleStatementError(ctx, err)
		return
	}

	resp := dto.PayStatementResponse{
		Card: dto.ToCardResponse(output.Card),
	}
	if output.PaymentEntry != nil {
		entry := dto.ToEntryResponse(output.PaymentEntry)
		resp.PaymentEntry = &entry
	}

	ctx.JSON(http.StatusOK, resp)
}

// History handles GET /cards/:id/statement/history requests.
func (c *StatementController) History(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	cardID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid card ID format",
		})
		return
	}

	output, err := c.statementHistoryUseCase.Execute(ctx.Request.Context(), statement.StatementHistoryInput{
		UserID: userID,
		CardID: cardID,
	})
	if err != nil {
		c.handleStatementError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStatementHistoryResponse(output.Months))
}

// handleStatementError handles statement errors and returns appropriate HTTP responses.
func (c *StatementController) handleStatementError(ctx *gin.Context, err error) {
	var stmErr *domainerror.StatementError
	if errors.As(err, &stmErr) {
		statusCode := c.getStatusCodeForStatementError(stmErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: stmErr.Message,
			Code:  string(stmErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForStatementError maps statement error codes to HTTP status codes.
func (c *StatementController) getStatusCodeForStatementError(code domainerror.StatementErrorCode) int {
	switch code {
	case domainerror.ErrCodeStatementCardNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedStatement:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidStatementMonth,
		domainerror.ErrCodeInvalidPaymentAmount:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
