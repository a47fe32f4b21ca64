// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/usecase/ledger"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/middleware"
)

// LedgerController handles ledger entry endpoints.
type LedgerController struct {
	createEntryUseCase    *ledger.CreateEntryUseCase
	listEntriesUseCase    *ledger.ListEntriesUseCase
	updateEntryUseCase    *ledger.UpdateEntryUseCase
	deleteEntryUseCase    *ledger.DeleteEntryUseCase
	deletePurchaseUseCase *ledger.DeletePurchaseUseCase
}

// NewLedgerController creates a new ledger controller instance.
func NewLedgerController(
	createEntryUseCase *ledger.CreateEntryUseCase,
	listEntriesUseCase *ledger.ListEntriesUseCase,
	updateEntryUseCase *ledger.UpdateEntryUseCase,
	deleteEntryUseCase *ledger.DeleteEntryUseCase,
	deletePurchaseUseCase *ledger.DeletePurchaseUseCase,
) *LedgerController {
	return &LedgerController{
		createEntryUseCase:    createEntryUseCase,
		listEntriesUseCase:    listEntriesUseCase,
		updateEntryUseCase:    updateEntryUseCase,
		deleteEntryUseCase:    deleteEntryUseCase,
		deletePurchaseUseCase: deletePurchaseUseCase,
	}
}

// Create handles POST /entries requests.
func (c *LedgerController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingEntryFields),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidEntryDate),
		})
		return
	}

	input := ledger.CreateEntryInput{
		UserID:        userID,
		Kind:          entity.EntryKind(req.Kind),
		Category:      req.Category,
		Description:   req.Description,
		Amount:        decimal.NewFromFloat(req.Amount),
		Date:          date,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		BankAccount:   req.BankAccount,
		Installments:  1,
		Notes:         req.Notes,
	}

	if req.CardID != nil {
		cardID, err := uuid.Parse(*req.CardID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid card ID format",
			})
			return
		}
		input.CardID = &cardID
	}

	// An omitted installment count means a single payment.
	if req.Installments != nil {
		input.Installments = *req.Installments
	}

	output, err := c.createEntryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	entries := make([]dto.EntryResponse, len(output.Entries))
	for i, entry := range output.Entries {
		entries[i] = dto.ToEntryResponse(entry)
	}

	ctx.JSON(http.StatusCreated, dto.CreateEntryResponse{Entries: entries})
}

// List handles GET /entries requests. Filters come from query parameters:
// month, kind, category, payment_method, card_id, start_date, end_date.
func (c *LedgerController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := ledger.ListEntriesInput{
		UserID:         userID,
		ReferenceMonth: ctx.Query("month"),
		Category:       ctx.Query("category"),
	}

	if kind := ctx.Query("kind"); kind != "" {
		entryKind := entity.EntryKind(kind)
		input.Kind = &entryKind
	}
	if method := ctx.Query("payment_method"); method != "" {
		paymentMethod := entity.PaymentMethod(method)
		input.PaymentMethod = &paymentMethod
	}
	if rawCardID := ctx.Query("card_id"); rawCardID != "" {
		cardID, err := uuid.Parse(rawCardID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid card ID format",
			})
			return
		}
		input.CardID = &cardID
	}
	if rawStart := ctx.Query("start_date"); rawStart != "" {
		start, err := time.Parse("2006-01-02", rawStart)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidEntryDate),
			})
			return
		}
		input.StartDate = &start
	}
	if rawEnd := ctx.Query("end_date"); rawEnd != "" {
		end, err := time.Parse("2006-01-02", rawEnd)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end_date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidEntryDate),
			})
			return
		}
		input.EndDate = &end
	}

	output, err := c.listEntriesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListEntriesResponse(output))
}

// Update handles PUT /entries/:id requests.
func (c *LedgerController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	var req dto.UpdateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := ledger.UpdateEntryInput{
		EntryID:     entryID,
		UserID:      userID,
		Category:    req.Category,
		Description: req.Description,
		BankAccount: req.BankAccount,
		Notes:       req.Notes,
	}

	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidEntryDate),
			})
			return
		}
		input.Date = &date
	}

	output, err := c.updateEntryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entry))
}

// Delete handles DELETE /entries/:id requests.
func (c *LedgerController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	if _, err := c.deleteEntryUseCase.Execute(ctx.Request.Context(), ledger.DeleteEntryInput{
		EntryID: entryID,
		UserID:  userID,
	}); err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// DeletePurchase handles DELETE /purchases/:id requests: it removes every
// installment of a parceled purchase at once.
func (c *LedgerController) DeletePurchase(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	purchaseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid purchase ID format",
		})
		return
	}

	output, err := c.deletePurchaseUseCase.Execute(ctx.Request.Context(), ledger.DeletePurchaseInput{
		PurchaseID: purchaseID,
		UserID:     userID,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeletePurchaseResponse{DeletedCount: output.DeletedCount})
}

// Categories handles GET /categories requests.
func (c *LedgerController) Categories(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.CategoriesResponse{
		EntryCategories: entity.EntryCategories,
		BillCategories:  entity.BillCategories,
	})
}

// handleLedgerError handles ledger errors and returns appropriate HTTP responses.
func (c *LedgerController) handleLedgerError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		statusCode := c.getStatusCodeForLedgerError(ledgerErr.Code)
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

// getStatusCodeForLedgerError maps ledger error codes to HTTP status codes.
func (c *LedgerController) getStatusCodeForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeEntryNotFound,
		domainerror.ErrCodePurchaseNotFound,
		domainerror.ErrCodeLedgerCardNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedEntry:
		return http.StatusForbidden
	case domainerror.ErrCodeInstallmentLocked:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidEntryKind,
		domainerror.ErrCodeInvalidEntryAmount,
		domainerror.ErrCodeInvalidPaymentMethod,
		domainerror.ErrCodeCardRequiredForCredit,
		domainerror.ErrCodeInvalidInstallmentCount,
		domainerror.ErrCodeInvalidReferenceMonth,
		domainerror.ErrCodeEntryDescriptionTooLong,
		domainerror.ErrCodeEntryNotesTooLong,
		domainerror.ErrCodeMissingEntryFields,
		domainerror.ErrCodeInvalidEntryDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
