// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/usecase/fixedbill"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/middleware"
)

// FixedBillController handles fixed bill endpoints.
type FixedBillController struct {
	billUseCase *fixedbill.FixedBillUseCase
}

// NewFixedBillController creates a new fixed bill controller instance.
func NewFixedBillController(billUseCase *fixedbill.FixedBillUseCase) *FixedBillController {
	return &FixedBillController{
		billUseCase: billUseCase,
	}
}

// Create handles POST /bills requests.
func (c *FixedBillController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingBillFields),
		})
		return
	}

	output, err := c.billUseCase.Create(ctx.Request.Context(), fixedbill.CreateBillInput{
		UserID:   userID,
		Name:     req.Name,
		Amount:   decimal.NewFromFloat(req.Amount),
		DueDay:   req.DueDay,
		Category: req.Category,
	})
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBillResponse(output.Bill))
}

// List handles GET /bills requests.
func (c *FixedBillController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.billUseCase.List(ctx.Request.Context(), userID)
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	bills := make([]dto.BillResponse, len(output.Bills))
	for i, bill := range output.Bills {
		bills[i] = dto.ToBillResponse(bill)
	}

	ctx.JSON(http.StatusOK, dto.ListBillsResponse{
		Bills:        bills,
		MonthlyTotal: output.MonthlyTotal.String(),
	})
}

// Update handles PUT /bills/:id requests.
func (c *FixedBillController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	billID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid bill ID format",
		})
		return
	}

	var req dto.UpdateBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := fixedbill.UpdateBillInput{
		BillID:   billID,
		UserID:   userID,
		Name:     req.Name,
		DueDay:   req.DueDay,
		Category: req.Category,
		Active:   req.Active,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}

	output, err := c.billUseCase.Update(ctx.Request.Context(), input)
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillResponse(output.Bill))
}

// Delete handles DELETE /bills/:id requests.
func (c *FixedBillController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	billID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid bill ID format",
		})
		return
	}

	if err := c.billUseCase.Delete(ctx.Request.Context(), billID, userID); err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleBillError handles bill errors and returns appropriate HTTP responses.
func (c *FixedBillController) handleBillError(ctx *gin.Context, err error) {
	var billErr *domainerror.BillError
	if errors.As(err, &billErr) {
		statusCode := c.getStatusCodeForBillError(billErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: billErr.Message,
			Code:  string(billErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBillError maps bill error codes to HTTP status codes.
func (c *FixedBillController) getStatusCodeForBillError(code domainerror.BillErrorCode) int {
	switch code {
	case domainerror.ErrCodeBillNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedBill:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidBillAmount,
		domainerror.ErrCodeInvalidBillDueDay,
		domainerror.ErrCodeMissingBillFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
