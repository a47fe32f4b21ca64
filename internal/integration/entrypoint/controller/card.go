// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/usecase/card"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/middleware"
)

// CardController handles credit card endpoints.
type CardController struct {
	createCardUseCase *card.CreateCardUseCase
	listCardsUseCase  *card.ListCardsUseCase
	updateCardUseCase *card.UpdateCardUseCase
	deleteCardUseCase *card.DeleteCardUseCase
}

// NewCardController creates a new card controller instance.
func NewCardController(
	createCardUseCase *card.CreateCardUseCase,
	listCardsUseCase *card.ListCardsUseCase,
	updateCardUseCase *card.UpdateCardUseCase,
	deleteCardUseCase *card.DeleteCardUseCase,
) *CardController {
	return &CardController{
		createCardUseCase: createCardUseCase,
		listCardsUseCase:  listCardsUseCase,
		updateCardUseCase: updateCardUseCase,
		deleteCardUseCase: deleteCardUseCase,
	}
}

// Create handles POST /cards requests.
func (c *CardController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingCardFields),
		})
		return
	}

	input := card.CreateCardInput{
		UserID:     userID,
		Name:       req.Name,
		Brand:      entity.CardBrand(req.Brand),
		TotalLimit: decimal.NewFromFloat(req.TotalLimit),
		ClosingDay: req.ClosingDay,
		DueDay:     req.DueDay,
	}

	output, err := c.createCardUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCardResponse(output.Card))
}

// List handles GET /cards requests.
func (c *CardController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listCardsUseCase.Execute(ctx.Request.Context(), card.ListCardsInput{UserID: userID})
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	cards := make([]dto.CardResponse, len(output.Cards))
	for i, cc := range output.Cards {
		cards[i] = dto.ToCardResponse(cc)
	}

	ctx.JSON(http.StatusOK, dto.ListCardsResponse{Cards: cards})
}

// Update handles PUT /cards/:id requests.
func (c *CardController) Update(ctx *gin.Context) {
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

	var req dto.UpdateCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := card.UpdateCardInput{
		CardID:     cardID,
		UserID:     userID,
		Name:       req.Name,
		ClosingDay: req.ClosingDay,
		DueDay:     req.DueDay,
	}
	if req.Brand != nil {
		brand := entity.CardBrand(*req.Brand)
		input.Brand = &brand
	}
	if req.TotalLimit != nil {
		limit := decimal.NewFromFloat(*req.TotalLimit)
		input.TotalLimit = &limit
	}

	output, err := c.updateCardUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCardResponse(output.Card))
}

// Delete handles DELETE /cards/:id requests.
func (c *CardController) Delete(ctx *gin.Context) {
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

	if _, err := c.deleteCardUseCase.Execute(ctx.Request.Context(), card.DeleteCardInput{
		CardID: cardID,
		UserID: userID,
	}); err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleCardError handles card errors and returns appropriate HTTP responses.
func (c *CardController) handleCardError(ctx *gin.Context, err error) {
	var cardErr *domainerror.CardError
	if errors.As(err, &cardErr) {
		statusCode := c.getStatusCodeForCardError(cardErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: cardErr.Message,
			Code:  string(cardErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCardError maps card error codes to HTTP status codes.
func (c *CardController) getStatusCodeForCardError(code domainerror.CardErrorCode) int {
	switch code {
	case domainerror.ErrCodeCardNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedCard:
		return http.StatusForbidden
	case domainerror.ErrCodeCardHasEntries:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidCardBrand,
		domainerror.ErrCodeInvalidCardLimit,
		domainerror.ErrCodeInvalidCycleDay,
		domainerror.ErrCodeMissingCardFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondUnauthenticated writes the standard missing-authentication response.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
