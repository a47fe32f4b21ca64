// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/usecase/goal"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/middleware"
)

// GoalController handles savings goal endpoints.
type GoalController struct {
	goalUseCase *goal.GoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(goalUseCase *goal.GoalUseCase) *GoalController {
	return &GoalController{
		goalUseCase: goalUseCase,
	}
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	output, err := c.goalUseCase.Create(ctx.Request.Context(), goal.CreateGoalInput{
		UserID:         userID,
		Name:           req.Name,
		TargetAmount:   decimal.NewFromFloat(req.TargetAmount),
		SavedAmount:    decimal.NewFromFloat(req.SavedAmount),
		DeadlineMonths: req.DeadlineMonths,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.goalUseCase.List(ctx.Request.Context(), userID)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	goals := make([]dto.GoalResponse, len(output.Goals))
	for i, g := range output.Goals {
		goals[i] = dto.ToGoalResponse(g)
	}

	ctx.JSON(http.StatusOK, dto.ListGoalsResponse{Goals: goals})
}

// Update handles PUT /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := goal.UpdateGoalInput{
		GoalID:         goalID,
		UserID:         userID,
		Name:           req.Name,
		DeadlineMonths: req.DeadlineMonths,
	}
	if req.TargetAmount != nil {
		target := decimal.NewFromFloat(*req.TargetAmount)
		input.TargetAmount = &target
	}
	if req.SavedAmount != nil {
		saved := decimal.NewFromFloat(*req.SavedAmount)
		input.SavedAmount = &saved
	}

	output, err := c.goalUseCase.Update(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	if err := c.goalUseCase.Delete(ctx.Request.Context(), goalID, userID); err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		statusCode := c.getStatusCodeForGoalError(goalErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func (c *GoalController) getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedGoal:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidGoalAmount,
		domainerror.ErrCodeInvalidGoalDeadline,
		domainerror.ErrCodeMissingGoalFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
