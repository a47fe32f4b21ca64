// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// CreateCardRequest represents the request body for card registration.
type CreateCardRequest struct {
	Name       string  `json:"name" binding:"required,min=1,max=100"`
	Brand      string  `json:"brand" binding:"required"`
	TotalLimit float64 `json:"total_limit" binding:"required"`
	ClosingDay int     `json:"closing_day" binding:"required,min=1,max=31"`
	DueDay     int     `json:"due_day" binding:"required,min=1,max=31"`
}

// UpdateCardRequest represents the request body for card update.
type UpdateCardRequest struct {
	Name       *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Brand      *string  `json:"brand,omitempty"`
	TotalLimit *float64 `json:"total_limit,omitempty"`
	ClosingDay *int     `json:"closing_day,omitempty" binding:"omitempty,min=1,max=31"`
	DueDay     *int     `json:"due_day,omitempty" binding:"omitempty,min=1,max=31"`
}

// CardResponse represents a single credit card in API responses.
type CardResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Brand          string    `json:"brand"`
	TotalLimit     string    `json:"total_limit"`
	UsedLimit      string    `json:"used_limit"`
	AvailableLimit string    `json:"available_limit"`
	ClosingDay     int       `json:"closing_day"`
	DueDay         int       `json:"due_day"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ListCardsResponse represents the response for card listing.
type ListCardsResponse struct {
	Cards []CardResponse `json:"cards"`
}

// ToCardResponse converts a domain Card entity to a CardResponse DTO.
func ToCardResponse(card *entity.Card) CardResponse {
	return CardResponse{
		ID:             card.ID.String(),
		Name:           card.Name,
		Brand:          string(card.Brand),
		TotalLimit:     card.TotalLimit.String(),
		UsedLimit:      card.UsedLimit.String(),
		AvailableLimit: card.AvailableLimit().String(),
		ClosingDay:     card.ClosingDay,
		DueDay:         card.DueDay,
		CreatedAt:      card.CreatedAt,
		UpdatedAt:      card.UpdatedAt,
	}
}
