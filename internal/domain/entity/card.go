// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CardBrand represents a credit card network.
type CardBrand string

const (
	CardBrandVisa       CardBrand = "Visa"
	CardBrandMastercard CardBrand = "Mastercard"
	CardBrandElo        CardBrand = "Elo"
	CardBrandAmex       CardBrand = "American Express"
	CardBrandHipercard  CardBrand = "Hipercard"
)

// CardBrands lists the accepted card networks.
var CardBrands = []CardBrand{
	CardBrandVisa,
	CardBrandMastercard,
	CardBrandElo,
	CardBrandAmex,
	CardBrandHipercard,
}

// ValidCardBrand reports whether brand is one of the accepted networks.
func ValidCardBrand(brand CardBrand) bool {
	for _, b := range CardBrands {
		if b == brand {
			return true
		}
	}
	return false
}

// Card represents a credit card in the finance dashboard.
// UsedLimit tracks the outstanding billed-but-unpaid total; it is adjusted
// once per purchase (never per installment) and floored at zero on
// decrements. AvailableLimit may go negative to flag an over-limit card.
type Card struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	Brand      CardBrand
	TotalLimit decimal.Decimal
	UsedLimit  decimal.Decimal
	ClosingDay int // day of month the statement closes (1-31)
	DueDay     int // day of month the statement is due (1-31)
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time // Soft-delete support
}

// NewCard creates a new Card entity with a zero used limit.
func NewCard(userID uuid.UUID, name string, brand CardBrand, totalLimit decimal.Decimal, closingDay, dueDay int) *Card {
	now := time.Now().UTC()

	return &Card{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		Brand:      brand,
		TotalLimit: totalLimit,
		UsedLimit:  decimal.Zero,
		ClosingDay: closingDay,
		DueDay:     dueDay,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// AvailableLimit returns the credit still available on the card.
func (c *Card) AvailableLimit() decimal.Decimal {
	return c.TotalLimit.Sub(c.UsedLimit)
}
