// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// CardModel represents the credit_cards table in the database.
type CardModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name       string          `gorm:"type:varchar(100);not null"`
	Brand      string          `gorm:"type:varchar(30);not null"`
	TotalLimit decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	UsedLimit  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	ClosingDay int             `gorm:"type:integer;not null"`
	DueDay     int             `gorm:"type:integer;not null"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
	DeletedAt  gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the CardModel.
func (CardModel) TableName() string {
	return "credit_cards"
}

// ToEntity converts a CardModel to a domain Card entity.
func (m *CardModel) ToEntity() *entity.Card {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Card{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		Brand:      entity.CardBrand(m.Brand),
		TotalLimit: m.TotalLimit,
		UsedLimit:  m.UsedLimit,
		ClosingDay: m.ClosingDay,
		DueDay:     m.DueDay,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}

// CardFromEntity creates a CardModel from a domain Card entity.
func CardFromEntity(card *entity.Card) *CardModel {
	var deletedAt gorm.DeletedAt
	if card.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *card.DeletedAt, Valid: true}
	}

	return &CardModel{
		ID:         card.ID,
		UserID:     card.UserID,
		Name:       card.Name,
		Brand:      string(card.Brand),
		TotalLimit: card.TotalLimit,
		UsedLimit:  card.UsedLimit,
		ClosingDay: card.ClosingDay,
		DueDay:     card.DueDay,
		CreatedAt:  card.CreatedAt,
		UpdatedAt:  card.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}
