// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// FixedBillModel represents the fixed_bills table in the database.
type FixedBillModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(100);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DueDay    int             `gorm:"type:integer;not null"`
	Category  string          `gorm:"type:varchar(100)"`
	Active    bool            `gorm:"not null;default:true"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
	DeletedAt gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the FixedBillModel.
func (FixedBillModel) TableName() string {
	return "fixed_bills"
}

// ToEntity converts a FixedBillModel to a domain FixedBill entity.
func (m *FixedBillModel) ToEntity() *entity.FixedBill {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.FixedBill{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Amount:    m.Amount,
		DueDay:    m.DueDay,
		Category:  m.Category,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// FixedBillFromEntity creates a FixedBillModel from a domain FixedBill entity.
func FixedBillFromEntity(bill *entity.FixedBill) *FixedBillModel {
	var deletedAt gorm.DeletedAt
	if bill.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *bill.DeletedAt, Valid: true}
	}

	return &FixedBillModel{
		ID:        bill.ID,
		UserID:    bill.UserID,
		Name:      bill.Name,
		Amount:    bill.Amount,
		DueDay:    bill.DueDay,
		Category:  bill.Category,
		Active:    bill.Active,
		CreatedAt: bill.CreatedAt,
		UpdatedAt: bill.UpdatedAt,
		DeletedAt: deletedAt,
	}
}
