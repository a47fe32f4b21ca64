// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// LedgerEntryModel represents the ledger_entries table in the database.
type LedgerEntryModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	Kind             string          `gorm:"type:varchar(10);not null;index"`
	Category         string          `gorm:"type:varchar(100);not null"`
	Description      string          `gorm:"type:varchar(200);not null"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date             time.Time       `gorm:"type:date;not null;index"`
	ReferenceMonth   string          `gorm:"type:varchar(7);not null;index"`
	PaymentMethod    string          `gorm:"type:varchar(20);not null"`
	BankAccount      string          `gorm:"type:varchar(100)"`
	CardID           *uuid.UUID      `gorm:"type:uuid;index"`
	PurchaseID       *uuid.UUID      `gorm:"type:uuid;index"`
	InstallmentIndex *int            `gorm:"type:integer"`
	InstallmentCount *int            `gorm:"type:integer"`
	Notes            string          `gorm:"type:text"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`
	DeletedAt        gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
	Card *CardModel `gorm:"foreignKey:CardID;references:ID"`
}

// TableName returns the table name for the LedgerEntryModel.
func (LedgerEntryModel) TableName() string {
	return "ledger_entries"
}

// ToEntity converts a LedgerEntryModel to a domain LedgerEntry entity.
func (m *LedgerEntryModel) ToEntity() *entity.LedgerEntry {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.LedgerEntry{
		ID:               m.ID,
		UserID:           m.UserID,
		Kind:             entity.EntryKind(m.Kind),
		Category:         m.Category,
		Description:      m.Description,
		Amount:           m.Amount,
		Date:             m.Date,
		ReferenceMonth:   m.ReferenceMonth,
		PaymentMethod:    entity.PaymentMethod(m.PaymentMethod),
		BankAccount:      m.BankAccount,
		CardID:           m.CardID,
		PurchaseID:       m.PurchaseID,
		InstallmentIndex: m.InstallmentIndex,
		InstallmentCount: m.InstallmentCount,
		Notes:            m.Notes,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
		DeletedAt:        deletedAt,
	}
}

// LedgerEntryFromEntity creates a LedgerEntryModel from a domain LedgerEntry entity.
func LedgerEntryFromEntity(entry *entity.LedgerEntry) *LedgerEntryModel {
	var deletedAt gorm.DeletedAt
	if entry.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *entry.DeletedAt, Valid: true}
	}

	return &LedgerEntryModel{
		ID:               entry.ID,
		UserID:           entry.UserID,
		Kind:             string(entry.Kind),
		Category:         entry.Category,
		Description:      entry.Description,
		Amount:           entry.Amount,
		Date:             entry.Date,
		ReferenceMonth:   entry.ReferenceMonth,
		PaymentMethod:    string(entry.PaymentMethod),
		BankAccount:      entry.BankAccount,
		CardID:           entry.CardID,
		PurchaseID:       entry.PurchaseID,
		InstallmentIndex: entry.InstallmentIndex,
		InstallmentCount: entry.InstallmentCount,
		Notes:            entry.Notes,
		CreatedAt:        entry.CreatedAt,
		UpdatedAt:        entry.UpdatedAt,
		DeletedAt:        deletedAt,
	}
}
