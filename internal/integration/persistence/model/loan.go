// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// LoanModel represents the loans table in the database. One row per user
// and kind, enforced by the composite unique index.
type LoanModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_loans_user_kind"`
	Kind              string          `gorm:"type:varchar(10);not null;uniqueIndex:idx_loans_user_kind"`
	TotalValue        decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	FinancedValue     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	DownPayment       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	InstallmentValue  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	InstallmentsTotal int             `gorm:"type:integer;not null;default:0"`
	InstallmentsPaid  int             `gorm:"type:integer;not null;default:0"`
	InterestRate      decimal.Decimal `gorm:"type:decimal(7,4);not null;default:0"`
	ConstructionRate  decimal.Decimal `gorm:"type:decimal(7,4);not null;default:0"`
	CarModel          string          `gorm:"type:varchar(100)"`
	StartDate         *time.Time      `gorm:"type:date"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the LoanModel.
func (LoanModel) TableName() string {
	return "loans"
}

// ToEntity converts a LoanModel to a domain Loan entity.
func (m *LoanModel) ToEntity() *entity.Loan {
	return &entity.Loan{
		ID:                m.ID,
		UserID:            m.UserID,
		Kind:              entity.LoanKind(m.Kind),
		TotalValue:        m.TotalValue,
		FinancedValue:     m.FinancedValue,
		DownPayment:       m.DownPayment,
		InstallmentValue:  m.InstallmentValue,
		InstallmentsTotal: m.InstallmentsTotal,
		InstallmentsPaid:  m.InstallmentsPaid,
		InterestRate:      m.InterestRate,
		ConstructionRate:  m.ConstructionRate,
		CarModel:          m.CarModel,
		StartDate:         m.StartDate,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// LoanFromEntity creates a LoanModel from a domain Loan entity.
func LoanFromEntity(loan *entity.Loan) *LoanModel {
	return &LoanModel{
		ID:                loan.ID,
		UserID:            loan.UserID,
		Kind:              string(loan.Kind),
		TotalValue:        loan.TotalValue,
		FinancedValue:     loan.FinancedValue,
		DownPayment:       loan.DownPayment,
		InstallmentValue:  loan.InstallmentValue,
		InstallmentsTotal: loan.InstallmentsTotal,
		InstallmentsPaid:  loan.InstallmentsPaid,
		InterestRate:      loan.InterestRate,
		ConstructionRate:  loan.ConstructionRate,
		CarModel:          loan.CarModel,
		StartDate:         loan.StartDate,
		CreatedAt:         loan.CreatedAt,
		UpdatedAt:         loan.UpdatedAt,
	}
}
