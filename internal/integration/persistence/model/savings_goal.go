// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// SavingsGoalModel represents the savings_goals table in the database.
type SavingsGoalModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name           string          `gorm:"type:varchar(100);not null"`
	TargetAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	SavedAmount    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	DeadlineMonths *int            `gorm:"type:integer"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
	DeletedAt      gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the SavingsGoalModel.
func (SavingsGoalModel) TableName() string {
	return "savings_goals"
}

// ToEntity converts a SavingsGoalModel to a domain SavingsGoal entity.
func (m *SavingsGoalModel) ToEntity() *entity.SavingsGoal {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.SavingsGoal{
		ID:             m.ID,
		UserID:         m.UserID,
		Name:           m.Name,
		TargetAmount:   m.TargetAmount,
		SavedAmount:    m.SavedAmount,
		DeadlineMonths: m.DeadlineMonths,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		DeletedAt:      deletedAt,
	}
}

// SavingsGoalFromEntity creates a SavingsGoalModel from a domain SavingsGoal entity.
func SavingsGoalFromEntity(goal *entity.SavingsGoal) *SavingsGoalModel {
	var deletedAt gorm.DeletedAt
	if goal.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *goal.DeletedAt, Valid: true}
	}

	return &SavingsGoalModel{
		ID:             goal.ID,
		UserID:         goal.UserID,
		Name:           goal.Name,
		TargetAmount:   goal.TargetAmount,
		SavedAmount:    goal.SavedAmount,
		DeadlineMonths: goal.DeadlineMonths,
		CreatedAt:      goal.CreatedAt,
		UpdatedAt:      goal.UpdatedAt,
		DeletedAt:      deletedAt,
	}
}
