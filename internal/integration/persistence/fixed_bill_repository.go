// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/persistence/model"
)

// fixedBillRepository implements the adapter.FixedBillRepository interface.
type fixedBillRepository struct {
	db *gorm.DB
}

// NewFixedBillRepository creates a new fixed bill repository instance.
func NewFixedBillRepository(db *gorm.DB) adapter.FixedBillRepository {
	return &fixedBillRepository{
		db: db,
	}
}

// Create creates a new fixed bill in the database.
func (r *fixedBillRepository) Create(ctx context.Context, bill *entity.FixedBill) error {
	billModel := model.FixedBillFromEntity(bill)
	result := r.db.WithContext(ctx).Create(billModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a fixed bill by its ID.
func (r *fixedBillRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FixedBill, error) {
	var billModel model.FixedBillModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&billModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBillNotFound
		}
		return nil, result.Error
	}
	return billModel.ToEntity(), nil
}

// FindByUser retrieves all fixed bills for a given user, ordered by due day.
func (r *fixedBillRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FixedBill, error) {
	var billModels []model.FixedBillModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_day ASC, created_at DESC").
		Find(&billModels)
	if result.Error != nil {
		return nil, result.Error
	}

	bills := make([]*entity.FixedBill, len(billModels))
	for i, bm := range billModels {
		bills[i] = bm.ToEntity()
	}
	return bills, nil
}

// Update updates an existing fixed bill in the database.
func (r *fixedBillRepository) Update(ctx context.Context, bill *entity.FixedBill) error {
	billModel := model.FixedBillFromEntity(bill)
	result := r.db.WithContext(ctx).Save(billModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a fixed bill from the database.
func (r *fixedBillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.FixedBillModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
