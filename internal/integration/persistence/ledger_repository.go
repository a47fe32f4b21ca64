// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/persistence/model"
)

// ledgerRepository implements the adapter.LedgerRepository interface.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository instance.
func NewLedgerRepository(db *gorm.DB) adapter.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// Create creates a single ledger entry in the database.
func (r *ledgerRepository) Create(ctx context.Context, entry *entity.LedgerEntry) error {
	entryModel := model.LedgerEntryFromEntity(entry)
	result := r.db.WithContext(ctx).Create(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreatePurchase atomically inserts the purchase's entries and increments the
// card's used limit once by the purchase total. Rolls back on any failure so
// installments and the limit never diverge.
func (r *ledgerRepository) CreatePurchase(ctx context.Context, entries []*entity.LedgerEntry, cardID uuid.UUID, total decimal.Decimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, entry := range entries {
			entryModel := model.LedgerEntryFromEntity(entry)
			if err := tx.Create(entryModel).Error; err != nil {
				return err
			}
		}

		return adjustUsedLimitTx(tx, cardID, total)
	})
}

// FindByID retrieves a ledger entry by its ID.
func (r *ledgerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.LedgerEntry, error) {
	var entryModel model.LedgerEntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindByFilter retrieves entries matching the filter, newest first.
func (r *ledgerRepository) FindByFilter(ctx context.Context, filter adapter.LedgerFilter) ([]*entity.LedgerEntry, error) {
	query := r.db.WithContext(ctx).Model(&model.LedgerEntryModel{}).
		Where("user_id = ?", filter.UserID)

	if filter.ReferenceMonth != "" {
		query = query.Where("reference_month = ?", filter.ReferenceMonth)
	}
	if filter.Kind != nil {
		query = query.Where("kind = ?", string(*filter.Kind))
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.PaymentMethod != nil {
		query = query.Where("payment_method = ?", string(*filter.PaymentMethod))
	}
	if filter.CardID != nil {
		query = query.Where("card_id = ?", *filter.CardID)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", filter.EndDate)
	}

	var entryModels []model.LedgerEntryModel
	result := query.Order("date DESC, created_at DESC").Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.LedgerEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}

// FindByPurchase retrieves all installments of a purchase group, ordered by
// installment index.
func (r *ledgerRepository) FindByPurchase(ctx context.Context, purchaseID uuid.UUID) ([]*entity.LedgerEntry, error) {
	var entryModels []model.LedgerEntryModel
	result := r.db.WithContext(ctx).
		Where("purchase_id = ?", purchaseID).
		Order("installment_index ASC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.LedgerEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}

// FindStatement retrieves the expense entries billed against a card for one
// reference month, newest first.
func (r *ledgerRepository) FindStatement(ctx context.Context, userID, cardID uuid.UUID, referenceMonth string) ([]*entity.LedgerEntry, error) {
	var entryModels []model.LedgerEntryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("card_id = ?", cardID).
		Where("reference_month = ?", referenceMonth).
		Where("kind = ?", string(entity.EntryKindExpense)).
		Order("date DESC, created_at DESC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.LedgerEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}

// StatementHistory returns per-month expense totals for a card, newest
// month first. The lexicographic order of "YYYY-MM" matches chronology.
func (r *ledgerRepository) StatementHistory(ctx context.Context, userID, cardID uuid.UUID) ([]*entity.StatementSummary, error) {
	var rows []struct {
		ReferenceMonth string          `gorm:"column:reference_month"`
		Total          decimal.Decimal `gorm:"column:total"`
		Count          int             `gorm:"column:count"`
	}

	result := r.db.WithContext(ctx).
		Model(&model.LedgerEntryModel{}).
		Select("reference_month, COALESCE(SUM(amount), 0) as total, COUNT(*) as count").
		Where("user_id = ?", userID).
		Where("card_id = ?", cardID).
		Where("kind = ?", string(entity.EntryKindExpense)).
		Group("reference_month").
		Order("reference_month DESC").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	months := make([]*entity.StatementSummary, len(rows))
	for i, row := range rows {
		months[i] = &entity.StatementSummary{
			ReferenceMonth: row.ReferenceMonth,
			Total:          row.Total,
			Count:          row.Count,
		}
	}
	return months, nil
}

// Update updates an existing ledger entry in the database.
func (r *ledgerRepository) Update(ctx context.Context, entry *entity.LedgerEntry) error {
	entryModel := model.LedgerEntryFromEntity(entry)
	result := r.db.WithContext(ctx).Save(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// UpdateWithLimitAdjust atomically updates a credit entry and moves the
// card's used limit by delta. Rolls back on any failure so an amount edit
// never commits while the limit adjustment is lost.
func (r *ledgerRepository) UpdateWithLimitAdjust(ctx context.Context, entry *entity.LedgerEntry, cardID uuid.UUID, delta decimal.Decimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entryModel := model.LedgerEntryFromEntity(entry)
		if err := tx.Save(entryModel).Error; err != nil {
			return err
		}
		return adjustUsedLimitTx(tx, cardID, delta)
	})
}

// Delete soft-deletes a ledger entry from the database.
func (r *ledgerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.LedgerEntryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteWithLimitRelease atomically soft-deletes a credit entry and releases
// its amount from the card's used limit.
func (r *ledgerRepository) DeleteWithLimitRelease(ctx context.Context, entry *entity.LedgerEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.LedgerEntryModel{}, "id = ?", entry.ID).Error; err != nil {
			return err
		}
		return adjustUsedLimitTx(tx, *entry.CardID, entry.Amount.Neg())
	})
}

// DeletePurchaseGroup atomically soft-deletes every installment of a purchase
// group and releases the purchase total from the card's used limit once.
func (r *ledgerRepository) DeletePurchaseGroup(ctx context.Context, purchaseID, cardID uuid.UUID, total decimal.Decimal) (int64, error) {
	var deletedCount int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("purchase_id = ?", purchaseID).Delete(&model.LedgerEntryModel{})
		if result.Error != nil {
			return result.Error
		}
		deletedCount = result.RowsAffected

		return adjustUsedLimitTx(tx, cardID, total.Neg())
	})
	if err != nil {
		return 0, err
	}
	return deletedCount, nil
}

// RecordStatementPayment atomically releases the paid amount from the card's
// used limit and, when the caller wants the payment in the ledger, creates the
// payment entry in the same transaction.
func (r *ledgerRepository) RecordStatementPayment(ctx context.Context, cardID uuid.UUID, amount decimal.Decimal, paymentEntry *entity.LedgerEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := adjustUsedLimitTx(tx, cardID, amount.Neg()); err != nil {
			return err
		}
		if paymentEntry != nil {
			if err := tx.Create(model.LedgerEntryFromEntity(paymentEntry)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// adjustUsedLimitTx applies delta to a card's used limit inside tx, flooring
// the result at zero. Shared by every write path that moves the limit.
func adjustUsedLimitTx(tx *gorm.DB, cardID uuid.UUID, delta decimal.Decimal) error {
	var cardModel model.CardModel
	if err := tx.Where("id = ?", cardID).First(&cardModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainerror.ErrCardNotFound
		}
		return err
	}

	used := cardModel.UsedLimit.Add(delta)
	if used.IsNegative() {
		used = decimal.Zero
	}

	result := tx.Model(&model.CardModel{}).
		Where("id = ?", cardID).
		Updates(map[string]interface{}{
			"used_limit": used,
			"updated_at": time.Now().UTC(),
		})
	return result.Error
}
