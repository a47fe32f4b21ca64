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

// cardRepository implements the adapter.CardRepository interface.
type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new card repository instance.
func NewCardRepository(db *gorm.DB) adapter.CardRepository {
	return &cardRepository{
		db: db,
	}
}

// Create creates a new card in the database.
func (r *cardRepository) Create(ctx context.Context, card *entity.Card) error {
	cardModel := model.CardFromEntity(card)
	result := r.db.WithContext(ctx).Create(cardModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a card by its ID.
func (r *cardRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Card, error) {
	var cardModel model.CardModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&cardModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCardNotFound
		}
		return nil, result.Error
	}
	return cardModel.ToEntity(), nil
}

// FindByUser retrieves all cards for a given user, newest first.
func (r *cardRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Card, error) {
	var cardModels []model.CardModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&cardModels)
	if result.Error != nil {
		return nil, result.Error
	}

	cards := make([]*entity.Card, len(cardModels))
	for i, cm := range cardModels {
		cards[i] = cm.ToEntity()
	}
	return cards, nil
}

// Update updates an existing card in the database.
func (r *cardRepository) Update(ctx context.Context, card *entity.Card) error {
	cardModel := model.CardFromEntity(card)
	result := r.db.WithContext(ctx).Save(cardModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a card from the database.
func (r *cardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CardModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// HasLedgerEntries reports whether any ledger entries reference the card.
func (r *cardRepository) HasLedgerEntries(ctx context.Context, cardID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.LedgerEntryModel{}).
		Where("card_id = ?", cardID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
