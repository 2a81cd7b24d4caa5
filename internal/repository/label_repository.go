package repository

import (
	"context"

	"gorm.io/gorm"

	"taskboard-api/internal/domain"
)

// LabelRepository defines the interface for label and card-label data access
type LabelRepository interface {
	Create(ctx context.Context, label *domain.Label) error
	FindByID(ctx context.Context, id string) (*domain.Label, error)
	FindByBoardID(ctx context.Context, boardID string) ([]*domain.Label, error)
	Update(ctx context.Context, label *domain.Label) error
	Delete(ctx context.Context, id string) error

	AttachToCard(ctx context.Context, cardID, labelID string) (*domain.CardLabel, error)
	DetachFromCard(ctx context.Context, cardID, labelID string) (bool, error)
	IsAttached(ctx context.Context, cardID, labelID string) (bool, error)
}

type labelRepositoryImpl struct {
	db *gorm.DB
}

// NewLabelRepository creates a new instance of LabelRepository
func NewLabelRepository(db *gorm.DB) LabelRepository {
	return &labelRepositoryImpl{db: db}
}

func (r *labelRepositoryImpl) Create(ctx context.Context, label *domain.Label) error {
	return conn(ctx, r.db).Create(label).Error
}

func (r *labelRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Label, error) {
	var label domain.Label
	if err := conn(ctx, r.db).Where("id = ?", id).First(&label).Error; err != nil {
		return nil, err
	}
	return &label, nil
}

// FindByBoardID returns the board's labels oldest first
func (r *labelRepositoryImpl) FindByBoardID(ctx context.Context, boardID string) ([]*domain.Label, error) {
	labels := make([]*domain.Label, 0)
	if err := conn(ctx, r.db).Where("board_id = ?", boardID).Order(createdAsc).Find(&labels).Error; err != nil {
		return nil, err
	}
	return labels, nil
}

func (r *labelRepositoryImpl) Update(ctx context.Context, label *domain.Label) error {
	return conn(ctx, r.db).Save(label).Error
}

// Delete removes the label from every card, then the label
func (r *labelRepositoryImpl) Delete(ctx context.Context, id string) error {
	db := conn(ctx, r.db)
	if err := db.Where("label_id = ?", id).Delete(&domain.CardLabel{}).Error; err != nil {
		return err
	}
	result := db.Where("id = ?", id).Delete(&domain.Label{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AttachToCard inserts the join row. A duplicate pair fails with gorm.ErrDuplicatedKey.
func (r *labelRepositoryImpl) AttachToCard(ctx context.Context, cardID, labelID string) (*domain.CardLabel, error) {
	db := conn(ctx, r.db)
	cardLabel := &domain.CardLabel{CardID: cardID, LabelID: labelID}
	if err := db.Omit("Label").Create(cardLabel).Error; err != nil {
		return nil, err
	}
	if err := db.Preload("Label").
		Where("card_id = ? AND label_id = ?", cardID, labelID).
		First(cardLabel).Error; err != nil {
		return nil, err
	}
	return cardLabel, nil
}

// DetachFromCard reports false when the pair was not attached
func (r *labelRepositoryImpl) DetachFromCard(ctx context.Context, cardID, labelID string) (bool, error) {
	result := conn(ctx, r.db).Where("card_id = ? AND label_id = ?", cardID, labelID).Delete(&domain.CardLabel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *labelRepositoryImpl) IsAttached(ctx context.Context, cardID, labelID string) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&domain.CardLabel{}).
		Where("card_id = ? AND label_id = ?", cardID, labelID).
		Count(&count).Error
	return count > 0, err
}
