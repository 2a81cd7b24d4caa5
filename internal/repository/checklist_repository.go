package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskboard-api/internal/domain"
)

// ChecklistRepository defines the interface for checklist and checklist item data access
type ChecklistRepository interface {
	Create(ctx context.Context, checklist *domain.Checklist) error
	FindByID(ctx context.Context, id string) (*domain.Checklist, error)
	FindByIDWithItems(ctx context.Context, id string) (*domain.Checklist, error)
	NextPosition(ctx context.Context, cardID string) (int, error)
	Update(ctx context.Context, checklist *domain.Checklist) error
	Delete(ctx context.Context, id string) error

	CreateItem(ctx context.Context, item *domain.ChecklistItem) error
	FindItemByID(ctx context.Context, id string) (*domain.ChecklistItem, error)
	NextItemPosition(ctx context.Context, checklistID string) (int, error)
	UpdateItem(ctx context.Context, item *domain.ChecklistItem) error
	DeleteItem(ctx context.Context, id string) error
}

type checklistRepositoryImpl struct {
	db *gorm.DB
}

// NewChecklistRepository creates a new instance of ChecklistRepository
func NewChecklistRepository(db *gorm.DB) ChecklistRepository {
	return &checklistRepositoryImpl{db: db}
}

func (r *checklistRepositoryImpl) Create(ctx context.Context, checklist *domain.Checklist) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(checklist).Error
}

func (r *checklistRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Checklist, error) {
	var checklist domain.Checklist
	if err := conn(ctx, r.db).Where("id = ?", id).First(&checklist).Error; err != nil {
		return nil, err
	}
	return &checklist, nil
}

func (r *checklistRepositoryImpl) FindByIDWithItems(ctx context.Context, id string) (*domain.Checklist, error) {
	var checklist domain.Checklist
	if err := conn(ctx, r.db).Preload("Items", byPosition).Where("id = ?", id).First(&checklist).Error; err != nil {
		return nil, err
	}
	return &checklist, nil
}

func (r *checklistRepositoryImpl) NextPosition(ctx context.Context, cardID string) (int, error) {
	return nextPosition(conn(ctx, r.db), &domain.Checklist{}, "card_id", cardID)
}

func (r *checklistRepositoryImpl) Update(ctx context.Context, checklist *domain.Checklist) error {
	return conn(ctx, r.db).Omit(clause.Associations).Save(checklist).Error
}

// Delete removes the checklist and its items
func (r *checklistRepositoryImpl) Delete(ctx context.Context, id string) error {
	db := conn(ctx, r.db)
	if err := db.Where("checklist_id = ?", id).Delete(&domain.ChecklistItem{}).Error; err != nil {
		return err
	}
	result := db.Where("id = ?", id).Delete(&domain.Checklist{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *checklistRepositoryImpl) CreateItem(ctx context.Context, item *domain.ChecklistItem) error {
	return conn(ctx, r.db).Create(item).Error
}

func (r *checklistRepositoryImpl) FindItemByID(ctx context.Context, id string) (*domain.ChecklistItem, error) {
	var item domain.ChecklistItem
	if err := conn(ctx, r.db).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *checklistRepositoryImpl) NextItemPosition(ctx context.Context, checklistID string) (int, error) {
	return nextPosition(conn(ctx, r.db), &domain.ChecklistItem{}, "checklist_id", checklistID)
}

func (r *checklistRepositoryImpl) UpdateItem(ctx context.Context, item *domain.ChecklistItem) error {
	return conn(ctx, r.db).Save(item).Error
}

func (r *checklistRepositoryImpl) DeleteItem(ctx context.Context, id string) error {
	result := conn(ctx, r.db).Where("id = ?", id).Delete(&domain.ChecklistItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
