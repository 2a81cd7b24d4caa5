package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskboard-api/internal/domain"
)

// ListRepository defines the interface for list data access
type ListRepository interface {
	Create(ctx context.Context, list *domain.List) error
	FindByID(ctx context.Context, id string) (*domain.List, error)
	FindByIDWithCards(ctx context.Context, id string) (*domain.List, error)
	FindByBoardID(ctx context.Context, boardID string) ([]*domain.List, error)
	NextPosition(ctx context.Context, boardID string) (int, error)
	Update(ctx context.Context, list *domain.List) error
	UpdatePosition(ctx context.Context, id string, position int) (bool, error)
	Delete(ctx context.Context, id string) error
}

type listRepositoryImpl struct {
	db *gorm.DB
}

// NewListRepository creates a new instance of ListRepository
func NewListRepository(db *gorm.DB) ListRepository {
	return &listRepositoryImpl{db: db}
}

func (r *listRepositoryImpl) Create(ctx context.Context, list *domain.List) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(list).Error
}

func (r *listRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.List, error) {
	var list domain.List
	if err := conn(ctx, r.db).Where("id = ?", id).First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// FindByIDWithCards loads a list with its ordered cards and their labels and members
func (r *listRepositoryImpl) FindByIDWithCards(ctx context.Context, id string) (*domain.List, error) {
	var list domain.List
	if err := preloadListCards(conn(ctx, r.db)).Where("id = ?", id).First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// FindByBoardID returns the board's lists in position order, each with its cards
func (r *listRepositoryImpl) FindByBoardID(ctx context.Context, boardID string) ([]*domain.List, error) {
	lists := make([]*domain.List, 0)
	if err := preloadListCards(conn(ctx, r.db)).
		Where("board_id = ?", boardID).
		Order(positionOrder).
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *listRepositoryImpl) NextPosition(ctx context.Context, boardID string) (int, error) {
	return nextPosition(conn(ctx, r.db), &domain.List{}, "board_id", boardID)
}

func (r *listRepositoryImpl) Update(ctx context.Context, list *domain.List) error {
	return conn(ctx, r.db).Omit(clause.Associations).Save(list).Error
}

// UpdatePosition reports false when no list has the given id
func (r *listRepositoryImpl) UpdatePosition(ctx context.Context, id string, position int) (bool, error) {
	return updatePosition(conn(ctx, r.db), &domain.List{}, id, map[string]interface{}{"position": position})
}

// Delete removes the list with its cards and their children
func (r *listRepositoryImpl) Delete(ctx context.Context, id string) error {
	db := conn(ctx, r.db)

	var count int64
	if err := db.Model(&domain.List{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}

	return deleteListTree(db, func() *gorm.DB {
		return db.Model(&domain.List{}).Select("id").Where("id = ?", id)
	})
}

func preloadListCards(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Cards", byPosition).
		Preload("Cards.Labels", byJoinedAt).
		Preload("Cards.Labels.Label").
		Preload("Cards.Members", byJoinedAt).
		Preload("Cards.Members.User")
}
