package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskboard-api/internal/domain"
)

// BoardRepository defines the interface for board data access
type BoardRepository interface {
	Create(ctx context.Context, board *domain.Board) error
	FindByID(ctx context.Context, id string) (*domain.Board, error)
	FindTreeByID(ctx context.Context, id string) (*domain.Board, error)
	FindAll(ctx context.Context) ([]*domain.Board, error)
	FindAllTrees(ctx context.Context) ([]*domain.Board, error)
	FindByTitle(ctx context.Context, title string) (*domain.Board, error)
	Update(ctx context.Context, board *domain.Board) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type boardRepositoryImpl struct {
	db *gorm.DB
}

// NewBoardRepository creates a new instance of BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepositoryImpl{db: db}
}

func (r *boardRepositoryImpl) Create(ctx context.Context, board *domain.Board) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(board).Error
}

func (r *boardRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Board, error) {
	var board domain.Board
	if err := conn(ctx, r.db).Where("id = ?", id).First(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// FindTreeByID loads a board with its labels and the full list/card tree
func (r *boardRepositoryImpl) FindTreeByID(ctx context.Context, id string) (*domain.Board, error) {
	var board domain.Board
	if err := preloadBoardTree(conn(ctx, r.db)).Where("id = ?", id).First(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// FindAll returns boards newest first, without children
func (r *boardRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Board, error) {
	boards := make([]*domain.Board, 0)
	if err := conn(ctx, r.db).Order(createdDesc).Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

// FindAllTrees returns boards newest first, each with its full tree
func (r *boardRepositoryImpl) FindAllTrees(ctx context.Context) ([]*domain.Board, error) {
	boards := make([]*domain.Board, 0)
	if err := preloadBoardTree(conn(ctx, r.db)).Order(createdDesc).Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

func (r *boardRepositoryImpl) FindByTitle(ctx context.Context, title string) (*domain.Board, error) {
	var board domain.Board
	if err := conn(ctx, r.db).Where("title = ?", title).Order(createdAsc).First(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// Update saves every column of the board and refreshes updated_at
func (r *boardRepositoryImpl) Update(ctx context.Context, board *domain.Board) error {
	return conn(ctx, r.db).Omit(clause.Associations).Save(board).Error
}

// Delete removes the board and everything it owns. Callers run it inside a transaction.
func (r *boardRepositoryImpl) Delete(ctx context.Context, id string) error {
	db := conn(ctx, r.db)

	listIDs := func() *gorm.DB {
		return db.Model(&domain.List{}).Select("id").Where("board_id = ?", id)
	}
	if err := deleteListTree(db, listIDs); err != nil {
		return err
	}

	labelIDs := db.Model(&domain.Label{}).Select("id").Where("board_id = ?", id)
	if err := db.Where("label_id IN (?)", labelIDs).Delete(&domain.CardLabel{}).Error; err != nil {
		return err
	}
	if err := db.Where("board_id = ?", id).Delete(&domain.Label{}).Error; err != nil {
		return err
	}

	result := db.Where("id = ?", id).Delete(&domain.Board{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *boardRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&domain.Board{}).Count(&count).Error
	return count, err
}

// preloadBoardTree eager-loads labels, lists and every card child of a board, one query per level
func preloadBoardTree(db *gorm.DB) *gorm.DB {
	return preloadCardDetails(
		db.Preload("Labels", byCreatedAsc).
			Preload("Lists", byPosition).
			Preload("Lists.Cards", byPosition),
		"Lists.Cards.",
	)
}

// preloadCardDetails eager-loads the children of cards reachable through prefix
func preloadCardDetails(db *gorm.DB, prefix string) *gorm.DB {
	return db.
		Preload(prefix+"Labels", byJoinedAt).
		Preload(prefix+"Labels.Label").
		Preload(prefix+"Members", byJoinedAt).
		Preload(prefix+"Members.User").
		Preload(prefix+"Checklists", byPosition).
		Preload(prefix+"Checklists.Items", byPosition).
		Preload(prefix+"Attachments", byCreatedAsc).
		Preload(prefix+"Comments", byCreatedDesc).
		Preload(prefix+"Comments.User")
}
