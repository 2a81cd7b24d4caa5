package repository

import (
	"context"

	"gorm.io/gorm"

	"taskboard-api/internal/domain"
)

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	FindByCardID(ctx context.Context, cardID string) ([]*domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id string) error
}

type commentRepositoryImpl struct {
	db *gorm.DB
}

// NewCommentRepository creates a new instance of CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepositoryImpl{db: db}
}

func (r *commentRepositoryImpl) Create(ctx context.Context, comment *domain.Comment) error {
	return conn(ctx, r.db).Omit("User").Create(comment).Error
}

// FindByID loads the comment with its author
func (r *commentRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	var comment domain.Comment
	if err := conn(ctx, r.db).Preload("User").Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindByCardID returns the card's comments newest first
func (r *commentRepositoryImpl) FindByCardID(ctx context.Context, cardID string) ([]*domain.Comment, error) {
	comments := make([]*domain.Comment, 0)
	if err := conn(ctx, r.db).Preload("User").
		Where("card_id = ?", cardID).
		Order(createdDesc).
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepositoryImpl) Update(ctx context.Context, comment *domain.Comment) error {
	return conn(ctx, r.db).Omit("User").Save(comment).Error
}

func (r *commentRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := conn(ctx, r.db).Where("id = ?", id).Delete(&domain.Comment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
