package repository

import (
	"context"

	"gorm.io/gorm"

	"taskboard-api/internal/domain"
)

// AttachmentRepository defines the interface for attachment data access
type AttachmentRepository interface {
	Create(ctx context.Context, attachment *domain.Attachment) error
	FindByID(ctx context.Context, id string) (*domain.Attachment, error)
	FindByCardID(ctx context.Context, cardID string) ([]*domain.Attachment, error)
	ExistsByURL(ctx context.Context, url string) (bool, error)
	Delete(ctx context.Context, id string) error
}

type attachmentRepositoryImpl struct {
	db *gorm.DB
}

// NewAttachmentRepository creates a new instance of AttachmentRepository
func NewAttachmentRepository(db *gorm.DB) AttachmentRepository {
	return &attachmentRepositoryImpl{db: db}
}

func (r *attachmentRepositoryImpl) Create(ctx context.Context, attachment *domain.Attachment) error {
	return conn(ctx, r.db).Create(attachment).Error
}

func (r *attachmentRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Attachment, error) {
	var attachment domain.Attachment
	if err := conn(ctx, r.db).Where("id = ?", id).First(&attachment).Error; err != nil {
		return nil, err
	}
	return &attachment, nil
}

func (r *attachmentRepositoryImpl) FindByCardID(ctx context.Context, cardID string) ([]*domain.Attachment, error) {
	attachments := make([]*domain.Attachment, 0)
	if err := conn(ctx, r.db).Where("card_id = ?", cardID).Order(createdAsc).Find(&attachments).Error; err != nil {
		return nil, err
	}
	return attachments, nil
}

// ExistsByURL reports whether any attachment still references the stored file
func (r *attachmentRepositoryImpl) ExistsByURL(ctx context.Context, url string) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&domain.Attachment{}).Where("url = ?", url).Count(&count).Error
	return count > 0, err
}

func (r *attachmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := conn(ctx, r.db).Where("id = ?", id).Delete(&domain.Attachment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
