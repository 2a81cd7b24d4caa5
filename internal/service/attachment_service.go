package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard-api/internal/client"
	"taskboard-api/internal/domain"
	"taskboard-api/internal/dto"
	"taskboard-api/internal/metrics"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/response"
)

// AllowedContentTypes is the upload allowlist
var AllowedContentTypes = map[string]bool{
	"image/jpeg":         true,
	"image/jpg":          true,
	"image/png":          true,
	"image/gif":          true,
	"application/pdf":    true,
	"application/msword": true, // .doc
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true, // .docx
	"text/plain": true,
}

// UploadFile is one file received for a card
type UploadFile struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// AttachmentService stores uploaded files and their metadata
type AttachmentService interface {
	UploadAttachment(ctx context.Context, cardID string, file *UploadFile) (*dto.AttachmentResponse, error)
	DeleteAttachment(ctx context.Context, attachmentID string) error
}

type attachmentServiceImpl struct {
	attachmentRepo repository.AttachmentRepository
	cardRepo       repository.CardRepository
	storage        client.FileStorage
	tx             repository.Transactor
	maxFileSize    int64
	metrics        *metrics.Metrics
	logger         *zap.Logger
}

// NewAttachmentService creates a new instance of AttachmentService
func NewAttachmentService(
	attachmentRepo repository.AttachmentRepository,
	cardRepo repository.CardRepository,
	storage client.FileStorage,
	tx repository.Transactor,
	maxFileSize int64,
	m *metrics.Metrics,
	logger *zap.Logger,
) AttachmentService {
	return &attachmentServiceImpl{
		attachmentRepo: attachmentRepo,
		cardRepo:       cardRepo,
		storage:        storage,
		tx:             tx,
		maxFileSize:    maxFileSize,
		metrics:        m,
		logger:         logger,
	}
}

// UploadAttachment validates type and size, stores the bytes and records the attachment.
// The stored file is removed again when the row cannot be written.
func (s *attachmentServiceImpl) UploadAttachment(ctx context.Context, cardID string, file *UploadFile) (*dto.AttachmentResponse, error) {
	contentType, err := normalizeContentType(file.ContentType)
	if err != nil || !AllowedContentTypes[contentType] {
		return nil, response.NewValidationError("Unsupported file type", file.ContentType)
	}
	if file.Size > s.maxFileSize {
		return nil, response.NewValidationError("File too large", fmt.Sprintf("maximum size is %d bytes", s.maxFileSize))
	}

	if _, err := s.cardRepo.FindByID(ctx, cardID); err != nil {
		return nil, lookupError(err, "Card")
	}

	// the declared size is client supplied, so the stored byte count is checked as well
	url, size, err := s.storage.Save(ctx, client.GenerateFileName(file.Name), io.LimitReader(file.Content, s.maxFileSize+1), contentType)
	if err != nil {
		return nil, response.NewInternalError("Failed to store file", err.Error())
	}
	if size > s.maxFileSize {
		s.removeFile(ctx, url, cardID)
		return nil, response.NewValidationError("File too large", fmt.Sprintf("maximum size is %d bytes", s.maxFileSize))
	}

	attachment := &domain.Attachment{
		CardID: cardID,
		Name:   file.Name,
		URL:    url,
		Type:   contentType,
		Size:   size,
	}
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.attachmentRepo.Create(ctx, attachment)
	})
	if err != nil {
		s.removeFile(ctx, url, cardID)
		return nil, response.NewInternalError("Failed to save attachment", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementAttachmentUploaded()
	}

	s.logger.Info("Attachment uploaded",
		zap.String("attachment_id", attachment.ID),
		zap.String("card_id", cardID),
		zap.Int64("size", size))

	return dto.NewAttachmentResponse(attachment), nil
}

// DeleteAttachment deletes the row, then the backing file. A file that cannot be removed is only logged.
func (s *attachmentServiceImpl) DeleteAttachment(ctx context.Context, attachmentID string) error {
	var attachment *domain.Attachment
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		attachment, err = s.attachmentRepo.FindByID(ctx, attachmentID)
		if err != nil {
			return err
		}
		return s.attachmentRepo.Delete(ctx, attachmentID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Attachment not found", "")
		}
		return response.NewInternalError("Failed to delete attachment", err.Error())
	}

	s.removeFile(ctx, attachment.URL, attachment.CardID)
	return nil
}

func (s *attachmentServiceImpl) removeFile(ctx context.Context, url, cardID string) {
	if err := s.storage.Delete(ctx, url); err != nil {
		s.logger.Warn("Failed to remove stored file",
			zap.String("card_id", cardID),
			zap.String("url", url),
			zap.Error(err))
	}
}

// normalizeContentType drops parameters such as charset and lowercases the media type
func normalizeContentType(contentType string) (string, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", err
	}
	return strings.ToLower(mediaType), nil
}
