package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard-api/internal/domain"
	"taskboard-api/internal/dto"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/response"
)

// CommentService defines the interface for card comments
type CommentService interface {
	CreateComment(ctx context.Context, cardID string, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	GetComments(ctx context.Context, cardID string) ([]*dto.CommentResponse, error)
	UpdateComment(ctx context.Context, commentID string, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	DeleteComment(ctx context.Context, commentID string) error
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepository
	cardRepo    repository.CardRepository
	userRepo    repository.UserRepository
	tx          repository.Transactor
	logger      *zap.Logger
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	cardRepo repository.CardRepository,
	userRepo repository.UserRepository,
	tx repository.Transactor,
	logger *zap.Logger,
) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		cardRepo:    cardRepo,
		userRepo:    userRepo,
		tx:          tx,
		logger:      logger,
	}
}

func (s *commentServiceImpl) CreateComment(ctx context.Context, cardID string, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	text, err := requireTitle("Text", req.Text)
	if err != nil {
		return nil, err
	}

	comment := &domain.Comment{CardID: cardID, UserID: req.UserID, Text: text}
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.cardRepo.FindByID(ctx, cardID); err != nil {
			return lookupError(err, "Card")
		}
		if _, err := s.userRepo.FindByID(ctx, req.UserID); err != nil {
			return lookupError(err, "User")
		}
		return s.commentRepo.Create(ctx, comment)
	})
	if err != nil {
		return nil, asAppError(err, "Failed to create comment")
	}

	return s.loadComment(ctx, comment.ID)
}

// GetComments returns the card's comments newest first
func (s *commentServiceImpl) GetComments(ctx context.Context, cardID string) ([]*dto.CommentResponse, error) {
	if _, err := s.cardRepo.FindByID(ctx, cardID); err != nil {
		return nil, lookupError(err, "Card")
	}

	comments, err := s.commentRepo.FindByCardID(ctx, cardID)
	if err != nil {
		return nil, response.NewInternalError("Failed to fetch comments", err.Error())
	}

	responses := make([]*dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, dto.NewCommentResponse(comment))
	}
	return responses, nil
}

func (s *commentServiceImpl) UpdateComment(ctx context.Context, commentID string, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		comment, err := s.commentRepo.FindByID(ctx, commentID)
		if err != nil {
			return lookupError(err, "Comment")
		}
		if comment.Text, err = requireTitle("Text", req.Text); err != nil {
			return err
		}
		return s.commentRepo.Update(ctx, comment)
	})
	if err != nil {
		return nil, asAppError(err, "Failed to update comment")
	}

	return s.loadComment(ctx, commentID)
}

func (s *commentServiceImpl) DeleteComment(ctx context.Context, commentID string) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.commentRepo.Delete(ctx, commentID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Comment not found", "")
		}
		return response.NewInternalError("Failed to delete comment", err.Error())
	}
	return nil
}

func (s *commentServiceImpl) loadComment(ctx context.Context, commentID string) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return nil, lookupError(err, "Comment")
	}
	return dto.NewCommentResponse(comment), nil
}
