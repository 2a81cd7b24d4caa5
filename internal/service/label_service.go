package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard-api/internal/domain"
	"taskboard-api/internal/dto"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/response"
)

// LabelService defines the interface for board labels and their attachment to cards
type LabelService interface {
	CreateLabel(ctx context.Context, req *dto.CreateLabelRequest) (*dto.LabelResponse, error)
	GetLabelsByBoard(ctx context.Context, boardID string) ([]*dto.LabelResponse, error)
	UpdateLabel(ctx context.Context, labelID string, req *dto.UpdateLabelRequest) (*dto.LabelResponse, error)
	DeleteLabel(ctx context.Context, labelID string) error
	AttachLabel(ctx context.Context, cardID, labelID string) (*dto.CardLabelResponse, error)
	DetachLabel(ctx context.Context, cardID, labelID string) error
}

type labelServiceImpl struct {
	labelRepo repository.LabelRepository
	boardRepo repository.BoardRepository
	cardRepo  repository.CardRepository
	tx        repository.Transactor
	logger    *zap.Logger
}

// NewLabelService creates a new instance of LabelService
func NewLabelService(
	labelRepo repository.LabelRepository,
	boardRepo repository.BoardRepository,
	cardRepo repository.CardRepository,
	tx repository.Transactor,
	logger *zap.Logger,
) LabelService {
	return &labelServiceImpl{
		labelRepo: labelRepo,
		boardRepo: boardRepo,
		cardRepo:  cardRepo,
		tx:        tx,
		logger:    logger,
	}
}

func (s *labelServiceImpl) CreateLabel(ctx context.Context, req *dto.CreateLabelRequest) (*dto.LabelResponse, error) {
	name, err := requireTitle("Name", req.Name)
	if err != nil {
		return nil, err
	}
	color, err := requireTitle("Color", req.Color)
	if err != nil {
		return nil, err
	}

	label := &domain.Label{BoardID: req.BoardID, Name: name, Color: color}
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.boardRepo.FindByID(ctx, req.BoardID); err != nil {
			return lookupError(err, "Board")
		}
		return s.labelRepo.Create(ctx, label)
	})
	if err != nil {
		return nil, asAppError(err, "Failed to create label")
	}

	return dto.NewLabelResponse(label), nil
}

// GetLabelsByBoard returns the board's labels oldest first
func (s *labelServiceImpl) GetLabelsByBoard(ctx context.Context, boardID string) ([]*dto.LabelResponse, error) {
	if _, err := s.boardRepo.FindByID(ctx, boardID); err != nil {
		return nil, lookupError(err, "Board")
	}

	labels, err := s.labelRepo.FindByBoardID(ctx, boardID)
	if err != nil {
		return nil, response.NewInternalError("Failed to fetch labels", err.Error())
	}

	responses := make([]*dto.LabelResponse, 0, len(labels))
	for _, label := range labels {
		responses = append(responses, dto.NewLabelResponse(label))
	}
	return responses, nil
}

func (s *labelServiceImpl) UpdateLabel(ctx context.Context, labelID string, req *dto.UpdateLabelRequest) (*dto.LabelResponse, error) {
	var label *domain.Label
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		label, err = s.labelRepo.FindByID(ctx, labelID)
		if err != nil {
			return lookupError(err, "Label")
		}
		if req.Name != nil {
			if label.Name, err = requireTitle("Name", *req.Name); err != nil {
				return err
			}
		}
		if req.Color != nil {
			if label.Color, err = requireTitle("Color", *req.Color); err != nil {
				return err
			}
		}
		return s.labelRepo.Update(ctx, label)
	})
	if err != nil {
		return nil, asAppError(err, "Failed to update label")
	}

	return dto.NewLabelResponse(label), nil
}

// DeleteLabel removes the label from every card and then deletes it. Cards are kept.
func (s *labelServiceImpl) DeleteLabel(ctx context.Context, labelID string) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.labelRepo.Delete(ctx, labelID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Label not found", "")
		}
		return response.NewInternalError("Failed to delete label", err.Error())
	}
	return nil
}

// AttachLabel links an existing label to an existing card. An existing link is a conflict.
func (s *labelServiceImpl) AttachLabel(ctx context.Context, cardID, labelID string) (*dto.CardLabelResponse, error) {
	var cardLabel *domain.CardLabel
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.cardRepo.FindByID(ctx, cardID); err != nil {
			return lookupError(err, "Card")
		}
		if _, err := s.labelRepo.FindByID(ctx, labelID); err != nil {
			return lookupError(err, "Label")
		}

		attached, err := s.labelRepo.IsAttached(ctx, cardID, labelID)
		if err != nil {
			return err
		}
		if attached {
			return response.NewConflictError("Label already attached to card", "")
		}

		cardLabel, err = s.labelRepo.AttachToCard(ctx, cardID, labelID)
		return duplicateAsConflict(err, "Label already attached to card")
	})
	if err != nil {
		return nil, asAppError(err, "Failed to attach label")
	}

	return dto.NewCardLabelResponse(cardLabel), nil
}

// DetachLabel removes the link. A missing link is NOT_FOUND.
func (s *labelServiceImpl) DetachLabel(ctx context.Context, cardID, labelID string) error {
	var removed bool
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		removed, err = s.labelRepo.DetachFromCard(ctx, cardID, labelID)
		return err
	})
	if err != nil {
		return response.NewInternalError("Failed to detach label", err.Error())
	}
	if !removed {
		return response.NewNotFoundError("Label not attached to card", "")
	}
	return nil
}

// duplicateAsConflict maps a unique violation from a concurrent attach to ALREADY_EXISTS
func duplicateAsConflict(err error, message string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || (err != nil && strings.Contains(strings.ToLower(err.Error()), "unique constraint")) {
		return response.NewConflictError(message, "")
	}
	return err
}
