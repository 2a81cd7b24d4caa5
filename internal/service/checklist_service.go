package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard-api/internal/domain"
	"taskboard-api/internal/dto"
	"taskboard-api/internal/lock"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/response"
)

// ChecklistService defines the interface for checklists and their items
type ChecklistService interface {
	CreateChecklist(ctx context.Context, cardID string, req *dto.CreateChecklistRequest) (*dto.ChecklistResponse, error)
	UpdateChecklist(ctx context.Context, checklistID string, req *dto.UpdateChecklistRequest) (*dto.ChecklistResponse, error)
	DeleteChecklist(ctx context.Context, checklistID string) error
	CreateItem(ctx context.Context, checklistID string, req *dto.CreateChecklistItemRequest) (*dto.ChecklistItemResponse, error)
	UpdateItem(ctx context.Context, itemID string, req *dto.UpdateChecklistItemRequest) (*dto.ChecklistItemResponse, error)
	DeleteItem(ctx context.Context, itemID string) error
}

type checklistServiceImpl struct {
	checklistRepo repository.ChecklistRepository
	cardRepo      repository.CardRepository
	tx            repository.Transactor
	locker        lock.Locker
	logger        *zap.Logger
}

// NewChecklistService creates a new instance of ChecklistService
func NewChecklistService(
	checklistRepo repository.ChecklistRepository,
	cardRepo repository.CardRepository,
	tx repository.Transactor,
	locker lock.Locker,
	logger *zap.Logger,
) ChecklistService {
	return &checklistServiceImpl{
		checklistRepo: checklistRepo,
		cardRepo:      cardRepo,
		tx:            tx,
		locker:        locker,
		logger:        logger,
	}
}

// CreateChecklist appends a checklist to the card unless a position is given
func (s *checklistServiceImpl) CreateChecklist(ctx context.Context, cardID string, req *dto.CreateChecklistRequest) (*dto.ChecklistResponse, error) {
	title, err := requireTitle("Title", req.Title)
	if err != nil {
		return nil, err
	}
	if _, err := s.cardRepo.FindByID(ctx, cardID); err != nil {
		return nil, lookupError(err, "Card")
	}

	checklist := &domain.Checklist{CardID: cardID, Title: title}
	err = appendOrPlace(ctx, s.locker, s.tx, lockCard, cardID, req.Position,
		func(ctx context.Context) (int, error) {
			return s.checklistRepo.NextPosition(ctx, cardID)
		},
		func(ctx context.Context, position int) error {
			checklist.Position = position
			return s.checklistRepo.Create(ctx, checklist)
		},
	)
	if err != nil {
		return nil, asAppError(err, "Failed to create checklist")
	}

	return dto.NewChecklistResponse(checklist), nil
}

func (s *checklistServiceImpl) UpdateChecklist(ctx context.Context, checklistID string, req *dto.UpdateChecklistRequest) (*dto.ChecklistResponse, error) {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		checklist, err := s.checklistRepo.FindByID(ctx, checklistID)
		if err != nil {
			return lookupError(err, "Checklist")
		}
		if req.Title != nil {
			if checklist.Title, err = requireTitle("Title", *req.Title); err != nil {
				return err
			}
		}
		if req.Position != nil {
			checklist.Position = *req.Position
		}
		return s.checklistRepo.Update(ctx, checklist)
	})
	if err != nil {
		return nil, asAppError(err, "Failed to update checklist")
	}

	checklist, err := s.checklistRepo.FindByIDWithItems(ctx, checklistID)
	if err != nil {
		return nil, lookupError(err, "Checklist")
	}
	return dto.NewChecklistResponse(checklist), nil
}

// DeleteChecklist removes the checklist and its items
func (s *checklistServiceImpl) DeleteChecklist(ctx context.Context, checklistID string) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.checklistRepo.Delete(ctx, checklistID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Checklist not found", "")
		}
		return response.NewInternalError("Failed to delete checklist", err.Error())
	}
	return nil
}

// CreateItem appends an item to the checklist unless a position is given
func (s *checklistServiceImpl) CreateItem(ctx context.Context, checklistID string, req *dto.CreateChecklistItemRequest) (*dto.ChecklistItemResponse, error) {
	text, err := requireTitle("Text", req.Text)
	if err != nil {
		return nil, err
	}
	if _, err := s.checklistRepo.FindByID(ctx, checklistID); err != nil {
		return nil, lookupError(err, "Checklist")
	}

	item := &domain.ChecklistItem{ChecklistID: checklistID, Text: text}
	if req.IsCompleted != nil {
		item.IsCompleted = *req.IsCompleted
	}
	err = appendOrPlace(ctx, s.locker, s.tx, lockChecklist, checklistID, req.Position,
		func(ctx context.Context) (int, error) {
			return s.checklistRepo.NextItemPosition(ctx, checklistID)
		},
		func(ctx context.Context, position int) error {
			item.Position = position
			return s.checklistRepo.CreateItem(ctx, item)
		},
	)
	if err != nil {
		return nil, asAppError(err, "Failed to create checklist item")
	}

	return dto.NewChecklistItemResponse(item), nil
}

func (s *checklistServiceImpl) UpdateItem(ctx context.Context, itemID string, req *dto.UpdateChecklistItemRequest) (*dto.ChecklistItemResponse, error) {
	var item *domain.ChecklistItem
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		item, err = s.checklistRepo.FindItemByID(ctx, itemID)
		if err != nil {
			return lookupError(err, "Checklist item")
		}
		if req.Text != nil {
			if item.Text, err = requireTitle("Text", *req.Text); err != nil {
				return err
			}
		}
		if req.IsCompleted != nil {
			item.IsCompleted = *req.IsCompleted
		}
		if req.Position != nil {
			item.Position = *req.Position
		}
		return s.checklistRepo.UpdateItem(ctx, item)
	})
	if err != nil {
		return nil, asAppError(err, "Failed to update checklist item")
	}

	return dto.NewChecklistItemResponse(item), nil
}

func (s *checklistServiceImpl) DeleteItem(ctx context.Context, itemID string) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.checklistRepo.DeleteItem(ctx, itemID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Checklist item not found", "")
		}
		return response.NewInternalError("Failed to delete checklist item", err.Error())
	}
	return nil
}
