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

// ListService defines the interface for list business logic
type ListService interface {
	CreateList(ctx context.Context, req *dto.CreateListRequest) (*dto.ListResponse, error)
	GetList(ctx context.Context, listID string) (*dto.ListResponse, error)
	GetListsByBoard(ctx context.Context, boardID string) ([]*dto.ListResponse, error)
	UpdateList(ctx context.Context, listID string, req *dto.UpdateListRequest) (*dto.ListResponse, error)
	DeleteList(ctx context.Context, listID string) error
	ReorderLists(ctx context.Context, req *dto.ReorderListsRequest) (*dto.ReorderResponse, error)
}

type listServiceImpl struct {
	listRepo  repository.ListRepository
	boardRepo repository.BoardRepository
	tx        repository.Transactor
	locker    lock.Locker
	logger    *zap.Logger
}

// NewListService creates a new instance of ListService
func NewListService(
	listRepo repository.ListRepository,
	boardRepo repository.BoardRepository,
	tx repository.Transactor,
	locker lock.Locker,
	logger *zap.Logger,
) ListService {
	return &listServiceImpl{
		listRepo:  listRepo,
		boardRepo: boardRepo,
		tx:        tx,
		locker:    locker,
		logger:    logger,
	}
}

// CreateList appends the list to its board unless a position is given
func (s *listServiceImpl) CreateList(ctx context.Context, req *dto.CreateListRequest) (*dto.ListResponse, error) {
	title, err := requireTitle("Title", req.Title)
	if err != nil {
		return nil, err
	}
	if _, err := s.boardRepo.FindByID(ctx, req.BoardID); err != nil {
		return nil, lookupError(err, "Board")
	}

	list := &domain.List{BoardID: req.BoardID, Title: title}
	err = appendOrPlace(ctx, s.locker, s.tx, lockBoard, req.BoardID, req.Position,
		func(ctx context.Context) (int, error) {
			return s.listRepo.NextPosition(ctx, req.BoardID)
		},
		func(ctx context.Context, position int) error {
			list.Position = position
			return s.listRepo.Create(ctx, list)
		},
	)
	if err != nil {
		return nil, asAppError(err, "Failed to create list")
	}

	return dto.NewListResponse(list), nil
}

// GetList returns the list with its ordered cards
func (s *listServiceImpl) GetList(ctx context.Context, listID string) (*dto.ListResponse, error) {
	list, err := s.listRepo.FindByIDWithCards(ctx, listID)
	if err != nil {
		return nil, lookupError(err, "List")
	}
	return dto.NewListResponse(list), nil
}

// GetListsByBoard returns the board's lists by position, each with its cards
func (s *listServiceImpl) GetListsByBoard(ctx context.Context, boardID string) ([]*dto.ListResponse, error) {
	if _, err := s.boardRepo.FindByID(ctx, boardID); err != nil {
		return nil, lookupError(err, "Board")
	}

	lists, err := s.listRepo.FindByBoardID(ctx, boardID)
	if err != nil {
		return nil, response.NewInternalError("Failed to fetch lists", err.Error())
	}

	responses := make([]*dto.ListResponse, 0, len(lists))
	for _, list := range lists {
		responses = append(responses, dto.NewListResponse(list))
	}
	return responses, nil
}

func (s *listServiceImpl) UpdateList(ctx context.Context, listID string, req *dto.UpdateListRequest) (*dto.ListResponse, error) {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		list, err := s.listRepo.FindByID(ctx, listID)
		if err != nil {
			return lookupError(err, "List")
		}
		if req.Title != nil {
			title, err := requireTitle("Title", *req.Title)
			if err != nil {
				return err
			}
			list.Title = title
		}
		if req.Position != nil {
			list.Position = *req.Position
		}
		return s.listRepo.Update(ctx, list)
	})
	if err != nil {
		return nil, asAppError(err, "Failed to update list")
	}

	return s.GetList(ctx, listID)
}

// DeleteList removes the list with its cards and their children
func (s *listServiceImpl) DeleteList(ctx context.Context, listID string) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.listRepo.Delete(ctx, listID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("List not found", "")
		}
		return response.NewInternalError("Failed to delete list", err.Error())
	}
	return nil
}

// ReorderLists applies each entry in its own transaction. Unknown ids are skipped.
func (s *listServiceImpl) ReorderLists(ctx context.Context, req *dto.ReorderListsRequest) (*dto.ReorderResponse, error) {
	result := &dto.ReorderResponse{Skipped: make([]string, 0)}

	for _, item := range req.Lists {
		var applied bool
		err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
			var err error
			applied, err = s.listRepo.UpdatePosition(ctx, item.ID, *item.Position)
			return err
		})
		if err != nil {
			return nil, response.NewInternalError("Failed to reorder lists", err.Error())
		}

		if !applied {
			s.logger.Warn("Skipping unknown list in reorder", zap.String("list_id", item.ID))
			result.Skipped = append(result.Skipped, item.ID)
			continue
		}
		result.Updated++
	}

	return result, nil
}
