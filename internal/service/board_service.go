package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard-api/internal/domain"
	"taskboard-api/internal/dto"
	"taskboard-api/internal/metrics"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/response"
)

// BoardService defines the interface for board business logic
type BoardService interface {
	CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	GetBoards(ctx context.Context) ([]*dto.BoardResponse, error)
	GetBoard(ctx context.Context, boardID string) (*dto.BoardResponse, error)
	UpdateBoard(ctx context.Context, boardID string, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error)
	DeleteBoard(ctx context.Context, boardID string) error
}

// boardServiceImpl is the implementation of BoardService
type boardServiceImpl struct {
	boardRepo repository.BoardRepository
	tx        repository.Transactor
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewBoardService creates a new instance of BoardService
func NewBoardService(
	boardRepo repository.BoardRepository,
	tx repository.Transactor,
	m *metrics.Metrics,
	logger *zap.Logger,
) BoardService {
	return &boardServiceImpl{
		boardRepo: boardRepo,
		tx:        tx,
		metrics:   m,
		logger:    logger,
	}
}

// CreateBoard creates an empty board. A missing or blank background gets the default color.
func (s *boardServiceImpl) CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	title, err := requireTitle("Title", req.Title)
	if err != nil {
		return nil, err
	}

	board := &domain.Board{
		Title:       title,
		Description: req.Description,
		Background:  backgroundOrDefault(req.Background),
	}

	if err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.boardRepo.Create(ctx, board)
	}); err != nil {
		return nil, asAppError(err, "Failed to create board")
	}

	if s.metrics != nil {
		s.metrics.IncrementBoardCreated()
	}

	s.logger.Info("Board created", zap.String("board_id", board.ID))
	return dto.NewBoardResponse(board), nil
}

// GetBoards returns every board newest first, each with its full tree
func (s *boardServiceImpl) GetBoards(ctx context.Context) ([]*dto.BoardResponse, error) {
	boards, err := s.boardRepo.FindAllTrees(ctx)
	if err != nil {
		return nil, response.NewInternalError("Failed to fetch boards", err.Error())
	}

	responses := make([]*dto.BoardResponse, 0, len(boards))
	for _, board := range boards {
		responses = append(responses, dto.NewBoardResponse(board))
	}
	return responses, nil
}

// GetBoard returns the board with labels, lists and every card child
func (s *boardServiceImpl) GetBoard(ctx context.Context, boardID string) (*dto.BoardResponse, error) {
	board, err := s.boardRepo.FindTreeByID(ctx, boardID)
	if err != nil {
		return nil, lookupError(err, "Board")
	}
	return dto.NewBoardResponse(board), nil
}

// UpdateBoard applies the supplied fields. A null background resets it to the default.
func (s *boardServiceImpl) UpdateBoard(ctx context.Context, boardID string, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error) {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		board, err := s.boardRepo.FindByID(ctx, boardID)
		if err != nil {
			return lookupError(err, "Board")
		}

		if req.Title != nil {
			title, err := requireTitle("Title", *req.Title)
			if err != nil {
				return err
			}
			board.Title = title
		}
		req.Description.Apply(&board.Description)
		if req.Background.Set {
			if req.Background.Null {
				board.Background = domain.DefaultBoardBackground
			} else {
				board.Background = backgroundOrDefault(&req.Background.Value)
			}
		}

		return s.boardRepo.Update(ctx, board)
	})
	if err != nil {
		return nil, asAppError(err, "Failed to update board")
	}

	return s.GetBoard(ctx, boardID)
}

// DeleteBoard removes the board with its lists, cards, card children and labels
func (s *boardServiceImpl) DeleteBoard(ctx context.Context, boardID string) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.boardRepo.Delete(ctx, boardID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Board not found", "")
		}
		return response.NewInternalError("Failed to delete board", err.Error())
	}

	s.logger.Info("Board deleted", zap.String("board_id", boardID))
	return nil
}

func backgroundOrDefault(background *string) string {
	if background == nil || strings.TrimSpace(*background) == "" {
		return domain.DefaultBoardBackground
	}
	return strings.TrimSpace(*background)
}
