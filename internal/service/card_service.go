package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard-api/internal/domain"
	"taskboard-api/internal/dto"
	"taskboard-api/internal/lock"
	"taskboard-api/internal/metrics"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/response"
)

// dueDateLayout is the calendar-day format accepted by the due_date search filter
const dueDateLayout = "2006-01-02"

// CardService defines the interface for card business logic
type CardService interface {
	CreateCard(ctx context.Context, req *dto.CreateCardRequest) (*dto.CardDetailResponse, error)
	GetCard(ctx context.Context, cardID string) (*dto.CardDetailResponse, error)
	GetCardsByList(ctx context.Context, listID string) ([]*dto.CardResponse, error)
	UpdateCard(ctx context.Context, cardID string, req *dto.UpdateCardRequest) (*dto.CardDetailResponse, error)
	MoveCard(ctx context.Context, cardID string, req *dto.MoveCardRequest) (*dto.CardDetailResponse, error)
	ReorderCards(ctx context.Context, req *dto.ReorderCardsRequest) (*dto.ReorderResponse, error)
	DeleteCard(ctx context.Context, cardID string) error
	SearchCards(ctx context.Context, query *dto.SearchCardsQuery) ([]*dto.CardResponse, error)
}

type cardServiceImpl struct {
	cardRepo repository.CardRepository
	listRepo repository.ListRepository
	tx       repository.Transactor
	locker   lock.Locker
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewCardService creates a new instance of CardService
func NewCardService(
	cardRepo repository.CardRepository,
	listRepo repository.ListRepository,
	tx repository.Transactor,
	locker lock.Locker,
	m *metrics.Metrics,
	logger *zap.Logger,
) CardService {
	return &cardServiceImpl{
		cardRepo: cardRepo,
		listRepo: listRepo,
		tx:       tx,
		locker:   locker,
		metrics:  m,
		logger:   logger,
	}
}

// CreateCard appends the card to its list unless a position is given
func (s *cardServiceImpl) CreateCard(ctx context.Context, req *dto.CreateCardRequest) (*dto.CardDetailResponse, error) {
	title, err := requireTitle("Title", req.Title)
	if err != nil {
		return nil, err
	}
	list, err := s.listRepo.FindByID(ctx, req.ListID)
	if err != nil {
		return nil, lookupError(err, "List")
	}

	card := &domain.Card{
		ListID:      req.ListID,
		Title:       title,
		Description: req.Description,
		DueDate:     utcPtr(req.DueDate),
		CoverImage:  req.CoverImage,
	}
	err = appendOrPlace(ctx, s.locker, s.tx, lockList, req.ListID, req.Position,
		func(ctx context.Context) (int, error) {
			return s.cardRepo.NextPosition(ctx, req.ListID)
		},
		func(ctx context.Context, position int) error {
			card.Position = position
			return s.cardRepo.Create(ctx, card)
		},
	)
	if err != nil {
		return nil, asAppError(err, "Failed to create card")
	}

	if s.metrics != nil {
		s.metrics.IncrementCardCreated()
	}

	return dto.NewCardDetailResponse(card, list), nil
}

// GetCard returns the card with its list reference and every child
func (s *cardServiceImpl) GetCard(ctx context.Context, cardID string) (*dto.CardDetailResponse, error) {
	card, err := s.cardRepo.FindByIDWithDetails(ctx, cardID)
	if err != nil {
		return nil, lookupError(err, "Card")
	}

	list, err := s.listRepo.FindByID(ctx, card.ListID)
	if err != nil {
		return nil, lookupError(err, "List")
	}
	return dto.NewCardDetailResponse(card, list), nil
}

// GetCardsByList returns the list's cards by position with labels and members
func (s *cardServiceImpl) GetCardsByList(ctx context.Context, listID string) ([]*dto.CardResponse, error) {
	if _, err := s.listRepo.FindByID(ctx, listID); err != nil {
		return nil, lookupError(err, "List")
	}

	cards, err := s.cardRepo.FindByListID(ctx, listID)
	if err != nil {
		return nil, response.NewInternalError("Failed to fetch cards", err.Error())
	}
	return toCardResponses(cards), nil
}

// UpdateCard applies the supplied fields. Null clears description, due date and cover image.
func (s *cardServiceImpl) UpdateCard(ctx context.Context, cardID string, req *dto.UpdateCardRequest) (*dto.CardDetailResponse, error) {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		card, err := s.cardRepo.FindByID(ctx, cardID)
		if err != nil {
			return lookupError(err, "Card")
		}

		if req.Title != nil {
			title, err := requireTitle("Title", *req.Title)
			if err != nil {
				return err
			}
			card.Title = title
		}
		if req.ListID != nil && *req.ListID != card.ListID {
			if _, err := s.listRepo.FindByID(ctx, *req.ListID); err != nil {
				return lookupError(err, "List")
			}
			card.ListID = *req.ListID
		}
		if req.Position != nil {
			card.Position = *req.Position
		}
		req.Description.Apply(&card.Description)
		req.CoverImage.Apply(&card.CoverImage)
		req.DueDate.Apply(&card.DueDate)
		card.DueDate = utcPtr(card.DueDate)

		return s.cardRepo.Update(ctx, card)
	})
	if err != nil {
		return nil, asAppError(err, "Failed to update card")
	}

	return s.GetCard(ctx, cardID)
}

// MoveCard sets list and position in one update. Cards in either list are not renumbered.
func (s *cardServiceImpl) MoveCard(ctx context.Context, cardID string, req *dto.MoveCardRequest) (*dto.CardDetailResponse, error) {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.listRepo.FindByID(ctx, req.ListID); err != nil {
			return lookupError(err, "List")
		}
		moved, err := s.cardRepo.Move(ctx, cardID, req.ListID, *req.Position)
		if err != nil {
			return err
		}
		if !moved {
			return response.NewNotFoundError("Card not found", "")
		}
		return nil
	})
	if err != nil {
		return nil, asAppError(err, "Failed to move card")
	}

	s.logger.Debug("Card moved",
		zap.String("card_id", cardID),
		zap.String("list_id", req.ListID),
		zap.Int("position", *req.Position))

	return s.GetCard(ctx, cardID)
}

// ReorderCards applies each entry in its own transaction.
// Entries naming an unknown card or an unknown target list are skipped.
func (s *cardServiceImpl) ReorderCards(ctx context.Context, req *dto.ReorderCardsRequest) (*dto.ReorderResponse, error) {
	result := &dto.ReorderResponse{Skipped: make([]string, 0)}

	for _, item := range req.Cards {
		var applied bool
		err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
			var err error
			if item.ListID == nil {
				applied, err = s.cardRepo.UpdatePosition(ctx, item.ID, *item.Position)
				return err
			}

			if _, err := s.listRepo.FindByID(ctx, *item.ListID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil
				}
				return err
			}
			applied, err = s.cardRepo.Move(ctx, item.ID, *item.ListID, *item.Position)
			return err
		})
		if err != nil {
			return nil, response.NewInternalError("Failed to reorder cards", err.Error())
		}

		if !applied {
			s.logger.Warn("Skipping card in reorder", zap.String("card_id", item.ID))
			result.Skipped = append(result.Skipped, item.ID)
			continue
		}
		result.Updated++
	}

	return result, nil
}

// DeleteCard removes the card with its labels, members, checklists, attachments and comments
func (s *cardServiceImpl) DeleteCard(ctx context.Context, cardID string) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.cardRepo.Delete(ctx, cardID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Card not found", "")
		}
		return response.NewInternalError("Failed to delete card", err.Error())
	}
	return nil
}

// SearchCards ANDs every supplied filter. A malformed due_date is ignored.
func (s *cardServiceImpl) SearchCards(ctx context.Context, query *dto.SearchCardsQuery) ([]*dto.CardResponse, error) {
	filter := repository.CardSearchFilter{
		Query:   query.Q,
		LabelID: query.LabelID,
		UserID:  query.UserID,
		BoardID: query.BoardID,
	}

	if query.DueDate != "" {
		day, err := time.ParseInLocation(dueDateLayout, query.DueDate, time.UTC)
		if err != nil {
			s.logger.Debug("Ignoring malformed due_date filter", zap.String("due_date", query.DueDate))
		} else {
			next := day.AddDate(0, 0, 1)
			filter.DueFrom = &day
			filter.DueTo = &next
		}
	}

	cards, err := s.cardRepo.Search(ctx, filter)
	if err != nil {
		return nil, response.NewInternalError("Failed to search cards", err.Error())
	}
	return toCardResponses(cards), nil
}

func toCardResponses(cards []*domain.Card) []*dto.CardResponse {
	responses := make([]*dto.CardResponse, 0, len(cards))
	for _, card := range cards {
		responses = append(responses, dto.NewCardResponse(card))
	}
	return responses
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
