package service

import (
	"context"

	"go.uber.org/zap"

	"taskboard-api/internal/domain"
	"taskboard-api/internal/dto"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/response"
)

// MemberService attaches users to cards
type MemberService interface {
	AttachMember(ctx context.Context, cardID, userID string) (*dto.CardMemberResponse, error)
	DetachMember(ctx context.Context, cardID, userID string) error
}

type memberServiceImpl struct {
	memberRepo repository.MemberRepository
	cardRepo   repository.CardRepository
	userRepo   repository.UserRepository
	tx         repository.Transactor
	logger     *zap.Logger
}

// NewMemberService creates a new instance of MemberService
func NewMemberService(
	memberRepo repository.MemberRepository,
	cardRepo repository.CardRepository,
	userRepo repository.UserRepository,
	tx repository.Transactor,
	logger *zap.Logger,
) MemberService {
	return &memberServiceImpl{
		memberRepo: memberRepo,
		cardRepo:   cardRepo,
		userRepo:   userRepo,
		tx:         tx,
		logger:     logger,
	}
}

func (s *memberServiceImpl) AttachMember(ctx context.Context, cardID, userID string) (*dto.CardMemberResponse, error) {
	var member *domain.CardMember
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.cardRepo.FindByID(ctx, cardID); err != nil {
			return lookupError(err, "Card")
		}
		if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
			return lookupError(err, "User")
		}

		attached, err := s.memberRepo.IsAttached(ctx, cardID, userID)
		if err != nil {
			return err
		}
		if attached {
			return response.NewConflictError("User already a member of card", "")
		}

		member, err = s.memberRepo.Attach(ctx, cardID, userID)
		return duplicateAsConflict(err, "User already a member of card")
	})
	if err != nil {
		return nil, asAppError(err, "Failed to add member")
	}

	return dto.NewCardMemberResponse(member), nil
}

func (s *memberServiceImpl) DetachMember(ctx context.Context, cardID, userID string) error {
	var removed bool
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		removed, err = s.memberRepo.Detach(ctx, cardID, userID)
		return err
	})
	if err != nil {
		return response.NewInternalError("Failed to remove member", err.Error())
	}
	if !removed {
		return response.NewNotFoundError("User is not a member of card", "")
	}
	return nil
}
