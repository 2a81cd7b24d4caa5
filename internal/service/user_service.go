package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard-api/internal/dto"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/response"
)

// UserService exposes users read-only over HTTP. DeleteUser backs the CLI.
type UserService interface {
	GetUsers(ctx context.Context) ([]*dto.UserResponse, error)
	GetUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, userID string) error
}

type userServiceImpl struct {
	userRepo repository.UserRepository
	tx       repository.Transactor
	logger   *zap.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepo repository.UserRepository, tx repository.Transactor, logger *zap.Logger) UserService {
	return &userServiceImpl{userRepo: userRepo, tx: tx, logger: logger}
}

// GetUsers returns every user ordered by name
func (s *userServiceImpl) GetUsers(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewInternalError("Failed to fetch users", err.Error())
	}

	responses := make([]*dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.NewUserResponse(user))
	}
	return responses, nil
}

func (s *userServiceImpl) GetUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, lookupError(err, "User")
	}
	return dto.NewUserResponse(user), nil
}

// DeleteUser removes the user's card memberships and comments. Their cards stay.
func (s *userServiceImpl) DeleteUser(ctx context.Context, userID string) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.userRepo.Delete(ctx, userID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("User not found", "")
		}
		return response.NewInternalError("Failed to delete user", err.Error())
	}

	s.logger.Info("User deleted", zap.String("user_id", userID))
	return nil
}
