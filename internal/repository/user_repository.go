package repository

import (
	"context"

	"gorm.io/gorm"

	"taskboard-api/internal/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
}

type userRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepositoryImpl{db: db}
}

func (r *userRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	return conn(ctx, r.db).Create(user).Error
}

func (r *userRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := conn(ctx, r.db).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := conn(ctx, r.db).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindAll returns every user ordered by name
func (r *userRepositoryImpl) FindAll(ctx context.Context) ([]*domain.User, error) {
	users := make([]*domain.User, 0)
	if err := conn(ctx, r.db).Order(nameAsc).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Delete removes the user with their card memberships and comments. Cards are kept.
func (r *userRepositoryImpl) Delete(ctx context.Context, id string) error {
	db := conn(ctx, r.db)
	if err := db.Where("user_id = ?", id).Delete(&domain.CardMember{}).Error; err != nil {
		return err
	}
	if err := db.Where("user_id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
		return err
	}
	result := db.Where("id = ?", id).Delete(&domain.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
