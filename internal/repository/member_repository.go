package repository

import (
	"context"

	"gorm.io/gorm"

	"taskboard-api/internal/domain"
)

// MemberRepository defines the interface for card-member data access
type MemberRepository interface {
	Attach(ctx context.Context, cardID, userID string) (*domain.CardMember, error)
	Detach(ctx context.Context, cardID, userID string) (bool, error)
	IsAttached(ctx context.Context, cardID, userID string) (bool, error)
}

type memberRepositoryImpl struct {
	db *gorm.DB
}

// NewMemberRepository creates a new instance of MemberRepository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepositoryImpl{db: db}
}

// Attach inserts the join row. A duplicate pair fails with gorm.ErrDuplicatedKey.
func (r *memberRepositoryImpl) Attach(ctx context.Context, cardID, userID string) (*domain.CardMember, error) {
	db := conn(ctx, r.db)
	member := &domain.CardMember{CardID: cardID, UserID: userID}
	if err := db.Omit("User").Create(member).Error; err != nil {
		return nil, err
	}
	if err := db.Preload("User").
		Where("card_id = ? AND user_id = ?", cardID, userID).
		First(member).Error; err != nil {
		return nil, err
	}
	return member, nil
}

func (r *memberRepositoryImpl) Detach(ctx context.Context, cardID, userID string) (bool, error) {
	result := conn(ctx, r.db).Where("card_id = ? AND user_id = ?", cardID, userID).Delete(&domain.CardMember{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *memberRepositoryImpl) IsAttached(ctx context.Context, cardID, userID string) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&domain.CardMember{}).
		Where("card_id = ? AND user_id = ?", cardID, userID).
		Count(&count).Error
	return count > 0, err
}
