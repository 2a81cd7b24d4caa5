package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskboard-api/internal/domain"
)

// CardSearchFilter holds the optional card search criteria. Empty fields are not applied.
type CardSearchFilter struct {
	Query   string
	LabelID string
	UserID  string
	BoardID string
	// DueFrom and DueTo bound due_date as [DueFrom, DueTo)
	DueFrom *time.Time
	DueTo   *time.Time
}

// CardRepository defines the interface for card data access
type CardRepository interface {
	Create(ctx context.Context, card *domain.Card) error
	FindByID(ctx context.Context, id string) (*domain.Card, error)
	FindByIDWithDetails(ctx context.Context, id string) (*domain.Card, error)
	FindByListID(ctx context.Context, listID string) ([]*domain.Card, error)
	NextPosition(ctx context.Context, listID string) (int, error)
	Update(ctx context.Context, card *domain.Card) error
	Move(ctx context.Context, id, listID string, position int) (bool, error)
	UpdatePosition(ctx context.Context, id string, position int) (bool, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, filter CardSearchFilter) ([]*domain.Card, error)
	Count(ctx context.Context) (int64, error)
}

type cardRepositoryImpl struct {
	db *gorm.DB
}

// NewCardRepository creates a new instance of CardRepository
func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepositoryImpl{db: db}
}

func (r *cardRepositoryImpl) Create(ctx context.Context, card *domain.Card) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(card).Error
}

func (r *cardRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Card, error) {
	var card domain.Card
	if err := conn(ctx, r.db).Where("id = ?", id).First(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// FindByIDWithDetails loads a card with labels, members, checklists, attachments and comments
func (r *cardRepositoryImpl) FindByIDWithDetails(ctx context.Context, id string) (*domain.Card, error) {
	var card domain.Card
	if err := preloadCardDetails(conn(ctx, r.db), "").Where("id = ?", id).First(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// FindByListID returns the list's cards in position order with labels and members
func (r *cardRepositoryImpl) FindByListID(ctx context.Context, listID string) ([]*domain.Card, error) {
	cards := make([]*domain.Card, 0)
	if err := preloadCardSummary(conn(ctx, r.db)).
		Where("list_id = ?", listID).
		Order(positionOrder).
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *cardRepositoryImpl) NextPosition(ctx context.Context, listID string) (int, error) {
	return nextPosition(conn(ctx, r.db), &domain.Card{}, "list_id", listID)
}

func (r *cardRepositoryImpl) Update(ctx context.Context, card *domain.Card) error {
	return conn(ctx, r.db).Omit(clause.Associations).Save(card).Error
}

// Move changes list and position in one statement. Siblings are not renumbered.
func (r *cardRepositoryImpl) Move(ctx context.Context, id, listID string, position int) (bool, error) {
	return updatePosition(conn(ctx, r.db), &domain.Card{}, id, map[string]interface{}{
		"list_id":  listID,
		"position": position,
	})
}

func (r *cardRepositoryImpl) UpdatePosition(ctx context.Context, id string, position int) (bool, error) {
	return updatePosition(conn(ctx, r.db), &domain.Card{}, id, map[string]interface{}{"position": position})
}

// Delete removes the card and all of its children
func (r *cardRepositoryImpl) Delete(ctx context.Context, id string) error {
	db := conn(ctx, r.db)

	if err := deleteCardChildren(db, func() *gorm.DB {
		return db.Model(&domain.Card{}).Select("id").Where("id = ?", id)
	}); err != nil {
		return err
	}

	result := db.Where("id = ?", id).Delete(&domain.Card{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Search ANDs every non-empty filter and returns matches newest first
func (r *cardRepositoryImpl) Search(ctx context.Context, filter CardSearchFilter) ([]*domain.Card, error) {
	db := conn(ctx, r.db)
	query := preloadCardSummary(db).Model(&domain.Card{})

	if q := strings.TrimSpace(filter.Query); q != "" {
		query = query.Where("LOWER(title) LIKE ? ESCAPE '\\'", "%"+escapeLike(strings.ToLower(q))+"%")
	}
	if filter.LabelID != "" {
		query = query.Where("id IN (?)",
			db.Model(&domain.CardLabel{}).Select("card_id").Where("label_id = ?", filter.LabelID))
	}
	if filter.UserID != "" {
		query = query.Where("id IN (?)",
			db.Model(&domain.CardMember{}).Select("card_id").Where("user_id = ?", filter.UserID))
	}
	if filter.BoardID != "" {
		query = query.Where("list_id IN (?)",
			db.Model(&domain.List{}).Select("id").Where("board_id = ?", filter.BoardID))
	}
	if filter.DueFrom != nil {
		query = query.Where("due_date >= ?", *filter.DueFrom)
	}
	if filter.DueTo != nil {
		query = query.Where("due_date < ?", *filter.DueTo)
	}

	cards := make([]*domain.Card, 0)
	if err := query.Order(createdDesc).Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *cardRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&domain.Card{}).Count(&count).Error
	return count, err
}

func preloadCardSummary(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Labels", byJoinedAt).
		Preload("Labels.Label").
		Preload("Members", byJoinedAt).
		Preload("Members.User")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
