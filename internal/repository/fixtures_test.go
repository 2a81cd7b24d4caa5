package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"taskboard-api/internal/domain"
	"taskboard-api/internal/testutil"
)

type fixture struct {
	t   *testing.T
	db  *gorm.DB
	ctx context.Context
}

func newFixture(t *testing.T) *fixture {
	return &fixture{t: t, db: testutil.NewDB(t), ctx: context.Background()}
}

func (f *fixture) user(name, email string) *domain.User {
	u := &domain.User{Name: name, Email: email}
	require.NoError(f.t, f.db.Create(u).Error)
	return u
}

func (f *fixture) board(title string) *domain.Board {
	b := &domain.Board{Title: title, Background: domain.DefaultBoardBackground}
	require.NoError(f.t, f.db.Create(b).Error)
	return b
}

func (f *fixture) list(boardID, title string, position int) *domain.List {
	l := &domain.List{BoardID: boardID, Title: title, Position: position}
	require.NoError(f.t, f.db.Create(l).Error)
	return l
}

func (f *fixture) card(listID, title string, position int) *domain.Card {
	c := &domain.Card{ListID: listID, Title: title, Position: position}
	require.NoError(f.t, f.db.Create(c).Error)
	return c
}

func (f *fixture) cardDue(listID, title string, due time.Time) *domain.Card {
	c := &domain.Card{ListID: listID, Title: title, DueDate: &due}
	require.NoError(f.t, f.db.Create(c).Error)
	return c
}

func (f *fixture) label(boardID, name string) *domain.Label {
	l := &domain.Label{BoardID: boardID, Name: name, Color: "#61bd4f"}
	require.NoError(f.t, f.db.Create(l).Error)
	return l
}

// populate gives a card one of every child row
func (f *fixture) populate(card *domain.Card, label *domain.Label, user *domain.User) {
	require.NoError(f.t, f.db.Create(&domain.CardLabel{CardID: card.ID, LabelID: label.ID}).Error)
	require.NoError(f.t, f.db.Create(&domain.CardMember{CardID: card.ID, UserID: user.ID}).Error)

	checklist := &domain.Checklist{CardID: card.ID, Title: "Todo"}
	require.NoError(f.t, f.db.Create(checklist).Error)
	require.NoError(f.t, f.db.Create(&domain.ChecklistItem{ChecklistID: checklist.ID, Text: "step"}).Error)

	require.NoError(f.t, f.db.Create(&domain.Attachment{CardID: card.ID, Name: "a.txt", URL: "/uploads/a.txt", Type: "text/plain", Size: 3}).Error)
	require.NoError(f.t, f.db.Create(&domain.Comment{CardID: card.ID, UserID: user.ID, Text: "hi"}).Error)
}

func (f *fixture) count(model interface{}) int64 {
	var n int64
	require.NoError(f.t, f.db.Model(model).Count(&n).Error)
	return n
}
