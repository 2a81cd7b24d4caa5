package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"taskboard-api/internal/domain"
)

func TestBoardRepository_DeleteCascades(t *testing.T) {
	f := newFixture(t)
	repo := NewBoardRepository(f.db)
	user := f.user("John Doe", "user@example.com")

	doomed := f.board("Doomed")
	label := f.label(doomed.ID, "Bug")
	for i := 0; i < 2; i++ {
		list := f.list(doomed.ID, "List", i)
		for j := 0; j < 2; j++ {
			f.populate(f.card(list.ID, "Card", j), label, user)
		}
	}

	kept := f.board("Kept")
	keptLabel := f.label(kept.ID, "Feature")
	keptList := f.list(kept.ID, "Todo", 0)
	f.populate(f.card(keptList.ID, "Survivor", 0), keptLabel, user)

	tx := NewTransactor(f.db)
	require.NoError(t, tx.WithinTransaction(f.ctx, func(ctx context.Context) error {
		return repo.Delete(ctx, doomed.ID)
	}))

	assert.Equal(t, int64(1), f.count(&domain.Board{}))
	assert.Equal(t, int64(1), f.count(&domain.List{}))
	assert.Equal(t, int64(1), f.count(&domain.Card{}))
	assert.Equal(t, int64(1), f.count(&domain.Label{}))
	assert.Equal(t, int64(1), f.count(&domain.CardLabel{}))
	assert.Equal(t, int64(1), f.count(&domain.CardMember{}))
	assert.Equal(t, int64(1), f.count(&domain.Checklist{}))
	assert.Equal(t, int64(1), f.count(&domain.ChecklistItem{}))
	assert.Equal(t, int64(1), f.count(&domain.Attachment{}))
	assert.Equal(t, int64(1), f.count(&domain.Comment{}))
	assert.Equal(t, int64(1), f.count(&domain.User{}))
}

func TestBoardRepository_DeleteMissing(t *testing.T) {
	f := newFixture(t)
	repo := NewBoardRepository(f.db)

	err := repo.Delete(f.ctx, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBoardRepository_FindTreeByID_Ordering(t *testing.T) {
	f := newFixture(t)
	repo := NewBoardRepository(f.db)
	user := f.user("Jane Smith", "jane@example.com")

	board := f.board("Tree")
	second := f.list(board.ID, "Second", 1)
	firstA := f.list(board.ID, "First A", 0)
	firstB := f.list(board.ID, "First B", 0)

	card := f.card(firstA.ID, "Card", 0)
	older := &domain.Comment{CardID: card.ID, UserID: user.ID, Text: "older"}
	require.NoError(t, f.db.Create(older).Error)
	newer := &domain.Comment{CardID: card.ID, UserID: user.ID, Text: "newer"}
	require.NoError(t, f.db.Create(newer).Error)

	got, err := repo.FindTreeByID(f.ctx, board.ID)
	require.NoError(t, err)

	require.Len(t, got.Lists, 3)
	assert.Equal(t, firstA.ID, got.Lists[0].ID)
	assert.Equal(t, firstB.ID, got.Lists[1].ID)
	assert.Equal(t, second.ID, got.Lists[2].ID)

	require.Len(t, got.Lists[0].Cards, 1)
	comments := got.Lists[0].Cards[0].Comments
	require.Len(t, comments, 2)
	assert.Equal(t, "newer", comments[0].Text)
	assert.Equal(t, "older", comments[1].Text)
	require.NotNil(t, comments[0].User)
	assert.Equal(t, "Jane Smith", comments[0].User.Name)
}

func TestBoardRepository_FindAll_NewestFirst(t *testing.T) {
	f := newFixture(t)
	repo := NewBoardRepository(f.db)

	first := f.board("First")
	second := f.board("Second")

	boards, err := repo.FindAll(f.ctx)
	require.NoError(t, err)
	require.Len(t, boards, 2)
	assert.Equal(t, second.ID, boards[0].ID)
	assert.Equal(t, first.ID, boards[1].ID)
}

func TestBoardRepository_UpdateRefreshesUpdatedAt(t *testing.T) {
	f := newFixture(t)
	repo := NewBoardRepository(f.db)
	board := f.board("Same")

	before := board.UpdatedAt
	require.NoError(t, repo.Update(f.ctx, board))

	got, err := repo.FindByID(f.ctx, board.ID)
	require.NoError(t, err)
	assert.True(t, got.UpdatedAt.After(before) || got.UpdatedAt.Equal(before))
	assert.Equal(t, "Same", got.Title)
}
