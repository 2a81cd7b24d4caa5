package service

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard-api/internal/domain"
	"taskboard-api/internal/dto"
	"taskboard-api/internal/response"
)

func TestCardService_CreateCard_RoundTrip(t *testing.T) {
	env := newTestEnv(t)
	board := env.board("Sprint")
	list := env.list(board.ID, "Todo", 0)

	created, err := env.cards.CreateCard(env.ctx, &dto.CreateCardRequest{ListID: list.ID, Title: "T", Position: ptr(2)})
	require.NoError(t, err)
	assert.Equal(t, 2, created.Position)
	assert.Equal(t, list.ID, created.ListID)
	require.NotNil(t, created.List)
	assert.Equal(t, board.ID, created.List.BoardID)
	assert.Equal(t, float64(1), testutil.ToFloat64(env.metrics.CardCreatedTotal))

	got, err := env.cards.GetCard(env.ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", got.Title)
	assert.Equal(t, 2, got.Position)
	assert.Equal(t, list.ID, got.ListID)
	assert.NotNil(t, got.Checklists)
	assert.NotNil(t, got.Comments)

	updated, err := env.cards.UpdateCard(env.ctx, created.ID, &dto.UpdateCardRequest{Title: ptr("T2")})
	require.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, 2, updated.Position)
	assert.Equal(t, list.ID, updated.ListID)
}

func TestCardService_CreateCard_Errors(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.cards.CreateCard(env.ctx, &dto.CreateCardRequest{ListID: "missing", Title: "T"})
	assertAppError(t, err, response.ErrCodeNotFound)

	list := env.list(env.board("B").ID, "L", 0)
	_, err = env.cards.CreateCard(env.ctx, &dto.CreateCardRequest{ListID: list.ID, Title: "  "})
	assertAppError(t, err, response.ErrCodeValidation)
}

func TestCardService_ConcurrentAppendsGetDistinctPositions(t *testing.T) {
	env := newTestEnv(t)
	list := env.list(env.board("B").ID, "L", 0)

	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.cards.CreateCard(env.ctx, &dto.CreateCardRequest{ListID: list.ID, Title: "C"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	cards, err := env.cards.GetCardsByList(env.ctx, list.ID)
	require.NoError(t, err)
	require.Len(t, cards, n)
	for i, c := range cards {
		assert.Equal(t, i, c.Position)
	}
}

func TestCardService_UpdateCard_NullableFields(t *testing.T) {
	env := newTestEnv(t)
	list := env.list(env.board("B").ID, "L", 0)
	due := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

	created, err := env.cards.CreateCard(env.ctx, &dto.CreateCardRequest{
		ListID:      list.ID,
		Title:       "T",
		Description: ptr("desc"),
		DueDate:     &due,
		CoverImage:  ptr("/uploads/cover.png"),
	})
	require.NoError(t, err)

	// absent fields stay
	updated, err := env.cards.UpdateCard(env.ctx, created.ID, &dto.UpdateCardRequest{Position: ptr(5)})
	require.NoError(t, err)
	require.NotNil(t, updated.Description)
	require.NotNil(t, updated.DueDate)
	assert.True(t, due.Equal(*updated.DueDate))
	assert.Equal(t, 5, updated.Position)

	// null clears
	updated, err = env.cards.UpdateCard(env.ctx, created.ID, &dto.UpdateCardRequest{
		Description: dto.Null[string](),
		DueDate:     dto.Null[time.Time](),
		CoverImage:  dto.Null[string](),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Description)
	assert.Nil(t, updated.DueDate)
	assert.Nil(t, updated.CoverImage)

	_, err = env.cards.UpdateCard(env.ctx, created.ID, &dto.UpdateCardRequest{ListID: ptr("missing")})
	assertAppError(t, err, response.ErrCodeNotFound)

	_, err = env.cards.UpdateCard(env.ctx, "missing", &dto.UpdateCardRequest{Title: ptr("x")})
	assertAppError(t, err, response.ErrCodeNotFound)
}

func TestCardService_MoveCard(t *testing.T) {
	env := newTestEnv(t)
	board := env.board("B")
	a := env.list(board.ID, "A", 0)
	b := env.list(board.ID, "B", 1)
	moving := env.card(a.ID, "moving", 0)
	env.card(a.ID, "stays", 1)
	b0 := env.card(b.ID, "b0", 0)
	b1 := env.card(b.ID, "b1", 1)

	moved, err := env.cards.MoveCard(env.ctx, moving.ID, &dto.MoveCardRequest{ListID: b.ID, Position: ptr(0)})
	require.NoError(t, err)
	assert.Equal(t, b.ID, moved.ListID)
	assert.Equal(t, 0, moved.Position)
	require.NotNil(t, moved.List)
	assert.Equal(t, b.ID, moved.List.ID)

	inA, err := env.cards.GetCardsByList(env.ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, inA, 1)
	assert.Equal(t, "stays", inA[0].Title)

	// B's cards keep their positions
	var got domain.Card
	require.NoError(t, env.db.First(&got, "id = ?", b0.ID).Error)
	assert.Equal(t, 0, got.Position)
	require.NoError(t, env.db.First(&got, "id = ?", b1.ID).Error)
	assert.Equal(t, 1, got.Position)

	_, err = env.cards.MoveCard(env.ctx, moving.ID, &dto.MoveCardRequest{ListID: "missing", Position: ptr(0)})
	assertAppError(t, err, response.ErrCodeNotFound)

	_, err = env.cards.MoveCard(env.ctx, "missing", &dto.MoveCardRequest{ListID: b.ID, Position: ptr(0)})
	assertAppError(t, err, response.ErrCodeNotFound)
}

func TestCardService_ReorderCards(t *testing.T) {
	env := newTestEnv(t)
	board := env.board("B")
	a := env.list(board.ID, "A", 0)
	b := env.list(board.ID, "B", 1)
	c1 := env.card(a.ID, "c1", 0)
	c2 := env.card(a.ID, "c2", 1)

	result, err := env.cards.ReorderCards(env.ctx, &dto.ReorderCardsRequest{Cards: []dto.CardPosition{
		{ID: c1.ID, Position: ptr(7)},
		{ID: c2.ID, ListID: ptr(b.ID), Position: ptr(0)},
		{ID: "ghost", Position: ptr(1)},
		{ID: c1.ID, ListID: ptr("missing-list"), Position: ptr(0)},
	}})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Updated)
	assert.Equal(t, []string{"ghost", c1.ID}, result.Skipped)

	var got domain.Card
	require.NoError(t, env.db.First(&got, "id = ?", c1.ID).Error)
	assert.Equal(t, a.ID, got.ListID)
	assert.Equal(t, 7, got.Position)
	require.NoError(t, env.db.First(&got, "id = ?", c2.ID).Error)
	assert.Equal(t, b.ID, got.ListID)
	assert.Equal(t, 0, got.Position)
}

func TestCardService_DeleteCard(t *testing.T) {
	env := newTestEnv(t)
	user := env.user("Ada", "ada@example.com")
	list := env.list(env.board("B").ID, "L", 0)
	card := env.card(list.ID, "C", 0)
	_, err := env.members.AttachMember(env.ctx, card.ID, user.ID)
	require.NoError(t, err)
	_, err = env.comments.CreateComment(env.ctx, card.ID, &dto.CreateCommentRequest{Text: "x", UserID: user.ID})
	require.NoError(t, err)

	require.NoError(t, env.cards.DeleteCard(env.ctx, card.ID))
	assert.Zero(t, env.count(&domain.CardMember{}, ""))
	assert.Zero(t, env.count(&domain.Comment{}, ""))

	assertAppError(t, env.cards.DeleteCard(env.ctx, card.ID), response.ErrCodeNotFound)
}

func TestCardService_SearchCards(t *testing.T) {
	env := newTestEnv(t)
	user := env.user("Ada", "ada@example.com")
	board := env.board("B")
	other := env.board("Other")
	list := env.list(board.ID, "L", 0)
	otherList := env.list(other.ID, "L", 0)
	bug := env.label(board.ID, "Bug")

	onDay := &domain.Card{ListID: list.ID, Title: "Fix login", DueDate: ptr(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))}
	lateOnDay := &domain.Card{ListID: list.ID, Title: "Release", DueDate: ptr(time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC))}
	nextDay := &domain.Card{ListID: list.ID, Title: "Retro", DueDate: ptr(time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC))}
	elsewhere := &domain.Card{ListID: otherList.ID, Title: "fix LOGIN again"}
	for _, c := range []*domain.Card{onDay, lateOnDay, nextDay, elsewhere} {
		require.NoError(t, env.db.Create(c).Error)
	}
	_, err := env.labels.AttachLabel(env.ctx, onDay.ID, bug.ID)
	require.NoError(t, err)
	_, err = env.members.AttachMember(env.ctx, nextDay.ID, user.ID)
	require.NoError(t, err)

	tests := []struct {
		name  string
		query dto.SearchCardsQuery
		want  []string
	}{
		{"no filters", dto.SearchCardsQuery{}, []string{onDay.ID, lateOnDay.ID, nextDay.ID, elsewhere.ID}},
		{"title is case insensitive", dto.SearchCardsQuery{Q: "LOGIN"}, []string{onDay.ID, elsewhere.ID}},
		{"due date matches the whole day", dto.SearchCardsQuery{DueDate: "2024-03-15"}, []string{onDay.ID, lateOnDay.ID}},
		{"malformed due date is ignored", dto.SearchCardsQuery{DueDate: "not-a-date"}, []string{onDay.ID, lateOnDay.ID, nextDay.ID, elsewhere.ID}},
		{"label", dto.SearchCardsQuery{LabelID: bug.ID}, []string{onDay.ID}},
		{"member", dto.SearchCardsQuery{UserID: user.ID}, []string{nextDay.ID}},
		{"board", dto.SearchCardsQuery{BoardID: other.ID}, []string{elsewhere.ID}},
		{"filters are ANDed", dto.SearchCardsQuery{Q: "login", BoardID: board.ID}, []string{onDay.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards, err := env.cards.SearchCards(env.ctx, &tt.query)
			require.NoError(t, err)
			ids := make([]string, 0, len(cards))
			for _, c := range cards {
				ids = append(ids, c.ID)
			}
			assert.ElementsMatch(t, tt.want, ids)
		})
	}
}
