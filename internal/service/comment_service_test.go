package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard-api/internal/dto"
	"taskboard-api/internal/response"
)

func TestCommentService(t *testing.T) {
	env := newTestEnv(t)
	user := env.user("Ada", "ada@example.com")
	card := env.card(env.list(env.board("B").ID, "L", 0).ID, "C", 0)

	first, err := env.comments.CreateComment(env.ctx, card.ID, &dto.CreateCommentRequest{Text: "first", UserID: user.ID})
	require.NoError(t, err)
	require.NotNil(t, first.User)
	assert.Equal(t, "Ada", first.User.Name)

	time.Sleep(2 * time.Millisecond)
	_, err = env.comments.CreateComment(env.ctx, card.ID, &dto.CreateCommentRequest{Text: "second", UserID: user.ID})
	require.NoError(t, err)

	comments, err := env.comments.GetComments(env.ctx, card.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "second", comments[0].Text)

	updated, err := env.comments.UpdateComment(env.ctx, first.ID, &dto.UpdateCommentRequest{Text: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Text)
	assert.Equal(t, user.ID, updated.UserID)

	_, err = env.comments.CreateComment(env.ctx, card.ID, &dto.CreateCommentRequest{Text: "x", UserID: "missing"})
	assertAppError(t, err, response.ErrCodeNotFound)
	_, err = env.comments.CreateComment(env.ctx, "missing", &dto.CreateCommentRequest{Text: "x", UserID: user.ID})
	assertAppError(t, err, response.ErrCodeNotFound)
	_, err = env.comments.UpdateComment(env.ctx, first.ID, &dto.UpdateCommentRequest{Text: " "})
	assertAppError(t, err, response.ErrCodeValidation)

	require.NoError(t, env.comments.DeleteComment(env.ctx, first.ID))
	assertAppError(t, env.comments.DeleteComment(env.ctx, first.ID), response.ErrCodeNotFound)
}
