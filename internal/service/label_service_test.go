package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard-api/internal/domain"
	"taskboard-api/internal/dto"
	"taskboard-api/internal/response"
)

func TestLabelService_CRUD(t *testing.T) {
	env := newTestEnv(t)
	board := env.board("B")

	created, err := env.labels.CreateLabel(env.ctx, &dto.CreateLabelRequest{BoardID: board.ID, Name: "Bug", Color: "#eb5a46"})
	require.NoError(t, err)
	assert.Equal(t, board.ID, created.BoardID)

	_, err = env.labels.CreateLabel(env.ctx, &dto.CreateLabelRequest{BoardID: "missing", Name: "Bug", Color: "#eb5a46"})
	assertAppError(t, err, response.ErrCodeNotFound)

	updated, err := env.labels.UpdateLabel(env.ctx, created.ID, &dto.UpdateLabelRequest{Color: ptr("#0079bf")})
	require.NoError(t, err)
	assert.Equal(t, "Bug", updated.Name)
	assert.Equal(t, "#0079bf", updated.Color)

	labels, err := env.labels.GetLabelsByBoard(env.ctx, board.ID)
	require.NoError(t, err)
	require.Len(t, labels, 1)

	require.NoError(t, env.labels.DeleteLabel(env.ctx, created.ID))
	assertAppError(t, env.labels.DeleteLabel(env.ctx, created.ID), response.ErrCodeNotFound)
}

func TestLabelService_AttachDetach(t *testing.T) {
	env := newTestEnv(t)
	board := env.board("B")
	card := env.card(env.list(board.ID, "L", 0).ID, "C", 0)
	label := env.label(board.ID, "Bug")

	attached, err := env.labels.AttachLabel(env.ctx, card.ID, label.ID)
	require.NoError(t, err)
	assert.Equal(t, card.ID, attached.CardID)
	require.NotNil(t, attached.Label)
	assert.Equal(t, "Bug", attached.Label.Name)

	_, err = env.labels.AttachLabel(env.ctx, card.ID, label.ID)
	assertAppError(t, err, response.ErrCodeAlreadyExists)

	require.NoError(t, env.labels.DetachLabel(env.ctx, card.ID, label.ID))
	assertAppError(t, env.labels.DetachLabel(env.ctx, card.ID, label.ID), response.ErrCodeNotFound)

	_, err = env.labels.AttachLabel(env.ctx, card.ID, label.ID)
	require.NoError(t, err)

	_, err = env.labels.AttachLabel(env.ctx, "missing", label.ID)
	assertAppError(t, err, response.ErrCodeNotFound)
	_, err = env.labels.AttachLabel(env.ctx, card.ID, "missing")
	assertAppError(t, err, response.ErrCodeNotFound)
}

func TestLabelService_DeleteLabelKeepsCards(t *testing.T) {
	env := newTestEnv(t)
	board := env.board("B")
	card := env.card(env.list(board.ID, "L", 0).ID, "C", 0)
	label := env.label(board.ID, "Bug")
	_, err := env.labels.AttachLabel(env.ctx, card.ID, label.ID)
	require.NoError(t, err)

	require.NoError(t, env.labels.DeleteLabel(env.ctx, label.ID))
	assert.Zero(t, env.count(&domain.CardLabel{}, ""))
	assert.Equal(t, int64(1), env.count(&domain.Card{}, ""))
}

func TestMemberService_AttachDetach(t *testing.T) {
	env := newTestEnv(t)
	user := env.user("Ada", "ada@example.com")
	card := env.card(env.list(env.board("B").ID, "L", 0).ID, "C", 0)

	member, err := env.members.AttachMember(env.ctx, card.ID, user.ID)
	require.NoError(t, err)
	require.NotNil(t, member.User)
	assert.Equal(t, "Ada", member.User.Name)

	_, err = env.members.AttachMember(env.ctx, card.ID, user.ID)
	assertAppError(t, err, response.ErrCodeAlreadyExists)

	_, err = env.members.AttachMember(env.ctx, card.ID, "missing")
	assertAppError(t, err, response.ErrCodeNotFound)
	_, err = env.members.AttachMember(env.ctx, "missing", user.ID)
	assertAppError(t, err, response.ErrCodeNotFound)

	require.NoError(t, env.members.DetachMember(env.ctx, card.ID, user.ID))
	assertAppError(t, env.members.DetachMember(env.ctx, card.ID, user.ID), response.ErrCodeNotFound)
}

func TestUserService(t *testing.T) {
	env := newTestEnv(t)
	zoe := env.user("Zoe", "zoe@example.com")
	env.user("Ada", "ada@example.com")
	card := env.card(env.list(env.board("B").ID, "L", 0).ID, "C", 0)
	_, err := env.members.AttachMember(env.ctx, card.ID, zoe.ID)
	require.NoError(t, err)
	_, err = env.comments.CreateComment(env.ctx, card.ID, &dto.CreateCommentRequest{Text: "x", UserID: zoe.ID})
	require.NoError(t, err)

	users, err := env.users.GetUsers(env.ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Ada", users[0].Name)

	got, err := env.users.GetUser(env.ctx, zoe.ID)
	require.NoError(t, err)
	assert.Equal(t, "zoe@example.com", got.Email)

	require.NoError(t, env.users.DeleteUser(env.ctx, zoe.ID))
	assert.Zero(t, env.count(&domain.CardMember{}, ""))
	assert.Zero(t, env.count(&domain.Comment{}, ""))
	assert.Equal(t, int64(1), env.count(&domain.Card{}, ""))

	_, err = env.users.GetUser(env.ctx, zoe.ID)
	assertAppError(t, err, response.ErrCodeNotFound)
	assertAppError(t, env.users.DeleteUser(env.ctx, zoe.ID), response.ErrCodeNotFound)
}
