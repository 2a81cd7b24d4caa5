package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard-api/internal/domain"
	"taskboard-api/internal/dto"
	"taskboard-api/internal/response"
)

func TestChecklistService(t *testing.T) {
	env := newTestEnv(t)
	card := env.card(env.list(env.board("B").ID, "L", 0).ID, "C", 0)

	first, err := env.checklists.CreateChecklist(env.ctx, card.ID, &dto.CreateChecklistRequest{Title: "Launch"})
	require.NoError(t, err)
	assert.Equal(t, 0, first.Position)
	second, err := env.checklists.CreateChecklist(env.ctx, card.ID, &dto.CreateChecklistRequest{Title: "Follow-up"})
	require.NoError(t, err)
	assert.Equal(t, 1, second.Position)

	_, err = env.checklists.CreateChecklist(env.ctx, "missing", &dto.CreateChecklistRequest{Title: "x"})
	assertAppError(t, err, response.ErrCodeNotFound)

	item, err := env.checklists.CreateItem(env.ctx, first.ID, &dto.CreateChecklistItemRequest{Text: "Ship"})
	require.NoError(t, err)
	assert.False(t, item.IsCompleted)
	assert.Equal(t, 0, item.Position)

	done, err := env.checklists.CreateItem(env.ctx, first.ID, &dto.CreateChecklistItemRequest{Text: "Plan", IsCompleted: ptr(true)})
	require.NoError(t, err)
	assert.True(t, done.IsCompleted)
	assert.Equal(t, 1, done.Position)

	updatedItem, err := env.checklists.UpdateItem(env.ctx, item.ID, &dto.UpdateChecklistItemRequest{IsCompleted: ptr(true)})
	require.NoError(t, err)
	assert.True(t, updatedItem.IsCompleted)
	assert.Equal(t, "Ship", updatedItem.Text)

	time.Sleep(2 * time.Millisecond)
	updated, err := env.checklists.UpdateChecklist(env.ctx, first.ID, &dto.UpdateChecklistRequest{Title: ptr("Release")})
	require.NoError(t, err)
	assert.Equal(t, "Release", updated.Title)
	require.Len(t, updated.Items, 2)
	assert.Equal(t, "Ship", updated.Items[0].Text)

	require.NoError(t, env.checklists.DeleteItem(env.ctx, done.ID))
	assertAppError(t, env.checklists.DeleteItem(env.ctx, done.ID), response.ErrCodeNotFound)

	require.NoError(t, env.checklists.DeleteChecklist(env.ctx, first.ID))
	assert.Zero(t, env.count(&domain.ChecklistItem{}, ""))
	assertAppError(t, env.checklists.DeleteChecklist(env.ctx, first.ID), response.ErrCodeNotFound)

	_, err = env.checklists.CreateItem(env.ctx, first.ID, &dto.CreateChecklistItemRequest{Text: "x"})
	assertAppError(t, err, response.ErrCodeNotFound)
}
