package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard-api/internal/dto"
	"taskboard-api/internal/response"
)

func TestCardHandler_CreateCard(t *testing.T) {
	var got *dto.CreateCardRequest
	mockService := &MockCardService{
		CreateCardFunc: func(ctx context.Context, req *dto.CreateCardRequest) (*dto.CardDetailResponse, error) {
			got = req
			return &dto.CardDetailResponse{CardResponse: dto.CardResponse{ID: "c1", ListID: req.ListID, Title: req.Title, Position: *req.Position}}, nil
		},
	}
	router := setupTestRouter()
	router.POST("/api/cards", NewCardHandler(mockService).CreateCard)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/cards", `{"listId":"L1","title":"T","position":2}`))

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, got.Position)
	assert.Equal(t, 2, *got.Position)

	var card dto.CardDetailResponse
	decodeData(t, w, &card)
	assert.Equal(t, "L1", card.ListID)
	assert.Equal(t, 2, card.Position)
}

func TestCardHandler_MoveCard_RequiresPosition(t *testing.T) {
	called := false
	mockService := &MockCardService{
		MoveCardFunc: func(ctx context.Context, cardID string, req *dto.MoveCardRequest) (*dto.CardDetailResponse, error) {
			called = true
			return &dto.CardDetailResponse{}, nil
		},
	}
	router := setupTestRouter()
	router.PUT("/api/cards/:id/move", NewCardHandler(mockService).MoveCard)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPut, "/api/cards/c1/move", `{"listId":"L2"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPut, "/api/cards/c1/move", `{"listId":"L2","position":0}`))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestCardHandler_ReorderCards(t *testing.T) {
	mockService := &MockCardService{
		ReorderCardsFunc: func(ctx context.Context, req *dto.ReorderCardsRequest) (*dto.ReorderResponse, error) {
			return &dto.ReorderResponse{Updated: len(req.Cards) - 1, Skipped: []string{"ghost"}}, nil
		},
	}
	router := setupTestRouter()
	router.PUT("/api/cards/reorder", NewCardHandler(mockService).ReorderCards)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPut, "/api/cards/reorder",
		`{"cards":[{"id":"c1","position":1},{"id":"ghost","position":0}]}`))

	require.Equal(t, http.StatusOK, w.Code)
	var result dto.ReorderResponse
	decodeData(t, w, &result)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, []string{"ghost"}, result.Skipped)
}

func TestCardHandler_SearchCards_BindsQuery(t *testing.T) {
	var got *dto.SearchCardsQuery
	mockService := &MockCardService{
		SearchCardsFunc: func(ctx context.Context, query *dto.SearchCardsQuery) ([]*dto.CardResponse, error) {
			got = query
			return []*dto.CardResponse{}, nil
		},
	}
	router := setupTestRouter()
	router.GET("/api/search/cards", NewCardHandler(mockService).SearchCards)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/api/search/cards?q=release&label_id=l1&user_id=u1&due_date=not-a-date&board_id=b1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, &dto.SearchCardsQuery{Q: "release", LabelID: "l1", UserID: "u1", DueDate: "not-a-date", BoardID: "b1"}, got)
}

func TestLabelHandler_AttachLabel(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"attached", nil, http.StatusCreated},
		{"already attached", response.NewConflictError("Label already attached to card", ""), http.StatusConflict},
		{"unknown label", response.NewNotFoundError("Label not found", ""), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockLabelService{
				AttachLabelFunc: func(ctx context.Context, cardID, labelID string) (*dto.CardLabelResponse, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					return &dto.CardLabelResponse{CardID: cardID, LabelID: labelID}, nil
				},
			}
			router := setupTestRouter()
			router.POST("/api/cards/:id/labels", NewLabelHandler(mockService).AttachLabel)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/cards/c1/labels", `{"labelId":"l1"}`))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestLabelHandler_DetachLabel(t *testing.T) {
	var gotCard, gotLabel string
	mockService := &MockLabelService{
		DetachLabelFunc: func(ctx context.Context, cardID, labelID string) error {
			gotCard, gotLabel = cardID, labelID
			return nil
		},
	}
	router := setupTestRouter()
	router.DELETE("/api/cards/:id/labels/:labelId", NewLabelHandler(mockService).DetachLabel)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/cards/c1/labels/l1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "c1", gotCard)
	assert.Equal(t, "l1", gotLabel)
}
