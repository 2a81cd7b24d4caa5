package dto

import "time"

// CreateBoardRequest represents the request to create a board
type CreateBoardRequest struct {
	Title       string  `json:"title" binding:"required,max=255" example:"Product Roadmap"`
	Description *string `json:"description" example:"Q3 planning"`
	Background  *string `json:"background" example:"#0079bf"`
}

// UpdateBoardRequest represents a partial board update.
// A null background resets it to the default color.
type UpdateBoardRequest struct {
	Title       *string          `json:"title" binding:"omitempty,max=255"`
	Description Nullable[string] `json:"description" swaggertype:"string"`
	Background  Nullable[string] `json:"background" swaggertype:"string"`
}

// BoardResponse represents a board with its labels and full list/card tree
type BoardResponse struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description *string             `json:"description"`
	Background  string              `json:"background"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
	Lists       []BoardListResponse `json:"lists"`
	Labels      []LabelResponse     `json:"labels"`
}

// BoardListResponse is a list inside a board tree, with fully detailed cards
type BoardListResponse struct {
	ID        string               `json:"id"`
	BoardID   string               `json:"boardId"`
	Title     string               `json:"title"`
	Position  int                  `json:"position"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
	Cards     []CardDetailResponse `json:"cards"`
}
