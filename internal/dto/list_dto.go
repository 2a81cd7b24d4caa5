package dto

import "time"

// CreateListRequest represents the request to create a list.
// Position defaults to the end of the board.
type CreateListRequest struct {
	BoardID  string `json:"boardId" binding:"required"`
	Title    string `json:"title" binding:"required,max=255" example:"To Do"`
	Position *int   `json:"position" example:"0"`
}

// UpdateListRequest represents a partial list update
type UpdateListRequest struct {
	Title    *string `json:"title" binding:"omitempty,max=255"`
	Position *int    `json:"position"`
}

// ListPosition is one entry of a list reorder batch
type ListPosition struct {
	ID       string `json:"id" binding:"required"`
	Position *int   `json:"position" binding:"required"`
}

// ReorderListsRequest represents a bulk list reorder
type ReorderListsRequest struct {
	Lists []ListPosition `json:"lists" binding:"required,dive"`
}

// ListResponse represents a list with its cards
type ListResponse struct {
	ID        string         `json:"id"`
	BoardID   string         `json:"boardId"`
	Title     string         `json:"title"`
	Position  int            `json:"position"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Cards     []CardResponse `json:"cards"`
}

// ListSummary identifies the list a card belongs to
type ListSummary struct {
	ID      string `json:"id"`
	BoardID string `json:"boardId"`
	Title   string `json:"title"`
}

// ReorderResponse reports which entries of a reorder batch were applied.
// Unknown ids are listed in Skipped rather than failing the batch.
type ReorderResponse struct {
	Updated int      `json:"updated"`
	Skipped []string `json:"skipped"`
}
