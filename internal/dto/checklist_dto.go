package dto

import "time"

// CreateChecklistRequest represents the request to add a checklist to a card
type CreateChecklistRequest struct {
	Title    string `json:"title" binding:"required,max=255" example:"Launch"`
	Position *int   `json:"position"`
}

// UpdateChecklistRequest represents a partial checklist update
type UpdateChecklistRequest struct {
	Title    *string `json:"title" binding:"omitempty,max=255"`
	Position *int    `json:"position"`
}

// CreateChecklistItemRequest represents the request to add an item to a checklist
type CreateChecklistItemRequest struct {
	Text        string `json:"text" binding:"required"`
	IsCompleted *bool  `json:"isCompleted"`
	Position    *int   `json:"position"`
}

// UpdateChecklistItemRequest represents a partial checklist item update
type UpdateChecklistItemRequest struct {
	Text        *string `json:"text" binding:"omitempty,min=1"`
	IsCompleted *bool   `json:"isCompleted"`
	Position    *int    `json:"position"`
}

// ChecklistResponse represents a checklist with its ordered items
type ChecklistResponse struct {
	ID        string                  `json:"id"`
	CardID    string                  `json:"cardId"`
	Title     string                  `json:"title"`
	Position  int                     `json:"position"`
	CreatedAt time.Time               `json:"createdAt"`
	UpdatedAt time.Time               `json:"updatedAt"`
	Items     []ChecklistItemResponse `json:"items"`
}

// ChecklistItemResponse represents a checklist item
type ChecklistItemResponse struct {
	ID          string    `json:"id"`
	ChecklistID string    `json:"checklistId"`
	Text        string    `json:"text"`
	IsCompleted bool      `json:"isCompleted"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
