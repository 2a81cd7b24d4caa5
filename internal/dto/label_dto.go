package dto

import "time"

// CreateLabelRequest represents the request to create a board label
type CreateLabelRequest struct {
	BoardID string `json:"boardId" binding:"required"`
	Name    string `json:"name" binding:"required,max=255" example:"Bug"`
	Color   string `json:"color" binding:"required,max=50" example:"#eb5a46"`
}

// UpdateLabelRequest represents a partial label update
type UpdateLabelRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=255"`
	Color *string `json:"color" binding:"omitempty,max=50"`
}

// AttachLabelRequest attaches an existing label to a card
type AttachLabelRequest struct {
	LabelID string `json:"labelId" binding:"required"`
}

// AttachMemberRequest attaches an existing user to a card
type AttachMemberRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// LabelResponse represents a label
type LabelResponse struct {
	ID        string    `json:"id"`
	BoardID   string    `json:"boardId"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CardLabelResponse represents a label attached to a card
type CardLabelResponse struct {
	CardID  string         `json:"cardId"`
	LabelID string         `json:"labelId"`
	Label   *LabelResponse `json:"label,omitempty"`
}

// CardMemberResponse represents a user attached to a card
type CardMemberResponse struct {
	CardID string        `json:"cardId"`
	UserID string        `json:"userId"`
	User   *UserResponse `json:"user,omitempty"`
}
