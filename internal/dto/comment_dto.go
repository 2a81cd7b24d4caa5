package dto

import "time"

// CreateCommentRequest represents the request to comment on a card
type CreateCommentRequest struct {
	Text   string `json:"text" binding:"required" example:"Looks good"`
	UserID string `json:"userId" binding:"required"`
}

// UpdateCommentRequest represents the request to edit a comment
type UpdateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// CommentResponse represents a comment with its author
type CommentResponse struct {
	ID        string        `json:"id"`
	CardID    string        `json:"cardId"`
	UserID    string        `json:"userId"`
	Text      string        `json:"text"`
	User      *UserResponse `json:"user,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
