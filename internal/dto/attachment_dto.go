package dto

import "time"

// AttachmentResponse represents uploaded file metadata
type AttachmentResponse struct {
	ID        string    `json:"id"`
	CardID    string    `json:"cardId"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Type      string    `json:"type"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
}
