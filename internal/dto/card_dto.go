package dto

import "time"

// CreateCardRequest represents the request to create a card.
// Position defaults to the end of the list.
type CreateCardRequest struct {
	ListID      string     `json:"listId" binding:"required"`
	Title       string     `json:"title" binding:"required,max=255" example:"Write release notes"`
	Description *string    `json:"description"`
	Position    *int       `json:"position"`
	DueDate     *time.Time `json:"dueDate"`
	CoverImage  *string    `json:"coverImage"`
}

// UpdateCardRequest represents a partial card update. Absent fields are left unchanged;
// null clears description, due date and cover image.
type UpdateCardRequest struct {
	Title       *string             `json:"title" binding:"omitempty,max=255"`
	Description Nullable[string]    `json:"description" swaggertype:"string"`
	Position    *int                `json:"position"`
	ListID      *string             `json:"listId"`
	DueDate     Nullable[time.Time] `json:"dueDate" swaggertype:"string" format:"date-time"`
	CoverImage  Nullable[string]    `json:"coverImage" swaggertype:"string"`
}

// MoveCardRequest moves a card to a list at a position
type MoveCardRequest struct {
	ListID   string `json:"listId" binding:"required"`
	Position *int   `json:"position" binding:"required"`
}

// CardPosition is one entry of a card reorder batch
type CardPosition struct {
	ID       string  `json:"id" binding:"required"`
	ListID   *string `json:"listId"`
	Position *int    `json:"position" binding:"required"`
}

// ReorderCardsRequest represents a bulk card reorder
type ReorderCardsRequest struct {
	Cards []CardPosition `json:"cards" binding:"required,dive"`
}

// SearchCardsQuery holds the card search filters
type SearchCardsQuery struct {
	Q       string `form:"q"`
	LabelID string `form:"label_id"`
	UserID  string `form:"user_id"`
	DueDate string `form:"due_date" example:"2024-03-15"`
	BoardID string `form:"board_id"`
}

// CardResponse represents a card with its labels and members
type CardResponse struct {
	ID          string               `json:"id"`
	ListID      string               `json:"listId"`
	Title       string               `json:"title"`
	Description *string              `json:"description"`
	Position    int                  `json:"position"`
	DueDate     *time.Time           `json:"dueDate"`
	CoverImage  *string              `json:"coverImage"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
	Labels      []CardLabelResponse  `json:"labels"`
	Members     []CardMemberResponse `json:"members"`
}

// CardDetailResponse adds checklists, attachments and comments to a card
type CardDetailResponse struct {
	CardResponse
	List        *ListSummary         `json:"list,omitempty"`
	Checklists  []ChecklistResponse  `json:"checklists"`
	Attachments []AttachmentResponse `json:"attachments"`
	Comments    []CommentResponse    `json:"comments"`
}
