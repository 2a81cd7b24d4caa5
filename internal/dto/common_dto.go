package dto

// MessageResponse confirms an operation that has no resource to return
type MessageResponse struct {
	Message string `json:"message" example:"Board deleted successfully"`
}
