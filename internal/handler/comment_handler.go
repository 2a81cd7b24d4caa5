package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/dto"
	"taskboard-api/internal/response"
	"taskboard-api/internal/service"
)

// CommentHandler handles card comments
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// GetComments godoc
// @Summary      Comments of a card
// @Description  Newest first, each with its author
// @Tags         comments
// @Produce      json
// @Param        id path string true "Card ID"
// @Success      200 {object} response.SuccessResponse{data=[]dto.CommentResponse}
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /cards/{id}/comments [get]
func (h *CommentHandler) GetComments(c *gin.Context) {
	comments, err := h.commentService.GetComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, comments)
}

// CreateComment godoc
// @Summary      Comment on a card
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id path string true "Card ID"
// @Param        request body dto.CreateCommentRequest true "Comment"
// @Success      201 {object} response.SuccessResponse{data=dto.CommentResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse "Card or user not found"
// @Failure      500 {object} response.ErrorResponse
// @Router       /cards/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendInvalidBody(c, err)
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, comment)
}

// UpdateComment godoc
// @Summary      Edit a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        commentId path string true "Comment ID"
// @Param        request body dto.UpdateCommentRequest true "New text"
// @Success      200 {object} response.SuccessResponse{data=dto.CommentResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /cards/comments/{commentId} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendInvalidBody(c, err)
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), c.Param("commentId"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, comment)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Param        commentId path string true "Comment ID"
// @Success      200 {object} response.SuccessResponse{data=dto.MessageResponse}
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /cards/comments/{commentId} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.commentService.DeleteComment(c.Request.Context(), c.Param("commentId")); err != nil {
		handleServiceError(c, err)
		return
	}

	sendMessage(c, "Comment deleted successfully")
}
