package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/dto"
	"taskboard-api/internal/response"
	"taskboard-api/internal/service"
)

// LabelHandler handles label requests, including attaching labels to cards
type LabelHandler struct {
	labelService service.LabelService
}

// NewLabelHandler creates a new LabelHandler
func NewLabelHandler(labelService service.LabelService) *LabelHandler {
	return &LabelHandler{labelService: labelService}
}

// GetLabelsByBoard godoc
// @Summary      Labels of a board
// @Tags         labels
// @Produce      json
// @Param        boardId path string true "Board ID"
// @Success      200 {object} response.SuccessResponse{data=[]dto.LabelResponse}
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /labels/board/{boardId} [get]
func (h *LabelHandler) GetLabelsByBoard(c *gin.Context) {
	labels, err := h.labelService.GetLabelsByBoard(c.Request.Context(), c.Param("boardId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, labels)
}

// CreateLabel godoc
// @Summary      Create a label
// @Tags         labels
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateLabelRequest true "Label"
// @Success      201 {object} response.SuccessResponse{data=dto.LabelResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /labels [post]
func (h *LabelHandler) CreateLabel(c *gin.Context) {
	var req dto.CreateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendInvalidBody(c, err)
		return
	}

	label, err := h.labelService.CreateLabel(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, label)
}

// UpdateLabel godoc
// @Summary      Update a label
// @Tags         labels
// @Accept       json
// @Produce      json
// @Param        id path string true "Label ID"
// @Param        request body dto.UpdateLabelRequest true "Fields to change"
// @Success      200 {object} response.SuccessResponse{data=dto.LabelResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /labels/{id} [put]
func (h *LabelHandler) UpdateLabel(c *gin.Context) {
	var req dto.UpdateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendInvalidBody(c, err)
		return
	}

	label, err := h.labelService.UpdateLabel(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, label)
}

// DeleteLabel godoc
// @Summary      Delete a label
// @Description  Removes the label from every card, then deletes it
// @Tags         labels
// @Produce      json
// @Param        id path string true "Label ID"
// @Success      200 {object} response.SuccessResponse{data=dto.MessageResponse}
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /labels/{id} [delete]
func (h *LabelHandler) DeleteLabel(c *gin.Context) {
	if err := h.labelService.DeleteLabel(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}

	sendMessage(c, "Label deleted successfully")
}

// AttachLabel godoc
// @Summary      Add a label to a card
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        id path string true "Card ID"
// @Param        request body dto.AttachLabelRequest true "Label"
// @Success      201 {object} response.SuccessResponse{data=dto.CardLabelResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse "Label already attached"
// @Failure      500 {object} response.ErrorResponse
// @Router       /cards/{id}/labels [post]
func (h *LabelHandler) AttachLabel(c *gin.Context) {
	var req dto.AttachLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendInvalidBody(c, err)
		return
	}

	link, err := h.labelService.AttachLabel(c.Request.Context(), c.Param("id"), req.LabelID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, link)
}

// DetachLabel godoc
// @Summary      Remove a label from a card
// @Tags         cards
// @Produce      json
// @Param        id path string true "Card ID"
// @Param        labelId path string true "Label ID"
// @Success      200 {object} response.SuccessResponse{data=dto.MessageResponse}
// @Failure      404 {object} response.ErrorResponse "Label not on card"
// @Failure      500 {object} response.ErrorResponse
// @Router       /cards/{id}/labels/{labelId} [delete]
func (h *LabelHandler) DetachLabel(c *gin.Context) {
	if err := h.labelService.DetachLabel(c.Request.Context(), c.Param("id"), c.Param("labelId")); err != nil {
		handleServiceError(c, err)
		return
	}

	sendMessage(c, "Label removed successfully")
}
