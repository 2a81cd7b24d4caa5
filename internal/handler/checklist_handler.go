package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/dto"
	"taskboard-api/internal/response"
	"taskboard-api/internal/service"
)

// ChecklistHandler handles checklist and checklist item requests
type ChecklistHandler struct {
	checklistService service.ChecklistService
}

// NewChecklistHandler creates a new ChecklistHandler
func NewChecklistHandler(checklistService service.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{checklistService: checklistService}
}

// CreateChecklist godoc
// @Summary      Add a checklist to a card
// @Tags         checklists
// @Accept       json
// @Produce      json
// @Param        id path string true "Card ID"
// @Param        request body dto.CreateChecklistRequest true "Checklist"
// @Success      201 {object} response.SuccessResponse{data=dto.ChecklistResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /cards/{id}/checklists [post]
func (h *ChecklistHandler) CreateChecklist(c *gin.Context) {
	var req dto.CreateChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendInvalidBody(c, err)
		return
	}

	checklist, err := h.checklistService.CreateChecklist(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, checklist)
}

// UpdateChecklist godoc
// @Summary      Update a checklist
// @Tags         checklists
// @Accept       json
// @Produce      json
// @Param        checklistId path string true "Checklist ID"
// @Param        request body dto.UpdateChecklistRequest true "Fields to change"
// @Success      200 {object} response.SuccessResponse{data=dto.ChecklistResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /cards/checklists/{checklistId} [put]
func (h *ChecklistHandler) UpdateChecklist(c *gin.Context) {
	var req dto.UpdateChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendInvalidBody(c, err)
		return
	}

	checklist, err := h.checklistService.UpdateChecklist(c.Request.Context(), c.Param("checklistId"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, checklist)
}

// DeleteChecklist godoc
// @Summary      Delete a checklist
// @Description  Deletes the checklist and its items
// @Tags         checklists
// @Produce      json
// @Param        checklistId path string true "Checklist ID"
// @Success      200 {object} response.SuccessResponse{data=dto.MessageResponse}
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /cards/checklists/{checklistId} [delete]
func (h *ChecklistHandler) DeleteChecklist(c *gin.Context) {
	if err := h.checklistService.DeleteChecklist(c.Request.Context(), c.Param("checklistId")); err != nil {
		handleServiceError(c, err)
		return
	}

	sendMessage(c, "Checklist deleted successfully")
}

// CreateItem godoc
// @Summary      Add a checklist item
// @Tags         checklists
// @Accept       json
// @Produce      json
// @Param        checklistId path string true "Checklist ID"
// @Param        request body dto.CreateChecklistItemRequest true "Item"
// @Success      201 {object} response.SuccessResponse{data=dto.ChecklistItemResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /cards/checklists/{checklistId}/items [post]
func (h *ChecklistHandler) CreateItem(c *gin.Context) {
	var req dto.CreateChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendInvalidBody(c, err)
		return
	}

	item, err := h.checklistService.CreateItem(c.Request.Context(), c.Param("checklistId"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, item)
}

// UpdateItem godoc
// @Summary      Update a checklist item
// @Tags         checklists
// @Accept       json
// @Produce      json
// @Param        itemId path string true "Checklist item ID"
// @Param        request body dto.UpdateChecklistItemRequest true "Fields to change"
// @Success      200 {object} response.SuccessResponse{data=dto.ChecklistItemResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /cards/checklist-items/{itemId} [put]
func (h *ChecklistHandler) UpdateItem(c *gin.Context) {
	var req dto.UpdateChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendInvalidBody(c, err)
		return
	}

	item, err := h.checklistService.UpdateItem(c.Request.Context(), c.Param("itemId"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, item)
}

// DeleteItem godoc
// @Summary      Delete a checklist item
// @Tags         checklists
// @Produce      json
// @Param        itemId path string true "Checklist item ID"
// @Success      200 {object} response.SuccessResponse{data=dto.MessageResponse}
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /cards/checklist-items/{itemId} [delete]
func (h *ChecklistHandler) DeleteItem(c *gin.Context) {
	if err := h.checklistService.DeleteItem(c.Request.Context(), c.Param("itemId")); err != nil {
		handleServiceError(c, err)
		return
	}

	sendMessage(c, "Checklist item deleted successfully")
}
