package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/dto"
	"taskboard-api/internal/response"
	"taskboard-api/internal/service"
)

// ListHandler handles list requests
type ListHandler struct {
	listService service.ListService
}

// NewListHandler creates a new ListHandler
func NewListHandler(listService service.ListService) *ListHandler {
	return &ListHandler{listService: listService}
}

// GetListsByBoard godoc
// @Summary      Lists of a board
// @Description  Returns the board's lists by position, each with its cards
// @Tags         lists
// @Produce      json
// @Param        boardId path string true "Board ID"
// @Success      200 {object} response.SuccessResponse{data=[]dto.ListResponse}
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /lists/board/{boardId} [get]
func (h *ListHandler) GetListsByBoard(c *gin.Context) {
	lists, err := h.listService.GetListsByBoard(c.Request.Context(), c.Param("boardId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, lists)
}

// GetList godoc
// @Summary      Get a list
// @Tags         lists
// @Produce      json
// @Param        id path string true "List ID"
// @Success      200 {object} response.SuccessResponse{data=dto.ListResponse}
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /lists/{id} [get]
func (h *ListHandler) GetList(c *gin.Context) {
	list, err := h.listService.GetList(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, list)
}

// CreateList godoc
// @Summary      Create a list
// @Description  Without a position the list is appended after the board's last list
// @Tags         lists
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateListRequest true "List"
// @Success      201 {object} response.SuccessResponse{data=dto.ListResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /lists [post]
func (h *ListHandler) CreateList(c *gin.Context) {
	var req dto.CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendInvalidBody(c, err)
		return
	}

	list, err := h.listService.CreateList(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, list)
}

// UpdateList godoc
// @Summary      Update a list
// @Tags         lists
// @Accept       json
// @Produce      json
// @Param        id path string true "List ID"
// @Param        request body dto.UpdateListRequest true "Fields to change"
// @Success      200 {object} response.SuccessResponse{data=dto.ListResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /lists/{id} [put]
func (h *ListHandler) UpdateList(c *gin.Context) {
	var req dto.UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendInvalidBody(c, err)
		return
	}

	list, err := h.listService.UpdateList(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, list)
}

// ReorderLists godoc
// @Summary      Reorder lists
// @Description  Applies each entry independently. Unknown ids are reported as skipped.
// @Tags         lists
// @Accept       json
// @Produce      json
// @Param        request body dto.ReorderListsRequest true "New positions"
// @Success      200 {object} response.SuccessResponse{data=dto.ReorderResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /lists/reorder [put]
func (h *ListHandler) ReorderLists(c *gin.Context) {
	var req dto.ReorderListsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendInvalidBody(c, err)
		return
	}

	result, err := h.listService.ReorderLists(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// DeleteList godoc
// @Summary      Delete a list
// @Description  Deletes the list and every card in it
// @Tags         lists
// @Produce      json
// @Param        id path string true "List ID"
// @Success      200 {object} response.SuccessResponse{data=dto.MessageResponse}
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /lists/{id} [delete]
func (h *ListHandler) DeleteList(c *gin.Context) {
	if err := h.listService.DeleteList(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}

	sendMessage(c, "List deleted successfully")
}
