// Package handler provides HTTP request handlers for the API.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/dto"
	"taskboard-api/internal/response"
	"taskboard-api/internal/service"
)

// BoardHandler handles board requests
type BoardHandler struct {
	boardService service.BoardService
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(boardService service.BoardService) *BoardHandler {
	return &BoardHandler{boardService: boardService}
}

// GetBoards godoc
// @Summary      List boards
// @Description  Returns every board, newest first, each with its full list and card tree
// @Tags         boards
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.BoardResponse}
// @Failure      500 {object} response.ErrorResponse
// @Router       /boards [get]
func (h *BoardHandler) GetBoards(c *gin.Context) {
	boards, err := h.boardService.GetBoards(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, boards)
}

// CreateBoard godoc
// @Summary      Create a board
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBoardRequest true "Board"
// @Success      201 {object} response.SuccessResponse{data=dto.BoardResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /boards [post]
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendInvalidBody(c, err)
		return
	}

	board, err := h.boardService.CreateBoard(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, board)
}

// GetBoard godoc
// @Summary      Get a board
// @Description  Returns the board with its labels, lists, cards and every card child
// @Tags         boards
// @Produce      json
// @Param        id path string true "Board ID"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardResponse}
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /boards/{id} [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	board, err := h.boardService.GetBoard(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}

// UpdateBoard godoc
// @Summary      Update a board
// @Description  Absent fields are unchanged. A null background resets the default color.
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        id path string true "Board ID"
// @Param        request body dto.UpdateBoardRequest true "Fields to change"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /boards/{id} [put]
func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	var req dto.UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendInvalidBody(c, err)
		return
	}

	board, err := h.boardService.UpdateBoard(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}

// DeleteBoard godoc
// @Summary      Delete a board
// @Description  Deletes the board with its lists, cards and labels
// @Tags         boards
// @Produce      json
// @Param        id path string true "Board ID"
// @Success      200 {object} response.SuccessResponse{data=dto.MessageResponse}
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /boards/{id} [delete]
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	if err := h.boardService.DeleteBoard(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}

	sendMessage(c, "Board deleted successfully")
}
