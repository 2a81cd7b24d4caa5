package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/dto"
	"taskboard-api/internal/response"
	"taskboard-api/internal/service"
)

// CardHandler handles card requests
type CardHandler struct {
	cardService service.CardService
}

// NewCardHandler creates a new CardHandler
func NewCardHandler(cardService service.CardService) *CardHandler {
	return &CardHandler{cardService: cardService}
}

// GetCardsByList godoc
// @Summary      Cards of a list
// @Description  Returns the list's cards by position with their labels and members
// @Tags         cards
// @Produce      json
// @Param        listId path string true "List ID"
// @Success      200 {object} response.SuccessResponse{data=[]dto.CardResponse}
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /cards/list/{listId} [get]
func (h *CardHandler) GetCardsByList(c *gin.Context) {
	cards, err := h.cardService.GetCardsByList(c.Request.Context(), c.Param("listId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, cards)
}

// GetCard godoc
// @Summary      Get a card
// @Description  Returns the card with its list reference, labels, members, checklists, attachments and comments
// @Tags         cards
// @Produce      json
// @Param        id path string true "Card ID"
// @Success      200 {object} response.SuccessResponse{data=dto.CardDetailResponse}
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /cards/{id} [get]
func (h *CardHandler) GetCard(c *gin.Context) {
	card, err := h.cardService.GetCard(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, card)
}

// CreateCard godoc
// @Summary      Create a card
// @Description  Without a position the card is appended after the list's last card
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCardRequest true "Card"
// @Success      201 {object} response.SuccessResponse{data=dto.CardDetailResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /cards [post]
func (h *CardHandler) CreateCard(c *gin.Context) {
	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendInvalidBody(c, err)
		return
	}

	card, err := h.cardService.CreateCard(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, card)
}

// UpdateCard godoc
// @Summary      Update a card
// @Description  Absent fields are unchanged. Null clears description, dueDate and coverImage.
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        id path string true "Card ID"
// @Param        request body dto.UpdateCardRequest true "Fields to change"
// @Success      200 {object} response.SuccessResponse{data=dto.CardDetailResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /cards/{id} [put]
func (h *CardHandler) UpdateCard(c *gin.Context) {
	var req dto.UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendInvalidBody(c, err)
		return
	}

	card, err := h.cardService.UpdateCard(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, card)
}

// MoveCard godoc
// @Summary      Move a card
// @Description  Sets the card's list and position. Other cards keep their positions.
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        id path string true "Card ID"
// @Param        request body dto.MoveCardRequest true "Target list and position"
// @Success      200 {object} response.SuccessResponse{data=dto.CardDetailResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /cards/{id}/move [put]
func (h *CardHandler) MoveCard(c *gin.Context) {
	var req dto.MoveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendInvalidBody(c, err)
		return
	}

	card, err := h.cardService.MoveCard(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, card)
}

// ReorderCards godoc
// @Summary      Reorder cards
// @Description  Applies each entry independently. Unknown cards or target lists are reported as skipped.
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        request body dto.ReorderCardsRequest true "New positions"
// @Success      200 {object} response.SuccessResponse{data=dto.ReorderResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /cards/reorder [put]
func (h *CardHandler) ReorderCards(c *gin.Context) {
	var req dto.ReorderCardsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendInvalidBody(c, err)
		return
	}

	result, err := h.cardService.ReorderCards(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// DeleteCard godoc
// @Summary      Delete a card
// @Description  Deletes the card with its label and member links, checklists, attachments and comments
// @Tags         cards
// @Produce      json
// @Param        id path string true "Card ID"
// @Success      200 {object} response.SuccessResponse{data=dto.MessageResponse}
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /cards/{id} [delete]
func (h *CardHandler) DeleteCard(c *gin.Context) {
	if err := h.cardService.DeleteCard(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}

	sendMessage(c, "Card deleted successfully")
}

// SearchCards godoc
// @Summary      Search cards
// @Description  All supplied filters are combined. due_date is YYYY-MM-DD in UTC; a malformed date is ignored.
// @Tags         search
// @Produce      json
// @Param        q         query string false "Case-insensitive title substring"
// @Param        label_id  query string false "Label ID"
// @Param        user_id   query string false "Member user ID"
// @Param        due_date  query string false "Due date (YYYY-MM-DD)"
// @Param        board_id  query string false "Board ID"
// @Success      200 {object} response.SuccessResponse{data=[]dto.CardResponse}
// @Failure      500 {object} response.ErrorResponse
// @Router       /search/cards [get]
func (h *CardHandler) SearchCards(c *gin.Context) {
	var query dto.SearchCardsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		sendInvalidBody(c, err)
		return
	}

	cards, err := h.cardService.SearchCards(c.Request.Context(), &query)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, cards)
}
