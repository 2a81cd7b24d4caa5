package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/dto"
	"taskboard-api/internal/response"
	"taskboard-api/internal/service"
)

// MemberHandler handles card member assignment
type MemberHandler struct {
	memberService service.MemberService
}

// NewMemberHandler creates a new MemberHandler
func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// AttachMember godoc
// @Summary      Assign a user to a card
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        id path string true "Card ID"
// @Param        request body dto.AttachMemberRequest true "User"
// @Success      201 {object} response.SuccessResponse{data=dto.CardMemberResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse "Member already assigned"
// @Failure      500 {object} response.ErrorResponse
// @Router       /cards/{id}/members [post]
func (h *MemberHandler) AttachMember(c *gin.Context) {
	var req dto.AttachMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendInvalidBody(c, err)
		return
	}

	member, err := h.memberService.AttachMember(c.Request.Context(), c.Param("id"), req.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, member)
}

// DetachMember godoc
// @Summary      Unassign a user from a card
// @Tags         cards
// @Produce      json
// @Param        id path string true "Card ID"
// @Param        userId path string true "User ID"
// @Success      200 {object} response.SuccessResponse{data=dto.MessageResponse}
// @Failure      404 {object} response.ErrorResponse "Member not on card"
// @Failure      500 {object} response.ErrorResponse
// @Router       /cards/{id}/members/{userId} [delete]
func (h *MemberHandler) DetachMember(c *gin.Context) {
	if err := h.memberService.DetachMember(c.Request.Context(), c.Param("id"), c.Param("userId")); err != nil {
		handleServiceError(c, err)
		return
	}

	sendMessage(c, "Member removed successfully")
}
