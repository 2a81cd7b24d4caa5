package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard-api/internal/response"
	"taskboard-api/internal/service"
)

// AttachmentFormField is the multipart field carrying the uploaded file
const AttachmentFormField = "file"

// AttachmentHandler handles attachment uploads and deletes
type AttachmentHandler struct {
	attachmentService service.AttachmentService
}

// NewAttachmentHandler creates a new AttachmentHandler
func NewAttachmentHandler(attachmentService service.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{attachmentService: attachmentService}
}

// UploadAttachment godoc
// @Summary      Upload an attachment
// @Description  Stores the file and records it on the card.
// @Description  Supported types: image/jpeg, image/jpg, image/png, image/gif, application/pdf, application/msword, docx, text/plain
// @Tags         attachments
// @Accept       multipart/form-data
// @Produce      json
// @Param        id   path     string true "Card ID"
// @Param        file formData file   true "File to upload"
// @Success      201 {object} response.SuccessResponse{data=dto.AttachmentResponse}
// @Failure      400 {object} response.ErrorResponse "Missing file, unsupported type or file too large"
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /cards/{id}/attachments [post]
func (h *AttachmentHandler) UploadAttachment(c *gin.Context) {
	header, err := c.FormFile(AttachmentFormField)
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "File is required")
		return
	}

	file, err := header.Open()
	if err != nil {
		zap.L().Error("Failed to open uploaded file", zap.String("file_name", header.Filename), zap.Error(err))
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Failed to read file")
		return
	}
	defer file.Close()

	attachment, err := h.attachmentService.UploadAttachment(c.Request.Context(), c.Param("id"), &service.UploadFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, attachment)
}

// DeleteAttachment godoc
// @Summary      Delete an attachment
// @Description  Deletes the attachment record and its stored file
// @Tags         attachments
// @Produce      json
// @Param        attachmentId path string true "Attachment ID"
// @Success      200 {object} response.SuccessResponse{data=dto.MessageResponse}
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /cards/attachments/{attachmentId} [delete]
func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	if err := h.attachmentService.DeleteAttachment(c.Request.Context(), c.Param("attachmentId")); err != nil {
		handleServiceError(c, err)
		return
	}

	sendMessage(c, "Attachment deleted successfully")
}
