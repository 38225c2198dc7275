package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kiprotichd/bizdesk-api/internal/application/service"
	"github.com/kiprotichd/bizdesk-api/internal/domain/enum"
	"github.com/kiprotichd/bizdesk-api/internal/presentation/http/dto/response"
)

// MessageHandler handles contact message HTTP requests
type MessageHandler struct {
	messageService *service.MessageService
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Submit handles the public contact form. No authentication is required.
func (h *MessageHandler) Submit(c *gin.Context) {
	var req struct {
		Name    string  `json:"name"`
		Email   string  `json:"email"`
		Phone   *string `json:"phone"`
		Subject *string `json:"subject"`
		Body    string  `json:"body"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	message, err := h.messageService.SubmitMessage(c.Request.Context(), &service.SubmitMessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Message received. We will get back to you shortly.", message)
}

// List handles listing contact messages
func (h *MessageHandler) List(c *gin.Context) {
	var status *enum.MessageStatus
	if s := c.Query("status"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil && parsed >= 0 {
			st := enum.MessageStatus(parsed)
			status = &st
		}
	}

	result, err := h.messageService.ListMessages(c.Request.Context(), &service.ListMessagesInput{
		Pagination: paginationFromQuery(c),
		Search:     c.Query("search"),
		Status:     status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Messages retrieved successfully", result)
}

// Get handles getting a single message with its replies
func (h *MessageHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid message ID")
		return
	}

	message, err := h.messageService.GetMessage(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Message retrieved successfully", message)
}

// Reply handles replying to a contact message
func (h *MessageHandler) Reply(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid message ID")
		return
	}

	var req struct {
		Body string `json:"body"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	reply, err := h.messageService.Reply(c.Request.Context(), &service.ReplyInput{
		UserID:    *userID,
		MessageID: id,
		Body:      req.Body,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Reply sent successfully", reply)
}

// Archive handles archiving a message
func (h *MessageHandler) Archive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid message ID")
		return
	}

	if err := h.messageService.ArchiveMessage(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Message archived successfully", nil)
}

// Delete handles deleting a message
func (h *MessageHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid message ID")
		return
	}

	if err := h.messageService.DeleteMessage(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
