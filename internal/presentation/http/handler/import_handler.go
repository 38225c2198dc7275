package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/kiprotichd/bizdesk-api/internal/application/service"
	"github.com/kiprotichd/bizdesk-api/internal/presentation/http/dto/response"
)

// ImportHandler handles legacy data import HTTP requests. The request body
// is passed through raw because legacy exports wrap their records in
// inconsistent envelopes that the import service unpicks itself.
type ImportHandler struct {
	importService *service.ImportService
}

// NewImportHandler creates a new import handler
func NewImportHandler(importService *service.ImportService) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// Clients imports clients from a legacy export payload
func (h *ImportHandler) Clients(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	payload, err := c.GetRawData()
	if err != nil || len(payload) == 0 {
		response.BadRequest(c, "Request body is required")
		return
	}

	result, err := h.importService.ImportClients(c.Request.Context(), *userID, payload)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Client import completed", result)
}

// Invoices imports invoices from a legacy export payload
func (h *ImportHandler) Invoices(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	payload, err := c.GetRawData()
	if err != nil || len(payload) == 0 {
		response.BadRequest(c, "Request body is required")
		return
	}

	result, err := h.importService.ImportInvoices(c.Request.Context(), *userID, payload)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice import completed", result)
}
