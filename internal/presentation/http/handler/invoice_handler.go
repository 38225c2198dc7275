package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kiprotichd/bizdesk-api/internal/application/service"
	"github.com/kiprotichd/bizdesk-api/internal/domain/enum"
	"github.com/kiprotichd/bizdesk-api/internal/presentation/http/dto/response"
)

// InvoiceHandler handles invoice-related HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// InvoiceRequest represents the create/update invoice request body
type InvoiceRequest struct {
	ClientID           *string           `json:"client_id"`
	ProjectID          *string           `json:"project_id"`
	Date               string            `json:"date" binding:"required"`
	DueDate            *string           `json:"due_date"`
	TaxPercentage      float64           `json:"tax_percentage"`
	DiscountPercentage float64           `json:"discount_percentage"`
	Note               *string           `json:"note"`
	Status             int               `json:"status"`
	Items              []LineItemRequest `json:"items" binding:"required,min=1"`
}

func (r *InvoiceRequest) toInput(userID uuid.UUID) (*service.InvoiceInput, string) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, "Invalid date format. Use YYYY-MM-DD"
	}

	var dueDate *time.Time
	if r.DueDate != nil && *r.DueDate != "" {
		parsed, err := time.Parse("2006-01-02", *r.DueDate)
		if err != nil {
			return nil, "Invalid due date format. Use YYYY-MM-DD"
		}
		dueDate = &parsed
	}

	var clientID *uuid.UUID
	if r.ClientID != nil && *r.ClientID != "" {
		id, err := uuid.Parse(*r.ClientID)
		if err != nil {
			return nil, "Invalid client ID"
		}
		clientID = &id
	}

	var projectID *uuid.UUID
	if r.ProjectID != nil && *r.ProjectID != "" {
		id, err := uuid.Parse(*r.ProjectID)
		if err != nil {
			return nil, "Invalid project ID"
		}
		projectID = &id
	}

	items := make([]service.LineItemInput, len(r.Items))
	for i, item := range r.Items {
		items[i] = service.LineItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}

	return &service.InvoiceInput{
		UserID:             userID,
		ClientID:           clientID,
		ProjectID:          projectID,
		Date:               date,
		DueDate:            dueDate,
		TaxPercentage:      r.TaxPercentage,
		DiscountPercentage: r.DiscountPercentage,
		Note:               r.Note,
		Status:             enum.InvoiceStatus(r.Status),
		Items:              items,
	}, ""
}

// List handles listing invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var status *enum.InvoiceStatus
	if s := c.Query("status"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil && parsed >= 0 {
			st := enum.InvoiceStatus(parsed)
			status = &st
		}
	}

	var clientID *uuid.UUID
	if s := c.Query("client_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			clientID = &id
		}
	}

	var projectID *uuid.UUID
	if s := c.Query("project_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			projectID = &id
		}
	}

	result, err := h.invoiceService.ListInvoices(c.Request.Context(), &service.ListInvoicesInput{
		UserID:       *userID,
		IsSuperAdmin: IsSuperAdmin(c),
		Pagination:   paginationFromQuery(c),
		Search:       c.Query("search"),
		Status:       status,
		ClientID:     clientID,
		ProjectID:    projectID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// Create handles creating an invoice
func (h *InvoiceHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, errMsg := req.toInput(*userID)
	if errMsg != "" {
		response.BadRequest(c, errMsg)
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created successfully", invoice)
}

// Get handles getting a single invoice
func (h *InvoiceHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), *userID, id, IsSuperAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}

// Update handles updating an invoice
func (h *InvoiceHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, errMsg := req.toInput(*userID)
	if errMsg != "" {
		response.BadRequest(c, errMsg)
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), id, input, IsSuperAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice updated successfully", invoice)
}

// Delete handles deleting an invoice
func (h *InvoiceHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), *userID, id, IsSuperAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Send marks an invoice as sent and emails it to the client
func (h *InvoiceHandler) Send(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.SendInvoice(c.Request.Context(), *userID, id, IsSuperAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice sent successfully", invoice)
}
