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

// QuotationHandler handles quotation-related HTTP requests
type QuotationHandler struct {
	quotationService *service.QuotationService
}

// NewQuotationHandler creates a new quotation handler
func NewQuotationHandler(quotationService *service.QuotationService) *QuotationHandler {
	return &QuotationHandler{quotationService: quotationService}
}

// LineItemRequest represents a line item in a request body. Lines without
// a description or a positive quantity are dropped server-side, so the
// client may send its working rows as-is.
type LineItemRequest struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// QuotationRequest represents the create/update quotation request body
type QuotationRequest struct {
	ClientID           *string           `json:"client_id"`
	ProjectID          *string           `json:"project_id"`
	Date               string            `json:"date" binding:"required"`
	TaxPercentage      float64           `json:"tax_percentage"`
	DiscountPercentage float64           `json:"discount_percentage"`
	Note               *string           `json:"note"`
	Status             int               `json:"status"`
	Items              []LineItemRequest `json:"items" binding:"required,min=1"`
}

func (r *QuotationRequest) toInput(userID uuid.UUID) (*service.QuotationInput, string) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, "Invalid date format. Use YYYY-MM-DD"
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

	return &service.QuotationInput{
		UserID:             userID,
		ClientID:           clientID,
		ProjectID:          projectID,
		Date:               date,
		TaxPercentage:      r.TaxPercentage,
		DiscountPercentage: r.DiscountPercentage,
		Note:               r.Note,
		Status:             enum.QuotationStatus(r.Status),
		Items:              items,
	}, ""
}

// List handles listing quotations
func (h *QuotationHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var status *enum.QuotationStatus
	if s := c.Query("status"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil && parsed >= 0 {
			st := enum.QuotationStatus(parsed)
			status = &st
		}
	}

	var clientID *uuid.UUID
	if s := c.Query("client_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			clientID = &id
		}
	}

	result, err := h.quotationService.ListQuotations(c.Request.Context(), &service.ListQuotationsInput{
		UserID:       *userID,
		IsSuperAdmin: IsSuperAdmin(c),
		Pagination:   paginationFromQuery(c),
		Search:       c.Query("search"),
		Status:       status,
		ClientID:     clientID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Quotations retrieved successfully", result)
}

// Create handles creating a quotation
func (h *QuotationHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req QuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, errMsg := req.toInput(*userID)
	if errMsg != "" {
		response.BadRequest(c, errMsg)
		return
	}

	quotation, err := h.quotationService.CreateQuotation(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quotation created successfully", quotation)
}

// Get handles getting a single quotation
func (h *QuotationHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	quotation, err := h.quotationService.GetQuotation(c.Request.Context(), *userID, id, IsSuperAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation retrieved successfully", quotation)
}

// Update handles updating a quotation
func (h *QuotationHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	var req QuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, errMsg := req.toInput(*userID)
	if errMsg != "" {
		response.BadRequest(c, errMsg)
		return
	}

	quotation, err := h.quotationService.UpdateQuotation(c.Request.Context(), id, input, IsSuperAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation updated successfully", quotation)
}

// Delete handles deleting a quotation
func (h *QuotationHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	if err := h.quotationService.DeleteQuotation(c.Request.Context(), *userID, id, IsSuperAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// UpdateStatus handles quotation status changes
func (h *QuotationHandler) UpdateStatus(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	var req struct {
		Status int `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err = h.quotationService.UpdateQuotationStatus(c.Request.Context(), *userID, id,
		enum.QuotationStatus(req.Status), IsSuperAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation status updated successfully", nil)
}

// Convert handles converting an accepted quotation to an invoice
func (h *QuotationHandler) Convert(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	var req struct {
		DueDate *string `json:"due_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var dueDate *time.Time
	if req.DueDate != nil && *req.DueDate != "" {
		parsed, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			response.BadRequest(c, "Invalid due date format. Use YYYY-MM-DD")
			return
		}
		dueDate = &parsed
	}

	invoice, err := h.quotationService.ConvertToInvoice(c.Request.Context(), *userID, id, dueDate, IsSuperAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quotation converted to invoice successfully", invoice)
}
