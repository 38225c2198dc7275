package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kiprotichd/bizdesk-api/internal/application/service"
	"github.com/kiprotichd/bizdesk-api/internal/presentation/http/dto/response"
)

// OfferingHandler handles service catalog HTTP requests
type OfferingHandler struct {
	offeringService *service.OfferingService
}

// NewOfferingHandler creates a new offering handler
func NewOfferingHandler(offeringService *service.OfferingService) *OfferingHandler {
	return &OfferingHandler{offeringService: offeringService}
}

type offeringRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Rate        float64 `json:"rate"`
	Unit        *string `json:"unit"`
	Active      *bool   `json:"active"`
}

func (r *offeringRequest) toInput(userID uuid.UUID) *service.OfferingInput {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &service.OfferingInput{
		UserID:      userID,
		Name:        r.Name,
		Description: r.Description,
		Rate:        r.Rate,
		Unit:        r.Unit,
		Active:      active,
	}
}

// List handles listing service offerings
func (h *OfferingHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	result, err := h.offeringService.ListOfferings(c.Request.Context(), &service.ListOfferingsInput{
		UserID:       *userID,
		IsSuperAdmin: IsSuperAdmin(c),
		Pagination:   paginationFromQuery(c),
		Search:       c.Query("search"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Services retrieved successfully", result)
}

// Create handles creating a service offering
func (h *OfferingHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req offeringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	offering, err := h.offeringService.CreateOffering(c.Request.Context(), req.toInput(*userID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Service created successfully", offering)
}

// Get handles getting a single service offering
func (h *OfferingHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service ID")
		return
	}

	offering, err := h.offeringService.GetOffering(c.Request.Context(), *userID, id, IsSuperAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service retrieved successfully", offering)
}

// Update handles updating a service offering
func (h *OfferingHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service ID")
		return
	}

	var req offeringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	offering, err := h.offeringService.UpdateOffering(c.Request.Context(), id, req.toInput(*userID), IsSuperAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service updated successfully", offering)
}

// Delete handles deleting a service offering
func (h *OfferingHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service ID")
		return
	}

	if err := h.offeringService.DeleteOffering(c.Request.Context(), *userID, id, IsSuperAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
