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

// ProjectHandler handles project-related HTTP requests
type ProjectHandler struct {
	projectService *service.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

type projectRequest struct {
	ClientID    string  `json:"client_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Status      int     `json:"status"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Budget      float64 `json:"budget"`
}

func (r *projectRequest) toInput(userID uuid.UUID) (*service.ProjectInput, string) {
	var clientID uuid.UUID
	if r.ClientID != "" {
		id, err := uuid.Parse(r.ClientID)
		if err != nil {
			return nil, "Invalid client ID"
		}
		clientID = id
	}

	parseDate := func(s *string) (*time.Time, bool) {
		if s == nil || *s == "" {
			return nil, true
		}
		t, err := time.Parse("2006-01-02", *s)
		if err != nil {
			return nil, false
		}
		return &t, true
	}

	startDate, ok := parseDate(r.StartDate)
	if !ok {
		return nil, "Invalid date format. Use YYYY-MM-DD"
	}
	endDate, ok := parseDate(r.EndDate)
	if !ok {
		return nil, "Invalid date format. Use YYYY-MM-DD"
	}

	return &service.ProjectInput{
		UserID:      userID,
		ClientID:    clientID,
		Name:        r.Name,
		Description: r.Description,
		Status:      enum.ProjectStatus(r.Status),
		StartDate:   startDate,
		EndDate:     endDate,
		Budget:      r.Budget,
	}, ""
}

// List handles listing projects
func (h *ProjectHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var status *enum.ProjectStatus
	if s := c.Query("status"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil && parsed >= 0 {
			st := enum.ProjectStatus(parsed)
			status = &st
		}
	}

	var clientID *uuid.UUID
	if s := c.Query("client_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			clientID = &id
		}
	}

	result, err := h.projectService.ListProjects(c.Request.Context(), &service.ListProjectsInput{
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

	response.SuccessWithPagination(c, 200, "Projects retrieved successfully", result)
}

// Create handles creating a project
func (h *ProjectHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, errMsg := req.toInput(*userID)
	if errMsg != "" {
		response.BadRequest(c, errMsg)
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Project created successfully", project)
}

// Get handles getting a single project
func (h *ProjectHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid project ID")
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), *userID, id, IsSuperAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Project retrieved successfully", project)
}

// Update handles updating a project
func (h *ProjectHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid project ID")
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, errMsg := req.toInput(*userID)
	if errMsg != "" {
		response.BadRequest(c, errMsg)
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), id, input, IsSuperAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Project updated successfully", project)
}

// Delete handles deleting a project
func (h *ProjectHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid project ID")
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), *userID, id, IsSuperAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
