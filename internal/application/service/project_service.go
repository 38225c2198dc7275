package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kiprotichd/bizdesk-api/internal/domain/entity"
	"github.com/kiprotichd/bizdesk-api/internal/domain/enum"
	"github.com/kiprotichd/bizdesk-api/internal/domain/repository"
	"github.com/kiprotichd/bizdesk-api/pkg/apperror"
	"github.com/kiprotichd/bizdesk-api/pkg/pagination"
)

// ProjectService handles project-related operations
type ProjectService struct {
	projectRepo repository.ProjectRepository
	clientRepo  repository.ClientRepository
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo repository.ProjectRepository, clientRepo repository.ClientRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo, clientRepo: clientRepo}
}

// ProjectInput represents the input for creating or updating a project
type ProjectInput struct {
	UserID      uuid.UUID
	ClientID    uuid.UUID
	Name        string
	Description *string
	Status      enum.ProjectStatus
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      float64
}

func validateProjectInput(input *ProjectInput) []apperror.FieldError {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.Name) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "name", Message: "Name is required",
		})
	}
	if input.ClientID == uuid.Nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "client_id", Message: "Client is required",
		})
	}
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "end_date", Message: "End date must not be before start date",
		})
	}
	return fieldErrors
}

// CreateProject creates a new project
func (s *ProjectService) CreateProject(ctx context.Context, input *ProjectInput) (*entity.Project, error) {
	if fieldErrors := validateProjectInput(input); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	project := &entity.Project{
		UserID:      input.UserID,
		ClientID:    input.ClientID,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Status:      input.Status,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Budget:      input.Budget,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return s.projectRepo.GetByID(ctx, project.ID)
}

// GetProject retrieves a project by ID
func (s *ProjectService) GetProject(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) (*entity.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperror.NewNotFoundError("Project")
	}
	if !isSuperAdmin && project.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	return project, nil
}

// ListProjectsInput represents the input for listing projects
type ListProjectsInput struct {
	UserID       uuid.UUID
	IsSuperAdmin bool
	Pagination   *pagination.PaginationParams
	Search       string
	Status       *enum.ProjectStatus
	ClientID     *uuid.UUID
}

// ListProjects lists projects with filtering
func (s *ProjectService) ListProjects(ctx context.Context, input *ListProjectsInput) (*pagination.PaginatedResult[entity.Project], error) {
	params := &repository.ProjectFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
		ClientID:   input.ClientID,
	}

	var userID uuid.UUID
	if !input.IsSuperAdmin {
		userID = input.UserID
	}

	projects, total, err := s.projectRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(projects, pag), nil
}

// UpdateProject updates an existing project
func (s *ProjectService) UpdateProject(ctx context.Context, id uuid.UUID, input *ProjectInput, isSuperAdmin bool) (*entity.Project, error) {
	if fieldErrors := validateProjectInput(input); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperror.NewNotFoundError("Project")
	}
	if !isSuperAdmin && project.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	project.ClientID = input.ClientID
	project.Name = strings.TrimSpace(input.Name)
	project.Description = input.Description
	project.Status = input.Status
	project.StartDate = input.StartDate
	project.EndDate = input.EndDate
	project.Budget = input.Budget

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return s.projectRepo.GetByID(ctx, project.ID)
}

// DeleteProject deletes a project
func (s *ProjectService) DeleteProject(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) error {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if project == nil {
		return apperror.NewNotFoundError("Project")
	}
	if !isSuperAdmin && project.UserID != userID {
		return apperror.ErrForbidden
	}
	return s.projectRepo.Delete(ctx, id)
}
