package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/kiprotichd/bizdesk-api/internal/domain/entity"
	"github.com/kiprotichd/bizdesk-api/internal/domain/repository"
	"github.com/kiprotichd/bizdesk-api/pkg/apperror"
	"github.com/kiprotichd/bizdesk-api/pkg/pagination"
)

// ClientService handles client-related operations
type ClientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates a new client service
func NewClientService(clientRepo repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// ClientInput represents the input for creating or updating a client
type ClientInput struct {
	UserID      uuid.UUID
	Name        string
	Email       *string
	Phone       *string
	CompanyName *string
	Address     *string
	Notes       *string
}

// validateClientInput collects field errors before any repository work so a
// bad form never reaches the database.
func validateClientInput(input *ClientInput) []apperror.FieldError {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.Name) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "name", Message: "Name is required",
		})
	}
	return fieldErrors
}

// CreateClient creates a new client
func (s *ClientService) CreateClient(ctx context.Context, input *ClientInput) (*entity.Client, error) {
	if fieldErrors := validateClientInput(input); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	client := &entity.Client{
		UserID:      input.UserID,
		Name:        strings.TrimSpace(input.Name),
		Email:       input.Email,
		Phone:       input.Phone,
		CompanyName: input.CompanyName,
		Address:     input.Address,
		Notes:       input.Notes,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetClient retrieves a client by ID
func (s *ClientService) GetClient(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	if !isSuperAdmin && client.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	return client, nil
}

// ListClientsInput represents the input for listing clients
type ListClientsInput struct {
	UserID       uuid.UUID
	IsSuperAdmin bool
	Pagination   *pagination.PaginationParams
	Search       string
}

// ListClients lists clients with filtering
func (s *ClientService) ListClients(ctx context.Context, input *ListClientsInput) (*pagination.PaginatedResult[entity.Client], error) {
	var userID uuid.UUID
	if !input.IsSuperAdmin {
		userID = input.UserID
	}

	clients, total, err := s.clientRepo.List(ctx, userID, input.Pagination, input.Search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(clients, pag), nil
}

// UpdateClient updates an existing client
func (s *ClientService) UpdateClient(ctx context.Context, id uuid.UUID, input *ClientInput, isSuperAdmin bool) (*entity.Client, error) {
	if fieldErrors := validateClientInput(input); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	if !isSuperAdmin && client.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	client.Name = strings.TrimSpace(input.Name)
	client.Email = input.Email
	client.Phone = input.Phone
	client.CompanyName = input.CompanyName
	client.Address = input.Address
	client.Notes = input.Notes

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// DeleteClient deletes a client
func (s *ClientService) DeleteClient(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) error {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return apperror.NewNotFoundError("Client")
	}
	if !isSuperAdmin && client.UserID != userID {
		return apperror.ErrForbidden
	}
	return s.clientRepo.Delete(ctx, id)
}
