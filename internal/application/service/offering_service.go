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

// OfferingService handles service catalog operations
type OfferingService struct {
	offeringRepo repository.ServiceOfferingRepository
}

// NewOfferingService creates a new offering service
func NewOfferingService(offeringRepo repository.ServiceOfferingRepository) *OfferingService {
	return &OfferingService{offeringRepo: offeringRepo}
}

// OfferingInput represents the input for creating or updating an offering
type OfferingInput struct {
	UserID      uuid.UUID
	Name        string
	Description *string
	Rate        float64
	Unit        *string
	Active      bool
}

func validateOfferingInput(input *OfferingInput) []apperror.FieldError {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.Name) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "name", Message: "Name is required",
		})
	}
	if input.Rate < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "rate", Message: "Rate must not be negative",
		})
	}
	return fieldErrors
}

// CreateOffering creates a new service offering
func (s *OfferingService) CreateOffering(ctx context.Context, input *OfferingInput) (*entity.ServiceOffering, error) {
	if fieldErrors := validateOfferingInput(input); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	offering := &entity.ServiceOffering{
		UserID:      input.UserID,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Rate:        input.Rate,
		Unit:        input.Unit,
		Active:      input.Active,
	}

	if err := s.offeringRepo.Create(ctx, offering); err != nil {
		return nil, err
	}
	return offering, nil
}

// GetOffering retrieves a service offering by ID
func (s *OfferingService) GetOffering(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) (*entity.ServiceOffering, error) {
	offering, err := s.offeringRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if offering == nil {
		return nil, apperror.NewNotFoundError("Service")
	}
	if !isSuperAdmin && offering.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	return offering, nil
}

// ListOfferingsInput represents the input for listing offerings
type ListOfferingsInput struct {
	UserID       uuid.UUID
	IsSuperAdmin bool
	Pagination   *pagination.PaginationParams
	Search       string
}

// ListOfferings lists service offerings with filtering
func (s *OfferingService) ListOfferings(ctx context.Context, input *ListOfferingsInput) (*pagination.PaginatedResult[entity.ServiceOffering], error) {
	var userID uuid.UUID
	if !input.IsSuperAdmin {
		userID = input.UserID
	}

	offerings, total, err := s.offeringRepo.List(ctx, userID, input.Pagination, input.Search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(offerings, pag), nil
}

// UpdateOffering updates an existing service offering
func (s *OfferingService) UpdateOffering(ctx context.Context, id uuid.UUID, input *OfferingInput, isSuperAdmin bool) (*entity.ServiceOffering, error) {
	if fieldErrors := validateOfferingInput(input); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	offering, err := s.offeringRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if offering == nil {
		return nil, apperror.NewNotFoundError("Service")
	}
	if !isSuperAdmin && offering.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	offering.Name = strings.TrimSpace(input.Name)
	offering.Description = input.Description
	offering.Rate = input.Rate
	offering.Unit = input.Unit
	offering.Active = input.Active

	if err := s.offeringRepo.Update(ctx, offering); err != nil {
		return nil, err
	}
	return offering, nil
}

// DeleteOffering deletes a service offering
func (s *OfferingService) DeleteOffering(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) error {
	offering, err := s.offeringRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if offering == nil {
		return apperror.NewNotFoundError("Service")
	}
	if !isSuperAdmin && offering.UserID != userID {
		return apperror.ErrForbidden
	}
	return s.offeringRepo.Delete(ctx, id)
}
