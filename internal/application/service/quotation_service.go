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
	"github.com/kiprotichd/bizdesk-api/pkg/pricing"
	"github.com/kiprotichd/bizdesk-api/pkg/utils"
)

// QuotationService handles quotation-related operations
type QuotationService struct {
	quotationRepo     repository.QuotationRepository
	quotationItemRepo repository.QuotationItemRepository
	invoiceRepo       repository.InvoiceRepository
	invoiceItemRepo   repository.InvoiceItemRepository
	clientRepo        repository.ClientRepository
}

// NewQuotationService creates a new quotation service
func NewQuotationService(
	quotationRepo repository.QuotationRepository,
	quotationItemRepo repository.QuotationItemRepository,
	invoiceRepo repository.InvoiceRepository,
	invoiceItemRepo repository.InvoiceItemRepository,
	clientRepo repository.ClientRepository,
) *QuotationService {
	return &QuotationService{
		quotationRepo:     quotationRepo,
		quotationItemRepo: quotationItemRepo,
		invoiceRepo:       invoiceRepo,
		invoiceItemRepo:   invoiceItemRepo,
		clientRepo:        clientRepo,
	}
}

// LineItemInput represents a billable line item input
type LineItemInput struct {
	Description string
	Quantity    float64
	UnitPrice   float64
}

// billableItems drops lines with an empty description or a non-positive
// quantity. Editing screens keep such rows around as drafts; they never
// reach storage.
func billableItems(items []LineItemInput) []LineItemInput {
	out := make([]LineItemInput, 0, len(items))
	for _, item := range items {
		desc := strings.TrimSpace(item.Description)
		if desc == "" || item.Quantity <= 0 {
			continue
		}
		out = append(out, LineItemInput{
			Description: desc,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return out
}

// itemTotals recomputes the pricing breakdown from the filtered lines so
// stored totals never depend on client-supplied aggregates.
func itemTotals(items []LineItemInput, taxPercentage, discountPercentage float64) pricing.Totals {
	lines := make([]pricing.Line, len(items))
	for i, item := range items {
		lines[i] = pricing.Line{Quantity: item.Quantity, UnitPrice: item.UnitPrice}
	}
	return pricing.CalculateLines(lines, taxPercentage, discountPercentage)
}

// QuotationInput represents the input for creating or updating a quotation
type QuotationInput struct {
	UserID             uuid.UUID
	ClientID           *uuid.UUID
	ProjectID          *uuid.UUID
	Date               time.Time
	TaxPercentage      float64
	DiscountPercentage float64
	Note               *string
	Status             enum.QuotationStatus
	Items              []LineItemInput
}

// CreateQuotation creates a new quotation
func (s *QuotationService) CreateQuotation(ctx context.Context, input *QuotationInput) (*entity.Quotation, error) {
	items := billableItems(input.Items)
	if len(items) == 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "items", Message: "At least one line item with a description and a positive quantity is required"},
		})
	}

	nextNum, err := s.quotationRepo.GetNextReferenceNumber(ctx)
	if err != nil {
		return nil, err
	}
	reference := utils.QuotationReference(nextNum)

	var clientName string
	if input.ClientID != nil {
		client, err := s.clientRepo.GetByID(ctx, *input.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, apperror.NewNotFoundError("Client")
		}
		clientName = client.Name
	}

	totals := itemTotals(items, input.TaxPercentage, input.DiscountPercentage)

	quotation := &entity.Quotation{
		UserID:             input.UserID,
		ClientID:           input.ClientID,
		ProjectID:          input.ProjectID,
		Date:               input.Date,
		Reference:          reference,
		ClientName:         clientName,
		SubTotal:           totals.Subtotal,
		TaxPercentage:      input.TaxPercentage,
		TaxAmount:          totals.TaxAmount,
		DiscountPercentage: input.DiscountPercentage,
		DiscountAmount:     totals.DiscountAmount,
		TotalAmount:        totals.GrandTotal,
		Status:             input.Status,
		Note:               input.Note,
	}

	if err := s.quotationRepo.Create(ctx, quotation); err != nil {
		return nil, err
	}

	if err := s.quotationItemRepo.CreateBatch(ctx, buildQuotationItems(quotation.ID, items)); err != nil {
		return nil, err
	}

	return s.quotationRepo.GetWithItems(ctx, quotation.ID)
}

func buildQuotationItems(quotationID uuid.UUID, items []LineItemInput) []entity.QuotationItem {
	out := make([]entity.QuotationItem, len(items))
	for i, item := range items {
		out[i] = entity.QuotationItem{
			QuotationID: quotationID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.Quantity * item.UnitPrice,
			SortOrder:   i,
		}
	}
	return out
}

// GetQuotation retrieves a quotation by ID
func (s *QuotationService) GetQuotation(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	if !isSuperAdmin && quotation.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	return quotation, nil
}

// ListQuotationsInput represents the input for listing quotations
type ListQuotationsInput struct {
	UserID       uuid.UUID
	IsSuperAdmin bool
	Pagination   *pagination.PaginationParams
	Search       string
	Status       *enum.QuotationStatus
	ClientID     *uuid.UUID
}

// ListQuotations lists quotations with filtering
func (s *QuotationService) ListQuotations(ctx context.Context, input *ListQuotationsInput) (*pagination.PaginatedResult[entity.Quotation], error) {
	params := &repository.QuotationFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
		ClientID:   input.ClientID,
	}

	var userID uuid.UUID
	if !input.IsSuperAdmin {
		userID = input.UserID
	}

	quotations, total, err := s.quotationRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(quotations, pag), nil
}

// UpdateQuotation updates an existing quotation. Accepted and declined
// quotations are locked and reject the update.
func (s *QuotationService) UpdateQuotation(ctx context.Context, id uuid.UUID, input *QuotationInput, isSuperAdmin bool) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	if !isSuperAdmin && quotation.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}
	if quotation.Status.Locked() {
		return nil, apperror.ErrEditingLocked
	}

	items := billableItems(input.Items)
	if len(items) == 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "items", Message: "At least one line item with a description and a positive quantity is required"},
		})
	}

	var clientName string
	if input.ClientID != nil {
		client, err := s.clientRepo.GetByID(ctx, *input.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, apperror.NewNotFoundError("Client")
		}
		clientName = client.Name
	}

	totals := itemTotals(items, input.TaxPercentage, input.DiscountPercentage)

	quotation.ClientID = input.ClientID
	quotation.ProjectID = input.ProjectID
	quotation.Date = input.Date
	quotation.ClientName = clientName
	quotation.SubTotal = totals.Subtotal
	quotation.TaxPercentage = input.TaxPercentage
	quotation.TaxAmount = totals.TaxAmount
	quotation.DiscountPercentage = input.DiscountPercentage
	quotation.DiscountAmount = totals.DiscountAmount
	quotation.TotalAmount = totals.GrandTotal
	quotation.Status = input.Status
	quotation.Note = input.Note

	if err := s.quotationRepo.Update(ctx, quotation); err != nil {
		return nil, err
	}

	if err := s.quotationItemRepo.DeleteByQuotationID(ctx, quotation.ID); err != nil {
		return nil, err
	}
	if err := s.quotationItemRepo.CreateBatch(ctx, buildQuotationItems(quotation.ID, items)); err != nil {
		return nil, err
	}

	return s.quotationRepo.GetWithItems(ctx, quotation.ID)
}

// DeleteQuotation deletes a quotation
func (s *QuotationService) DeleteQuotation(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) error {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quotation == nil {
		return apperror.NewNotFoundError("Quotation")
	}
	if !isSuperAdmin && quotation.UserID != userID {
		return apperror.ErrForbidden
	}

	if err := s.quotationItemRepo.DeleteByQuotationID(ctx, id); err != nil {
		return err
	}
	return s.quotationRepo.Delete(ctx, id)
}

// UpdateQuotationStatus updates the status of a quotation. Status moves are
// allowed on locked quotations so an accepted one can still be declined.
func (s *QuotationService) UpdateQuotationStatus(ctx context.Context, userID, id uuid.UUID, status enum.QuotationStatus, isSuperAdmin bool) error {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quotation == nil {
		return apperror.NewNotFoundError("Quotation")
	}
	if !isSuperAdmin && quotation.UserID != userID {
		return apperror.ErrForbidden
	}
	return s.quotationRepo.UpdateStatus(ctx, id, status)
}

// ConvertToInvoice creates a draft invoice from an accepted quotation
func (s *QuotationService) ConvertToInvoice(ctx context.Context, userID, id uuid.UUID, dueDate *time.Time, isSuperAdmin bool) (*entity.Invoice, error) {
	quotation, err := s.quotationRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	if !isSuperAdmin && quotation.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	if quotation.Status != enum.QuotationStatusAccepted {
		return nil, apperror.NewConflictError("Only accepted quotations can be converted to invoices")
	}

	nextNum, err := s.invoiceRepo.GetNextReferenceNumber(ctx)
	if err != nil {
		return nil, err
	}

	invoice := &entity.Invoice{
		UserID:             quotation.UserID,
		ClientID:           quotation.ClientID,
		ProjectID:          quotation.ProjectID,
		QuotationID:        &quotation.ID,
		Date:               time.Now(),
		DueDate:            dueDate,
		Reference:          utils.InvoiceReference(nextNum),
		ClientName:         quotation.ClientName,
		SubTotal:           quotation.SubTotal,
		TaxPercentage:      quotation.TaxPercentage,
		TaxAmount:          quotation.TaxAmount,
		DiscountPercentage: quotation.DiscountPercentage,
		DiscountAmount:     quotation.DiscountAmount,
		TotalAmount:        quotation.TotalAmount,
		Status:             enum.InvoiceStatusDraft,
		Note:               quotation.Note,
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	if len(quotation.Items) > 0 {
		items := make([]entity.InvoiceItem, len(quotation.Items))
		for i, qi := range quotation.Items {
			items[i] = entity.InvoiceItem{
				InvoiceID:   invoice.ID,
				Description: qi.Description,
				Quantity:    qi.Quantity,
				UnitPrice:   qi.UnitPrice,
				LineTotal:   qi.LineTotal,
				SortOrder:   qi.SortOrder,
			}
		}
		if err := s.invoiceItemRepo.CreateBatch(ctx, items); err != nil {
			return nil, err
		}
	}

	return s.invoiceRepo.GetWithItems(ctx, invoice.ID)
}
