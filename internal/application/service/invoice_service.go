package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kiprotichd/bizdesk-api/internal/domain/entity"
	"github.com/kiprotichd/bizdesk-api/internal/domain/enum"
	"github.com/kiprotichd/bizdesk-api/internal/domain/repository"
	"github.com/kiprotichd/bizdesk-api/pkg/apperror"
	"github.com/kiprotichd/bizdesk-api/pkg/email"
	"github.com/kiprotichd/bizdesk-api/pkg/pagination"
	"github.com/kiprotichd/bizdesk-api/pkg/utils"
)

// InvoiceService handles invoice-related operations
type InvoiceService struct {
	invoiceRepo     repository.InvoiceRepository
	invoiceItemRepo repository.InvoiceItemRepository
	clientRepo      repository.ClientRepository
	emailService    *email.EmailService
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	invoiceItemRepo repository.InvoiceItemRepository,
	clientRepo repository.ClientRepository,
	emailService *email.EmailService,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:     invoiceRepo,
		invoiceItemRepo: invoiceItemRepo,
		clientRepo:      clientRepo,
		emailService:    emailService,
	}
}

// InvoiceInput represents the input for creating or updating an invoice
type InvoiceInput struct {
	UserID             uuid.UUID
	ClientID           *uuid.UUID
	ProjectID          *uuid.UUID
	Date               time.Time
	DueDate            *time.Time
	TaxPercentage      float64
	DiscountPercentage float64
	Note               *string
	Status             enum.InvoiceStatus
	Items              []LineItemInput
}

// CreateInvoice creates a new invoice
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *InvoiceInput) (*entity.Invoice, error) {
	items := billableItems(input.Items)
	if len(items) == 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "items", Message: "At least one line item with a description and a positive quantity is required"},
		})
	}

	nextNum, err := s.invoiceRepo.GetNextReferenceNumber(ctx)
	if err != nil {
		return nil, err
	}
	reference := utils.InvoiceReference(nextNum)

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

	invoice := &entity.Invoice{
		UserID:             input.UserID,
		ClientID:           input.ClientID,
		ProjectID:          input.ProjectID,
		Date:               input.Date,
		DueDate:            input.DueDate,
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

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	if err := s.invoiceItemRepo.CreateBatch(ctx, buildInvoiceItems(invoice.ID, items)); err != nil {
		return nil, err
	}

	return s.invoiceRepo.GetWithItems(ctx, invoice.ID)
}

func buildInvoiceItems(invoiceID uuid.UUID, items []LineItemInput) []entity.InvoiceItem {
	out := make([]entity.InvoiceItem, len(items))
	for i, item := range items {
		out[i] = entity.InvoiceItem{
			InvoiceID:   invoiceID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.Quantity * item.UnitPrice,
			SortOrder:   i,
		}
	}
	return out
}

// GetInvoice retrieves an invoice by ID
func (s *InvoiceService) GetInvoice(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if !isSuperAdmin && invoice.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	return invoice, nil
}

// ListInvoicesInput represents the input for listing invoices
type ListInvoicesInput struct {
	UserID       uuid.UUID
	IsSuperAdmin bool
	Pagination   *pagination.PaginationParams
	Search       string
	Status       *enum.InvoiceStatus
	ClientID     *uuid.UUID
	ProjectID    *uuid.UUID
}

// ListInvoices lists invoices with filtering
func (s *InvoiceService) ListInvoices(ctx context.Context, input *ListInvoicesInput) (*pagination.PaginatedResult[entity.Invoice], error) {
	params := &repository.InvoiceFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
		ClientID:   input.ClientID,
		ProjectID:  input.ProjectID,
	}

	var userID uuid.UUID
	if !input.IsSuperAdmin {
		userID = input.UserID
	}

	invoices, total, err := s.invoiceRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(invoices, pag), nil
}

// UpdateInvoice updates an existing invoice. Paid and canceled invoices are
// locked and reject the update.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, id uuid.UUID, input *InvoiceInput, isSuperAdmin bool) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if !isSuperAdmin && invoice.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}
	if invoice.Status.Locked() {
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

	invoice.ClientID = input.ClientID
	invoice.ProjectID = input.ProjectID
	invoice.Date = input.Date
	invoice.DueDate = input.DueDate
	invoice.ClientName = clientName
	invoice.SubTotal = totals.Subtotal
	invoice.TaxPercentage = input.TaxPercentage
	invoice.TaxAmount = totals.TaxAmount
	invoice.DiscountPercentage = input.DiscountPercentage
	invoice.DiscountAmount = totals.DiscountAmount
	invoice.TotalAmount = totals.GrandTotal
	invoice.Status = input.Status
	invoice.Note = input.Note

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	if err := s.invoiceItemRepo.DeleteByInvoiceID(ctx, invoice.ID); err != nil {
		return nil, err
	}
	if err := s.invoiceItemRepo.CreateBatch(ctx, buildInvoiceItems(invoice.ID, items)); err != nil {
		return nil, err
	}

	return s.invoiceRepo.GetWithItems(ctx, invoice.ID)
}

// DeleteInvoice deletes an invoice
func (s *InvoiceService) DeleteInvoice(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}
	if !isSuperAdmin && invoice.UserID != userID {
		return apperror.ErrForbidden
	}
	if invoice.Status.Locked() {
		return apperror.ErrEditingLocked
	}

	if err := s.invoiceItemRepo.DeleteByInvoiceID(ctx, id); err != nil {
		return err
	}
	return s.invoiceRepo.Delete(ctx, id)
}

// SendInvoice marks an invoice as sent and emails it to the client when a
// client email is on file and SMTP is configured.
func (s *InvoiceService) SendInvoice(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if !isSuperAdmin && invoice.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	if invoice.Status.Locked() {
		return nil, apperror.ErrEditingLocked
	}

	if invoice.Status == enum.InvoiceStatusDraft {
		invoice.Status = enum.InvoiceStatusSent
		if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
			return nil, err
		}
	}

	if s.emailService.Enabled() && invoice.Client != nil && invoice.Client.Email != nil {
		dueDate := ""
		if invoice.DueDate != nil {
			dueDate = invoice.DueDate.Format("2006-01-02")
		}
		// Email delivery failure must not roll back the status change
		_ = s.emailService.SendInvoiceEmail(*invoice.Client.Email, email.InvoiceSentData{
			ClientName: invoice.ClientName,
			Reference:  invoice.Reference,
			Total:      invoice.TotalAmount,
			DueDate:    dueDate,
		})
	}

	return invoice, nil
}
