package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kiprotichd/bizdesk-api/internal/domain/entity"
	"github.com/kiprotichd/bizdesk-api/internal/domain/enum"
	"github.com/kiprotichd/bizdesk-api/internal/domain/repository"
	"github.com/kiprotichd/bizdesk-api/pkg/apperror"
	"github.com/kiprotichd/bizdesk-api/pkg/pagination"
	"github.com/kiprotichd/bizdesk-api/pkg/utils"
)

// PaymentService handles payment-related operations
type PaymentService struct {
	paymentRepo repository.PaymentRepository
	invoiceRepo repository.InvoiceRepository
}

// NewPaymentService creates a new payment service
func NewPaymentService(paymentRepo repository.PaymentRepository, invoiceRepo repository.InvoiceRepository) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo, invoiceRepo: invoiceRepo}
}

// RecordPaymentInput represents the input for recording a payment
type RecordPaymentInput struct {
	UserID       uuid.UUID
	IsSuperAdmin bool
	InvoiceID    uuid.UUID
	Amount       float64
	Method       enum.PaymentMethod
	Date         time.Time
	Notes        *string
}

// RecordPayment records a payment against an invoice and rolls the invoice
// status forward. Overpayment is rejected rather than capped.
func (s *PaymentService) RecordPayment(ctx context.Context, input *RecordPaymentInput) (*entity.Payment, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "amount", Message: "Amount must be greater than zero"},
		})
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, input.InvoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if !input.IsSuperAdmin && invoice.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}
	if !invoice.Status.AcceptsPayments() {
		return nil, apperror.NewConflictError("Invoice does not accept payments in its current status")
	}

	if input.Amount > invoice.AmountDue() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "amount", Message: "Amount exceeds the outstanding balance"},
		})
	}

	nextNum, err := s.paymentRepo.GetNextReferenceNumber(ctx)
	if err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	payment := &entity.Payment{
		UserID:    invoice.UserID,
		InvoiceID: invoice.ID,
		Reference: utils.PaymentReference(nextNum),
		Amount:    input.Amount,
		Method:    input.Method,
		Date:      date,
		Notes:     input.Notes,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	invoice.AmountPaid += input.Amount
	if invoice.AmountDue() <= 0 {
		invoice.Status = enum.InvoiceStatusPaid
	} else {
		invoice.Status = enum.InvoiceStatusPartiallyPaid
	}

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	return payment, nil
}

// ListPaymentsInput represents the input for listing payments
type ListPaymentsInput struct {
	UserID       uuid.UUID
	IsSuperAdmin bool
	Pagination   *pagination.PaginationParams
	InvoiceID    *uuid.UUID
}

// ListPayments lists payments with filtering
func (s *PaymentService) ListPayments(ctx context.Context, input *ListPaymentsInput) (*pagination.PaginatedResult[entity.Payment], error) {
	params := &repository.PaymentFilterParams{
		Pagination: input.Pagination,
		InvoiceID:  input.InvoiceID,
	}

	var userID uuid.UUID
	if !input.IsSuperAdmin {
		userID = input.UserID
	}

	payments, total, err := s.paymentRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(payments, pag), nil
}

// DeletePayment removes a payment and reverses its effect on the invoice
func (s *PaymentService) DeletePayment(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) error {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if payment == nil {
		return apperror.NewNotFoundError("Payment")
	}
	if !isSuperAdmin && payment.UserID != userID {
		return apperror.ErrForbidden
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, payment.InvoiceID)
	if err != nil {
		return err
	}

	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		return err
	}

	if invoice != nil {
		invoice.AmountPaid -= payment.Amount
		if invoice.AmountPaid < 0 {
			invoice.AmountPaid = 0
		}
		if invoice.AmountPaid == 0 {
			invoice.Status = enum.InvoiceStatusSent
		} else if invoice.AmountDue() > 0 {
			invoice.Status = enum.InvoiceStatusPartiallyPaid
		}
		if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
			return err
		}
	}

	return nil
}
