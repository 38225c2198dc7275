package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/kiprotichd/bizdesk-api/internal/domain/entity"
	"github.com/kiprotichd/bizdesk-api/internal/domain/enum"
	"github.com/kiprotichd/bizdesk-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaymentService() (*PaymentService, *fakePaymentRepo, *fakeInvoiceRepo) {
	paymentRepo := newFakePaymentRepo()
	invoiceRepo := newFakeInvoiceRepo()
	svc := NewPaymentService(paymentRepo, invoiceRepo)
	return svc, paymentRepo, invoiceRepo
}

func sentInvoice(t *testing.T, invoiceRepo *fakeInvoiceRepo, userID uuid.UUID, total, paid float64) *entity.Invoice {
	t.Helper()
	invoice := &entity.Invoice{
		UserID:      userID,
		TotalAmount: total,
		AmountPaid:  paid,
		Status:      enum.InvoiceStatusSent,
	}
	require.NoError(t, invoiceRepo.Create(context.Background(), invoice))
	return invoice
}

func TestRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	svc, _, invoiceRepo := newPaymentService()
	userID := uuid.New()
	invoice := sentInvoice(t, invoiceRepo, userID, 100, 0)

	for _, amount := range []float64{0, -10} {
		_, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
			UserID:    userID,
			InvoiceID: invoice.ID,
			Amount:    amount,
		})
		require.Error(t, err)
		appErr := apperror.GetAppError(err)
		assert.Equal(t, 422, appErr.Code)
		require.Len(t, appErr.Errors, 1)
		assert.Equal(t, "amount", appErr.Errors[0].Field)
	}
}

func TestRecordPaymentRejectsOverpayment(t *testing.T) {
	svc, _, invoiceRepo := newPaymentService()
	userID := uuid.New()
	invoice := sentInvoice(t, invoiceRepo, userID, 100, 40)

	_, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		UserID:    userID,
		InvoiceID: invoice.ID,
		Amount:    61,
	})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestRecordPaymentPartialMovesStatus(t *testing.T) {
	svc, _, invoiceRepo := newPaymentService()
	userID := uuid.New()
	invoice := sentInvoice(t, invoiceRepo, userID, 100, 0)

	payment, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		UserID:    userID,
		InvoiceID: invoice.ID,
		Amount:    40,
		Method:    enum.PaymentMethodBankTransfer,
	})
	require.NoError(t, err)

	assert.Equal(t, "PAY-000001", payment.Reference)
	assert.False(t, payment.Date.IsZero())

	stored := invoiceRepo.invoices[invoice.ID]
	assert.Equal(t, 40.0, stored.AmountPaid)
	assert.Equal(t, enum.InvoiceStatusPartiallyPaid, stored.Status)
}

func TestRecordPaymentFullSettlesInvoice(t *testing.T) {
	svc, _, invoiceRepo := newPaymentService()
	userID := uuid.New()
	invoice := sentInvoice(t, invoiceRepo, userID, 100, 60)

	_, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		UserID:    userID,
		InvoiceID: invoice.ID,
		Amount:    40,
	})
	require.NoError(t, err)

	stored := invoiceRepo.invoices[invoice.ID]
	assert.Equal(t, 100.0, stored.AmountPaid)
	assert.Equal(t, enum.InvoiceStatusPaid, stored.Status)
}

func TestRecordPaymentRejectsNonPayableStatuses(t *testing.T) {
	svc, _, invoiceRepo := newPaymentService()
	userID := uuid.New()

	for _, status := range []enum.InvoiceStatus{
		enum.InvoiceStatusDraft,
		enum.InvoiceStatusPaid,
		enum.InvoiceStatusCanceled,
	} {
		invoice := &entity.Invoice{UserID: userID, TotalAmount: 100, Status: status}
		require.NoError(t, invoiceRepo.Create(context.Background(), invoice))

		_, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
			UserID:    userID,
			InvoiceID: invoice.ID,
			Amount:    50,
		})
		require.Error(t, err)
		assert.Equal(t, 409, apperror.GetAppError(err).Code)
	}
}

func TestRecordPaymentOverdueStillAcceptsPayments(t *testing.T) {
	svc, _, invoiceRepo := newPaymentService()
	userID := uuid.New()

	invoice := &entity.Invoice{UserID: userID, TotalAmount: 100, Status: enum.InvoiceStatusOverdue}
	require.NoError(t, invoiceRepo.Create(context.Background(), invoice))

	_, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		UserID:    userID,
		InvoiceID: invoice.ID,
		Amount:    100,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.InvoiceStatusPaid, invoiceRepo.invoices[invoice.ID].Status)
}

func TestRecordPaymentOwnershipEnforced(t *testing.T) {
	svc, _, invoiceRepo := newPaymentService()
	owner := uuid.New()
	invoice := sentInvoice(t, invoiceRepo, owner, 100, 0)

	_, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		UserID:    uuid.New(),
		InvoiceID: invoice.ID,
		Amount:    50,
	})
	assert.Equal(t, apperror.ErrForbidden, err)
}

func TestDeletePaymentReversesInvoice(t *testing.T) {
	svc, paymentRepo, invoiceRepo := newPaymentService()
	userID := uuid.New()
	invoice := sentInvoice(t, invoiceRepo, userID, 100, 0)

	payment, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		UserID:    userID,
		InvoiceID: invoice.ID,
		Amount:    40,
	})
	require.NoError(t, err)
	require.Equal(t, enum.InvoiceStatusPartiallyPaid, invoiceRepo.invoices[invoice.ID].Status)

	require.NoError(t, svc.DeletePayment(context.Background(), userID, payment.ID, false))

	stored := invoiceRepo.invoices[invoice.ID]
	assert.Equal(t, 0.0, stored.AmountPaid)
	assert.Equal(t, enum.InvoiceStatusSent, stored.Status)
	assert.Nil(t, paymentRepo.payments[payment.ID])
}

func TestDeleteOnePaymentOfTwoLeavesPartiallyPaid(t *testing.T) {
	svc, _, invoiceRepo := newPaymentService()
	userID := uuid.New()
	invoice := sentInvoice(t, invoiceRepo, userID, 100, 0)

	first, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		UserID: userID, InvoiceID: invoice.ID, Amount: 30,
	})
	require.NoError(t, err)
	_, err = svc.RecordPayment(context.Background(), &RecordPaymentInput{
		UserID: userID, InvoiceID: invoice.ID, Amount: 30,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePayment(context.Background(), userID, first.ID, false))

	stored := invoiceRepo.invoices[invoice.ID]
	assert.Equal(t, 30.0, stored.AmountPaid)
	assert.Equal(t, enum.InvoiceStatusPartiallyPaid, stored.Status)
}
