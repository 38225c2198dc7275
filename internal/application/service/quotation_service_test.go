package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kiprotichd/bizdesk-api/internal/domain/entity"
	"github.com/kiprotichd/bizdesk-api/internal/domain/enum"
	"github.com/kiprotichd/bizdesk-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuotationService() (*QuotationService, *fakeQuotationRepo, *fakeQuotationItemRepo, *fakeInvoiceRepo, *fakeInvoiceItemRepo, *fakeClientRepo) {
	quotationRepo := newFakeQuotationRepo()
	quotationItemRepo := newFakeQuotationItemRepo()
	invoiceRepo := newFakeInvoiceRepo()
	invoiceItemRepo := newFakeInvoiceItemRepo()
	clientRepo := newFakeClientRepo()
	svc := NewQuotationService(quotationRepo, quotationItemRepo, invoiceRepo, invoiceItemRepo, clientRepo)
	return svc, quotationRepo, quotationItemRepo, invoiceRepo, invoiceItemRepo, clientRepo
}

func TestCreateQuotationComputesTotals(t *testing.T) {
	svc, _, itemRepo, _, _, _ := newQuotationService()
	userID := uuid.New()

	quotation, err := svc.CreateQuotation(context.Background(), &QuotationInput{
		UserID:             userID,
		Date:               time.Now(),
		TaxPercentage:      10,
		DiscountPercentage: 5,
		Items: []LineItemInput{
			{Description: "Design", Quantity: 2, UnitPrice: 100},
			{Description: "Development", Quantity: 1, UnitPrice: 50},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 250.0, quotation.SubTotal)
	assert.Equal(t, 25.0, quotation.TaxAmount)
	assert.Equal(t, 12.5, quotation.DiscountAmount)
	assert.Equal(t, 262.5, quotation.TotalAmount)
	assert.Equal(t, "QT-000001", quotation.Reference)
	assert.Len(t, itemRepo.items[quotation.ID], 2)
}

func TestCreateQuotationDropsNonBillableLines(t *testing.T) {
	svc, _, itemRepo, _, _, _ := newQuotationService()

	quotation, err := svc.CreateQuotation(context.Background(), &QuotationInput{
		UserID: uuid.New(),
		Date:   time.Now(),
		Items: []LineItemInput{
			{Description: "Kept", Quantity: 1, UnitPrice: 100},
			{Description: "   ", Quantity: 3, UnitPrice: 50},
			{Description: "Zero quantity", Quantity: 0, UnitPrice: 50},
			{Description: "Negative quantity", Quantity: -2, UnitPrice: 50},
		},
	})
	require.NoError(t, err)

	items := itemRepo.items[quotation.ID]
	require.Len(t, items, 1)
	assert.Equal(t, "Kept", items[0].Description)
	assert.Equal(t, 100.0, quotation.SubTotal)
}

func TestCreateQuotationRejectsNoBillableLines(t *testing.T) {
	svc, _, _, _, _, _ := newQuotationService()

	_, err := svc.CreateQuotation(context.Background(), &QuotationInput{
		UserID: uuid.New(),
		Date:   time.Now(),
		Items: []LineItemInput{
			{Description: "", Quantity: 1, UnitPrice: 100},
			{Description: "No quantity", Quantity: 0, UnitPrice: 50},
		},
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "items", appErr.Errors[0].Field)
}

func TestCreateQuotationFreeLineContributesZero(t *testing.T) {
	svc, _, itemRepo, _, _, _ := newQuotationService()

	quotation, err := svc.CreateQuotation(context.Background(), &QuotationInput{
		UserID: uuid.New(),
		Date:   time.Now(),
		Items: []LineItemInput{
			{Description: "Paid work", Quantity: 1, UnitPrice: 100},
			{Description: "Complimentary review", Quantity: 1, UnitPrice: 0},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, quotation.SubTotal)
	assert.Len(t, itemRepo.items[quotation.ID], 2)
}

func TestUpdateQuotationRejectsLocked(t *testing.T) {
	svc, repo, _, _, _, _ := newQuotationService()
	userID := uuid.New()

	for _, status := range []enum.QuotationStatus{enum.QuotationStatusAccepted, enum.QuotationStatusDeclined} {
		quotation := &entity.Quotation{UserID: userID, Status: status}
		require.NoError(t, repo.Create(context.Background(), quotation))

		_, err := svc.UpdateQuotation(context.Background(), quotation.ID, &QuotationInput{
			UserID: userID,
			Date:   time.Now(),
			Items:  []LineItemInput{{Description: "Work", Quantity: 1, UnitPrice: 10}},
		}, false)

		assert.Equal(t, apperror.ErrEditingLocked, err)
	}
}

func TestUpdateQuotationRecomputesTotals(t *testing.T) {
	svc, repo, _, _, _, _ := newQuotationService()
	userID := uuid.New()

	quotation := &entity.Quotation{UserID: userID, Status: enum.QuotationStatusDraft, TotalAmount: 999}
	require.NoError(t, repo.Create(context.Background(), quotation))

	updated, err := svc.UpdateQuotation(context.Background(), quotation.ID, &QuotationInput{
		UserID:        userID,
		Date:          time.Now(),
		TaxPercentage: 10,
		Items:         []LineItemInput{{Description: "Work", Quantity: 4, UnitPrice: 25}},
	}, false)
	require.NoError(t, err)

	assert.Equal(t, 100.0, updated.SubTotal)
	assert.Equal(t, 10.0, updated.TaxAmount)
	assert.Equal(t, 0.0, updated.DiscountAmount)
	assert.Equal(t, 110.0, updated.TotalAmount)
}

func TestUpdateQuotationStatusAllowedOnLocked(t *testing.T) {
	svc, repo, _, _, _, _ := newQuotationService()
	userID := uuid.New()

	quotation := &entity.Quotation{UserID: userID, Status: enum.QuotationStatusAccepted}
	require.NoError(t, repo.Create(context.Background(), quotation))

	err := svc.UpdateQuotationStatus(context.Background(), userID, quotation.ID, enum.QuotationStatusDeclined, false)
	require.NoError(t, err)
	assert.Equal(t, enum.QuotationStatusDeclined, repo.quotations[quotation.ID].Status)
}

func TestQuotationOwnershipEnforced(t *testing.T) {
	svc, repo, _, _, _, _ := newQuotationService()
	owner := uuid.New()
	stranger := uuid.New()

	quotation := &entity.Quotation{UserID: owner, Status: enum.QuotationStatusDraft}
	require.NoError(t, repo.Create(context.Background(), quotation))

	_, err := svc.GetQuotation(context.Background(), stranger, quotation.ID, false)
	assert.Equal(t, apperror.ErrForbidden, err)

	// Super admin can read across owners
	got, err := svc.GetQuotation(context.Background(), stranger, quotation.ID, true)
	require.NoError(t, err)
	assert.Equal(t, quotation.ID, got.ID)
}

func TestConvertToInvoiceRequiresAccepted(t *testing.T) {
	svc, repo, _, _, _, _ := newQuotationService()
	userID := uuid.New()

	for _, status := range []enum.QuotationStatus{
		enum.QuotationStatusDraft,
		enum.QuotationStatusSent,
		enum.QuotationStatusDeclined,
	} {
		quotation := &entity.Quotation{UserID: userID, Status: status}
		require.NoError(t, repo.Create(context.Background(), quotation))

		_, err := svc.ConvertToInvoice(context.Background(), userID, quotation.ID, nil, false)
		require.Error(t, err)
		assert.Equal(t, 409, apperror.GetAppError(err).Code)
	}
}

func TestConvertToInvoiceCopiesQuotation(t *testing.T) {
	svc, repo, _, invoiceRepo, invoiceItemRepo, _ := newQuotationService()
	userID := uuid.New()
	clientID := uuid.New()

	quotation := &entity.Quotation{
		UserID:             userID,
		ClientID:           &clientID,
		Status:             enum.QuotationStatusAccepted,
		ClientName:         "Acme Ltd",
		SubTotal:           200,
		TaxPercentage:      10,
		TaxAmount:          20,
		DiscountPercentage: 0,
		TotalAmount:        220,
		Items: []entity.QuotationItem{
			{Description: "Work", Quantity: 2, UnitPrice: 100, LineTotal: 200, SortOrder: 0},
		},
	}
	require.NoError(t, repo.Create(context.Background(), quotation))

	dueDate := time.Now().AddDate(0, 0, 30)
	invoice, err := svc.ConvertToInvoice(context.Background(), userID, quotation.ID, &dueDate, false)
	require.NoError(t, err)

	assert.Equal(t, "INV-000001", invoice.Reference)
	assert.Equal(t, enum.InvoiceStatusDraft, invoice.Status)
	assert.Equal(t, &quotation.ID, invoice.QuotationID)
	assert.Equal(t, "Acme Ltd", invoice.ClientName)
	assert.Equal(t, 220.0, invoice.TotalAmount)
	assert.Equal(t, 0.0, invoice.AmountPaid)
	require.NotNil(t, invoice.DueDate)

	stored := invoiceRepo.invoices[invoice.ID]
	require.NotNil(t, stored)
	require.Len(t, invoiceItemRepo.items[invoice.ID], 1)
	assert.Equal(t, 200.0, invoiceItemRepo.items[invoice.ID][0].LineTotal)
}

func TestDeleteQuotationRemovesItems(t *testing.T) {
	svc, repo, itemRepo, _, _, _ := newQuotationService()
	userID := uuid.New()

	quotation, err := svc.CreateQuotation(context.Background(), &QuotationInput{
		UserID: userID,
		Date:   time.Now(),
		Items:  []LineItemInput{{Description: "Work", Quantity: 1, UnitPrice: 10}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteQuotation(context.Background(), userID, quotation.ID, false))
	assert.Nil(t, repo.quotations[quotation.ID])
	assert.Empty(t, itemRepo.items[quotation.ID])
}
