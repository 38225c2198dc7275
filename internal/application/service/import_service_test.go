package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/kiprotichd/bizdesk-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImportService() (*ImportService, *fakeClientRepo, *fakeInvoiceRepo, *fakeInvoiceItemRepo) {
	clientRepo := newFakeClientRepo()
	invoiceRepo := newFakeInvoiceRepo()
	invoiceItemRepo := newFakeInvoiceItemRepo()
	svc := NewImportService(clientRepo, invoiceRepo, invoiceItemRepo)
	return svc, clientRepo, invoiceRepo, invoiceItemRepo
}

func TestImportClientsRejectsInvalidPayload(t *testing.T) {
	svc, _, _, _ := newImportService()

	_, err := svc.ImportClients(context.Background(), uuid.New(), []byte("not json"))
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestImportClientsNestedEnvelope(t *testing.T) {
	svc, clientRepo, _, _ := newImportService()

	payload := []byte(`{
		"data": {
			"data": {
				"clients": [
					{"_id": "abc123", "name": "Acme Ltd", "email": "info@acme.test", "company": "Acme"},
					{"_id": "def456", "email": "noname@acme.test"}
				]
			}
		}
	}`)

	result, err := svc.ImportClients(context.Background(), uuid.New(), payload)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, clientRepo.created)

	require.Len(t, result.Records, 2)
	assert.Equal(t, "abc123", result.Records[0].LegacyID)
	assert.True(t, result.Records[0].Imported)
	assert.Equal(t, "missing name", result.Records[1].Error)
}

func TestImportClientsTopLevelKey(t *testing.T) {
	svc, clientRepo, _, _ := newImportService()

	payload := []byte(`{"clients": [{"id": 7, "name": "Unwrapped Co"}]}`)

	result, err := svc.ImportClients(context.Background(), uuid.New(), payload)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, "7", result.Records[0].LegacyID)
	assert.Equal(t, 1, clientRepo.created)
}

func TestImportInvoicesRecomputesTotals(t *testing.T) {
	svc, _, invoiceRepo, invoiceItemRepo := newImportService()
	userID := uuid.New()

	payload := []byte(`{
		"invoices": [{
			"_id": "inv-9",
			"clientName": "Acme Ltd",
			"date": "2024-03-15",
			"taxPercentage": 10,
			"discountPercentage": 0,
			"totalAmount": 275,
			"items": [
				{"description": "Design", "quantity": 2, "price": 100},
				{"description": "Hosting", "quantity": "1", "unitPrice": "50"}
			]
		}]
	}`)

	result, err := svc.ImportInvoices(context.Background(), userID, payload)
	require.NoError(t, err)
	require.Equal(t, 1, result.Imported)
	assert.Empty(t, result.Records[0].Warning)

	require.Len(t, invoiceRepo.invoices, 1)
	for _, inv := range invoiceRepo.invoices {
		assert.Equal(t, "Acme Ltd", inv.ClientName)
		assert.Equal(t, 250.0, inv.SubTotal)
		assert.Equal(t, 25.0, inv.TaxAmount)
		assert.Equal(t, 275.0, inv.TotalAmount)
		assert.Equal(t, "2024-03-15", inv.Date.Format("2006-01-02"))
		assert.Equal(t, userID, inv.UserID)
		assert.Len(t, invoiceItemRepo.items[inv.ID], 2)
	}
}

func TestImportInvoicesWarnsOnTotalMismatch(t *testing.T) {
	svc, _, invoiceRepo, _ := newImportService()

	payload := []byte(`{
		"invoices": [{
			"clientName": "Acme Ltd",
			"totalAmount": 999,
			"items": [{"description": "Design", "quantity": 1, "price": 100}]
		}]
	}`)

	result, err := svc.ImportInvoices(context.Background(), uuid.New(), payload)
	require.NoError(t, err)
	require.Equal(t, 1, result.Imported)

	// The mismatch is reported but the recomputed figure is stored
	assert.NotEmpty(t, result.Records[0].Warning)
	for _, inv := range invoiceRepo.invoices {
		assert.Equal(t, 100.0, inv.TotalAmount)
	}
}

func TestImportInvoicesSkipsWithoutBillableLines(t *testing.T) {
	svc, _, invoiceRepo, _ := newImportService()

	payload := []byte(`{
		"invoices": [
			{"clientName": "No Items"},
			{"clientName": "Empty Lines", "items": [
				{"description": "", "quantity": 1, "price": 100},
				{"description": "Zero", "quantity": 0, "price": 100}
			]}
		]
	}`)

	result, err := svc.ImportInvoices(context.Background(), uuid.New(), payload)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 0, result.Imported)
	assert.Equal(t, 2, result.Skipped)
	assert.Empty(t, invoiceRepo.invoices)
	for _, rr := range result.Records {
		assert.Equal(t, "no billable line items", rr.Error)
	}
}

func TestImportInvoicesSnakeCaseClientName(t *testing.T) {
	svc, _, invoiceRepo, _ := newImportService()

	payload := []byte(`{
		"data": {
			"invoices": [{
				"client_name": "Snake Case Co",
				"items": [{"description": "Work", "quantity": 1, "price": 10}]
			}]
		}
	}`)

	result, err := svc.ImportInvoices(context.Background(), uuid.New(), payload)
	require.NoError(t, err)
	require.Equal(t, 1, result.Imported)

	for _, inv := range invoiceRepo.invoices {
		assert.Equal(t, "Snake Case Co", inv.ClientName)
	}
}
