package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kiprotichd/bizdesk-api/internal/domain/entity"
	"github.com/kiprotichd/bizdesk-api/internal/domain/enum"
	"github.com/kiprotichd/bizdesk-api/internal/domain/repository"
	"github.com/kiprotichd/bizdesk-api/pkg/apperror"
	"github.com/kiprotichd/bizdesk-api/pkg/envelope"
	"github.com/kiprotichd/bizdesk-api/pkg/pricing"
	"github.com/kiprotichd/bizdesk-api/pkg/utils"
)

// ImportService ingests JSON exports from the legacy business-management
// API. The legacy wire shapes vary between deployments; pkg/envelope
// normalizes them before any record is persisted.
type ImportService struct {
	clientRepo      repository.ClientRepository
	invoiceRepo     repository.InvoiceRepository
	invoiceItemRepo repository.InvoiceItemRepository
}

// NewImportService creates a new import service
func NewImportService(
	clientRepo repository.ClientRepository,
	invoiceRepo repository.InvoiceRepository,
	invoiceItemRepo repository.InvoiceItemRepository,
) *ImportService {
	return &ImportService{
		clientRepo:      clientRepo,
		invoiceRepo:     invoiceRepo,
		invoiceItemRepo: invoiceItemRepo,
	}
}

// ImportRecordResult reports the outcome for one legacy record
type ImportRecordResult struct {
	LegacyID string `json:"legacy_id,omitempty"`
	Name     string `json:"name,omitempty"`
	Imported bool   `json:"imported"`
	Warning  string `json:"warning,omitempty"`
	Error    string `json:"error,omitempty"`
}

// ImportResult summarizes an import run
type ImportResult struct {
	Total    int                  `json:"total"`
	Imported int                  `json:"imported"`
	Skipped  int                  `json:"skipped"`
	Records  []ImportRecordResult `json:"records"`
}

// ImportClients imports clients from a legacy JSON export
func (s *ImportService) ImportClients(ctx context.Context, userID uuid.UUID, payload []byte) (*ImportResult, error) {
	doc, err := envelope.Parse(payload)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid import payload")
	}

	records := doc.Records("clients")
	result := &ImportResult{Total: len(records)}

	for _, record := range records {
		legacyID, _ := envelope.RecordID(record)
		name := envelope.String(record, "name")

		rr := ImportRecordResult{LegacyID: legacyID, Name: name}
		if name == "" {
			rr.Error = "missing name"
			result.Skipped++
			result.Records = append(result.Records, rr)
			continue
		}

		client := &entity.Client{
			UserID: userID,
			Name:   name,
		}
		if v := envelope.String(record, "email"); v != "" {
			client.Email = &v
		}
		if v := envelope.String(record, "phone"); v != "" {
			client.Phone = &v
		}
		if v := envelope.String(record, "company"); v != "" {
			client.CompanyName = &v
		}
		if v := envelope.String(record, "address"); v != "" {
			client.Address = &v
		}

		if err := s.clientRepo.Create(ctx, client); err != nil {
			rr.Error = err.Error()
			result.Skipped++
		} else {
			rr.Imported = true
			result.Imported++
		}
		result.Records = append(result.Records, rr)
	}

	return result, nil
}

// ImportInvoices imports invoices from a legacy JSON export. Stored totals
// are recomputed from the line items so legacy rounding bugs do not carry
// over.
func (s *ImportService) ImportInvoices(ctx context.Context, userID uuid.UUID, payload []byte) (*ImportResult, error) {
	doc, err := envelope.Parse(payload)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid import payload")
	}

	records := doc.Records("invoices")
	result := &ImportResult{Total: len(records)}

	for _, record := range records {
		legacyID, _ := envelope.RecordID(record)
		clientName := envelope.String(record, "clientName")
		if clientName == "" {
			clientName = envelope.String(record, "client_name")
		}

		rr := ImportRecordResult{LegacyID: legacyID, Name: clientName}

		items := importedLineItems(record)
		if len(items) == 0 {
			rr.Error = "no billable line items"
			result.Skipped++
			result.Records = append(result.Records, rr)
			continue
		}

		taxPct := envelope.Number(record, "taxPercentage")
		discountPct := envelope.Number(record, "discountPercentage")
		totals := itemTotals(items, taxPct, discountPct)
		if !legacyTotalsMatch(record, totals) {
			rr.Warning = "legacy total disagreed with recomputed total"
		}

		nextNum, err := s.invoiceRepo.GetNextReferenceNumber(ctx)
		if err != nil {
			return nil, err
		}

		date := time.Now()
		if v := envelope.String(record, "date"); v != "" {
			if parsed, err := time.Parse("2006-01-02", v); err == nil {
				date = parsed
			}
		}

		invoice := &entity.Invoice{
			UserID:             userID,
			Date:               date,
			Reference:          utils.InvoiceReference(nextNum),
			ClientName:         clientName,
			SubTotal:           totals.Subtotal,
			TaxPercentage:      taxPct,
			TaxAmount:          totals.TaxAmount,
			DiscountPercentage: discountPct,
			DiscountAmount:     totals.DiscountAmount,
			TotalAmount:        totals.GrandTotal,
			Status:             enum.InvoiceStatusDraft,
		}

		if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
			rr.Error = err.Error()
			result.Skipped++
			result.Records = append(result.Records, rr)
			continue
		}

		if err := s.invoiceItemRepo.CreateBatch(ctx, buildInvoiceItems(invoice.ID, items)); err != nil {
			rr.Error = err.Error()
			result.Skipped++
			result.Records = append(result.Records, rr)
			continue
		}

		rr.Imported = true
		result.Imported++
		result.Records = append(result.Records, rr)
	}

	return result, nil
}

// importedLineItems extracts billable lines from a legacy invoice record.
// The legacy export names the unit price either "price" or "unitPrice" and
// may encode numbers as strings.
func importedLineItems(record map[string]interface{}) []LineItemInput {
	raw, ok := record["items"].([]interface{})
	if !ok {
		return nil
	}

	var items []LineItemInput
	for _, el := range raw {
		obj, ok := el.(map[string]interface{})
		if !ok {
			continue
		}
		price := envelope.Number(obj, "price")
		if price == 0 {
			price = envelope.Number(obj, "unitPrice")
		}
		items = append(items, LineItemInput{
			Description: envelope.String(obj, "description"),
			Quantity:    envelope.Number(obj, "quantity"),
			UnitPrice:   price,
		})
	}
	return billableItems(items)
}

// legacyTotalsMatch reports whether the legacy record's own grand total
// agrees with the recomputed one within a cent. Mismatches are imported
// anyway; the recomputed figure wins.
func legacyTotalsMatch(record map[string]interface{}, totals pricing.Totals) bool {
	legacy := envelope.Number(record, "totalAmount")
	if legacy == 0 {
		legacy = envelope.Number(record, "total")
	}
	if legacy == 0 {
		return true
	}
	diff := legacy - totals.GrandTotal
	return diff < 0.01 && diff > -0.01
}
