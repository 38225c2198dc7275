package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kiprotichd/bizdesk-api/internal/domain/entity"
	"github.com/kiprotichd/bizdesk-api/internal/domain/enum"
	"github.com/kiprotichd/bizdesk-api/internal/domain/repository"
	"github.com/kiprotichd/bizdesk-api/pkg/email"
	"github.com/kiprotichd/bizdesk-api/pkg/pagination"
)

// In-memory repository fakes. They keep entities in maps and implement just
// enough filtering for the service tests.

type fakeClientRepo struct {
	clients map[uuid.UUID]*entity.Client
	created int
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[uuid.UUID]*entity.Client)}
}

func (r *fakeClientRepo) Create(ctx context.Context, client *entity.Client) error {
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	r.clients[client.ID] = client
	r.created++
	return nil
}

func (r *fakeClientRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	return r.clients[id], nil
}

func (r *fakeClientRepo) Update(ctx context.Context, client *entity.Client) error {
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.clients, id)
	return nil
}

func (r *fakeClientRepo) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Client, int64, error) {
	var out []entity.Client
	for _, c := range r.clients {
		if userID != uuid.Nil && c.UserID != userID {
			continue
		}
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

type fakeQuotationRepo struct {
	quotations map[uuid.UUID]*entity.Quotation
	nextRef    int
}

func newFakeQuotationRepo() *fakeQuotationRepo {
	return &fakeQuotationRepo{quotations: make(map[uuid.UUID]*entity.Quotation), nextRef: 1}
}

func (r *fakeQuotationRepo) Create(ctx context.Context, q *entity.Quotation) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	r.quotations[q.ID] = q
	return nil
}

func (r *fakeQuotationRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	return r.quotations[id], nil
}

func (r *fakeQuotationRepo) GetByReference(ctx context.Context, reference string) (*entity.Quotation, error) {
	for _, q := range r.quotations {
		if q.Reference == reference {
			return q, nil
		}
	}
	return nil, nil
}

func (r *fakeQuotationRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	return r.quotations[id], nil
}

func (r *fakeQuotationRepo) Update(ctx context.Context, q *entity.Quotation) error {
	r.quotations[q.ID] = q
	return nil
}

func (r *fakeQuotationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.quotations, id)
	return nil
}

func (r *fakeQuotationRepo) List(ctx context.Context, userID uuid.UUID, params *repository.QuotationFilterParams) ([]entity.Quotation, int64, error) {
	var out []entity.Quotation
	for _, q := range r.quotations {
		if userID != uuid.Nil && q.UserID != userID {
			continue
		}
		if params.Status != nil && q.Status != *params.Status {
			continue
		}
		out = append(out, *q)
	}
	return out, int64(len(out)), nil
}

func (r *fakeQuotationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuotationStatus) error {
	if q, ok := r.quotations[id]; ok {
		q.Status = status
	}
	return nil
}

func (r *fakeQuotationRepo) GetNextReferenceNumber(ctx context.Context) (int, error) {
	n := r.nextRef
	r.nextRef++
	return n, nil
}

type fakeQuotationItemRepo struct {
	items map[uuid.UUID][]entity.QuotationItem
}

func newFakeQuotationItemRepo() *fakeQuotationItemRepo {
	return &fakeQuotationItemRepo{items: make(map[uuid.UUID][]entity.QuotationItem)}
}

func (r *fakeQuotationItemRepo) CreateBatch(ctx context.Context, items []entity.QuotationItem) error {
	if len(items) == 0 {
		return nil
	}
	id := items[0].QuotationID
	r.items[id] = append(r.items[id], items...)
	return nil
}

func (r *fakeQuotationItemRepo) DeleteByQuotationID(ctx context.Context, quotationID uuid.UUID) error {
	delete(r.items, quotationID)
	return nil
}

type fakeInvoiceRepo struct {
	invoices map[uuid.UUID]*entity.Invoice
	nextRef  int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[uuid.UUID]*entity.Invoice), nextRef: 1}
}

func (r *fakeInvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	r.invoices[inv.ID] = inv
	return nil
}

func (r *fakeInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return r.invoices[id], nil
}

func (r *fakeInvoiceRepo) GetByReference(ctx context.Context, reference string) (*entity.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.Reference == reference {
			return inv, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return r.invoices[id], nil
}

func (r *fakeInvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error {
	r.invoices[inv.ID] = inv
	return nil
}

func (r *fakeInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.invoices, id)
	return nil
}

func (r *fakeInvoiceRepo) List(ctx context.Context, userID uuid.UUID, params *repository.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	var out []entity.Invoice
	for _, inv := range r.invoices {
		if userID != uuid.Nil && inv.UserID != userID {
			continue
		}
		if params.Status != nil && inv.Status != *params.Status {
			continue
		}
		out = append(out, *inv)
	}
	return out, int64(len(out)), nil
}

func (r *fakeInvoiceRepo) GetNextReferenceNumber(ctx context.Context) (int, error) {
	n := r.nextRef
	r.nextRef++
	return n, nil
}

type fakeInvoiceItemRepo struct {
	items map[uuid.UUID][]entity.InvoiceItem
}

func newFakeInvoiceItemRepo() *fakeInvoiceItemRepo {
	return &fakeInvoiceItemRepo{items: make(map[uuid.UUID][]entity.InvoiceItem)}
}

func (r *fakeInvoiceItemRepo) CreateBatch(ctx context.Context, items []entity.InvoiceItem) error {
	if len(items) == 0 {
		return nil
	}
	id := items[0].InvoiceID
	r.items[id] = append(r.items[id], items...)
	return nil
}

func (r *fakeInvoiceItemRepo) DeleteByInvoiceID(ctx context.Context, invoiceID uuid.UUID) error {
	delete(r.items, invoiceID)
	return nil
}

type fakePaymentRepo struct {
	payments map[uuid.UUID]*entity.Payment
	nextRef  int
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[uuid.UUID]*entity.Payment), nextRef: 1}
}

func (r *fakePaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.payments[p.ID] = p
	return nil
}

func (r *fakePaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	return r.payments[id], nil
}

func (r *fakePaymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.payments, id)
	return nil
}

func (r *fakePaymentRepo) List(ctx context.Context, userID uuid.UUID, params *repository.PaymentFilterParams) ([]entity.Payment, int64, error) {
	var out []entity.Payment
	for _, p := range r.payments {
		if userID != uuid.Nil && p.UserID != userID {
			continue
		}
		if params.InvoiceID != nil && p.InvoiceID != *params.InvoiceID {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *fakePaymentRepo) GetNextReferenceNumber(ctx context.Context) (int, error) {
	n := r.nextRef
	r.nextRef++
	return n, nil
}

type fakeMessageRepo struct {
	messages map[uuid.UUID]*entity.ContactMessage
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: make(map[uuid.UUID]*entity.ContactMessage)}
}

func (r *fakeMessageRepo) Create(ctx context.Context, m *entity.ContactMessage) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.messages[m.ID] = m
	return nil
}

func (r *fakeMessageRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error) {
	return r.messages[id], nil
}

func (r *fakeMessageRepo) GetWithReplies(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error) {
	return r.messages[id], nil
}

func (r *fakeMessageRepo) Update(ctx context.Context, m *entity.ContactMessage) error {
	r.messages[m.ID] = m
	return nil
}

func (r *fakeMessageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.messages, id)
	return nil
}

func (r *fakeMessageRepo) List(ctx context.Context, params *repository.MessageFilterParams) ([]entity.ContactMessage, int64, error) {
	var out []entity.ContactMessage
	for _, m := range r.messages {
		if params.Status != nil && m.Status != *params.Status {
			continue
		}
		out = append(out, *m)
	}
	return out, int64(len(out)), nil
}

type fakeMessageReplyRepo struct {
	replies []entity.MessageReply
}

func (r *fakeMessageReplyRepo) Create(ctx context.Context, reply *entity.MessageReply) error {
	if reply.ID == uuid.Nil {
		reply.ID = uuid.New()
	}
	r.replies = append(r.replies, *reply)
	return nil
}

// disabledEmailService returns an email service with no SMTP configured so
// notification sends are skipped.
func disabledEmailService() *email.EmailService {
	return email.NewEmailService(email.EmailConfig{})
}
