package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// InvoiceStatus represents the status of an invoice
type InvoiceStatus int

const (
	InvoiceStatusDraft         InvoiceStatus = 0
	InvoiceStatusSent          InvoiceStatus = 1
	InvoiceStatusPartiallyPaid InvoiceStatus = 2
	InvoiceStatusPaid          InvoiceStatus = 3
	InvoiceStatusOverdue       InvoiceStatus = 4
	InvoiceStatusCanceled      InvoiceStatus = 5
)

func (s InvoiceStatus) String() string {
	names := [...]string{"Draft", "Sent", "PartiallyPaid", "Paid", "Overdue", "Canceled"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Draft"
	}
	return names[s]
}

// Locked reports whether the invoice can still be edited. Paid and canceled
// invoices reject save attempts.
func (s InvoiceStatus) Locked() bool {
	return s == InvoiceStatusPaid || s == InvoiceStatusCanceled
}

// AcceptsPayments reports whether payments may still be recorded against
// the invoice.
func (s InvoiceStatus) AcceptsPayments() bool {
	return s != InvoiceStatusPaid && s != InvoiceStatusCanceled && s != InvoiceStatusDraft
}

func (s InvoiceStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *InvoiceStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = InvoiceStatus(i)
		return nil
	}
	switch str {
	case "Draft":
		*s = InvoiceStatusDraft
	case "Sent":
		*s = InvoiceStatusSent
	case "PartiallyPaid":
		*s = InvoiceStatusPartiallyPaid
	case "Paid":
		*s = InvoiceStatusPaid
	case "Overdue":
		*s = InvoiceStatusOverdue
	case "Canceled":
		*s = InvoiceStatusCanceled
	}
	return nil
}

func (s InvoiceStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *InvoiceStatus) Scan(value interface{}) error {
	if value == nil {
		*s = InvoiceStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = InvoiceStatus(v)
	case int:
		*s = InvoiceStatus(v)
	}
	return nil
}
