package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// QuotationReference formats a sequential quotation reference
func QuotationReference(number int) string {
	return fmt.Sprintf("QT-%06d", number)
}

// InvoiceReference formats a sequential invoice reference
func InvoiceReference(number int) string {
	return fmt.Sprintf("INV-%06d", number)
}

// PaymentReference formats a sequential payment reference
func PaymentReference(number int) string {
	return fmt.Sprintf("PAY-%06d", number)
}
