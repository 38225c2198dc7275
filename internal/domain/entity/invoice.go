package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kiprotichd/bizdesk-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Invoice represents an invoice issued to a client
type Invoice struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID             uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	ClientID           *uuid.UUID         `gorm:"type:uuid;index" json:"client_id,omitempty"`
	ProjectID          *uuid.UUID         `gorm:"type:uuid;index" json:"project_id,omitempty"`
	QuotationID        *uuid.UUID         `gorm:"type:uuid;index" json:"quotation_id,omitempty"`
	Date               time.Time          `gorm:"type:date;not null" json:"date"`
	DueDate            *time.Time         `gorm:"type:date" json:"due_date,omitempty"`
	Reference          string             `gorm:"size:100;unique;not null" json:"reference"`
	ClientName         string             `gorm:"size:255" json:"client_name"`
	SubTotal           float64            `gorm:"type:decimal(15,2);default:0" json:"sub_total"`
	TaxPercentage      float64            `gorm:"type:decimal(5,2);default:0" json:"tax_percentage"`
	TaxAmount          float64            `gorm:"type:decimal(15,2);default:0" json:"tax_amount"`
	DiscountPercentage float64            `gorm:"type:decimal(5,2);default:0" json:"discount_percentage"`
	DiscountAmount     float64            `gorm:"type:decimal(15,2);default:0" json:"discount_amount"`
	TotalAmount        float64            `gorm:"type:decimal(15,2);default:0" json:"total_amount"`
	AmountPaid         float64            `gorm:"type:decimal(15,2);default:0" json:"amount_paid"`
	Status             enum.InvoiceStatus `gorm:"default:0" json:"status"`
	Note               *string            `gorm:"type:text" json:"note,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
	DeletedAt          gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	User     User          `gorm:"foreignKey:UserID" json:"-"`
	Client   *Client       `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Project  *Project      `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Items    []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
	Payments []Payment     `gorm:"foreignKey:InvoiceID" json:"payments,omitempty"`
}

// AmountDue returns the outstanding balance on the invoice
func (i *Invoice) AmountDue() float64 {
	return i.TotalAmount - i.AmountPaid
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem represents a line item in an invoice
type InvoiceItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"invoice_id"`
	Description string         `gorm:"size:500;not null" json:"description"`
	Quantity    float64        `gorm:"type:decimal(10,2);not null" json:"quantity"`
	UnitPrice   float64        `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	LineTotal   float64        `gorm:"type:decimal(15,2);not null" json:"line_total"`
	SortOrder   int            `gorm:"default:0" json:"sort_order"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (ii *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if ii.ID == uuid.Nil {
		ii.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
