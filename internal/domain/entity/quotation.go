package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kiprotichd/bizdesk-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Quotation represents a price quotation for a client
type Quotation struct {
	ID                 uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	UserID             uuid.UUID            `gorm:"type:uuid;not null;index" json:"user_id"`
	ClientID           *uuid.UUID           `gorm:"type:uuid;index" json:"client_id,omitempty"`
	ProjectID          *uuid.UUID           `gorm:"type:uuid;index" json:"project_id,omitempty"`
	Date               time.Time            `gorm:"type:date;not null" json:"date"`
	Reference          string               `gorm:"size:100;unique;not null" json:"reference"`
	ClientName         string               `gorm:"size:255" json:"client_name"`
	SubTotal           float64              `gorm:"type:decimal(15,2);default:0" json:"sub_total"`
	TaxPercentage      float64              `gorm:"type:decimal(5,2);default:0" json:"tax_percentage"`
	TaxAmount          float64              `gorm:"type:decimal(15,2);default:0" json:"tax_amount"`
	DiscountPercentage float64              `gorm:"type:decimal(5,2);default:0" json:"discount_percentage"`
	DiscountAmount     float64              `gorm:"type:decimal(15,2);default:0" json:"discount_amount"`
	TotalAmount        float64              `gorm:"type:decimal(15,2);default:0" json:"total_amount"`
	Status             enum.QuotationStatus `gorm:"default:0" json:"status"`
	Note               *string              `gorm:"type:text" json:"note,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
	DeletedAt          gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	User   User            `gorm:"foreignKey:UserID" json:"-"`
	Client *Client         `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Items  []QuotationItem `gorm:"foreignKey:QuotationID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new quotation
func (q *Quotation) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Quotation model
func (Quotation) TableName() string {
	return "quotations"
}

// QuotationItem represents a line item in a quotation
type QuotationItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	QuotationID uuid.UUID      `gorm:"type:uuid;not null;index" json:"quotation_id"`
	Description string         `gorm:"size:500;not null" json:"description"`
	Quantity    float64        `gorm:"type:decimal(10,2);not null" json:"quantity"`
	UnitPrice   float64        `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	LineTotal   float64        `gorm:"type:decimal(15,2);not null" json:"line_total"`
	SortOrder   int            `gorm:"default:0" json:"sort_order"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Quotation Quotation `gorm:"foreignKey:QuotationID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new quotation item
func (qi *QuotationItem) BeforeCreate(tx *gorm.DB) error {
	if qi.ID == uuid.Nil {
		qi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the QuotationItem model
func (QuotationItem) TableName() string {
	return "quotation_items"
}
