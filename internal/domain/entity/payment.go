package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kiprotichd/bizdesk-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Payment represents a payment recorded against an invoice
type Payment struct {
	ID        uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	InvoiceID uuid.UUID          `gorm:"type:uuid;not null;index" json:"invoice_id"`
	Reference string             `gorm:"size:100;unique;not null" json:"reference"`
	Amount    float64            `gorm:"type:decimal(15,2);not null" json:"amount"`
	Method    enum.PaymentMethod `gorm:"default:0" json:"method"`
	Date      time.Time          `gorm:"type:date;not null" json:"date"`
	Notes     *string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
	DeletedAt gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
