package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceOffering represents a catalog entry for a billable service.
// Screens use offerings to prefill quotation and invoice line items.
type ServiceOffering struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	Rate        float64        `gorm:"type:decimal(15,2);default:0" json:"rate"`
	Unit        *string        `gorm:"size:50" json:"unit,omitempty"`
	Active      bool           `gorm:"default:true" json:"active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new service offering
func (s *ServiceOffering) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ServiceOffering model
func (ServiceOffering) TableName() string {
	return "service_offerings"
}
