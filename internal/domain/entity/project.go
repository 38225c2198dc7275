package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kiprotichd/bizdesk-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Project represents a client project
type Project struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	ClientID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"client_id"`
	Name        string             `gorm:"size:255;not null" json:"name"`
	Description *string            `gorm:"type:text" json:"description,omitempty"`
	Status      enum.ProjectStatus `gorm:"default:0" json:"status"`
	StartDate   *time.Time         `gorm:"type:date" json:"start_date,omitempty"`
	EndDate     *time.Time         `gorm:"type:date" json:"end_date,omitempty"`
	Budget      float64            `gorm:"type:decimal(15,2);default:0" json:"budget"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	DeletedAt   gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Client   Client    `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Invoices []Invoice `gorm:"foreignKey:ProjectID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new project
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Project model
func (Project) TableName() string {
	return "projects"
}
