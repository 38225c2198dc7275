package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kiprotichd/bizdesk-api/internal/domain/enum"
	"gorm.io/gorm"
)

// ContactMessage represents a message submitted through the public contact form
type ContactMessage struct {
	ID        uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	Name      string             `gorm:"size:255;not null" json:"name"`
	Email     string             `gorm:"size:255;not null" json:"email"`
	Phone     *string            `gorm:"size:50" json:"phone,omitempty"`
	Subject   *string            `gorm:"size:255" json:"subject,omitempty"`
	Body      string             `gorm:"type:text;not null" json:"body"`
	Status    enum.MessageStatus `gorm:"default:0" json:"status"`
	ReadAt    *time.Time         `json:"read_at,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
	DeletedAt gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Replies []MessageReply `gorm:"foreignKey:MessageID" json:"replies,omitempty"`
}

// BeforeCreate generates a UUID before creating a new contact message
func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ContactMessage model
func (ContactMessage) TableName() string {
	return "contact_messages"
}

// MessageReply represents a reply sent to a contact message
type MessageReply struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	MessageID uuid.UUID      `gorm:"type:uuid;not null;index" json:"message_id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Body      string         `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Message ContactMessage `gorm:"foreignKey:MessageID" json:"-"`
	User    User           `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new message reply
func (r *MessageReply) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MessageReply model
func (MessageReply) TableName() string {
	return "message_replies"
}
