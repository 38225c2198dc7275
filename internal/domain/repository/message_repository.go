package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kiprotichd/bizdesk-api/internal/domain/entity"
	"github.com/kiprotichd/bizdesk-api/internal/domain/enum"
	"github.com/kiprotichd/bizdesk-api/pkg/pagination"
)

// MessageFilterParams contains filtering parameters for contact message queries
type MessageFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.MessageStatus
}

// MessageRepository defines the interface for contact message data operations
type MessageRepository interface {
	Create(ctx context.Context, message *entity.ContactMessage) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error)
	GetWithReplies(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error)
	Update(ctx context.Context, message *entity.ContactMessage) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *MessageFilterParams) ([]entity.ContactMessage, int64, error)
}

// MessageReplyRepository defines the interface for message reply data operations
type MessageReplyRepository interface {
	Create(ctx context.Context, reply *entity.MessageReply) error
}
