package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kiprotichd/bizdesk-api/internal/domain/entity"
	domainRepo "github.com/kiprotichd/bizdesk-api/internal/domain/repository"
	"gorm.io/gorm"
)

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new contact message repository
func NewMessageRepository(db *gorm.DB) domainRepo.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *entity.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error) {
	var message entity.ContactMessage
	err := r.db.WithContext(ctx).First(&message, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &message, err
}

func (r *messageRepository) GetWithReplies(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error) {
	var message entity.ContactMessage
	err := r.db.WithContext(ctx).
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&message, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &message, err
}

func (r *messageRepository) Update(ctx context.Context, message *entity.ContactMessage) error {
	return r.db.WithContext(ctx).Save(message).Error
}

func (r *messageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ContactMessage{}, "id = ?", id).Error
}

func (r *messageRepository) List(ctx context.Context, params *domainRepo.MessageFilterParams) ([]entity.ContactMessage, int64, error) {
	var messages []entity.ContactMessage
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ContactMessage{})

	if params.Search != "" {
		query = query.Where("name ILIKE ? OR email ILIKE ? OR subject ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&messages).Error

	return messages, total, err
}

type messageReplyRepository struct {
	db *gorm.DB
}

// NewMessageReplyRepository creates a new message reply repository
func NewMessageReplyRepository(db *gorm.DB) domainRepo.MessageReplyRepository {
	return &messageReplyRepository{db: db}
}

func (r *messageReplyRepository) Create(ctx context.Context, reply *entity.MessageReply) error {
	return r.db.WithContext(ctx).Create(reply).Error
}
