package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kiprotichd/bizdesk-api/internal/domain/entity"
	"github.com/kiprotichd/bizdesk-api/internal/domain/enum"
	"github.com/kiprotichd/bizdesk-api/internal/domain/repository"
	"github.com/kiprotichd/bizdesk-api/pkg/apperror"
	"github.com/kiprotichd/bizdesk-api/pkg/email"
	"github.com/kiprotichd/bizdesk-api/pkg/pagination"
)

const (
	replyMinLength = 10
	replyMaxLength = 2000
)

// MessageService handles contact message operations
type MessageService struct {
	messageRepo  repository.MessageRepository
	replyRepo    repository.MessageReplyRepository
	emailService *email.EmailService
}

// NewMessageService creates a new message service
func NewMessageService(
	messageRepo repository.MessageRepository,
	replyRepo repository.MessageReplyRepository,
	emailService *email.EmailService,
) *MessageService {
	return &MessageService{
		messageRepo:  messageRepo,
		replyRepo:    replyRepo,
		emailService: emailService,
	}
}

// SubmitMessageInput represents a public contact form submission
type SubmitMessageInput struct {
	Name    string
	Email   string
	Phone   *string
	Subject *string
	Body    string
}

// SubmitMessage stores a message from the public contact form
func (s *MessageService) SubmitMessage(ctx context.Context, input *SubmitMessageInput) (*entity.ContactMessage, error) {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.Name) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if strings.TrimSpace(input.Email) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "email", Message: "Email is required"})
	}
	if strings.TrimSpace(input.Body) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "body", Message: "Message body is required"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	message := &entity.ContactMessage{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Phone:   input.Phone,
		Subject: input.Subject,
		Body:    strings.TrimSpace(input.Body),
		Status:  enum.MessageStatusNew,
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// GetMessage retrieves a message with its replies. Opening a new message
// marks it as read.
func (s *MessageService) GetMessage(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error) {
	message, err := s.messageRepo.GetWithReplies(ctx, id)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, apperror.NewNotFoundError("Message")
	}

	if message.Status == enum.MessageStatusNew {
		now := time.Now()
		message.Status = enum.MessageStatusRead
		message.ReadAt = &now
		if err := s.messageRepo.Update(ctx, message); err != nil {
			return nil, err
		}
	}

	return message, nil
}

// ListMessagesInput represents the input for listing contact messages
type ListMessagesInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.MessageStatus
}

// ListMessages lists contact messages with filtering
func (s *MessageService) ListMessages(ctx context.Context, input *ListMessagesInput) (*pagination.PaginatedResult[entity.ContactMessage], error) {
	params := &repository.MessageFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
	}

	messages, total, err := s.messageRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(messages, pag), nil
}

// ReplyInput represents the input for replying to a contact message
type ReplyInput struct {
	UserID    uuid.UUID
	MessageID uuid.UUID
	Body      string
}

// Reply records a reply to a contact message, emails a copy to the sender
// and marks the message replied. The reply body is trimmed before the
// length check so padding cannot satisfy the minimum.
func (s *MessageService) Reply(ctx context.Context, input *ReplyInput) (*entity.MessageReply, error) {
	body := strings.TrimSpace(input.Body)
	if len(body) < replyMinLength || len(body) > replyMaxLength {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "body", Message: "Reply must be between 10 and 2000 characters"},
		})
	}

	message, err := s.messageRepo.GetByID(ctx, input.MessageID)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, apperror.NewNotFoundError("Message")
	}

	reply := &entity.MessageReply{
		MessageID: message.ID,
		UserID:    input.UserID,
		Body:      body,
	}

	if err := s.replyRepo.Create(ctx, reply); err != nil {
		return nil, err
	}

	message.Status = enum.MessageStatusReplied
	if err := s.messageRepo.Update(ctx, message); err != nil {
		return nil, err
	}

	if s.emailService.Enabled() {
		// Delivery failure must not undo the stored reply
		_ = s.emailService.SendMessageReplyEmail(message.Email, email.MessageReplyData{
			Name:     message.Name,
			Reply:    body,
			Original: message.Body,
		})
	}

	return reply, nil
}

// ArchiveMessage marks a message as archived
func (s *MessageService) ArchiveMessage(ctx context.Context, id uuid.UUID) error {
	message, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if message == nil {
		return apperror.NewNotFoundError("Message")
	}

	message.Status = enum.MessageStatusArchived
	return s.messageRepo.Update(ctx, message)
}

// DeleteMessage deletes a contact message
func (s *MessageService) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	message, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if message == nil {
		return apperror.NewNotFoundError("Message")
	}
	return s.messageRepo.Delete(ctx, id)
}
