package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/kiprotichd/bizdesk-api/internal/domain/entity"
	"github.com/kiprotichd/bizdesk-api/internal/domain/enum"
	"github.com/kiprotichd/bizdesk-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMessageService() (*MessageService, *fakeMessageRepo, *fakeMessageReplyRepo) {
	messageRepo := newFakeMessageRepo()
	replyRepo := &fakeMessageReplyRepo{}
	svc := NewMessageService(messageRepo, replyRepo, disabledEmailService())
	return svc, messageRepo, replyRepo
}

func storedMessage(t *testing.T, repo *fakeMessageRepo, status enum.MessageStatus) *entity.ContactMessage {
	t.Helper()
	message := &entity.ContactMessage{
		Name:   "Jane Wanjiku",
		Email:  "jane@example.com",
		Body:   "I would like a quote for a company website.",
		Status: status,
	}
	require.NoError(t, repo.Create(context.Background(), message))
	return message
}

func TestSubmitMessageRequiresFields(t *testing.T) {
	svc, _, _ := newMessageService()

	_, err := svc.SubmitMessage(context.Background(), &SubmitMessageInput{
		Name:  "  ",
		Email: "",
		Body:  "   ",
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	assert.Len(t, appErr.Errors, 3)
}

func TestSubmitMessageStartsNew(t *testing.T) {
	svc, repo, _ := newMessageService()

	message, err := svc.SubmitMessage(context.Background(), &SubmitMessageInput{
		Name:  "Jane Wanjiku",
		Email: "jane@example.com",
		Body:  "  Please call me back.  ",
	})
	require.NoError(t, err)

	assert.Equal(t, enum.MessageStatusNew, message.Status)
	assert.Equal(t, "Please call me back.", message.Body)
	assert.NotNil(t, repo.messages[message.ID])
}

func TestGetMessageMarksNewAsRead(t *testing.T) {
	svc, repo, _ := newMessageService()
	message := storedMessage(t, repo, enum.MessageStatusNew)

	got, err := svc.GetMessage(context.Background(), message.ID)
	require.NoError(t, err)

	assert.Equal(t, enum.MessageStatusRead, got.Status)
	require.NotNil(t, got.ReadAt)
	assert.Equal(t, enum.MessageStatusRead, repo.messages[message.ID].Status)
}

func TestGetMessageDoesNotDowngradeReplied(t *testing.T) {
	svc, repo, _ := newMessageService()
	message := storedMessage(t, repo, enum.MessageStatusReplied)

	got, err := svc.GetMessage(context.Background(), message.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.MessageStatusReplied, got.Status)
}

func TestReplyLengthBounds(t *testing.T) {
	svc, repo, _ := newMessageService()
	message := storedMessage(t, repo, enum.MessageStatusRead)
	userID := uuid.New()

	tests := []struct {
		name string
		body string
		ok   bool
	}{
		{"too short", "Thanks!", false},
		{"padding does not count", "  Hello.  ", false},
		{"minimum length", "Hi, thanks", true},
		{"too long", strings.Repeat("a", 2001), false},
		{"maximum length", strings.Repeat("a", 2000), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Reply(context.Background(), &ReplyInput{
				UserID:    userID,
				MessageID: message.ID,
				Body:      tt.body,
			})
			if tt.ok {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, 422, apperror.GetAppError(err).Code)
			}
		})
	}
}

func TestReplyMarksMessageReplied(t *testing.T) {
	svc, repo, replyRepo := newMessageService()
	message := storedMessage(t, repo, enum.MessageStatusRead)
	userID := uuid.New()

	reply, err := svc.Reply(context.Background(), &ReplyInput{
		UserID:    userID,
		MessageID: message.ID,
		Body:      "Thank you for reaching out, we will be in touch.",
	})
	require.NoError(t, err)

	assert.Equal(t, message.ID, reply.MessageID)
	assert.Equal(t, userID, reply.UserID)
	assert.Equal(t, enum.MessageStatusReplied, repo.messages[message.ID].Status)
	assert.Len(t, replyRepo.replies, 1)
}

func TestArchiveMessage(t *testing.T) {
	svc, repo, _ := newMessageService()
	message := storedMessage(t, repo, enum.MessageStatusRead)

	require.NoError(t, svc.ArchiveMessage(context.Background(), message.ID))
	assert.Equal(t, enum.MessageStatusArchived, repo.messages[message.ID].Status)
}

func TestMessageNotFound(t *testing.T) {
	svc, _, _ := newMessageService()

	_, err := svc.GetMessage(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)

	err = svc.DeleteMessage(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
