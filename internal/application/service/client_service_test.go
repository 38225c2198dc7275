package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/kiprotichd/bizdesk-api/internal/domain/entity"
	"github.com/kiprotichd/bizdesk-api/pkg/apperror"
	"github.com/kiprotichd/bizdesk-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClientRequiresName(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientService(repo)

	_, err := svc.CreateClient(context.Background(), &ClientInput{
		UserID: uuid.New(),
		Name:   "   ",
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "name", appErr.Errors[0].Field)

	// Validation runs before any write
	assert.Zero(t, repo.created)
}

func TestCreateClientTrimsName(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientService(repo)

	client, err := svc.CreateClient(context.Background(), &ClientInput{
		UserID: uuid.New(),
		Name:   "  Acme Ltd  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Ltd", client.Name)
}

func TestGetClientOwnership(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientService(repo)
	owner := uuid.New()

	client := &entity.Client{UserID: owner, Name: "Acme Ltd"}
	require.NoError(t, repo.Create(context.Background(), client))

	_, err := svc.GetClient(context.Background(), uuid.New(), client.ID, false)
	assert.Equal(t, apperror.ErrForbidden, err)

	got, err := svc.GetClient(context.Background(), owner, client.ID, false)
	require.NoError(t, err)
	assert.Equal(t, client.ID, got.ID)

	got, err = svc.GetClient(context.Background(), uuid.New(), client.ID, true)
	require.NoError(t, err)
	assert.Equal(t, client.ID, got.ID)
}

func TestGetClientNotFound(t *testing.T) {
	svc := NewClientService(newFakeClientRepo())

	_, err := svc.GetClient(context.Background(), uuid.New(), uuid.New(), false)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestListClientsScopedToOwner(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientService(repo)
	owner := uuid.New()

	require.NoError(t, repo.Create(context.Background(), &entity.Client{UserID: owner, Name: "Mine"}))
	require.NoError(t, repo.Create(context.Background(), &entity.Client{UserID: uuid.New(), Name: "Theirs"}))

	result, err := svc.ListClients(context.Background(), &ListClientsInput{
		UserID:     owner,
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 15},
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Mine", result.Items[0].Name)

	// Super admin sees everything
	result, err = svc.ListClients(context.Background(), &ListClientsInput{
		UserID:       owner,
		IsSuperAdmin: true,
		Pagination:   &pagination.PaginationParams{Page: 1, PerPage: 15},
	})
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
}

func TestDeleteClientOwnership(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientService(repo)
	owner := uuid.New()

	client := &entity.Client{UserID: owner, Name: "Acme Ltd"}
	require.NoError(t, repo.Create(context.Background(), client))

	err := svc.DeleteClient(context.Background(), uuid.New(), client.ID, false)
	assert.Equal(t, apperror.ErrForbidden, err)
	assert.NotNil(t, repo.clients[client.ID])

	require.NoError(t, svc.DeleteClient(context.Background(), owner, client.ID, false))
	assert.Nil(t, repo.clients[client.ID])
}
