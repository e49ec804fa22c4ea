package impl

import (
	"context"
	"testing"
	"time"

	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	mockRepo "guardian/internal/mocks/repository"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContactService_CreateContact(t *testing.T) {
	mockContactRepo := mockRepo.NewMockContactRepository(t)
	service := NewContactService(mockContactRepo, testLogger())

	ctx := context.Background()
	userID := uuid.New()

	mockContactRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Contact")).
		Return(nil)

	contact, err := service.CreateContact(ctx, userID, usecase.ContactInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		IsActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, contact.UserID)
	assert.Equal(t, "Alice", contact.Name)
	assert.True(t, contact.IsActive)
	assert.False(t, contact.CreatedAt.IsZero())
}

func TestContactService_CreateContact_Unreachable(t *testing.T) {
	mockContactRepo := mockRepo.NewMockContactRepository(t)
	service := NewContactService(mockContactRepo, testLogger())

	_, err := service.CreateContact(context.Background(), uuid.New(), usecase.ContactInput{
		Name:     "Nobody",
		IsActive: true,
	})
	require.ErrorIs(t, err, domainerrors.ErrContactUnreachable)
}

func TestContactService_UpdateContact(t *testing.T) {
	mockContactRepo := mockRepo.NewMockContactRepository(t)
	service := NewContactService(mockContactRepo, testLogger())

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Contact{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Alice",
		Email:     "alice@example.com",
		IsActive:  true,
		CreatedAt: time.Now().Add(-time.Hour),
	}

	mockContactRepo.EXPECT().
		FindByID(ctx, existing.ID).
		Return(existing, nil)

	mockContactRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Contact")).
		Return(nil)

	contact, err := service.UpdateContact(ctx, userID, existing.ID, usecase.ContactInput{
		Name:     "Alice Chen",
		Mobile:   "+886912345678",
		IsActive: false,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Chen", contact.Name)
	assert.Empty(t, contact.Email)
	assert.Equal(t, "+886912345678", contact.Mobile)
	assert.False(t, contact.IsActive)
}

func TestContactService_UpdateContact_Forbidden(t *testing.T) {
	mockContactRepo := mockRepo.NewMockContactRepository(t)
	service := NewContactService(mockContactRepo, testLogger())

	ctx := context.Background()
	existing := &entity.Contact{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Name:   "Alice",
		Email:  "alice@example.com",
	}

	mockContactRepo.EXPECT().
		FindByID(ctx, existing.ID).
		Return(existing, nil)

	_, err := service.UpdateContact(ctx, uuid.New(), existing.ID, usecase.ContactInput{
		Name:  "Hijacked",
		Email: "evil@example.com",
	})
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestContactService_DeleteContact(t *testing.T) {
	mockContactRepo := mockRepo.NewMockContactRepository(t)
	service := NewContactService(mockContactRepo, testLogger())

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Contact{
		ID:     uuid.New(),
		UserID: userID,
		Name:   "Alice",
		Email:  "alice@example.com",
	}

	mockContactRepo.EXPECT().
		FindByID(ctx, existing.ID).
		Return(existing, nil)

	mockContactRepo.EXPECT().
		Delete(ctx, existing.ID).
		Return(nil)

	err := service.DeleteContact(ctx, userID, existing.ID)
	require.NoError(t, err)
}

func TestContactService_DeleteContact_NotFound(t *testing.T) {
	mockContactRepo := mockRepo.NewMockContactRepository(t)
	service := NewContactService(mockContactRepo, testLogger())

	ctx := context.Background()
	contactID := uuid.New()

	mockContactRepo.EXPECT().
		FindByID(ctx, contactID).
		Return(nil, repository.ErrContactNotFound)

	err := service.DeleteContact(ctx, uuid.New(), contactID)
	require.ErrorIs(t, err, domainerrors.ErrContactNotFound)
}

func TestContactService_ListContacts(t *testing.T) {
	mockContactRepo := mockRepo.NewMockContactRepository(t)
	service := NewContactService(mockContactRepo, testLogger())

	ctx := context.Background()
	userID := uuid.New()
	contacts := []*entity.Contact{
		{ID: uuid.New(), UserID: userID, Name: "Alice", Email: "alice@example.com"},
		{ID: uuid.New(), UserID: userID, Name: "Bob", Mobile: "+886912345678"},
	}

	mockContactRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(contacts, nil)

	result, err := service.ListContacts(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, contacts, result)
}
