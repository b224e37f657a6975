package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safepass/safepass/internal/logger"
	"github.com/safepass/safepass/internal/store"
	"github.com/safepass/safepass/models"
)

const testCredentialID = "0191a7b8-7c3d-7e4f-8a9b-0c1d2e3f4a5b"

func newValidatedCredentialService(repo store.CredentialRepository) CredentialService {
	return NewCredentialValidationService().Wrap(NewCredentialService(repo, logger.Nop()))
}

func TestCreateCredential_AssignsUUID(t *testing.T) {
	var created models.Credential
	repo := &mockCredentialRepository{
		createFn: func(_ context.Context, credential models.Credential) (models.Credential, error) {
			created = credential
			return credential, nil
		},
	}

	saved, err := newValidatedCredentialService(repo).CreateCredential(context.Background(), models.Credential{
		UserID: 7,
		Title:  "Gmail",
	})
	require.NoError(t, err)

	_, parseErr := uuid.Parse(created.ID)
	assert.NoError(t, parseErr, "expected a generated UUID, got %q", created.ID)
	assert.Equal(t, created.ID, saved.ID)
}

func TestCreateCredential_KeepsCallerID(t *testing.T) {
	repo := &mockCredentialRepository{}

	saved, err := newValidatedCredentialService(repo).CreateCredential(context.Background(), models.Credential{
		ID:     testCredentialID,
		UserID: 7,
		Title:  "Gmail",
	})
	require.NoError(t, err)
	assert.Equal(t, testCredentialID, saved.ID)
}

func TestCreateCredential_ValidationRejectsEmptyTitle(t *testing.T) {
	repo := &mockCredentialRepository{
		createFn: func(_ context.Context, _ models.Credential) (models.Credential, error) {
			t.Fatal("repository must not be reached for invalid input")
			return models.Credential{}, nil
		},
	}

	_, err := newValidatedCredentialService(repo).CreateCredential(context.Background(), models.Credential{UserID: 7})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestGetCredential_RejectsMalformedID(t *testing.T) {
	svc := newValidatedCredentialService(&mockCredentialRepository{})

	_, err := svc.GetCredential(context.Background(), 7, "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestGetCredential_NotFoundPropagates(t *testing.T) {
	repo := &mockCredentialRepository{
		getByIDFn: func(_ context.Context, _ int64, _ string) (models.Credential, error) {
			return models.Credential{}, store.ErrCredentialNotFound
		},
	}

	_, err := newValidatedCredentialService(repo).GetCredential(context.Background(), 7, testCredentialID)
	assert.ErrorIs(t, err, store.ErrCredentialNotFound)
}

func TestGetAllCredentials_Success(t *testing.T) {
	repo := &mockCredentialRepository{
		getAllFn: func(_ context.Context, userID int64) ([]models.Credential, error) {
			require.Equal(t, int64(7), userID)
			return []models.Credential{{ID: testCredentialID, Title: "Gmail"}}, nil
		},
	}

	credentials, err := newValidatedCredentialService(repo).GetAllCredentials(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, credentials, 1)
	assert.Equal(t, "Gmail", credentials[0].Title)
}

func TestUpdateCredential_ValidationRejectsEmptyUpdate(t *testing.T) {
	svc := newValidatedCredentialService(&mockCredentialRepository{})

	_, err := svc.UpdateCredential(context.Background(), models.CredentialUpdate{ID: testCredentialID, UserID: 7})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUpdateCredential_Success(t *testing.T) {
	newTitle := "Gmail (work)"
	repo := &mockCredentialRepository{
		updateFn: func(_ context.Context, update models.CredentialUpdate) (models.Credential, error) {
			require.NotNil(t, update.Title)
			return models.Credential{ID: update.ID, Title: *update.Title}, nil
		},
	}

	updated, err := newValidatedCredentialService(repo).UpdateCredential(context.Background(), models.CredentialUpdate{
		ID:     testCredentialID,
		UserID: 7,
		Title:  &newTitle,
	})
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
}

func TestDeleteCredential_Success(t *testing.T) {
	deleted := false
	repo := &mockCredentialRepository{
		deleteFn: func(_ context.Context, userID int64, credentialID string) error {
			deleted = true
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, testCredentialID, credentialID)
			return nil
		},
	}

	err := newValidatedCredentialService(repo).DeleteCredential(context.Background(), 7, testCredentialID)
	require.NoError(t, err)
	assert.True(t, deleted)
}
