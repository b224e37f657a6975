package service

import (
	"context"

	"github.com/safepass/safepass/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn        func(ctx context.Context, user models.User) (models.User, error)
	findByLoginFn   func(ctx context.Context, login string) (models.User, error)
	findByIDFn      func(ctx context.Context, userID int64) (models.User, error)
	updateSecretsFn func(ctx context.Context, userID int64, passwordHash, recoveryKeyHash string) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	if m.findByLoginFn != nil {
		return m.findByLoginFn(ctx, login)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) UpdateUserSecrets(ctx context.Context, userID int64, passwordHash, recoveryKeyHash string) error {
	if m.updateSecretsFn != nil {
		return m.updateSecretsFn(ctx, userID, passwordHash, recoveryKeyHash)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.CredentialRepository
// ─────────────────────────────────────────────

type mockCredentialRepository struct {
	createFn  func(ctx context.Context, credential models.Credential) (models.Credential, error)
	getAllFn  func(ctx context.Context, userID int64) ([]models.Credential, error)
	getByIDFn func(ctx context.Context, userID int64, credentialID string) (models.Credential, error)
	updateFn  func(ctx context.Context, update models.CredentialUpdate) (models.Credential, error)
	deleteFn  func(ctx context.Context, userID int64, credentialID string) error
}

func (m *mockCredentialRepository) CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	if m.createFn != nil {
		return m.createFn(ctx, credential)
	}
	return credential, nil
}

func (m *mockCredentialRepository) GetAllCredentials(ctx context.Context, userID int64) ([]models.Credential, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockCredentialRepository) GetCredentialByID(ctx context.Context, userID int64, credentialID string) (models.Credential, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, userID, credentialID)
	}
	return models.Credential{}, nil
}

func (m *mockCredentialRepository) UpdateCredential(ctx context.Context, update models.CredentialUpdate) (models.Credential, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, update)
	}
	return models.Credential{}, nil
}

func (m *mockCredentialRepository) DeleteCredential(ctx context.Context, userID int64, credentialID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, credentialID)
	}
	return nil
}
