package http

import (
	"context"

	"github.com/safepass/safepass/internal/importer"
	"github.com/safepass/safepass/internal/logger"
	"github.com/safepass/safepass/internal/service"
	"github.com/safepass/safepass/internal/utils"
	"github.com/safepass/safepass/models"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn func(ctx context.Context, login, password string) (models.User, string, error)
	loginFn    func(ctx context.Context, login, password string) (models.User, error)
	recoverFn  func(ctx context.Context, login, recoveryKey, newPassword string) (models.User, string, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, login, password string) (models.User, string, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, login, password)
	}
	return models.User{UserID: 1, Login: login}, "AAAAAAAA-BBBBBBBB-CCCCCCCC-DDDDDDDD", nil
}

func (m *mockAuthService) Login(ctx context.Context, login, password string) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, login, password)
	}
	return models.User{UserID: 1, Login: login}, nil
}

func (m *mockAuthService) RecoverAccount(ctx context.Context, login, recoveryKey, newPassword string) (models.User, string, error) {
	if m.recoverFn != nil {
		return m.recoverFn(ctx, login, recoveryKey, newPassword)
	}
	return models.User{UserID: 1, Login: login}, "EEEEEEEE-FFFFFFFF-00000000-11111111", nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return utils.GenerateJWTToken("test-issuer", user.UserID, testTokenDuration, testSignKey)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, testSignKey, "test-issuer")
	if err != nil {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return token, nil
}

// ─────────────────────────────────────────────
// Mock: service.CredentialService
// ─────────────────────────────────────────────

type mockCredentialService struct {
	createFn func(ctx context.Context, credential models.Credential) (models.Credential, error)
	getAllFn func(ctx context.Context, userID int64) ([]models.Credential, error)
	getFn    func(ctx context.Context, userID int64, credentialID string) (models.Credential, error)
	updateFn func(ctx context.Context, update models.CredentialUpdate) (models.Credential, error)
	deleteFn func(ctx context.Context, userID int64, credentialID string) error
}

func (m *mockCredentialService) CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	if m.createFn != nil {
		return m.createFn(ctx, credential)
	}
	return credential, nil
}

func (m *mockCredentialService) GetAllCredentials(ctx context.Context, userID int64) ([]models.Credential, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockCredentialService) GetCredential(ctx context.Context, userID int64, credentialID string) (models.Credential, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, credentialID)
	}
	return models.Credential{}, nil
}

func (m *mockCredentialService) UpdateCredential(ctx context.Context, update models.CredentialUpdate) (models.Credential, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, update)
	}
	return models.Credential{}, nil
}

func (m *mockCredentialService) DeleteCredential(ctx context.Context, userID int64, credentialID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, credentialID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.TransferService
// ─────────────────────────────────────────────

type mockTransferService struct {
	importFn func(ctx context.Context, userID int64, data []byte, extension, passphrase string) (importer.Result, error)
	exportFn func(ctx context.Context, userID int64, format string) ([]byte, error)
}

func (m *mockTransferService) ImportCredentials(ctx context.Context, userID int64, data []byte, extension, passphrase string) (importer.Result, error) {
	if m.importFn != nil {
		return m.importFn(ctx, userID, data, extension, passphrase)
	}
	return importer.Result{}, nil
}

func (m *mockTransferService) ExportCredentials(ctx context.Context, userID int64, format string) ([]byte, error) {
	if m.exportFn != nil {
		return m.exportFn(ctx, userID, format)
	}
	return nil, nil
}

func newTestHandler(services *service.Services) *Handler {
	if services.AuthService == nil {
		services.AuthService = &mockAuthService{}
	}
	if services.CredentialService == nil {
		services.CredentialService = &mockCredentialService{}
	}
	if services.TransferService == nil {
		services.TransferService = &mockTransferService{}
	}
	return NewHandler(services, logger.Nop())
}
