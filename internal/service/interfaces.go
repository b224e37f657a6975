package service

import (
	"context"

	"github.com/safepass/safepass/internal/importer"
	"github.com/safepass/safepass/models"
)

type AuthService interface {
	// RegisterUser creates a new account and returns the persisted user
	// together with the one-time recovery key shown to the user.
	RegisterUser(ctx context.Context, login, password string) (models.User, string, error)

	// Login authenticates an existing account by login and password.
	Login(ctx context.Context, login, password string) (models.User, error)

	// RecoverAccount resets the password of an account after verifying its
	// recovery key. The old key is invalidated and a fresh one is returned.
	RecoverAccount(ctx context.Context, login, recoveryKey, newPassword string) (models.User, string, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type CredentialService interface {
	CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error)
	GetAllCredentials(ctx context.Context, userID int64) ([]models.Credential, error)
	GetCredential(ctx context.Context, userID int64, credentialID string) (models.Credential, error)
	UpdateCredential(ctx context.Context, update models.CredentialUpdate) (models.Credential, error)
	DeleteCredential(ctx context.Context, userID int64, credentialID string) error
}

type TransferService interface {
	// ImportCredentials runs the import pipeline over an uploaded file and
	// persists the accepted records into the user's vault.
	ImportCredentials(ctx context.Context, userID int64, data []byte, extension, passphrase string) (importer.Result, error)

	// ExportCredentials renders the user's whole vault in the requested
	// file format.
	ExportCredentials(ctx context.Context, userID int64, format string) ([]byte, error)
}

// CredentialServiceWrapper defines middleware composition for CredentialService.
// Implementations wrap an existing CredentialService to add behavior such as
// logging or validating.
type CredentialServiceWrapper interface {
	Wrap(CredentialService) CredentialService // returns a decorated CredentialService applying additional behavior
}
