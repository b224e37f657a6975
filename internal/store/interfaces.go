package store

import (
	"context"

	"github.com/safepass/safepass/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateUserSecrets(ctx context.Context, userID int64, passwordHash, recoveryKeyHash string) error
}

type CredentialRepository interface {
	CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error)
	GetAllCredentials(ctx context.Context, userID int64) ([]models.Credential, error)
	GetCredentialByID(ctx context.Context, userID int64, credentialID string) (models.Credential, error)
	UpdateCredential(ctx context.Context, update models.CredentialUpdate) (models.Credential, error)
	DeleteCredential(ctx context.Context, userID int64, credentialID string) error
}
