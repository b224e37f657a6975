package service

import (
	"github.com/safepass/safepass/internal/config"
	"github.com/safepass/safepass/internal/logger"
	"github.com/safepass/safepass/internal/store"
)

type Services struct {
	AuthService       AuthService
	CredentialService CredentialService
	TransferService   TransferService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	credentialService := NewCredentialValidationService().
		Wrap(NewCredentialService(repositories.CredentialRepository, logger))

	return &Services{
		AuthService:       NewAuthService(repositories.UserRepository, cfg.Auth, logger),
		CredentialService: credentialService,
		TransferService:   NewTransferService(repositories.CredentialRepository, repositories.UserRepository, logger),
	}
}
