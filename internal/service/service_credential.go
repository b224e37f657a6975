package service

import (
	"context"
	"fmt"

	"github.com/safepass/safepass/internal/logger"
	"github.com/safepass/safepass/internal/store"
	"github.com/safepass/safepass/internal/utils"
	"github.com/safepass/safepass/models"
)

// credentialService is the concrete implementation of CredentialService.
// It owns identifier assignment for new records and delegates persistence
// to a CredentialRepository.
type credentialService struct {
	credentialRepository store.CredentialRepository
	uuidGenerator        *utils.UUIDGenerator

	logger *logger.Logger
}

// NewCredentialService constructs a CredentialService wired to the given
// repository.
func NewCredentialService(credentialRepository store.CredentialRepository, logger *logger.Logger) CredentialService {
	return &credentialService{
		credentialRepository: credentialRepository,
		uuidGenerator:        utils.NewUUIDGenerator(),
		logger:               logger,
	}
}

// CreateCredential stores a new credential, assigning a fresh UUID when the
// caller did not supply one.
func (c *credentialService) CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	log := logger.FromContext(ctx)

	if credential.ID == "" {
		credential.ID = c.uuidGenerator.Generate()
	}

	saved, err := c.credentialRepository.CreateCredential(ctx, credential)
	if err != nil {
		log.Err(err).Str("title", credential.Title).Msg("credential creation ended with error")
		return models.Credential{}, fmt.Errorf("credential creation ended with error: %w", err)
	}

	return saved, nil
}

// GetAllCredentials returns the whole vault of the user in creation order.
func (c *credentialService) GetAllCredentials(ctx context.Context, userID int64) ([]models.Credential, error) {
	log := logger.FromContext(ctx)

	credentials, err := c.credentialRepository.GetAllCredentials(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("listing credentials ended with error")
		return nil, fmt.Errorf("listing credentials ended with error: %w", err)
	}

	return credentials, nil
}

// GetCredential returns one credential of the user.
func (c *credentialService) GetCredential(ctx context.Context, userID int64, credentialID string) (models.Credential, error) {
	log := logger.FromContext(ctx)

	credential, err := c.credentialRepository.GetCredentialByID(ctx, userID, credentialID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Str("credentialID", credentialID).Msg("credential lookup ended with error")
		return models.Credential{}, fmt.Errorf("credential lookup ended with error: %w", err)
	}

	return credential, nil
}

// UpdateCredential applies a partial update and returns the updated record.
func (c *credentialService) UpdateCredential(ctx context.Context, update models.CredentialUpdate) (models.Credential, error) {
	log := logger.FromContext(ctx)

	updated, err := c.credentialRepository.UpdateCredential(ctx, update)
	if err != nil {
		log.Err(err).Str("credentialID", update.ID).Msg("credential update ended with error")
		return models.Credential{}, fmt.Errorf("credential update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteCredential removes one credential of the user.
func (c *credentialService) DeleteCredential(ctx context.Context, userID int64, credentialID string) error {
	log := logger.FromContext(ctx)

	if err := c.credentialRepository.DeleteCredential(ctx, userID, credentialID); err != nil {
		log.Err(err).Int64("userID", userID).Str("credentialID", credentialID).Msg("credential deletion ended with error")
		return fmt.Errorf("credential deletion ended with error: %w", err)
	}

	return nil
}
