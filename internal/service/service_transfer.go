package service

import (
	"context"
	"fmt"

	"github.com/safepass/safepass/internal/crypto"
	"github.com/safepass/safepass/internal/importer"
	"github.com/safepass/safepass/internal/logger"
	"github.com/safepass/safepass/internal/store"
	"github.com/safepass/safepass/internal/utils"
	"github.com/safepass/safepass/models"
)

// transferService is the concrete implementation of TransferService. It
// bridges the import/export pipeline to the storage layer: imported records
// become owned credentials, exports render the stored vault verbatim.
type transferService struct {
	credentialRepository store.CredentialRepository
	userRepository       store.UserRepository

	pipeline      *importer.Pipeline
	exporter      *importer.Exporter
	uuidGenerator *utils.UUIDGenerator

	logger *logger.Logger
}

// NewTransferService constructs a TransferService over the given
// repositories. Key derivation during import is salted with the owner's
// login, so the user repository is consulted once per import.
func NewTransferService(credentialRepository store.CredentialRepository, userRepository store.UserRepository, logger *logger.Logger) TransferService {
	return &transferService{
		credentialRepository: credentialRepository,
		userRepository:       userRepository,
		pipeline:             importer.NewPipeline(crypto.NewCredentialCipher(), logger),
		exporter:             importer.NewExporter(),
		uuidGenerator:        utils.NewUUIDGenerator(),
		logger:               logger,
	}
}

// ImportCredentials parses the uploaded file and persists every accepted
// record into the user's vault. Plaintext secrets are encrypted in transit
// through the pipeline when a passphrase is supplied; see
// [importer.Pipeline.Import] for the full failure contract.
func (t *transferService) ImportCredentials(ctx context.Context, userID int64, data []byte, extension, passphrase string) (importer.Result, error) {
	log := logger.FromContext(ctx)

	owner, err := t.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("import owner lookup failed")
		return importer.Result{}, fmt.Errorf("import owner lookup failed: %w", err)
	}

	writer := importer.CredentialWriterFunc(func(ctx context.Context, record importer.Record) error {
		_, err := t.credentialRepository.CreateCredential(ctx, models.Credential{
			ID:                t.uuidGenerator.Generate(),
			UserID:            userID,
			Title:             record.Title,
			Email:             record.Email,
			Username:          record.Username,
			EncryptedPassword: record.Secret,
			URL:               record.URL,
			Notes:             record.Notes,
		})
		return err
	})

	result, err := t.pipeline.Import(ctx, data, extension, owner.Login, passphrase, writer)
	if err != nil {
		log.Err(err).Int64("userID", userID).Str("extension", extension).Msg("import ended with error")
		return result, err
	}

	log.Info().
		Int64("userID", userID).
		Int("imported", result.ImportedCount).
		Int("warnings", len(result.Warnings)).
		Msg("import finished")

	return result, nil
}

// ExportCredentials renders the user's whole vault in the requested format.
// Stored secrets are exported exactly as stored, never decrypted.
func (t *transferService) ExportCredentials(ctx context.Context, userID int64, format string) ([]byte, error) {
	log := logger.FromContext(ctx)

	credentials, err := t.credentialRepository.GetAllCredentials(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("export listing ended with error")
		return nil, fmt.Errorf("export listing ended with error: %w", err)
	}

	data, err := t.exporter.Export(credentials, format)
	if err != nil {
		log.Err(err).Int64("userID", userID).Str("format", format).Msg("export rendering ended with error")
		return nil, err
	}

	return data, nil
}
