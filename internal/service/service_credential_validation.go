package service

import (
	"context"
	"fmt"

	"github.com/safepass/safepass/internal/validators"
	"github.com/safepass/safepass/models"
)

// CredentialValidationService decorates a CredentialService with input
// validation so that malformed requests never reach the storage layer.
type CredentialValidationService struct {
	inner     CredentialService
	validator validators.Validator
}

func NewCredentialValidationService() CredentialServiceWrapper {
	return &CredentialValidationService{
		validator: validators.NewCredentialValidator(),
	}
}

func (v *CredentialValidationService) CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	if err := v.validator.Validate(ctx, credential, validators.FieldUserID, validators.FieldTitle); err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateCredential(ctx, credential)
}

func (v *CredentialValidationService) GetAllCredentials(ctx context.Context, userID int64) ([]models.Credential, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}

	return v.inner.GetAllCredentials(ctx, userID)
}

func (v *CredentialValidationService) GetCredential(ctx context.Context, userID int64, credentialID string) (models.Credential, error) {
	if err := v.validator.Validate(ctx, models.Credential{ID: credentialID, UserID: userID}, validators.FieldCredentialID, validators.FieldUserID); err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.GetCredential(ctx, userID, credentialID)
}

func (v *CredentialValidationService) UpdateCredential(ctx context.Context, update models.CredentialUpdate) (models.Credential, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateCredential(ctx, update)
}

func (v *CredentialValidationService) DeleteCredential(ctx context.Context, userID int64, credentialID string) error {
	if err := v.validator.Validate(ctx, models.Credential{ID: credentialID, UserID: userID}, validators.FieldCredentialID, validators.FieldUserID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.DeleteCredential(ctx, userID, credentialID)
}

func (v *CredentialValidationService) Wrap(wrapped CredentialService) CredentialService {
	v.inner = wrapped
	return v
}
