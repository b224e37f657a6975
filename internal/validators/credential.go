package validators

import (
	"context"

	"github.com/google/uuid"

	"github.com/safepass/safepass/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldCredentialID targets the UUID identifier of a credential.
	FieldCredentialID = "credential_id"

	// FieldUserID targets the owner identifier of a credential or request.
	FieldUserID = "user_id"

	// FieldTitle targets the display name of a credential.
	FieldTitle = "title"

	// FieldUpdateSet targets the set of changed fields in a partial update.
	FieldUpdateSet = "update_set"
)

type CredentialValidator struct {
}

func NewCredentialValidator() Validator {
	return &CredentialValidator{}
}

func (v *CredentialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credential:
		return v.validateCredential(ctx, value, fields...)
	case *models.Credential:
		return v.validateCredential(ctx, *value, fields...)

	case models.CredentialUpdate:
		return v.validateCredentialUpdate(ctx, value, fields...)
	case *models.CredentialUpdate:
		return v.validateCredentialUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialValidator) validateCredential(_ context.Context, credential models.Credential, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldCredentialID:
			if !isValidUUID(credential.ID) {
				return ErrInvalidCredentialID
			}
		case FieldUserID:
			if credential.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldTitle:
			if credential.Title == "" {
				return ErrEmptyTitle
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialValidator) validateCredentialUpdate(_ context.Context, update models.CredentialUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCredentialID, FieldUserID, FieldUpdateSet}
	}

	for _, f := range fields {
		switch f {
		case FieldCredentialID:
			if !isValidUUID(update.ID) {
				return ErrInvalidCredentialID
			}
		case FieldUserID:
			if update.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldUpdateSet:
			if update.Title == nil && update.Email == nil && update.Username == nil &&
				update.EncryptedPassword == nil && update.URL == nil && update.Notes == nil {
				return ErrNoFieldsToUpdate
			}
			if update.Title != nil && *update.Title == "" {
				return ErrEmptyTitle
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isValidUUID(id string) bool {
	if id == "" {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
