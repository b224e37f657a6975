package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/safepass/safepass/internal/logger"
	"github.com/safepass/safepass/models"
)

// credentialRepository is the PostgreSQL-backed implementation of
// [CredentialRepository]. Every query is scoped by user_id so that a caller
// can never read or modify another user's records.
type credentialRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCredentialRepository constructs a [CredentialRepository] backed by the
// provided database connection and logger.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCredential persists a new credential and returns it with
// server-assigned timestamps.
func (r *credentialRepository) CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCredential,
		credential.ID, credential.UserID, credential.Title, credential.Email,
		credential.Username, credential.EncryptedPassword, credential.URL, credential.Notes)

	saved, err := scanCredential(row)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.CreateCredential").Msg("error saving credential")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Credential{}, fmt.Errorf("%w: duplicate credential id", ErrCredentialNotSaved)
		case pgerrcode.ForeignKeyViolation:
			return models.Credential{}, fmt.Errorf("%w: unknown user", ErrCredentialNotSaved)
		case "":
			return models.Credential{}, err
		default:
			return models.Credential{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return saved, nil
}

// GetAllCredentials returns every credential of the user in creation order.
// An empty vault yields an empty slice, not an error.
func (r *credentialRepository) GetAllCredentials(ctx context.Context, userID int64) ([]models.Credential, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllCredentials, userID)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.GetAllCredentials").Msg("error querying credentials")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	credentials := make([]models.Credential, 0)
	for rows.Next() {
		credential, err := scanCredential(rows)
		if err != nil {
			log.Err(err).Str("func", "*credentialRepository.GetAllCredentials").Msg("error scanning credential row")
			return nil, err
		}
		credentials = append(credentials, credential)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*credentialRepository.GetAllCredentials").Msg("error iterating credential rows")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return credentials, nil
}

// GetCredentialByID returns one credential of the user, or
// [ErrCredentialNotFound] when the id does not exist or belongs to someone
// else.
func (r *credentialRepository) GetCredentialByID(ctx context.Context, userID int64, credentialID string) (models.Credential, error) {
	log := logger.FromContext(ctx)

	credential, err := scanCredential(r.db.QueryRowContext(ctx, getCredentialByID, userID, credentialID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Credential{}, ErrCredentialNotFound
		}

		log.Err(err).Str("func", "*credentialRepository.GetCredentialByID").Msg("error finding credential")
		return models.Credential{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return credential, nil
}

// UpdateCredential applies a partial update and returns the updated record.
// Returns [ErrNothingToUpdate] for an empty request and
// [ErrCredentialNotFound] when the target does not exist.
func (r *credentialRepository) UpdateCredential(ctx context.Context, update models.CredentialUpdate) (models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCredentialQuery(update)
	if err != nil {
		if errors.Is(err, ErrNothingToUpdate) {
			return models.Credential{}, err
		}

		log.Err(err).Str("func", "*credentialRepository.UpdateCredential").Msg("error building update query")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	credential, err := scanCredential(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Credential{}, ErrCredentialNotFound
		}

		log.Err(err).Str("func", "*credentialRepository.UpdateCredential").Msg("error updating credential")
		return models.Credential{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return credential, nil
}

// DeleteCredential removes one credential of the user. Returns
// [ErrCredentialNotFound] when nothing was deleted.
func (r *credentialRepository) DeleteCredential(ctx context.Context, userID int64, credentialID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCredential, userID, credentialID)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.DeleteCredential").Msg("error deleting credential")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrCredentialNotFound
	}

	return nil
}

// rowScanner covers both [sql.Row] and [sql.Rows].
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCredential(row rowScanner) (models.Credential, error) {
	var c models.Credential
	err := row.Scan(&c.ID, &c.UserID, &c.Title, &c.Email, &c.Username,
		&c.EncryptedPassword, &c.URL, &c.Notes, &c.CreatedAt, &c.UpdatedAt)

	return c, err
}
