package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/safepass/safepass/models"
)

const (
	createUser = `INSERT INTO users (login, password_hash, recovery_key_hash)
    VALUES ($1, $2, $3)
    RETURNING id, login, password_hash, recovery_key_hash, created_at;`

	findUserByLogin = `SELECT id, login, password_hash, recovery_key_hash, created_at
    FROM users
    WHERE login = $1;`

	findUserByID = `SELECT id, login, password_hash, recovery_key_hash, created_at
    FROM users
    WHERE id = $1;`

	updateUserSecrets = `UPDATE users
    SET password_hash = $1, recovery_key_hash = $2
    WHERE id = $3;`

	createCredential = `INSERT INTO credentials (id, user_id, title, email, username, encrypted_password, url, notes)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING id, user_id, title, email, username, encrypted_password, url, notes, created_at, updated_at;`

	getAllCredentials = `SELECT id, user_id, title, email, username, encrypted_password, url, notes, created_at, updated_at
    FROM credentials
    WHERE user_id = $1
    ORDER BY created_at, id;`

	getCredentialByID = `SELECT id, user_id, title, email, username, encrypted_password, url, notes, created_at, updated_at
    FROM credentials
    WHERE user_id = $1 AND id = $2;`

	deleteCredential = `DELETE FROM credentials
    WHERE user_id = $1 AND id = $2;`
)

// buildUpdateCredentialQuery builds a partial UPDATE for the non-nil fields
// of the request. Returns [ErrNothingToUpdate] when no field is set.
func buildUpdateCredentialQuery(update models.CredentialUpdate) (string, []any, error) {
	builder := sq.Update("credentials").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		Suffix("RETURNING id, user_id, title, email, username, encrypted_password, url, notes, created_at, updated_at")

	changed := false
	for column, value := range map[string]*string{
		"title":              update.Title,
		"email":              update.Email,
		"username":           update.Username,
		"encrypted_password": update.EncryptedPassword,
		"url":                update.URL,
		"notes":              update.Notes,
	} {
		if value != nil {
			builder = builder.Set(column, *value)
			changed = true
		}
	}

	if !changed {
		return "", nil, ErrNothingToUpdate
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, err
	}

	return query, args, nil
}
