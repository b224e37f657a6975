package models

import "time"

// User represents a vault account. A user owns a set of credentials and
// authenticates with a master password; the server never sees the
// encryption passphrase used for individual secrets.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier used during authentication.
	Login string `json:"login"`

	// PasswordHash is the bcrypt hash of the user's master password.
	// Never exposed via JSON and never stored in plaintext.
	PasswordHash string `json:"-"`

	// RecoveryKeyHash is the bcrypt hash of the account recovery key.
	// The recovery key itself is shown to the user once at registration
	// and is not kept by the server.
	RecoveryKeyHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
