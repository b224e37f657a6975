package models

import "time"

// Credential is a single stored login record. The password value is held in
// the encrypted wire format "ivHex:cipherHex" produced by the credential
// cipher; the server stores it opaquely and never decrypts it.
//
// Email, Username, URL and Notes are optional; an empty string means the
// field is absent.
type Credential struct {
	// ID is the public identifier of the record (UUID v4).
	ID string `json:"id"`

	// UserID is the owner of the record. Not exposed via JSON; ownership
	// is always resolved from the authenticated request context.
	UserID int64 `json:"-"`

	// Title is the display name of the record (site or service name).
	// Never empty: the import pipeline substitutes the username or the
	// literal "Untitled" when the source has no usable title.
	Title string `json:"title"`

	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`

	// EncryptedPassword is the secret in "ivHex:cipherHex" wire format,
	// or a foreign opaque value carried over from an import.
	EncryptedPassword string `json:"encrypted_password"`

	URL   string `json:"url,omitempty"`
	Notes string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Credential model.
func (c Credential) TableName() string {
	return "credentials"
}

// CredentialUpdate describes a partial update of a stored credential.
// Nil pointer fields are left untouched; non-nil fields (including pointers
// to empty strings) overwrite the stored value.
type CredentialUpdate struct {
	ID     string `json:"id"`
	UserID int64  `json:"-"`

	Title             *string `json:"title,omitempty"`
	Email             *string `json:"email,omitempty"`
	Username          *string `json:"username,omitempty"`
	EncryptedPassword *string `json:"encrypted_password,omitempty"`
	URL               *string `json:"url,omitempty"`
	Notes             *string `json:"notes,omitempty"`
}
