package models

// AuthResponse is returned by the register and login endpoints.
type AuthResponse struct {
	// Token is the signed JWT the client must present as a bearer token
	// on every authenticated request.
	Token string `json:"token"`

	// Login echoes the authenticated account login.
	Login string `json:"login"`

	// RecoveryKey is populated only by registration (and recovery-key
	// rotation). It is shown to the user exactly once and never stored
	// in recoverable form.
	RecoveryKey string `json:"recovery_key,omitempty"`
}

// ImportResponse is returned by the credential import endpoint.
type ImportResponse struct {
	// Imported is the number of records persisted.
	Imported int `json:"imported"`

	// Warnings lists per-row advisory messages (e.g. plaintext secrets
	// detected in the source file), in source row order.
	Warnings []string `json:"warnings,omitempty"`
}
