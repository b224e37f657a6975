package crypto

// CredentialCipher performs all secret-level cryptography for the vault.
// It knows nothing about records, files, or persistence; its only job is to
// derive keys from a passphrase and to transform individual secret strings
// to and from the textual wire format.
//
// Wire format: hex(iv) + ":" + hex(ciphertext‖tag), lowercase on write,
// case-insensitive on read. The IV is always 12 bytes.
//
// Key reuse: the derivation salt depends only on the subject, so the derived
// key is identical for every secret of one subject. Callers processing a
// batch must call [CredentialCipher.DeriveKey] once and reuse the key across
// all rows; re-deriving per row defeats the deliberately expensive KDF.
type CredentialCipher interface {
	// DeriveKey derives a 256-bit symmetric key from the passphrase and the
	// subject identifier using PBKDF2-SHA256 with 100 000 iterations.
	// Deterministic: the same passphrase and subject always produce the
	// same key.
	DeriveKey(passphrase, subjectID string) []byte

	// Encrypt encrypts plaintext with key using AES-256-GCM under a fresh
	// random 12-byte IV and returns the wire-format string. IVs are never
	// reused across calls, even for identical plaintext and key.
	Encrypt(plaintext string, key []byte) (string, error)

	// Decrypt parses a wire-format string, decrypts it with key, and
	// returns the plaintext.
	//
	// Returns [ErrMalformedSecret] if the input does not have the
	// ivHex:cipherHex shape, either half is not valid hex, or the IV half
	// does not decode to exactly 12 bytes. Returns [ErrAuthenticationFailed]
	// if the GCM tag does not verify (wrong passphrase or tampered data);
	// in that case no partial plaintext is ever returned.
	Decrypt(wire string, key []byte) (string, error)
}
