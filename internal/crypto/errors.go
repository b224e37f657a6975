package crypto

import "errors"

// Sentinel errors returned by [CredentialCipher.Decrypt]. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrMalformedSecret is returned when an encrypted secret does not
	// conform to the ivHex:cipherHex wire format: missing or extra ":",
	// non-hexadecimal halves, or an IV that is not exactly 12 bytes.
	ErrMalformedSecret = errors.New("malformed encrypted secret")

	// ErrAuthenticationFailed is returned when the GCM authentication tag
	// does not verify during decryption. This almost always means the key
	// was derived from the wrong passphrase, or the ciphertext was tampered
	// with after encryption.
	ErrAuthenticationFailed = errors.New("secret authentication failed")
)
