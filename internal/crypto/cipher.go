// Package crypto implements the secret-level cryptography of the vault:
// passphrase-based key derivation, AES-GCM encryption of individual secrets
// in the ivHex:cipherHex wire format, and the plaintext-detection heuristic
// used during imports.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// saltPrefix is prepended to the subject identifier to form the KDF
	// salt. Deterministic per subject: the same passphrase and subject
	// always derive the same key, so a batch needs only one derivation.
	saltPrefix = "safepass-"

	// kdfIterations is the PBKDF2 iteration count. Deliberately expensive;
	// see the key-reuse note on [CredentialCipher].
	kdfIterations = 100_000

	// keyLen is the symmetric key length in bytes (AES-256).
	keyLen = 32

	// ivLen is the GCM IV length in bytes.
	ivLen = 12
)

// credentialCipher is the private implementation of [CredentialCipher].
type credentialCipher struct{}

// NewCredentialCipher constructs a [CredentialCipher] using PBKDF2-SHA256
// key derivation (100 000 iterations, 256-bit keys) and AES-256-GCM with
// 12-byte random IVs.
func NewCredentialCipher() CredentialCipher {
	return &credentialCipher{}
}

// DeriveKey implements [CredentialCipher]. The salt is the fixed literal
// prefix "safepass-" concatenated with subjectID.
func (c *credentialCipher) DeriveKey(passphrase, subjectID string) []byte {
	salt := saltPrefix + subjectID
	return pbkdf2.Key([]byte(passphrase), []byte(salt), kdfIterations, keyLen, sha256.New)
}

// Encrypt implements [CredentialCipher]. A fresh 12-byte IV is read from the
// OS CSPRNG on every call; the output is hex(iv) + ":" + hex(ciphertext‖tag)
// with lowercase hex digits.
func (c *credentialCipher) Encrypt(plaintext string, key []byte) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	iv := make([]byte, ivLen)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	ciphertext := gcm.Seal(nil, iv, []byte(plaintext), nil)

	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(ciphertext), nil
}

// Decrypt implements [CredentialCipher]. Hex digits are accepted in either
// case on read.
func (c *credentialCipher) Decrypt(wire string, key []byte) (string, error) {
	parts := strings.Split(wire, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("%w: expected ivHex:cipherHex", ErrMalformedSecret)
	}

	iv, err := hex.DecodeString(parts[0])
	if err != nil {
		return "", fmt.Errorf("%w: invalid iv hex: %w", ErrMalformedSecret, err)
	}
	if len(iv) != ivLen {
		return "", fmt.Errorf("%w: iv is %d bytes, want %d", ErrMalformedSecret, len(iv), ivLen)
	}

	ciphertext, err := hex.DecodeString(parts[1])
	if err != nil {
		return "", fmt.Errorf("%w: invalid cipher hex: %w", ErrMalformedSecret, err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	// Decrypt and verify the auth tag. An error here almost always means
	// the key was derived from the wrong passphrase.
	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	return string(plaintext), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
