package crypto

import (
	"bytes"
	"encoding/hex"
	"errors"
	"regexp"
	"strings"
	"testing"
)

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	c := NewCredentialCipher()

	k1 := c.DeriveKey("correct horse battery staple", "42")
	k2 := c.DeriveKey("correct horse battery staple", "42")

	if len(k1) != 32 {
		t.Fatalf("key length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to match for same passphrase+subject")
	}
}

func TestDeriveKey_DifferentSubjectProducesDifferentKey(t *testing.T) {
	c := NewCredentialCipher()

	k1 := c.DeriveKey("same passphrase", "alice")
	k2 := c.DeriveKey("same passphrase", "bob")

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different subjects")
	}
}

func TestDeriveKey_DifferentPassphraseProducesDifferentKey(t *testing.T) {
	c := NewCredentialCipher()

	k1 := c.DeriveKey("passphrase one", "alice")
	k2 := c.DeriveKey("passphrase two", "alice")

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different passphrases")
	}
}

func TestEncrypt_WireFormat(t *testing.T) {
	c := NewCredentialCipher()
	key := c.DeriveKey("master", "7")

	wire, err := c.Encrypt("hunter2", key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	// 12-byte IV is 24 lowercase hex chars.
	wireRe := regexp.MustCompile(`^[0-9a-f]{24}:[0-9a-f]+$`)
	if !wireRe.MatchString(wire) {
		t.Fatalf("wire format %q does not match ivHex:cipherHex", wire)
	}
}

func TestEncrypt_FreshIVPerCall(t *testing.T) {
	c := NewCredentialCipher()
	key := c.DeriveKey("master", "7")

	w1, err := c.Encrypt("same plaintext", key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	w2, err := c.Encrypt("same plaintext", key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	iv1 := strings.SplitN(w1, ":", 2)[0]
	iv2 := strings.SplitN(w2, ":", 2)[0]
	if iv1 == iv2 {
		t.Fatalf("expected distinct IVs across calls, got %q twice", iv1)
	}
	if w1 == w2 {
		t.Fatalf("expected distinct ciphertexts for identical plaintext")
	}
}

func TestDecrypt_RoundTrip(t *testing.T) {
	c := NewCredentialCipher()
	key := c.DeriveKey("master", "7")

	plaintexts := []string{"hunter2", "", "pa$$w0rd with spaces", "пароль"}
	for _, want := range plaintexts {
		wire, err := c.Encrypt(want, key)
		if err != nil {
			t.Fatalf("Encrypt(%q) error: %v", want, err)
		}

		got, err := c.Decrypt(wire, key)
		if err != nil {
			t.Fatalf("Decrypt(%q) error: %v", wire, err)
		}
		if got != want {
			t.Fatalf("round trip = %q, want %q", got, want)
		}
	}
}

func TestDecrypt_UppercaseHexAccepted(t *testing.T) {
	c := NewCredentialCipher()
	key := c.DeriveKey("master", "7")

	wire, err := c.Encrypt("hunter2", key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	got, err := c.Decrypt(strings.ToUpper(wire), key)
	if err != nil {
		t.Fatalf("Decrypt of uppercase wire error: %v", err)
	}
	if got != "hunter2" {
		t.Fatalf("round trip = %q, want %q", got, "hunter2")
	}
}

func TestDecrypt_MalformedSecret(t *testing.T) {
	c := NewCredentialCipher()
	key := c.DeriveKey("master", "7")

	malformed := []string{
		"no-colon-at-all",
		"aa:bb:cc",
		"zz11:aabb",
		"aabb:zz11",
		"aabb:aabbccdd",                  // iv not 12 bytes
		hex.EncodeToString(make([]byte, 16)) + ":aabb", // iv 16 bytes
	}

	for _, wire := range malformed {
		if _, err := c.Decrypt(wire, key); !errors.Is(err, ErrMalformedSecret) {
			t.Fatalf("Decrypt(%q) error = %v, want ErrMalformedSecret", wire, err)
		}
	}
}

func TestDecrypt_TamperedCiphertextFailsAuthentication(t *testing.T) {
	c := NewCredentialCipher()
	key := c.DeriveKey("master", "7")

	wire, err := c.Encrypt("hunter2", key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	ivHex, cipherHex, _ := strings.Cut(wire, ":")
	raw, err := hex.DecodeString(cipherHex)
	if err != nil {
		t.Fatalf("decode cipher hex: %v", err)
	}

	// Flip one bit in every byte position; each variant must fail closed.
	for i := range raw {
		tampered := bytes.Clone(raw)
		tampered[i] ^= 0x01

		got, err := c.Decrypt(ivHex+":"+hex.EncodeToString(tampered), key)
		if !errors.Is(err, ErrAuthenticationFailed) {
			t.Fatalf("tampered byte %d: error = %v, want ErrAuthenticationFailed", i, err)
		}
		if got != "" {
			t.Fatalf("tampered byte %d: got plaintext %q, want empty", i, got)
		}
	}
}

func TestDecrypt_WrongPassphraseFailsAuthentication(t *testing.T) {
	c := NewCredentialCipher()

	wire, err := c.Encrypt("hunter2", c.DeriveKey("right", "7"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if _, err := c.Decrypt(wire, c.DeriveKey("wrong", "7")); !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("Decrypt with wrong key error = %v, want ErrAuthenticationFailed", err)
	}
}
