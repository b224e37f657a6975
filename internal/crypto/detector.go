package crypto

import "regexp"

// wireFormatPattern matches the ivHex:cipherHex wire format produced by
// [CredentialCipher.Encrypt]. Hex digits in either case.
var wireFormatPattern = regexp.MustCompile(`^[0-9a-fA-F]+:[0-9a-fA-F]+$`)

var hexOnlyPattern = regexp.MustCompile(`^[0-9a-fA-F]+$`)

// LooksPlaintext reports whether a candidate secret value appears to be an
// unencrypted password rather than an already-encrypted blob.
//
// Rules, in order:
//   - empty secret → false (nothing to flag);
//   - secret in ivHex:cipherHex wire format → false;
//   - secret longer than 64 characters consisting entirely of hex digits →
//     false (treated as an opaque encrypted blob from a foreign export);
//   - anything else → true.
//
// This is a heuristic, not a proof: a short all-hex plaintext password is
// misclassified as encrypted, and a long non-hex encrypted blob as
// plaintext. Results feed advisory import warnings only and must never be
// used as an authorization or integrity check.
func LooksPlaintext(secret string) bool {
	if secret == "" {
		return false
	}

	if wireFormatPattern.MatchString(secret) {
		return false
	}

	if len(secret) > 64 && hexOnlyPattern.MatchString(secret) {
		return false
	}

	return true
}
