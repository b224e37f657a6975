package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	recoveryKeyGroups    = 4
	recoveryKeyGroupSize = 4 // random bytes per group, 8 hex characters each
)

// GenerateRecoveryKey produces a one-time account recovery key of the form
// "XXXXXXXX-XXXXXXXX-XXXXXXXX-XXXXXXXX": four groups of eight uppercase hex
// characters. The key is shown to the user exactly once; only its hash is
// stored server-side.
func GenerateRecoveryKey() (string, error) {
	groups := make([]string, 0, recoveryKeyGroups)

	for i := 0; i < recoveryKeyGroups; i++ {
		buf := make([]byte, recoveryKeyGroupSize)
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("error generating recovery key: %w", err)
		}
		groups = append(groups, strings.ToUpper(hex.EncodeToString(buf)))
	}

	return strings.Join(groups, "-"), nil
}
