package security

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashSecretToken digests an app secret token for use as a cache key so the
// raw credential never leaves the process.
func HashSecretToken(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(h[:])
}
