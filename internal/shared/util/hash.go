package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashKey returns a fixed-length hex identifier for s, safe for cache and file keys.
func HashKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
