package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// RequestKey generates a cache key for a serialized pack request.
// The key format is: prefix:hash(body).
func RequestKey(prefix string, body []byte) string {
	return prefix + ":" + Hash(body)
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
