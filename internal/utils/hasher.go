package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hash generates a SHA-256 hash of the input string
func Hash(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// Fingerprint returns a short, case-insensitive hash of an e-mail address
// that can be logged in place of the address itself.
func Fingerprint(email string) string {
	return Hash(strings.ToLower(strings.TrimSpace(email)))[:16]
}
