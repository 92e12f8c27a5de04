package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashRegisterToken generates a SHA256 hash of a raw register token.
func HashRegisterToken(token string) string {
	hasher := sha256.New()
	hasher.Write([]byte(token))
	return hex.EncodeToString(hasher.Sum(nil))
}

// CompareRegisterTokenHash compares a raw register token with its stored hash.
func CompareRegisterTokenHash(token string, storedHash string) bool {
	return HashRegisterToken(token) == storedHash
}
