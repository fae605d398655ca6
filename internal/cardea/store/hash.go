package store

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	cryptorand "crypto/rand"
)

// Credentials are persisted as SHA-512(salt || code) hex with a random
// per-credential salt. The decision core only ever sees the presented code
// for the duration of one resolution.

// GenerateSalt returns a random 16-byte salt as hex.
func GenerateSalt() (string, error) {
	b := make([]byte, 16)
	if _, err := cryptorand.Read(b); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashSecret hashes a presented code with the stored salt.
func HashSecret(salt, code string) string {
	h := sha512.New()
	h.Write([]byte(salt))
	h.Write([]byte(code))
	return hex.EncodeToString(h.Sum(nil))
}

// HashEqual compares a stored hash against the hash of a presented code in
// constant time.
func HashEqual(storedHash, salt, code string) bool {
	computed := HashSecret(salt, code)
	return subtle.ConstantTimeCompare([]byte(storedHash), []byte(computed)) == 1
}
