// Package password implements salted one-way password hashing.
//
// Hashes are derived with PBKDF2-SHA256 using a per-user random salt that is
// stored next to the hash, so a credential check can recompute the digest
// from the stored salt alone.
package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// saltBytes is the size of a freshly generated salt.
	saltBytes = 16

	// iterations is the PBKDF2 iteration count.
	iterations = 120_000

	// keyLength is the derived key size in bytes.
	keyLength = 32
)

// GenerateSalt returns a new random salt, hex encoded.
func GenerateSalt() (string, error) {
	b := make([]byte, saltBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Hash derives the hex-encoded digest of the plaintext password under the
// given hex-encoded salt.
func Hash(plaintext, salt string) (string, error) {
	rawSalt, err := hex.DecodeString(salt)
	if err != nil {
		return "", fmt.Errorf("invalid salt: %w", err)
	}
	key := pbkdf2.Key([]byte(plaintext), rawSalt, iterations, keyLength, sha256.New)
	return hex.EncodeToString(key), nil
}

// Verify reports whether the plaintext password hashes to hashed under salt.
// The comparison is constant time.
func Verify(plaintext, salt, hashed string) bool {
	computed, err := Hash(plaintext, salt)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hashed)) == 1
}
