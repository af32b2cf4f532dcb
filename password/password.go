package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters
const (
	timeCost = 1
	memory   = 64 * 1024
	threads  = 4
	keyLen   = 32
	saltLen  = 16
)

// Hash hashes a password with a new random salt using Argon2id. The hash
// and salt are stored in separate columns, both base64-encoded.
func Hash(password string) (hash, salt string, err error) {
	saltBytes := make([]byte, saltLen)
	if _, err := rand.Read(saltBytes); err != nil {
		return "", "", err
	}

	hashBytes := argon2.IDKey([]byte(password), saltBytes, timeCost, memory, threads, keyLen)

	return base64.RawStdEncoding.EncodeToString(hashBytes),
		base64.RawStdEncoding.EncodeToString(saltBytes), nil
}

// Verify verifies a password against a stored hash and salt
func Verify(password, hash, salt string) bool {
	saltBytes, err := base64.RawStdEncoding.DecodeString(salt)
	if err != nil {
		return false
	}
	hashBytes, err := base64.RawStdEncoding.DecodeString(hash)
	if err != nil {
		return false
	}

	computed := argon2.IDKey([]byte(password), saltBytes, timeCost, memory, threads, keyLen)
	return subtle.ConstantTimeCompare(computed, hashBytes) == 1
}
