// Package cryptox implements the portal's password hashing scheme:
// PBKDF2-HMAC-SHA256 over a per-credential random salt.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"github.com/dmitrijs2005/cameportal/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// PasswordIterations is the PBKDF2 work factor for stored credentials.
	PasswordIterations = 100_000
	// PasswordKeyLength is the derived key length (SHA-256 digest size).
	PasswordKeyLength = sha256.Size
	// SaltSize is the number of random bytes in a fresh salt. The salt is
	// stored hex-encoded, so it is twice as long as a string.
	SaltSize = 16
)

// makeSalt is a test seam for common.MakeRandHexString.
var makeSalt = func() (string, error) {
	return common.MakeRandHexString(SaltSize)
}

func deriveKey(password, salt []byte, iterations, keyLen int) []byte {
	return pbkdf2.Key(password, salt, iterations, keyLen, sha256.New)
}

// HashPassword derives the stored hash for password.
//
// If salt is empty a fresh random salt is generated. The hex salt string
// itself (its UTF-8 bytes) is the PBKDF2 salt input, which keeps hashes
// compatible with rows written by earlier versions of the portal.
//
// The result is deterministic for a given (password, salt) pair. Both the
// hash and the salt are returned hex-encoded.
func HashPassword(password, salt string) (hash string, usedSalt string, err error) {
	if salt == "" {
		salt, err = makeSalt()
		if err != nil {
			return "", "", err
		}
	}
	key := deriveKey([]byte(password), []byte(salt), PasswordIterations, PasswordKeyLength)
	return hex.EncodeToString(key), salt, nil
}

// VerifyPassword recomputes the hash of password under salt and compares it
// with hash in constant time.
func VerifyPassword(password, hash, salt string) bool {
	candidate, _, err := HashPassword(password, salt)
	if err != nil || salt == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(hash)) == 1
}
