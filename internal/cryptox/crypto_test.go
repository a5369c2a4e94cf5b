package cryptox

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_KnownVector(t *testing.T) {
	// PBKDF2-HMAC-SHA256, P="passwd", S="salt", c=1 (RFC 7914, section 11),
	// first 32 bytes.
	key := deriveKey([]byte("passwd"), []byte("salt"), 1, 32)
	assert.Equal(t, "55ac046e56e3089fec1691c22544b605f94185216dde0465e68b9d57c20dacbc", hex.EncodeToString(key))
}

func TestHashPassword_GeneratesSalt(t *testing.T) {
	hash, salt, err := HashPassword("pw123", "")
	require.NoError(t, err)

	assert.Len(t, salt, 2*SaltSize)
	_, err = hex.DecodeString(salt)
	assert.NoError(t, err, "salt must be hex")

	assert.Len(t, hash, 2*PasswordKeyLength)
	_, err = hex.DecodeString(hash)
	assert.NoError(t, err, "hash must be hex")
}

func TestHashPassword_DeterministicForSameSalt(t *testing.T) {
	h1, s1, err := HashPassword("pw123", "00112233445566778899aabbccddeeff")
	require.NoError(t, err)
	h2, s2, err := HashPassword("pw123", "00112233445566778899aabbccddeeff")
	require.NoError(t, err)

	assert.Equal(t, s1, s2)
	assert.Equal(t, h1, h2)
}

func TestHashPassword_SaltIsHashedAsHexText(t *testing.T) {
	const salt = "00112233445566778899aabbccddeeff"
	hash, _, err := HashPassword("pw123", salt)
	require.NoError(t, err)

	want := hex.EncodeToString(deriveKey([]byte("pw123"), []byte(salt), PasswordIterations, PasswordKeyLength))
	assert.Equal(t, want, hash)
}

func TestHashPassword_FreshSaltEveryCall(t *testing.T) {
	h1, s1, err := HashPassword("same", "")
	require.NoError(t, err)
	h2, s2, err := HashPassword("same", "")
	require.NoError(t, err)

	assert.NotEqual(t, s1, s2)
	assert.NotEqual(t, h1, h2)
}

func TestHashPassword_SaltSourceError(t *testing.T) {
	orig := makeSalt
	t.Cleanup(func() { makeSalt = orig })
	makeSalt = func() (string, error) { return "", errors.New("no entropy") }

	_, _, err := HashPassword("pw", "")
	require.Error(t, err)
}

func TestVerifyPassword(t *testing.T) {
	hash, salt, err := HashPassword("correct horse", "")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		salt     string
		want     bool
	}{
		{name: "match", password: "correct horse", hash: hash, salt: salt, want: true},
		{name: "wrong password", password: "correct horsf", hash: hash, salt: salt, want: false},
		{name: "empty password", password: "", hash: hash, salt: salt, want: false},
		{name: "wrong salt", password: "correct horse", hash: hash, salt: "ffffffffffffffffffffffffffffffff", want: false},
		{name: "missing salt", password: "correct horse", hash: hash, salt: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifyPassword(tt.password, tt.hash, tt.salt))
		})
	}
}
