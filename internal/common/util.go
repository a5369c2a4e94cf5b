package common

import (
	"crypto/rand"
	"encoding/hex"
)

// MakeRandHexString generates size random bytes and returns them hex-encoded,
// so the resulting string is 2*size characters long.
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// WipeByteArray overwrites b with zeros. Used for plaintext passwords read
// from the terminal.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// MessageHeadroom is the room left for the envelope around a document
// payload in a single gRPC message.
const MessageHeadroom = 1 << 20

// MessageSizeLimit returns the gRPC message size needed to carry a document
// of maxUpload bytes. A non-positive maxUpload yields 0, which keeps the
// gRPC default.
func MessageSizeLimit(maxUpload int64) int {
	if maxUpload <= 0 {
		return 0
	}
	return int(maxUpload) + MessageHeadroom
}
