package session

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID returns a random 128-bit session identifier
func NewID() string {
	b := make([]byte, 16)
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
