// Package token mints manage tokens: opaque bearer credentials that let a
// participant look up, update, or cancel their own reservation without an
// account.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const tokenBytes = 32

// New returns a high-entropy, URL-safe hex token. Tokens are generated once
// at reservation creation and never reused.
func New() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate manage token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
