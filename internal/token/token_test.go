package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LengthAndUniqueness(t *testing.T) {
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		tok, err := New()
		require.NoError(t, err)
		assert.Len(t, tok, tokenBytes*2) // hex doubles the byte count

		_, dup := seen[tok]
		assert.False(t, dup, "token collision")
		seen[tok] = struct{}{}
	}
}
