package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcrypt_HashAndMatch(t *testing.T) {
	b := NewBcrypt()

	hashed, err := b.Hash("1234567890")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, "1234567890", hashed)

	assert.True(t, b.Matches("1234567890", hashed))
	assert.False(t, b.Matches("wrong-password", hashed))
}

func TestBcrypt_DistinctHashes(t *testing.T) {
	b := NewBcrypt()

	first, err := b.Hash("1234567890")
	require.NoError(t, err)
	second, err := b.Hash("1234567890")
	require.NoError(t, err)

	// bcrypt salts every hash
	assert.NotEqual(t, first, second)
}
