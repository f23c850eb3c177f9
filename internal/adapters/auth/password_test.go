package auth

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_GenerateSalt(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	hexRe := regexp.MustCompile(`^[0-9a-f]{64}$`)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		salt, err := h.GenerateSalt()
		require.NoError(t, err)
		assert.Regexp(t, hexRe, salt, "salt should be 64 hex characters")
		assert.False(t, seen[salt], "salts should not repeat")
		seen[salt] = true
	}
}

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	salt, err := h.GenerateSalt()
	require.NoError(t, err)

	hash, err := h.Hash(salt, "studio-pass-1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	require.NoError(t, h.Compare(hash, salt, "studio-pass-1"))
	assert.Error(t, h.Compare(hash, salt, "studio-pass-2"))
}

func TestBcryptHasher_Compare_WrongSalt(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	salt1, err := h.GenerateSalt()
	require.NoError(t, err)
	salt2, err := h.GenerateSalt()
	require.NoError(t, err)

	hash, err := h.Hash(salt1, "studio-pass-1")
	require.NoError(t, err)

	assert.Error(t, h.Compare(hash, salt2, "studio-pass-1"))
}

func TestBcryptHasher_LongPassword(t *testing.T) {
	// the SHA256 pre-hash keeps input under bcrypt's 72-byte limit
	h := NewBcryptHasher(bcrypt.MinCost)
	salt, err := h.GenerateSalt()
	require.NoError(t, err)

	long := ""
	for i := 0; i < 10; i++ {
		long += "0123456789abcdef"
	}
	hash, err := h.Hash(salt, long)
	require.NoError(t, err)
	require.NoError(t, h.Compare(hash, salt, long))
}
