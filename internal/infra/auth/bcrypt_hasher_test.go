package auth

import (
	"strings"
	"testing"

	"authcore/config"
	"authcore/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newFastHasher(t *testing.T) *bcryptHasher {
	t.Helper()

	hasher, err := NewBcryptHasherWithCost(bcrypt.MinCost)
	require.NoError(t, err)

	return hasher.(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newFastHasher(t)

	password := "secret123"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_SaltDiffersPerCall(t *testing.T) {
	hasher := newFastHasher(t)

	first, err := hasher.Hash("secret123")
	require.NoError(t, err)
	second, err := hasher.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("secret123", first))
	assert.True(t, hasher.Check("secret123", second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newFastHasher(t)
	password := "secret123"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("wrong", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with malformed hashes
	assert.False(t, hasher.Check(password, "invalid_hash"))
	assert.False(t, hasher.Check(password, ""))
	assert.False(t, hasher.Check(password, "$2a$99$"))
}

func TestBcryptHasher_DefaultCostFromConfig(t *testing.T) {
	hasher, err := NewBcryptHasher(&config.Config{})
	require.NoError(t, err)
	assert.Equal(t, DefaultBcryptCost, hasher.(*bcryptHasher).cost)

	hasher, err = NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 5}})
	require.NoError(t, err)
	assert.Equal(t, 5, hasher.(*bcryptHasher).cost)
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher, err := NewBcryptHasherWithCost(customCost)
	require.NoError(t, err)

	password := "secret123"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	// Verify the hash uses the correct cost
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_CostBounds(t *testing.T) {
	hasher, err := NewBcryptHasherWithCost(1)
	require.NoError(t, err)
	assert.Equal(t, DefaultBcryptCost, hasher.(*bcryptHasher).cost)

	_, err = NewBcryptHasherWithCost(bcrypt.MaxCost + 1)
	assert.Error(t, err)
}

func TestBcryptHasher_PasswordLengthLimit(t *testing.T) {
	hasher := newFastHasher(t)

	longest := strings.Repeat("a", service.MaxPasswordBytes)
	hash, err := hasher.Hash(longest)
	require.NoError(t, err)
	assert.True(t, hasher.Check(longest, hash))

	hash, err = hasher.Hash(longest + "a")
	assert.True(t, errors.Is(err, service.ErrPasswordTooLong))
	assert.Empty(t, hash)

	// 24 three-byte runes fill the limit exactly; one more rune exceeds it.
	runes := strings.Repeat("密", service.MaxPasswordBytes/3)
	_, err = hasher.Hash(runes)
	require.NoError(t, err)
	_, err = hasher.Hash(runes + "密")
	assert.True(t, errors.Is(err, service.ErrPasswordTooLong))
}
