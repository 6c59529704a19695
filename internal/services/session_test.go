package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionsLifecycle(t *testing.T) {
	s := NewMemorySessions()

	token, err := s.Create(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, ok, err := s.Validate(token)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(42), userID)

	require.NoError(t, s.Invalidate(token))
	_, ok, err = s.Validate(token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemorySessionsUnknownToken(t *testing.T) {
	s := NewMemorySessions()

	_, ok, err := s.Validate("")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = s.Validate("no-such-token")
	require.NoError(t, err)
	assert.False(t, ok)

	// Invalidating a token that never existed is not an error.
	assert.NoError(t, s.Invalidate("no-such-token"))
}

func TestMemorySessionsSingleSessionPerUser(t *testing.T) {
	s := NewMemorySessions()

	first, err := s.Create(42)
	require.NoError(t, err)
	second, err := s.Create(42)
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	_, ok, err := s.Validate(first)
	require.NoError(t, err)
	assert.False(t, ok)

	userID, ok, err := s.Validate(second)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(42), userID)
}

func TestMemorySessionsExpiry(t *testing.T) {
	s := NewMemorySessions()
	current := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	token, err := s.Create(42)
	require.NoError(t, err)

	current = current.Add(SessionDuration - time.Minute)
	_, ok, err := s.Validate(token)
	require.NoError(t, err)
	assert.True(t, ok)

	current = current.Add(2 * time.Minute)
	_, ok, err = s.Validate(token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemorySessionsInvalidateUser(t *testing.T) {
	s := NewMemorySessions()

	token, err := s.Create(42)
	require.NoError(t, err)
	other, err := s.Create(7)
	require.NoError(t, err)

	require.NoError(t, s.InvalidateUser(42))

	_, ok, err := s.Validate(token)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = s.Validate(other)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSessionTokensAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := newSessionToken()
		require.NoError(t, err)
		assert.False(t, seen[token], "duplicate token")
		seen[token] = true
	}
}
