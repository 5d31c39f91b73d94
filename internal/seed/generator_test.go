package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeGenerator_UniqueEmails(t *testing.T) {
	g := NewFakeGenerator(7)
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		e, err := g.UniqueEmail()
		require.NoError(t, err)
		assert.Contains(t, e, "@")
		assert.False(t, seen[e], "duplicate %s", e)
		seen[e] = true
	}
}

func TestFakeGenerator_SeedReplays(t *testing.T) {
	a, b := NewFakeGenerator(42), NewFakeGenerator(42)
	for i := 0; i < 10; i++ {
		ea, err := a.UniqueEmail()
		require.NoError(t, err)
		eb, err := b.UniqueEmail()
		require.NoError(t, err)
		assert.Equal(t, ea, eb)
		assert.Equal(t, a.Bool(), b.Bool())
		assert.Equal(t, a.Username(), b.Username())
	}
}

func TestFakeGenerator_Exhausted(t *testing.T) {
	g := NewFakeGenerator(1)
	g.email = func() string { return "same@example.com" }
	g.maxRetries = 3

	e, err := g.UniqueEmail()
	require.NoError(t, err)
	assert.Equal(t, "same@example.com", e)

	_, err = g.UniqueEmail()
	require.ErrorIs(t, err, ErrUniqueExhausted)
}
