package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnowflakeGeneratorUnique(t *testing.T) {
	g, err := NewSnowflake(1)
	require.NoError(t, err)

	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := g.NextID()
		require.NotEmpty(t, id)
		_, dup := seen[id]
		require.False(t, dup, "duplicated id %s", id)
		seen[id] = struct{}{}
	}
}

func TestSnowflakeRejectsBadNode(t *testing.T) {
	_, err := NewSnowflake(5000)
	assert.Error(t, err)
}

func TestSequence(t *testing.T) {
	s := NewSequence("a", "b")
	assert.Equal(t, "a", s.NextID())
	assert.Equal(t, "b", s.NextID())
	assert.Equal(t, "b", s.NextID())

	assert.Equal(t, "", NewSequence().NextID())
}
