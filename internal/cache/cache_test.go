package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheHitAndMiss(t *testing.T) {
	c := New[string, int](10, time.Minute)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Add("a", 1)
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestCacheTTLExpiry(t *testing.T) {
	c := New[string, int](10, 50*time.Millisecond)

	c.Add("a", 1)
	_, ok := c.Get("a")
	require.True(t, ok)

	time.Sleep(120 * time.Millisecond)
	_, ok = c.Get("a")
	assert.False(t, ok)
}

func TestCacheEvictsOldestBeyondCapacity(t *testing.T) {
	c := New[int, int](2, time.Minute)

	c.Add(1, 1)
	c.Add(2, 2)
	c.Add(3, 3)

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get(1)
	assert.False(t, ok)
	_, ok = c.Get(3)
	assert.True(t, ok)
}

func TestCachePurge(t *testing.T) {
	c := New[string, string](10, time.Minute)
	c.Add("a", "x")
	c.Add("b", "y")

	c.Purge()
	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok)
}
