package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSet(t *testing.T) {
	c := New[string](4, time.Minute)
	c.Set("a", "one")

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "one", got)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestSet_Overwrites(t *testing.T) {
	c := New[int](4, time.Minute)
	c.Set("a", 1)
	c.Set("a", 2)

	got, _ := c.Get("a")
	assert.Equal(t, 2, got)
	assert.Equal(t, 1, c.Len())
}

func TestEviction_LRUOrder(t *testing.T) {
	c := New[int](2, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)

	// Touch "a" so "b" is the eviction candidate.
	_, ok := c.Get("a")
	require.True(t, ok)

	c.Set("c", 3)

	_, ok = c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
}

func TestTTLExpiry(t *testing.T) {
	c := New[int](4, time.Millisecond)
	c.Set("a", 1)

	time.Sleep(10 * time.Millisecond)

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestZeroTTLNeverExpires(t *testing.T) {
	c := New[int](4, 0)
	c.Set("a", 1)

	time.Sleep(5 * time.Millisecond)

	_, ok := c.Get("a")
	assert.True(t, ok)
}

func TestDelete(t *testing.T) {
	c := New[int](4, time.Minute)
	c.Set("a", 1)
	c.Delete("a")
	c.Delete("missing")

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}
