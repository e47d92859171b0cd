package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(t *testing.T, c *LRUCache[int])
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache[int]) {
				c.Set("a", 1)
				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, 1, v)
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      50 * time.Millisecond,
			actions: func(t *testing.T, c *LRUCache[int]) {
				c.Set("a", 1)
				time.Sleep(60 * time.Millisecond)
				_, ok := c.Get("a")
				assert.False(t, ok)
				assert.Equal(t, 0, c.Size())
			},
		},
		{
			name:     "evict least recently used when over capacity",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache[int]) {
				c.Set("a", 1)
				c.Set("b", 2)
				c.Get("a")
				c.Set("c", 3)

				_, ok := c.Get("b")
				assert.False(t, ok, "b should be evicted")
				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, 1, v)
				v, ok = c.Get("c")
				assert.True(t, ok)
				assert.Equal(t, 3, v)
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      50 * time.Millisecond,
			actions: func(t *testing.T, c *LRUCache[int]) {
				c.Set("a", 1)
				time.Sleep(30 * time.Millisecond)
				c.Set("a", 2)
				time.Sleep(30 * time.Millisecond)
				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, 2, v)
			},
		},
		{
			name:     "cleanup removes expired",
			capacity: 2,
			ttl:      50 * time.Millisecond,
			actions: func(t *testing.T, c *LRUCache[int]) {
				c.Set("a", 1)
				time.Sleep(60 * time.Millisecond)
				c.cleanup()
				assert.Equal(t, 0, c.Size())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewLRUCache[int](tt.capacity, tt.ttl)
			tt.actions(t, c)
		})
	}
}

func TestLRUCache_StartStop(t *testing.T) {
	c := NewLRUCache[string](1, time.Second)
	require.NoError(t, c.Stop(context.Background()))

	require.NoError(t, c.Start(context.Background()))
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, c.Stop(ctx))
}
