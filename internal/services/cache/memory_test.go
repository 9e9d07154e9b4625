package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheSetGet(t *testing.T) {
	mc := NewMemoryCache(1)
	defer mc.Stop()
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "feed:tech-talk", []byte("<rss/>"), time.Minute))

	got, ok := mc.Get(ctx, "feed:tech-talk")
	require.True(t, ok)
	assert.Equal(t, []byte("<rss/>"), got)

	_, ok = mc.Get(ctx, "feed:missing")
	assert.False(t, ok)
}

func TestMemoryCacheExpiry(t *testing.T) {
	mc := NewMemoryCache(1)
	defer mc.Stop()
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "k", []byte("v"), -time.Second))

	_, ok := mc.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryCacheDeleteAndClear(t *testing.T) {
	mc := NewMemoryCache(1)
	defer mc.Stop()
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, mc.Set(ctx, "b", []byte("2"), time.Minute))

	require.NoError(t, mc.Delete(ctx, "a"))
	_, ok := mc.Get(ctx, "a")
	assert.False(t, ok)

	require.NoError(t, mc.Clear(ctx))
	_, ok = mc.Get(ctx, "b")
	assert.False(t, ok)
}

func TestMemoryCacheEvictsWhenFull(t *testing.T) {
	// 0 MB cap forces eviction on every insert beyond the first
	mc := &MemoryCache{
		items:   make(map[string]*cacheItem),
		maxSize: 8,
		stopCh:  make(chan struct{}),
	}
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "a", []byte("12345678"), time.Minute))
	require.NoError(t, mc.Set(ctx, "b", []byte("12345678"), 2*time.Minute))

	_, okA := mc.Get(ctx, "a")
	_, okB := mc.Get(ctx, "b")
	assert.False(t, okA, "oldest entry should have been evicted")
	assert.True(t, okB)
}
