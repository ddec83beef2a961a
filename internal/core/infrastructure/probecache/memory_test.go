package probecache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	probecacheconfig "github.com/mintarc/v1/internal/config/probecache"
)

func newTestMemoryCache(t *testing.T) *MemoryCache {
	t.Helper()
	cache, err := NewMemoryCache(probecacheconfig.New(nil).GetOptions(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func TestMemoryCache_MarkAndQuery(t *testing.T) {
	cache := newTestMemoryCache(t)
	ctx := context.Background()

	// 未标记的名称不命中
	taken, err := cache.IsKnownTaken(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, taken)

	// 标记后命中
	require.NoError(t, cache.MarkTaken(ctx, "alice"))
	taken, err = cache.IsKnownTaken(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, taken)

	// 其他名称不受影响
	taken, err = cache.IsKnownTaken(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestMemoryCache_EmptyNameRejected(t *testing.T) {
	cache := newTestMemoryCache(t)
	assert.Error(t, cache.MarkTaken(context.Background(), ""))
}

func TestNoopCache(t *testing.T) {
	cache := &Noop{}
	ctx := context.Background()

	require.NoError(t, cache.MarkTaken(ctx, "alice"))

	// 空实现恒不命中
	taken, err := cache.IsKnownTaken(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, taken)

	assert.NoError(t, cache.Close())
}
