package naming

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	probecacheconfig "github.com/mintarc/v1/internal/config/probecache"
	"github.com/mintarc/v1/internal/core/infrastructure/probecache"
	"github.com/mintarc/v1/pkg/types"
)

func newTestCache(t *testing.T) probecache.Cache {
	t.Helper()
	cache, err := probecache.NewMemoryCache(probecacheconfig.New(nil).GetOptions(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func TestCachedRegistry_FoundIsCached(t *testing.T) {
	registry := &stubRegistry{
		lookup: func(ctx context.Context, name string) (types.LookupStatus, error) {
			return types.LookupFound, nil
		},
	}
	cached := NewCachedRegistry(registry, newTestCache(t), nil)
	ctx := context.Background()

	// 第一次：穿透到底层，结果进缓存
	status, err := cached.Lookup(ctx, "catpictures1")
	require.NoError(t, err)
	assert.Equal(t, types.LookupFound, status)
	assert.Len(t, registry.probed, 1)

	// 第二次：缓存命中，不再穿透
	status, err = cached.Lookup(ctx, "catpictures1")
	require.NoError(t, err)
	assert.Equal(t, types.LookupFound, status)
	assert.Len(t, registry.probed, 1)
}

func TestCachedRegistry_NotFoundNeverCached(t *testing.T) {
	registry := &stubRegistry{
		lookup: func(ctx context.Context, name string) (types.LookupStatus, error) {
			return types.LookupNotFound, nil
		},
	}
	cached := NewCachedRegistry(registry, newTestCache(t), nil)
	ctx := context.Background()

	// "未占用"不进缓存，每次都实时查询
	for i := 0; i < 3; i++ {
		status, err := cached.Lookup(ctx, "freename1234")
		require.NoError(t, err)
		assert.Equal(t, types.LookupNotFound, status)
	}
	assert.Len(t, registry.probed, 3)
}

func TestCachedRegistry_ErrorPropagated(t *testing.T) {
	transportErr := errors.New("connection refused")
	registry := &stubRegistry{
		lookup: func(ctx context.Context, name string) (types.LookupStatus, error) {
			return types.LookupUnknown, transportErr
		},
	}
	cached := NewCachedRegistry(registry, newTestCache(t), nil)

	_, err := cached.Lookup(context.Background(), "somename1234")
	assert.ErrorIs(t, err, transportErr)
}

func TestCachedRegistry_NilCache(t *testing.T) {
	registry := &stubRegistry{
		lookup: func(ctx context.Context, name string) (types.LookupStatus, error) {
			return types.LookupNotFound, nil
		},
	}
	cached := NewCachedRegistry(registry, nil, nil)

	status, err := cached.Lookup(context.Background(), "freename1234")
	require.NoError(t, err)
	assert.Equal(t, types.LookupNotFound, status)
}
