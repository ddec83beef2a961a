package probecache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRedisClient 内存实现的 redisClient，用于不依赖真实 Redis 的单元测试
type mockRedisClient struct {
	mu      sync.Mutex
	entries map[string]time.Time // key -> 过期时刻（零值表示永不过期）
	pingErr error
	closed  bool
}

func newMockRedisClient() *mockRedisClient {
	return &mockRedisClient{entries: make(map[string]time.Time)}
}

func (m *mockRedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var expireAt time.Time
	if expiration > 0 {
		expireAt = time.Now().Add(expiration)
	}
	m.entries[key] = expireAt
	return nil
}

func (m *mockRedisClient) Exists(ctx context.Context, keys ...string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, key := range keys {
		expireAt, ok := m.entries[key]
		if !ok {
			continue
		}
		if !expireAt.IsZero() && time.Now().After(expireAt) {
			delete(m.entries, key)
			continue
		}
		count++
	}
	return count, nil
}

func (m *mockRedisClient) Ping(ctx context.Context) error { return m.pingErr }

func (m *mockRedisClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func TestRedisCache_MarkAndQuery(t *testing.T) {
	client := newMockRedisClient()
	cache, err := NewRedisCache(client, "", 600, nil)
	require.NoError(t, err)

	ctx := context.Background()

	taken, err := cache.IsKnownTaken(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, taken)

	require.NoError(t, cache.MarkTaken(ctx, "alice"))

	taken, err = cache.IsKnownTaken(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, taken)

	// 键应带命名空间前缀写入
	client.mu.Lock()
	_, ok := client.entries[defaultKeyPrefix+"alice"]
	client.mu.Unlock()
	assert.True(t, ok)
}

func TestRedisCache_PingFailure(t *testing.T) {
	client := newMockRedisClient()
	client.pingErr = errors.New("connection refused")

	_, err := NewRedisCache(client, "", 600, nil)
	assert.Error(t, err)
}

func TestRedisCache_NilClient(t *testing.T) {
	_, err := NewRedisCache(nil, "", 600, nil)
	assert.Error(t, err)
}

func TestRedisCache_Close(t *testing.T) {
	client := newMockRedisClient()
	cache, err := NewRedisCache(client, "", 600, nil)
	require.NoError(t, err)

	require.NoError(t, cache.Close())
	assert.True(t, client.closed)
}
