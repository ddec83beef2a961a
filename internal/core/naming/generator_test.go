package naming

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	namingconfig "github.com/mintarc/v1/internal/config/naming"
	"github.com/mintarc/v1/pkg/constants"
	"github.com/mintarc/v1/pkg/types"
)

// stubRegistry 可编程的存在性查询桩
type stubRegistry struct {
	// lookup 自定义查询行为
	lookup func(ctx context.Context, name string) (types.LookupStatus, error)

	// probed 记录每次探测的名称
	probed []string
}

func (s *stubRegistry) Lookup(ctx context.Context, name string) (types.LookupStatus, error) {
	s.probed = append(s.probed, name)
	return s.lookup(ctx, name)
}

// newTestGenerator 创建使用固定种子的测试生成器
func newTestGenerator(t *testing.T, registry *stubRegistry, options *namingconfig.NamingOptions) *Generator {
	t.Helper()
	g, err := NewGeneratorWithRand(registry, options, nil, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	return g
}

func TestNewGenerator_NilRegistry(t *testing.T) {
	_, err := NewGenerator(nil, nil, nil)
	assert.Error(t, err)
}

func TestSuggest_FirstCandidateFree(t *testing.T) {
	registry := &stubRegistry{
		lookup: func(ctx context.Context, name string) (types.LookupStatus, error) {
			return types.LookupNotFound, nil
		},
	}
	g := newTestGenerator(t, registry, nil)

	name, err := g.Suggest(context.Background())
	require.NoError(t, err)

	// 首个候选未被占用时应恰好探测一次并返回该候选
	assert.Len(t, registry.probed, 1)
	assert.Equal(t, registry.probed[0], name)
}

func TestSuggest_CandidateShape(t *testing.T) {
	registry := &stubRegistry{
		lookup: func(ctx context.Context, name string) (types.LookupStatus, error) {
			return types.LookupNotFound, nil
		},
	}
	g := newTestGenerator(t, registry, nil)

	for i := 0; i < 100; i++ {
		name, err := g.Suggest(context.Background())
		require.NoError(t, err)

		// 候选恒为12位，且每个字符都来自数字字符集
		assert.Len(t, name, constants.MaxNameLength)
		for _, r := range name {
			assert.True(t, strings.ContainsRune(constants.SuggestAlphabet, r),
				"unexpected rune %q in candidate %s", r, name)
		}
	}
}

func TestSuggest_RetriesOnCollision(t *testing.T) {
	// 前5次探测报告已占用，第6次放行
	collisions := 5
	registry := &stubRegistry{}
	registry.lookup = func(ctx context.Context, name string) (types.LookupStatus, error) {
		if len(registry.probed) <= collisions {
			return types.LookupFound, nil
		}
		return types.LookupNotFound, nil
	}
	g := newTestGenerator(t, registry, nil)

	name, err := g.Suggest(context.Background())
	require.NoError(t, err)

	// 5次碰撞 + 1次命中 = 6次探测，返回的是最后一次探测的候选
	assert.Len(t, registry.probed, collisions+1)
	assert.Equal(t, registry.probed[collisions], name)

	// 被拒绝的候选不应被返回
	for _, rejected := range registry.probed[:collisions] {
		assert.NotEqual(t, rejected, name)
	}
}

func TestSuggest_TransportErrorPropagated(t *testing.T) {
	transportErr := errors.New("connection refused")
	registry := &stubRegistry{
		lookup: func(ctx context.Context, name string) (types.LookupStatus, error) {
			return types.LookupUnknown, transportErr
		},
	}
	g := newTestGenerator(t, registry, nil)

	name, err := g.Suggest(context.Background())

	// 传输失败必须上抛，不能当作"名称可用"返回候选
	require.Error(t, err)
	assert.ErrorIs(t, err, transportErr)
	assert.Empty(t, name)
	assert.Len(t, registry.probed, 1)
}

func TestSuggest_ExhaustsRetryBudget(t *testing.T) {
	maxAttempts := 7
	registry := &stubRegistry{
		lookup: func(ctx context.Context, name string) (types.LookupStatus, error) {
			return types.LookupFound, nil
		},
	}
	g := newTestGenerator(t, registry, &namingconfig.NamingOptions{MaxAttempts: maxAttempts})

	name, err := g.Suggest(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrGenerationExhausted)
	assert.Empty(t, name)
	assert.Len(t, registry.probed, maxAttempts)
}

func TestSuggest_ContextCancelled(t *testing.T) {
	t.Run("调用前已取消", func(t *testing.T) {
		registry := &stubRegistry{
			lookup: func(ctx context.Context, name string) (types.LookupStatus, error) {
				return types.LookupNotFound, nil
			},
		}
		g := newTestGenerator(t, registry, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := g.Suggest(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		// 取消后不应再发起任何探测
		assert.Empty(t, registry.probed)
	})

	t.Run("探测过程中取消", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		registry := &stubRegistry{}
		registry.lookup = func(ctx context.Context, name string) (types.LookupStatus, error) {
			// 第一次探测时触发取消，模拟调用方在等待期间被销毁
			cancel()
			return types.LookupFound, nil
		}
		g := newTestGenerator(t, registry, nil)

		_, err := g.Suggest(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		// 取消后不再生成新候选
		assert.Len(t, registry.probed, 1)
	})
}

func TestSuggest_DeterministicWithSeededRand(t *testing.T) {
	run := func() []string {
		registry := &stubRegistry{
			lookup: func(ctx context.Context, name string) (types.LookupStatus, error) {
				return types.LookupNotFound, nil
			},
		}
		g := newTestGenerator(t, registry, nil)
		var names []string
		for i := 0; i < 10; i++ {
			name, err := g.Suggest(context.Background())
			require.NoError(t, err)
			names = append(names, name)
		}
		return names
	}

	// 相同种子下候选序列可复现
	assert.Equal(t, run(), run())
}

func TestSuggest_GeneratedNamesAreClaimable(t *testing.T) {
	registry := &stubRegistry{
		lookup: func(ctx context.Context, name string) (types.LookupStatus, error) {
			return types.LookupNotFound, nil
		},
	}
	g := newTestGenerator(t, registry, nil)

	// 生成的候选满12位且无分隔符，对任何账户都可注册
	for i := 0; i < 20; i++ {
		name, err := g.Suggest(context.Background())
		require.NoError(t, err)
		assert.True(t, IsClaimable(name, "whatever"))
		assert.True(t, IsWellFormed(name))
	}
}
