package naming

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	namingconfig "github.com/mintarc/v1/internal/config/naming"
	"github.com/mintarc/v1/pkg/constants"
	logiface "github.com/mintarc/v1/pkg/interfaces/infrastructure/log"
	naminginterface "github.com/mintarc/v1/pkg/interfaces/naming"
	"github.com/mintarc/v1/pkg/types"
)

// Prometheus 指标
var (
	generatorProbes = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mintarc",
		Subsystem: "naming",
		Name:      "probes_total",
		Help:      "Total number of name existence probes issued by the generator",
	})
	generatorCollisions = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mintarc",
		Subsystem: "naming",
		Name:      "collisions_total",
		Help:      "Total number of generated candidates that were already taken",
	})
)

func init() {
	prometheus.MustRegister(generatorProbes, generatorCollisions)
}

// Generator 未占用名称生成器
//
// 📋 **算法**：
//   - 候选为 12 位、每位从数字字符集中独立均匀采样的名称
//     （满 12 位且不含分隔符的名称对任何账户都可注册）
//   - 逐个向存在性查询服务探测，已占用则丢弃重采样
//   - 同一时刻只有一个未完成的探测请求
//
// ⚠️ **失败语义**：
//   - 查询服务的传输失败原样向上传递，绝不当作"名称可用"处理
//   - 达到尝试上限返回 types.ErrGenerationExhausted
//   - 上下文取消后立即停止，不再发起新的探测
//
// 🔒 **并发安全**：
//   - 随机源由互斥锁保护，Suggest 可被多个 goroutine 并发调用
type Generator struct {
	registry    naminginterface.Registry
	logger      logiface.Logger
	maxAttempts int

	// math/rand 的 Rand 非并发安全
	mu  sync.Mutex
	rng *rand.Rand
}

// 确保实现接口
var _ naminginterface.Suggester = (*Generator)(nil)

// NewGenerator 创建名称生成器
//
// 参数：
//   - registry: 名称存在性查询服务
//   - options: 名称生成配置（nil 时使用默认值）
//   - logger: 日志记录器
func NewGenerator(registry naminginterface.Registry, options *namingconfig.NamingOptions, logger logiface.Logger) (*Generator, error) {
	if registry == nil {
		return nil, fmt.Errorf("name registry cannot be nil")
	}
	if options == nil {
		options = namingconfig.New(nil).GetOptions()
	}
	return &Generator{
		registry:    registry,
		logger:      logger,
		maxAttempts: options.MaxAttempts,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// NewGeneratorWithRand 创建使用指定随机源的名称生成器
//
// 注入随机源使候选序列可复现，用于确定性测试。
func NewGeneratorWithRand(registry naminginterface.Registry, options *namingconfig.NamingOptions, logger logiface.Logger, rng *rand.Rand) (*Generator, error) {
	g, err := NewGenerator(registry, options, logger)
	if err != nil {
		return nil, err
	}
	if rng != nil {
		g.rng = rng
	}
	return g, nil
}

// Suggest 生成一个经存在性查询确认未被占用的名称
//
// 实现 naming.Suggester 接口。
func (g *Generator) Suggest(ctx context.Context) (string, error) {
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		// 上下文撤销后立即放弃，不再生成新候选
		if err := ctx.Err(); err != nil {
			return "", err
		}

		candidate := g.randomName()
		generatorProbes.Inc()

		status, err := g.registry.Lookup(ctx, candidate)
		if err != nil {
			// 传输失败与"未占用"是两回事，混淆会静默生成冲突名称
			return "", fmt.Errorf("name lookup failed: %w", err)
		}

		switch status {
		case types.LookupNotFound:
			return candidate, nil
		case types.LookupFound:
			generatorCollisions.Inc()
			if g.logger != nil {
				g.logger.Debugf("候选名称已被占用，重新采样: %s", candidate)
			}
		default:
			return "", fmt.Errorf("name lookup returned unexpected status %q for %s", status, candidate)
		}
	}

	if g.logger != nil {
		g.logger.Errorf("名称生成达到尝试上限 %d，存在性查询服务可能异常", g.maxAttempts)
	}
	return "", types.ErrGenerationExhausted
}

// randomName 采样一个 12 位候选名称
func (g *Generator) randomName() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	buf := make([]byte, constants.MaxNameLength)
	for i := range buf {
		buf[i] = constants.SuggestAlphabet[g.rng.Intn(len(constants.SuggestAlphabet))]
	}
	return string(buf)
}
