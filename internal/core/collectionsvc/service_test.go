package collectionsvc

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	evbus "github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintarc/v1/pkg/constants"
	"github.com/mintarc/v1/pkg/types"
)

// stubRegistry 可编程的存在性查询桩
type stubRegistry struct {
	lookup func(ctx context.Context, name string) (types.LookupStatus, error)
	probed []string
}

func (s *stubRegistry) Lookup(ctx context.Context, name string) (types.LookupStatus, error) {
	s.probed = append(s.probed, name)
	return s.lookup(ctx, name)
}

// stubCreator 可编程的创建客户端桩
type stubCreator struct {
	create  func(ctx context.Context, record *types.CollectionRecord) (*types.CreateReceipt, error)
	records []*types.CollectionRecord
}

func (s *stubCreator) Create(ctx context.Context, record *types.CollectionRecord) (*types.CreateReceipt, error) {
	s.records = append(s.records, record)
	return s.create(ctx, record)
}

// freeRegistry 所有名称均未占用
func freeRegistry() *stubRegistry {
	return &stubRegistry{
		lookup: func(ctx context.Context, name string) (types.LookupStatus, error) {
			return types.LookupNotFound, nil
		},
	}
}

// okCreator 创建恒成功
func okCreator() *stubCreator {
	return &stubCreator{
		create: func(ctx context.Context, record *types.CollectionRecord) (*types.CreateReceipt, error) {
			return &types.CreateReceipt{
				Name:      record.Name,
				TxHash:    "0xfeed",
				Timestamp: time.Now(),
			}, nil
		},
	}
}

func validDraft() *types.CollectionDraft {
	return &types.CollectionDraft{
		Name:        "catpictures1",
		DisplayName: "Cat Pictures",
		ImageCID:    testCID(),
		MarketFee:   0.05,
		Description: "猫图集合",
	}
}

func newTestService(t *testing.T, registry *stubRegistry, creator *stubCreator, bus evbus.Bus) *Service {
	t.Helper()
	svc, err := NewService(registry, creator, bus, nil)
	require.NoError(t, err)
	return svc
}

// requireReport 断言错误是失败报告并返回它
func requireReport(t *testing.T, err error) *types.SubmitReport {
	t.Helper()
	var report *types.SubmitReport
	require.ErrorAs(t, err, &report)
	return report
}

func TestCreateCollection_Success(t *testing.T) {
	registry := freeRegistry()
	creator := okCreator()
	svc := newTestService(t, registry, creator, nil)

	receipt, err := svc.CreateCollection(context.Background(), "alice", validDraft())
	require.NoError(t, err)
	assert.Equal(t, "catpictures1", receipt.Name)
	assert.Equal(t, "0xfeed", receipt.TxHash)

	// 提交前做了实时占用确认
	assert.Equal(t, []string{"catpictures1"}, registry.probed)

	// 记录组装正确
	require.Len(t, creator.records, 1)
	record := creator.records[0]
	assert.Equal(t, "alice", record.Author)
	assert.Equal(t, 0.05, record.MarketFee)
	assert.NotEmpty(t, record.Metadata)
}

func TestCreateCollection_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		actor   string
		mutate  func(d *types.CollectionDraft)
		wantMsg string
	}{
		{
			name:    "未连接钱包",
			actor:   "",
			mutate:  func(d *types.CollectionDraft) {},
			wantMsg: "请先连接钱包",
		},
		{
			name:    "名称含非法字符",
			actor:   "alice",
			mutate:  func(d *types.CollectionDraft) { d.Name = "CatPictures" },
			wantMsg: "非法字符",
		},
		{
			name:    "名称无权注册",
			actor:   "alice",
			mutate:  func(d *types.CollectionDraft) { d.Name = "shortname" },
			wantMsg: "无权注册",
		},
		{
			name:    "展示名称为空",
			actor:   "alice",
			mutate:  func(d *types.CollectionDraft) { d.DisplayName = "" },
			wantMsg: "展示名称",
		},
		{
			name:    "手续费率越界",
			actor:   "alice",
			mutate:  func(d *types.CollectionDraft) { d.MarketFee = 0.5 },
			wantMsg: "手续费率",
		},
		{
			name:    "手续费率为负",
			actor:   "alice",
			mutate:  func(d *types.CollectionDraft) { d.MarketFee = -0.01 },
			wantMsg: "手续费率",
		},
		{
			name:    "图片引用非法",
			actor:   "alice",
			mutate:  func(d *types.CollectionDraft) { d.ImageCID = "not-a-cid" },
			wantMsg: "图片引用",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := freeRegistry()
			creator := okCreator()
			svc := newTestService(t, registry, creator, nil)

			draft := validDraft()
			tt.mutate(draft)

			_, err := svc.CreateCollection(context.Background(), tt.actor, draft)
			report := requireReport(t, err)
			assert.Contains(t, report.Message, tt.wantMsg)

			// 校验失败不应触达网络
			assert.Empty(t, registry.probed)
			assert.Empty(t, creator.records)
		})
	}
}

func TestCreateCollection_NameTaken(t *testing.T) {
	registry := &stubRegistry{
		lookup: func(ctx context.Context, name string) (types.LookupStatus, error) {
			return types.LookupFound, nil
		},
	}
	creator := okCreator()
	svc := newTestService(t, registry, creator, nil)

	_, err := svc.CreateCollection(context.Background(), "alice", validDraft())
	report := requireReport(t, err)
	assert.Contains(t, report.Message, "已被占用")
	assert.Empty(t, creator.records)
}

func TestCreateCollection_LookupTransportError(t *testing.T) {
	registry := &stubRegistry{
		lookup: func(ctx context.Context, name string) (types.LookupStatus, error) {
			return types.LookupUnknown, errors.New("connection refused")
		},
	}
	creator := okCreator()
	svc := newTestService(t, registry, creator, nil)

	// 查询失败时不能继续创建：失败不等于"名称可用"
	_, err := svc.CreateCollection(context.Background(), "alice", validDraft())
	report := requireReport(t, err)
	assert.Contains(t, report.Details, "connection refused")
	assert.Empty(t, creator.records)
}

func TestCreateCollection_SubmitReportPassthrough(t *testing.T) {
	upstream := types.NewSubmitReport("集合创建失败", "名称已被占用", "assertion failure")
	creator := &stubCreator{
		create: func(ctx context.Context, record *types.CollectionRecord) (*types.CreateReceipt, error) {
			return nil, upstream
		},
	}
	svc := newTestService(t, freeRegistry(), creator, nil)

	_, err := svc.CreateCollection(context.Background(), "alice", validDraft())
	report := requireReport(t, err)
	// 创建客户端的结构化报告原样透传
	assert.Equal(t, upstream, report)
}

func TestCreateCollection_PublishesEvent(t *testing.T) {
	bus := evbus.New()

	var (
		mu       sync.Mutex
		received *types.CreateReceipt
	)
	require.NoError(t, bus.Subscribe(constants.TopicCollectionCreated, func(receipt *types.CreateReceipt) {
		mu.Lock()
		defer mu.Unlock()
		received = receipt
	}))

	svc := newTestService(t, freeRegistry(), okCreator(), bus)

	receipt, err := svc.CreateCollection(context.Background(), "alice", validDraft())
	require.NoError(t, err)

	// EventBus 默认同步派发，发布即完成
	mu.Lock()
	defer mu.Unlock()
	require.NotNil(t, received)
	assert.Equal(t, receipt.TxHash, received.TxHash)
}

func TestCheckName(t *testing.T) {
	t.Run("可注册且未占用", func(t *testing.T) {
		svc := newTestService(t, freeRegistry(), okCreator(), nil)
		claimable, status, err := svc.CheckName(context.Background(), "catpictures1", "alice")
		require.NoError(t, err)
		assert.True(t, claimable)
		assert.Equal(t, types.LookupNotFound, status)
	})

	t.Run("无权注册时不查询占用", func(t *testing.T) {
		registry := freeRegistry()
		svc := newTestService(t, registry, okCreator(), nil)
		claimable, status, err := svc.CheckName(context.Background(), "shortname", "alice")
		require.NoError(t, err)
		assert.False(t, claimable)
		assert.Equal(t, types.LookupUnknown, status)
		assert.Empty(t, registry.probed)
	})

	t.Run("查询失败上抛", func(t *testing.T) {
		registry := &stubRegistry{
			lookup: func(ctx context.Context, name string) (types.LookupStatus, error) {
				return types.LookupUnknown, errors.New("timeout")
			},
		}
		svc := newTestService(t, registry, okCreator(), nil)
		_, _, err := svc.CheckName(context.Background(), "catpictures1", "alice")
		assert.Error(t, err)
	})
}

func TestNewService_Validation(t *testing.T) {
	_, err := NewService(nil, okCreator(), nil, nil)
	assert.Error(t, err)

	_, err = NewService(freeRegistry(), nil, nil, nil)
	assert.Error(t, err)
}
