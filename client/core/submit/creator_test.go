package submit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintarc/v1/client/core/transport"
	"github.com/mintarc/v1/pkg/types"
)

func newTestCreator(t *testing.T, handler http.HandlerFunc) *SignerCreator {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewWithClient(transport.NewRESTClient(server.URL, 0))
}

func sampleRecord() *types.CollectionRecord {
	return &types.CollectionRecord{
		Name:        "catpictures1",
		DisplayName: "Cat Pictures",
		MarketFee:   0.05,
		Author:      "alice",
		Metadata: []types.MetadataEntry{
			{Key: "description", Value: "猫图集合"},
		},
	}
}

func TestCreate_Success(t *testing.T) {
	creator := newTestCreator(t, func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/api/v1/collections", req.URL.Path)

		var payload createRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&payload))
		assert.Equal(t, "catpictures1", payload.Record.Name)
		assert.Equal(t, "alice", payload.Record.Author)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tx_hash":"0xabc123","timestamp":"2026-01-02T15:04:05Z"}`))
	})

	receipt, err := creator.Create(context.Background(), sampleRecord())
	require.NoError(t, err)
	assert.Equal(t, "catpictures1", receipt.Name)
	assert.Equal(t, "0xabc123", receipt.TxHash)
	assert.False(t, receipt.Timestamp.IsZero())
}

func TestCreate_StructuredError(t *testing.T) {
	creator := newTestCreator(t, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":{"message":"名称已被占用","details":"assertion failure: collection exists"}}`))
	})

	_, err := creator.Create(context.Background(), sampleRecord())
	require.Error(t, err)

	// 服务端结构化错误应转换为三段式失败报告
	var report *types.SubmitReport
	require.ErrorAs(t, err, &report)
	assert.Equal(t, "集合创建失败", report.Title)
	assert.Equal(t, "名称已被占用", report.Message)
	assert.Contains(t, report.Details, "assertion failure")
}

func TestCreate_UnstructuredError(t *testing.T) {
	creator := newTestCreator(t, func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	_, err := creator.Create(context.Background(), sampleRecord())
	require.Error(t, err)

	var report *types.SubmitReport
	require.ErrorAs(t, err, &report)
	// 无结构化错误时原始响应进入详情
	assert.Contains(t, report.Details, "bad gateway")
}

func TestCreate_NilRecord(t *testing.T) {
	creator := NewWithClient(transport.NewRESTClient("http://127.0.0.1:1", 0))
	_, err := creator.Create(context.Background(), nil)
	assert.Error(t, err)
}
