package stats

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/solwatch/gateway/pkg/rpc"
	"github.com/solwatch/gateway/pkg/solana"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsTester(t *testing.T) (*rpc.MockServer, *Service) {
	t.Helper()

	server, client := rpc.NewMockClient(t, map[string]any{
		"getSlot": 250_000_000,
		"getRecentPerformanceSamples": []map[string]any{
			{"slot": 100, "numSlots": 60, "numTransactions": 100, "samplePeriodSecs": 60},
			{"slot": 40, "numSlots": 30, "numTransactions": 50, "samplePeriodSecs": 30},
		},
		"getVoteAccounts": map[string]any{
			"current": []map[string]any{
				{"votePubkey": "vote1"},
				{"votePubkey": "vote2"},
			},
			"delinquent": []map[string]any{
				{"votePubkey": "vote3"},
			},
		},
		"getBlockHeight": 230_000_000,
	})

	return server, NewService(client)
}

func TestCompute(t *testing.T) {
	server, s := newStatsTester(t)
	server.SetResults("getBlockHeight", 230_000_000, 230_000_003)

	stats, err := s.compute(context.Background())
	require.NoError(t, err)

	require.NotNil(t, stats.Tps)
	assert.Equal(t, 1.67, *stats.Tps)
	assert.Equal(t, int64(250_000_000), stats.Slot)
	assert.Equal(t, 3, stats.Validators)
	assert.Equal(t, int64(3), stats.RecentBlocks)

	params := server.LastParams("getRecentPerformanceSamples")
	require.Len(t, params, 1)
	assert.Equal(t, float64(30), params[0])
}

func TestComputeNoSamples(t *testing.T) {
	server, s := newStatsTester(t)
	server.SetResult("getRecentPerformanceSamples", []map[string]any{})

	stats, err := s.compute(context.Background())
	require.NoError(t, err)

	assert.Nil(t, stats.Tps)
}

func TestComputeZeroSeconds(t *testing.T) {
	server, s := newStatsTester(t)
	server.SetResult("getRecentPerformanceSamples", []map[string]any{
		{"slot": 100, "numSlots": 0, "numTransactions": 10, "samplePeriodSecs": 0},
	})

	stats, err := s.compute(context.Background())
	require.NoError(t, err)

	assert.Nil(t, stats.Tps)
}

func TestComputeHeightRegression(t *testing.T) {
	server, s := newStatsTester(t)
	server.SetResults("getBlockHeight", 230_000_010, 230_000_000)

	stats, err := s.compute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.RecentBlocks)
}

func TestGet(t *testing.T) {
	server, s := newStatsTester(t)
	server.SetResults("getBlockHeight", 230_000_000, 230_000_003)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/solana/stats", nil)

	s.Get(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var stats solana.NetworkStats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))

	require.NotNil(t, stats.Tps)
	assert.Equal(t, 1.67, *stats.Tps)
	assert.Equal(t, int64(250_000_000), stats.Slot)
	assert.Equal(t, 3, stats.Validators)
	assert.Equal(t, int64(3), stats.RecentBlocks)
}

func TestGetTpsNull(t *testing.T) {
	server, s := newStatsTester(t)
	server.SetResult("getRecentPerformanceSamples", []map[string]any{})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/solana/stats", nil)

	s.Get(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))

	// absent data is null, not 0
	raw, ok := payload["tps"]
	require.True(t, ok)
	assert.Equal(t, "null", string(raw))
}

func TestGetUpstreamError(t *testing.T) {
	server, s := newStatsTester(t)
	server.SetRPCError("getSlot", &rpc.RPCError{Code: rpc.NodeUnhealthyCode, Message: "Node is unhealthy"})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/solana/stats", nil)

	s.Get(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, rr.Body.String(), "error")
}
