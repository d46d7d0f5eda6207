package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/solwatch/gateway/pkg/rpc"
	"github.com/solwatch/gateway/pkg/solana"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBody(t *testing.T) {
	rr := httptest.NewRecorder()

	err := Body(rr, map[string]any{"message": "ok"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"ok"}`, rr.Body.String())
}

func TestError(t *testing.T) {
	rr := httptest.NewRecorder()

	Error(rr, http.StatusBadRequest, "query must be at least 2 characters")

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "query must be at least 2 characters", resp.Error)
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"rpc error", &rpc.RPCError{Code: -32601, Message: "Method not found", Method: "getSlot"}, http.StatusBadGateway},
		{"transport error", &rpc.TransportError{Method: "getSlot", Err: errors.New("connection refused")}, http.StatusBadGateway},
		{"not found", solana.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("%w: abcd", solana.ErrNotFound), http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorStatus(tt.err))
		})
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteError(rr, &rpc.TransportError{Method: "getSlot", Err: errors.New("connection refused")})

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, rr.Body.String(), "getSlot request failed")
}
