package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/solwatch/gateway/pkg/slog"
	"go.uber.org/zap"
)

const (
	// LamportsInSol is the number of lamports in 1 SOL
	LamportsInSol = 1_000_000_000

	// DefaultTimeout bounds a single upstream round trip.
	DefaultTimeout = 10 * time.Second
)

type (
	Client struct {
		HttpClient  http.Client
		RpcUrl      string
		HttpTimeout time.Duration
		logger      *zap.SugaredLogger
	}

	Request struct {
		Jsonrpc string `json:"jsonrpc"`
		Id      int    `json:"id"`
		Method  string `json:"method"`
		Params  []any  `json:"params"`
	}
)

func NewClient(rpcAddr string, httpTimeout time.Duration) *Client {
	if httpTimeout <= 0 {
		httpTimeout = DefaultTimeout
	}

	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Client{
		HttpClient: http.Client{
			Transport: transport,
			Timeout:   httpTimeout,
		},
		RpcUrl:      rpcAddr,
		HttpTimeout: httpTimeout,
		logger:      slog.Get(),
	}
}

func getResponse[T any](
	ctx context.Context,
	client *Client,
	method string,
	params []any,
	rpcResponse *Response[T],
) error {
	logger := client.logger

	// params must serialize as a list, never null
	if params == nil {
		params = []any{}
	}

	request := &Request{
		Jsonrpc: "2.0",
		Id:      1,
		Method:  method,
		Params:  params,
	}

	buffer, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal %s request: %w", method, err)
	}

	logger.Debugf("Making RPC request to %s: %s", client.RpcUrl, string(buffer))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, client.RpcUrl, bytes.NewBuffer(buffer))
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", method, err)
	}

	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := client.HttpClient.Do(req)
	if err != nil {
		return &TransportError{Method: method, Err: err}
	}
	defer resp.Body.Close()

	logger.Debugw("RPC request completed",
		"method", method,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Method: method, Err: fmt.Errorf("error reading response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{
			Method: method,
			Err:    fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	if err = json.Unmarshal(body, rpcResponse); err != nil {
		return &TransportError{Method: method, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	if rpcResponse.Error != nil {
		rpcResponse.Error.Method = method
		return rpcResponse.Error
	}

	return nil
}

// Core RPC methods
func (c *Client) GetSlot(ctx context.Context) (int64, error) {
	var resp Response[int64]
	if err := getResponse(ctx, c, "getSlot", []any{}, &resp); err != nil {
		return 0, err
	}
	return resp.Result, nil
}

func (c *Client) GetBlockHeight(ctx context.Context) (int64, error) {
	var resp Response[int64]
	if err := getResponse(ctx, c, "getBlockHeight", []any{}, &resp); err != nil {
		return 0, err
	}
	return resp.Result, nil
}

func (c *Client) GetRecentPerformanceSamples(ctx context.Context, limit int) ([]PerformanceSample, error) {
	var resp Response[[]PerformanceSample]
	if err := getResponse(ctx, c, "getRecentPerformanceSamples", []any{limit}, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}

func (c *Client) GetVoteAccounts(ctx context.Context) (*VoteAccounts, error) {
	var resp Response[VoteAccounts]
	if err := getResponse(ctx, c, "getVoteAccounts", []any{}, &resp); err != nil {
		return nil, err
	}
	return &resp.Result, nil
}

func (c *Client) GetSignaturesForAddress(ctx context.Context, address string, limit int) ([]SignatureInfo, error) {
	config := map[string]any{"limit": limit}
	var resp Response[[]SignatureInfo]
	if err := getResponse(ctx, c, "getSignaturesForAddress", []any{address, config}, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}

// GetTransaction fetches a confirmed transaction by signature. A nil detail
// with a nil error means the node does not have the transaction.
func (c *Client) GetTransaction(ctx context.Context, signature string) (*TransactionDetail, error) {
	config := map[string]any{"encoding": "json", "maxSupportedTransactionVersion": 0}
	var resp Response[*TransactionDetail]
	if err := getResponse(ctx, c, "getTransaction", []any{signature, config}, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}

// GetBlock fetches a confirmed block by slot. A nil block with a nil error
// means the node does not have the block.
func (c *Client) GetBlock(ctx context.Context, slot int64) (*Block, error) {
	config := map[string]any{"encoding": "json", "maxSupportedTransactionVersion": 0}
	var resp Response[*Block]
	if err := getResponse(ctx, c, "getBlock", []any{slot, config}, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}

func (c *Client) GetBalance(ctx context.Context, address string) (int64, error) {
	var resp Response[ContextualResult[int64]]
	if err := getResponse(ctx, c, "getBalance", []any{address}, &resp); err != nil {
		return 0, err
	}
	return resp.Result.Value, nil
}
