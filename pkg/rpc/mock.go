package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"
)

// MockServer is an in-process JSON-RPC node used by tests. Results are keyed
// by method, with dedicated maps for the methods whose result depends on the
// request params.
type MockServer struct {
	server   *http.Server
	listener net.Listener
	mu       sync.RWMutex

	easyResults  map[string]any
	queues       map[string][]any
	errResults   map[string]*RPCError
	balances     map[string]int64
	transactions map[string]any
	blocks       map[int64]any
	statusCode   int

	calls      map[string]int
	lastParams map[string][]any
}

// NewMockServer creates a new mock server instance
func NewMockServer(easyResults map[string]any) (*MockServer, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("failed to create listener: %v", err)
	}

	ms := &MockServer{
		listener:    listener,
		easyResults: easyResults,
		calls:       map[string]int{},
		lastParams:  map[string][]any{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", ms.handleRPCRequest)

	ms.server = &http.Server{Handler: mux}

	go func() {
		_ = ms.server.Serve(listener)
	}()

	return ms, nil
}

// URL returns the URL of the mock server
func (s *MockServer) URL() string {
	return fmt.Sprintf("http://%s", s.listener.Addr().String())
}

// Close shuts down the mock server
func (s *MockServer) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *MockServer) MustClose() {
	if err := s.Close(); err != nil {
		panic(err)
	}
}

// SetResult sets a static result for a method.
func (s *MockServer) SetResult(method string, result any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.easyResults == nil {
		s.easyResults = map[string]any{}
	}
	s.easyResults[method] = result
}

// SetResults queues one result per call for a method. The final value keeps
// being served once the queue is drained.
func (s *MockServer) SetResults(method string, results ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.queues == nil {
		s.queues = map[string][]any{}
	}
	s.queues[method] = results
}

// SetRPCError makes every call to a method fail with the given error payload.
func (s *MockServer) SetRPCError(method string, rpcErr *RPCError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.errResults == nil {
		s.errResults = map[string]*RPCError{}
	}
	s.errResults[method] = rpcErr
}

// SetBalance sets the lamport balance served for an address.
func (s *MockServer) SetBalance(address string, lamports int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.balances == nil {
		s.balances = map[string]int64{}
	}
	s.balances[address] = lamports
}

// SetTransaction sets the getTransaction result for a signature. Signatures
// without an entry resolve to a null result.
func (s *MockServer) SetTransaction(signature string, result any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.transactions == nil {
		s.transactions = map[string]any{}
	}
	s.transactions[signature] = result
}

// SetBlock sets the getBlock result for a slot. Slots without an entry fail
// with a block cleaned up error.
func (s *MockServer) SetBlock(slot int64, result any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.blocks == nil {
		s.blocks = map[int64]any{}
	}
	s.blocks[slot] = result
}

// SetStatusCode makes the server reply with a bare HTTP status instead of a
// JSON-RPC response. Zero restores normal behavior.
func (s *MockServer) SetStatusCode(code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statusCode = code
}

// Calls returns how many times a method has been requested.
func (s *MockServer) Calls(method string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.calls[method]
}

// LastParams returns the params of the most recent request for a method.
func (s *MockServer) LastParams(method string) []any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastParams[method]
}

func (s *MockServer) getResult(method string, params ...any) (any, *RPCError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls[method]++
	s.lastParams[method] = params

	if rpcErr, ok := s.errResults[method]; ok {
		return nil, rpcErr
	}

	if queued, ok := s.queues[method]; ok && len(queued) > 0 {
		result := queued[0]
		if len(queued) > 1 {
			s.queues[method] = queued[1:]
		}
		return result, nil
	}

	if method == "getBalance" && s.balances != nil {
		address := params[0].(string)
		result := map[string]any{
			"context": map[string]int{"slot": 1},
			"value":   s.balances[address],
		}
		return result, nil
	}

	if method == "getTransaction" && s.transactions != nil {
		signature := params[0].(string)
		return s.transactions[signature], nil
	}

	if method == "getBlock" && s.blocks != nil {
		slot := int64(params[0].(float64))
		block, ok := s.blocks[slot]
		if !ok {
			return nil, &RPCError{Code: BlockCleanedUpCode, Message: "Block cleaned up."}
		}
		return block, nil
	}

	// default is use easy results
	result, ok := s.easyResults[method]
	if !ok {
		return nil, &RPCError{Code: MethodNotFoundCode, Message: "Method not found"}
	}
	return result, nil
}

func (s *MockServer) handleRPCRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "Only POST method is allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.RLock()
	statusCode := s.statusCode
	s.mu.RUnlock()
	if statusCode != 0 {
		http.Error(w, "mock failure", statusCode)
		return
	}

	var request Request
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// reject anything that is not a proper JSON-RPC 2.0 envelope
	if request.Jsonrpc != "2.0" || request.Method == "" || request.Params == nil {
		http.Error(w, "malformed JSON-RPC request", http.StatusBadRequest)
		return
	}

	response := Response[any]{Jsonrpc: "2.0", Id: request.Id}
	result, rpcErr := s.getResult(request.Method, request.Params...)
	if rpcErr != nil {
		response.Error = rpcErr
	} else {
		response.Result = result
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// NewMockClient creates a new test client with a running mock server
func NewMockClient(t *testing.T, easyResults map[string]any) (*MockServer, *Client) {
	t.Helper()

	server, err := NewMockServer(easyResults)
	if err != nil {
		t.Fatalf("failed to create mock server: %v", err)
	}

	t.Cleanup(func() {
		if err := server.Close(); err != nil {
			t.Errorf("failed to close mock server: %v", err)
		}
	})

	client := NewClient(server.URL(), time.Second)
	return server, client
}
