package rpc

import (
	"errors"
	"fmt"
)

const (
	// RPC Error Codes
	MethodNotFoundCode    = -32601
	BlockCleanedUpCode    = -32001
	BlockNotAvailableCode = -32004
	NodeUnhealthyCode     = -32005
	SlotSkippedCode       = -32007
)

type (
	// RPCError is an explicit error payload returned by the upstream node in a
	// well-formed JSON-RPC response.
	RPCError struct {
		Message string         `json:"message"`
		Code    int64          `json:"code"`
		Data    map[string]any `json:"data,omitempty"`
		Method  string         `json:"-"`
	}

	// TransportError covers everything that goes wrong before a JSON-RPC error
	// could be read: connection failures, timeouts, unexpected HTTP statuses
	// and undecodable bodies.
	TransportError struct {
		Method string
		Err    error
	}
)

func (e *RPCError) Error() string {
	return fmt.Sprintf("%s RPC error (code: %d): %s", e.Method, e.Code, e.Message)
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsUpstreamError reports whether err originated in the RPC layer, either as a
// transport failure or as an explicit upstream error payload.
func IsUpstreamError(err error) bool {
	var rpcErr *RPCError
	var trErr *TransportError
	return errors.As(err, &rpcErr) || errors.As(err, &trErr)
}
