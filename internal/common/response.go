package common

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/solwatch/gateway/pkg/rpc"
	"github.com/solwatch/gateway/pkg/solana"
)

// Body writes a payload as a JSON response body.
func Body(w http.ResponseWriter, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Add("Content-Type", "application/json")
	w.Write(b)

	return nil
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Error writes an error payload with the given status code.
func Error(w http.ResponseWriter, status int, message string) {
	b, err := json.Marshal(&ErrorResponse{Error: message})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

// ErrorStatus maps gateway errors onto HTTP status codes. Upstream transport
// and protocol failures are bad gateway, an exhausted search is not found.
func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, solana.ErrNotFound):
		return http.StatusNotFound
	case rpc.IsUpstreamError(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes err with the status code ErrorStatus assigns to it.
func WriteError(w http.ResponseWriter, err error) {
	Error(w, ErrorStatus(err), err.Error())
}
