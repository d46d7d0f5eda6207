package version

import (
	"net/http"

	"github.com/solwatch/gateway/internal/common"
)

// Version is the release reported by the api.
const Version = "0.9.1"

type Service struct{}

func NewService() *Service {
	return &Service{}
}

type response struct {
	Version string `json:"version"`
}

// Current returns the current version of the API
func (s *Service) Current(w http.ResponseWriter, r *http.Request) {
	err := common.Body(w, &response{Version: Version})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}
