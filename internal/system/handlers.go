package system

import (
	"fmt"
	"net/http"

	com "github.com/solwatch/gateway/internal/common"
	"github.com/solwatch/gateway/internal/config"
	"github.com/solwatch/gateway/internal/services/db"
)

const maxReportedTables = 10

type Service struct {
	conf *config.Config
	db   *db.DB
}

func NewService(conf *config.Config, db *db.DB) *Service {
	return &Service{
		conf: conf,
		db:   db,
	}
}

type Message struct {
	Message string `json:"message"`
}

// Root confirms the gateway is up.
func (s *Service) Root(w http.ResponseWriter, r *http.Request) {
	err := com.Body(w, &Message{Message: "Hello from the gateway backend!"})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// Hello confirms the api routes are reachable.
func (s *Service) Hello(w http.ResponseWriter, r *http.Request) {
	err := com.Body(w, &Message{Message: "Hello from the gateway API!"})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Tables           []string `json:"tables"`
	SolanaRPC        string   `json:"solana_rpc"`
}

// Test reports process and database availability. The database is optional,
// a missing or failing connection degrades the report but never the status
// code.
func (s *Service) Test(w http.ResponseWriter, r *http.Request) {
	d := &Diagnostics{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      setOrNot(s.conf.DatabaseURL),
		DatabaseName:     setOrNot(s.conf.DatabaseName),
		ConnectionStatus: "not connected",
		Tables:           []string{},
		SolanaRPC:        s.conf.RPCURL,
	}

	if s.db != nil {
		d.ConnectionStatus = "connected"

		tables, err := s.db.TableNames(r.Context(), maxReportedTables)
		if err != nil {
			d.Database = truncate(fmt.Sprintf("connected but error: %s", err), 50)
		} else {
			d.Database = "connected and working"
			d.Tables = tables
		}
	}

	err := com.Body(w, d)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func setOrNot(v string) string {
	if v != "" {
		return "set"
	}
	return "not set"
}

// truncate caps diagnostic error strings so the report stays readable.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
