package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/solwatch/gateway/internal/config"
	"github.com/solwatch/gateway/internal/search"
	"github.com/solwatch/gateway/internal/services/db"
	"github.com/solwatch/gateway/internal/stats"
	"github.com/solwatch/gateway/internal/system"
	"github.com/solwatch/gateway/internal/transactions"
	"github.com/solwatch/gateway/internal/version"
	"github.com/solwatch/gateway/pkg/solana"
)

type Router struct {
	conf *config.Config
	rpc  solana.Requester
	db   *db.DB
}

func NewServer(conf *config.Config, rpc solana.Requester, db *db.DB) *Router {
	return &Router{
		conf,
		rpc,
		db,
	}
}

// Handler assembles the gateway's route tree.
func (r *Router) Handler() http.Handler {
	cr := chi.NewRouter()

	// configure middleware
	cr.Use(middleware.RequestID)
	cr.Use(middleware.Logger)

	// configure custom middleware
	cr.Use(OptionsMiddleware)
	cr.Use(HealthMiddleware)
	cr.Use(middleware.Compress(9))

	// instantiate handlers
	sy := system.NewService(r.conf, r.db)
	st := stats.NewService(r.rpc)
	tx := transactions.NewService(r.rpc)
	se := search.NewService(r.rpc)
	v := version.NewService()

	// configure routes
	cr.Get("/", sy.Root)
	cr.Get("/test", sy.Test)
	cr.Get("/version", v.Current)

	cr.Route("/api", func(cr chi.Router) {
		cr.Get("/hello", sy.Hello)

		cr.Route("/solana", func(cr chi.Router) {
			cr.Get("/stats", st.Get)
			cr.Get("/recent-transactions", tx.Get)
			cr.Get("/search", se.Get)
		})
	})

	return cr
}
