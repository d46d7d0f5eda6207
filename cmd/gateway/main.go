package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/solwatch/gateway/internal/config"
	"github.com/solwatch/gateway/internal/services/db"
	"github.com/solwatch/gateway/pkg/router"
	"github.com/solwatch/gateway/pkg/rpc"
	"github.com/solwatch/gateway/pkg/slog"
)

func main() {
	slog.Init()
	defer slog.Sync()

	logger := slog.Get()

	logger.Info("launching gateway...")

	env := flag.String("env", "", "path to .env file")

	port := flag.Int("port", 3000, "port to listen on")

	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Infof("received signal %v, initiating shutdown...", sig)
		cancel()
	}()

	conf, err := config.New(ctx, *env)
	if err != nil {
		logger.Fatal(err)
	}

	if conf.SentryURL != "" && conf.SentryURL != "x" {
		err = sentry.Init(sentry.ClientOptions{
			Dsn: conf.SentryURL,
			// Set TracesSampleRate to 1.0 to capture 100%
			// of transactions for performance monitoring.
			// We recommend adjusting this value in production,
			TracesSampleRate: 1.0,
		})
		if err != nil {
			logger.Fatalf("sentry.Init: %s", err)
		}
		// Flush buffered events before the program terminates.
		defer sentry.Flush(2 * time.Second)
	}

	logger.Infof("using rpc endpoint: %s", conf.RPCURL)

	client := rpc.NewClient(conf.RPCURL, conf.RPCTimeout)

	// The database only backs the diagnostics endpoint, so a failed
	// connection downgrades the report instead of stopping the service.
	var d *db.DB
	if conf.DatabaseURL != "" {
		d, err = db.NewDB(conf.DatabaseURL, conf.DatabaseName)
		if err != nil {
			logger.Warnw("database unavailable, continuing without it", "error", err)
			d = nil
		} else {
			defer d.Close()
		}
	}

	logger.Info("starting api service...")

	api := router.NewServer(conf, client, d)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%v", *port),
		Handler: api.Handler(),
	}

	go func() {
		logger.Infof("listening on port: %v", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorf("failed to start api service: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("error during server shutdown: %v", err)
	}

	logger.Info("gateway stopped")
}
