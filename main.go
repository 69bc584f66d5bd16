package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"entgo.io/ent/dialect"

	"github.com/topoclimb/topoclimb-gateway/api"
	"github.com/topoclimb/topoclimb-gateway/api/handler"
	"github.com/topoclimb/topoclimb-gateway/config"
	"github.com/topoclimb/topoclimb-gateway/ent"
	"github.com/topoclimb/topoclimb-gateway/ent/migrate"
	"github.com/topoclimb/topoclimb-gateway/federation"
	"github.com/topoclimb/topoclimb-gateway/registry"
	"github.com/topoclimb/topoclimb-gateway/topoclimb"

	_ "github.com/lib/pq"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	client, err := ent.Open(dialect.Postgres, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to open database connection", "error", err)
		os.Exit(1)
	}
	defer func() { _ = client.Close() }()

	if err := client.Schema.Create(
		context.Background(),
		migrate.WithGlobalUniqueID(true),
	); err != nil {
		slog.Error("failed to run schema migration", "error", err)
		os.Exit(1)
	}

	reg, err := registry.Open(
		context.Background(),
		registry.NewEntStore(client),
		cfg.DefaultBackendName,
		cfg.DefaultBackendURL,
	)
	if err != nil {
		slog.Error("failed to open endpoint registry", "error", err)
		os.Exit(1)
	}

	factory := federation.NewFactory(topoclimb.NewHTTPClient(cfg.FanOutTimeout))
	engine := federation.NewEngine(reg, factory)

	hub := handler.NewEventsHub()
	h, cleanup := api.NewRouter(client, cfg, engine, hub)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1 MiB
	}

	// Start server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("topoclimb gateway listening", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt or SIGTERM (e.g. from container orchestration).
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	hub.Shutdown()
	cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}
	slog.Info("server stopped")
}
