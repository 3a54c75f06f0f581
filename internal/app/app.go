package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/marketstage/backend/internal/adapter/postgres"
	"github.com/marketstage/backend/internal/adapter/postgres/catalog"
	"github.com/marketstage/backend/internal/adapter/postgres/event"
	"github.com/marketstage/backend/internal/adapter/postgres/inventory"
	"github.com/marketstage/backend/internal/adapter/postgres/inventoryaudit"
	"github.com/marketstage/backend/internal/adapter/postgres/team"
	"github.com/marketstage/backend/internal/adapter/webhook"
	"github.com/marketstage/backend/internal/auth"
	"github.com/marketstage/backend/internal/config"
	chaossvc "github.com/marketstage/backend/internal/service/chaos"
	"github.com/marketstage/backend/internal/service/eventlog"
	inventorysvc "github.com/marketstage/backend/internal/service/inventory"
	"github.com/marketstage/backend/internal/transport/middleware"
	"github.com/marketstage/backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, assembles the services and the HTTP transport, and serves
// until the process receives SIGINT or SIGTERM.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("mode", cfg.Platform.Mode),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	eventRepo := event.New(pool)
	inventoryRepo := inventory.New(pool)
	auditRepo := inventoryaudit.New(pool)
	catalogRepo := catalog.New(pool)
	teamRepo := team.New(pool)

	eventsSvc := eventlog.NewService(logger, eventRepo, nil, cfg.Events)
	if sink := webhook.New(cfg.Webhook, logger); sink != nil {
		eventsSvc = eventlog.NewService(logger, eventRepo, sink, cfg.Events)
	}
	inventorySvc := inventorysvc.NewService(logger, inventoryRepo, auditRepo, catalogRepo, teamRepo, txManager)
	chaosSvc := chaossvc.NewService(logger, eventsSvc, cfg.Chaos)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)

	router := rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
		Events:    rest.NewEventHandler(eventsSvc, logger),
		Inventory: rest.NewInventoryHandler(inventorySvc, logger),
		Teams:     rest.NewTeamHandler(inventorySvc, tokens, logger),
		Chaos:     rest.NewChaosHandler(chaosSvc, logger),
	})

	limiter := middleware.NewRateLimiter(cfg.Limits.CleanupInterval)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(tokens),
		limiter.Limit(cfg.Limits.RequestsPerMinute),
		middleware.WriteGate(cfg.Platform),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped cleanly")
	return nil
}
