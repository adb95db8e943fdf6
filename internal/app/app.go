// Package app wires configuration, logging, content, rooms, and the
// gateway into a running server process.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"riftlane/server/internal/config"
	"riftlane/server/internal/content"
	"riftlane/server/internal/input"
	servernet "riftlane/server/internal/net"
	"riftlane/server/internal/room"
	"riftlane/server/internal/telemetry"
)

// Run starts the server and blocks until the context is canceled or a
// fatal error occurs. Cancellation drains rooms and the HTTP server
// before returning nil.
func Run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := telemetry.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()

	reg, err := content.Load(cfg.Content.Dir)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	if err := reg.Validate(); err != nil {
		return fmt.Errorf("validate content: %w", err)
	}
	if _, ok := reg.Map(cfg.Content.Map); !ok {
		return fmt.Errorf("configured map %q not in content registry", cfg.Content.Map)
	}

	metrics := telemetry.NewCounters()
	sessions := servernet.NewSessionTable(metrics)
	manager := room.NewManager(ctx, room.Options{
		Logger:      logger,
		Metrics:     metrics,
		Registry:    reg,
		MapID:       cfg.Content.Map,
		Simulation:  cfg.Simulation,
		Replication: cfg.Replication,
		RateLimit:   rateLimits(cfg.RateLimit),
	}, sessions)
	intake := servernet.NewIntake(reg, manager, cfg.Server.PlayersPerTeam, logger)
	gateway := servernet.NewGateway(cfg.Server, manager, sessions, intake, logger, metrics)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: gateway.Handler(),
	}

	logger.Info("server starting",
		zap.Int("port", cfg.Server.Port),
		zap.Int("players_per_team", cfg.Server.PlayersPerTeam),
		zap.Int("tick_rate", cfg.Simulation.TickRate))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("http shutdown incomplete", zap.Error(err))
		}
		manager.Shutdown()
		return nil
	})
	return g.Wait()
}

// rateLimits merges configured per-type overrides over the stock input
// budgets.
func rateLimits(cfg config.RateLimitConfig) input.Config {
	limits := input.DefaultConfig()
	for inputType, n := range cfg.PerType {
		limits.Limits[inputType] = n
	}
	if cfg.Default > 0 {
		limits.Default = cfg.Default
	}
	return limits
}
