package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hollyoak/GrazeGarden_Go/internal/clock"
	"github.com/hollyoak/GrazeGarden_Go/internal/config"
	"github.com/hollyoak/GrazeGarden_Go/internal/database"
	"github.com/hollyoak/GrazeGarden_Go/internal/database/postgres"
	"github.com/hollyoak/GrazeGarden_Go/internal/economy"
	"github.com/hollyoak/GrazeGarden_Go/internal/event"
	"github.com/hollyoak/GrazeGarden_Go/internal/eventlog"
	"github.com/hollyoak/GrazeGarden_Go/internal/garden"
	"github.com/hollyoak/GrazeGarden_Go/internal/handler"
	"github.com/hollyoak/GrazeGarden_Go/internal/metrics"
	"github.com/hollyoak/GrazeGarden_Go/internal/reward"
	"github.com/hollyoak/GrazeGarden_Go/internal/server"
	"github.com/hollyoak/GrazeGarden_Go/internal/session"
)

const (
	migrationsDir   = "migrations"
	shutdownTimeout = 10 * time.Second
	cleanupInterval = 24 * time.Hour
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	handler.InitValidator()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connString := cfg.GetDBConnString()

	pool, err := database.NewPool(connString, cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLife)
	if err != nil {
		slog.Error("Failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.RunMigrations(ctx, connString, migrationsDir); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	sessionRepo := postgres.NewSessionRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	rewardRepo := postgres.NewRewardRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	gridRepo := postgres.NewGridRepository(pool)
	eventLogRepo := postgres.NewEventLogRepository(pool)

	bus := event.NewMemoryBus()
	publisher, err := event.NewResilientPublisher(bus, event.ResilientConfig{
		MaxRetries:     event.RetryMaxAttempts,
		RetryDelay:     event.RetryInitialDelaySeconds * time.Second,
		DeadLetterPath: cfg.EventDeadLetterPath,
	})
	if err != nil {
		slog.Error("Failed to create event publisher", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			slog.Warn("Failed to close event publisher", "error", err)
		}
	}()

	eventLogService := eventlog.NewService(eventLogRepo)
	if err := eventLogService.Subscribe(bus); err != nil {
		slog.Error("Failed to subscribe event log", "error", err)
		os.Exit(1)
	}

	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(bus); err != nil {
		slog.Error("Failed to register metrics collector", "error", err)
		os.Exit(1)
	}

	clk := clock.NewRealClock()

	rewardService := reward.NewService(rewardRepo, statsRepo, sessionRepo, inventoryRepo, publisher, clk, cfg.OrnamentsEnabled)
	sessionService := session.NewService(sessionRepo, rewardService, publisher, clk)
	economyService := economy.NewService(statsRepo, inventoryRepo, gridRepo, publisher, rewardService)
	gardenService := garden.NewService(gridRepo, inventoryRepo, publisher, clk)

	go runEventLogCleanup(ctx, eventLogService, cfg.EventLogRetentionDays)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, pool, sessionService, gardenService, economyService, rewardService)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped")
}

// runEventLogCleanup prunes old event log rows once per day until ctx is done.
func runEventLogCleanup(ctx context.Context, svc eventlog.Service, retentionDays int) {
	job := eventlog.NewCleanupJob(svc, retentionDays)

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := job.Process(ctx); err != nil {
				slog.Warn("Event log cleanup failed", "error", err)
			}
		}
	}
}
