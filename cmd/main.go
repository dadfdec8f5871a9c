package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"adpacing/internal/adapter/http"
	"adpacing/internal/adapter/postgres"
	"adpacing/internal/adapter/scheduler"
	"adpacing/internal/adapter/usecase"
	"adpacing/internal/config"
	"adpacing/internal/core/pacing"
	"adpacing/internal/db"
	"adpacing/internal/metrics"
)

// main is the entry point of the pacing service. It loads configuration,
// optionally runs database migrations and seeds demo data, initializes the
// database pool, the pacing engine and the periodic pacing check, then
// starts the HTTP server. On receiving a termination signal it gracefully
// shuts down the scheduler and the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))

	loc, err := cfg.Pacing.Location()
	if err != nil {
		logger.Error("invalid pacing timezone", slog.String("timezone", cfg.Pacing.Timezone), slog.Any("error", err))
		return
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	metrics.Init()

	repo := postgres.NewBudgetRepository(pool)
	optimizer := pacing.NewOptimizer(loc, logger)
	svc := usecase.NewPacingUseCase(repo, optimizer, logger, cfg.Pacing.LookbackDays)

	var sched *scheduler.PacingScheduler
	if cfg.Pacing.SchedulerEnabled {
		sched, err = scheduler.NewPacingScheduler(svc, logger, loc, cfg.Pacing.CheckSchedule)
		if err != nil {
			logger.Error("scheduler error", slog.Any("error", err))
			return
		}
		sched.Start()
	}

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if sched != nil {
		sched.Stop(shutdownCtx)
	}
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
