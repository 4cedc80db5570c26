package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	httpadapter "cpc-billing/internal/adapter/http"
	"cpc-billing/internal/adapter/postgres"
	"cpc-billing/internal/adapter/usecase"
	"cpc-billing/internal/config"
	"cpc-billing/internal/core/domain"
	"cpc-billing/internal/db"
	"cpc-billing/internal/metrics"
	"cpc-billing/internal/rollup"
)

// main is the entry point of the click billing service. It loads
// configuration, optionally runs database migrations and seeds demo data,
// wires the billing engine to PostgreSQL, then serves HTTP and runs the
// daily rollup until a termination signal arrives.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(cfg.Log.NewHandler(os.Stdout)).With(slog.String("env", cfg.Env))

	if err = run(cfg, logger); err != nil {
		logger.Error("service stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("service stopped")
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo data seeded")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	clickMetrics := metrics.NewClickMetrics(reg)

	repo := postgres.NewLedgerRepository(pool,
		postgres.WithTxTimeout(cfg.Psql.TxTimeout),
		postgres.WithLockTimeout(cfg.Psql.LockTimeout),
	)
	svc := usecase.NewClickUseCase(repo,
		usecase.WithBudgetPolicy(domain.BudgetPolicy{
			ReserveRatio: cfg.Billing.ReserveRatio,
			WarningRatio: cfg.Billing.WarningRatio,
		}),
		usecase.WithAttributionSink(repo),
		usecase.WithAttributionTimeout(cfg.Billing.AttributionTimeout),
		usecase.WithDuplicateClickWindow(cfg.Billing.DuplicateClickWindow),
		usecase.WithLogger(logger.With(slog.String("component", "billing"))),
		usecase.WithMetrics(clickMetrics),
	)

	scheduler, err := rollup.New(repo, cfg.Billing.RollupSchedule,
		rollup.WithIdempotencyTTL(cfg.Billing.IdempotencyTTL),
		rollup.WithLogger(logger.With(slog.String("component", "rollup"))),
		rollup.WithMetrics(clickMetrics),
	)
	if err != nil {
		return err
	}

	handler := httpadapter.NewHandler(svc, logger, reg)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		scheduler.Start()
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
		} else {
			logger.Info("server gracefully stopped")
		}
		if err := scheduler.Stop(shutdownCtx); err != nil {
			logger.Warn("rollup did not stop in time", slog.Any("error", err))
		}
		return nil
	})
	return g.Wait()
}
