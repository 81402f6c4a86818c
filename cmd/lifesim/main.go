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

	"golang.org/x/sync/errgroup"

	"github.com/rahidmondal/life-at-dev-sub000/internal/config"
	"github.com/rahidmondal/life-at-dev-sub000/internal/data"
	"github.com/rahidmondal/life-at-dev-sub000/internal/db"
	"github.com/rahidmondal/life-at-dev-sub000/internal/metrics"
	"github.com/rahidmondal/life-at-dev-sub000/internal/model"
	"github.com/rahidmondal/life-at-dev-sub000/internal/save"
	"github.com/rahidmondal/life-at-dev-sub000/internal/sim"
)

const ConfigPath = "config/lifesim.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("LIFESIM_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadLifeSim(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Info("lifesim starting",
		"log_level", cfg.LogLevel,
		"runs", cfg.Simulation.Runs,
		"seed", cfg.Simulation.Seed,
		"parallelism", cfg.Simulation.Parallelism)

	m := metrics.New()

	var store save.Store = save.NewMemoryStore(m)
	if cfg.Database.Enabled {
		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		database, err := db.New(ctx, cfg.Database.DSN(), int32(cfg.Simulation.Parallelism))
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()
		store = database.Saves(m)
		slog.Info("database connected, saves go to postgres")
	}

	runner := sim.NewRunner(data.Default(), store, save.RealClock{}, m, slog.Default())

	g, gctx := errgroup.WithContext(ctx)
	simDone := make(chan struct{})

	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", m.Handler())
		srv := &http.Server{Addr: cfg.MetricsAddr, Handler: mux}

		g.Go(func() error {
			slog.Info("metrics server listening", "addr", cfg.MetricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			// Keep serving after the batch until interrupted so the final
			// counters can be scraped.
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	g.Go(func() error {
		defer close(simDone)
		sums, err := runner.Run(gctx, sim.Config{
			Runs:        cfg.Simulation.Runs,
			Seed:        cfg.Simulation.Seed,
			MaxTurns:    cfg.Simulation.MaxTurns,
			Path:        model.StartingPath(cfg.Simulation.StartingPath),
			PlayerName:  cfg.Simulation.PlayerName,
			Parallelism: cfg.Simulation.Parallelism,
		})
		if err != nil {
			return fmt.Errorf("simulation: %w", err)
		}
		report(sums)
		return nil
	})

	if cfg.MetricsAddr == "" {
		if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}

	<-simDone
	slog.Info("batch finished, serving metrics until interrupted")
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func report(sums []sim.Summary) {
	t := sim.Summarize(sums)
	for reason, n := range t.ByReason {
		slog.Info("outcome", "reason", reason, "runs", n)
	}
	slog.Info("batch summary",
		"runs", t.Runs,
		"wins", t.Wins,
		"mean_weeks", fmt.Sprintf("%.1f", t.MeanWeeks))
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
