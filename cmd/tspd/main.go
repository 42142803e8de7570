// Command tspd serves the city registry, distance matrices and route
// searches over HTTP.
//
//	tspd -config config.yaml
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/cities"
	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/config"
	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/distance"
	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/server"
	"golang.org/x/exp/slog"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML configuration file")
		envPath    = flag.String("env", ".env", "dotenv file with overrides")
		citiesPath = flag.String("cities", "", "city list (.yaml, .osm, .pbf); overrides the config")
	)
	flag.Parse()

	if err := run(*configPath, *envPath, *citiesPath); err != nil {
		slog.Error("tspd: " + err.Error())
		os.Exit(1)
	}
}

func run(configPath, envPath, citiesPath string) error {
	cfg, err := config.Load(configPath, envPath)
	if err != nil {
		return err
	}
	if citiesPath != "" {
		cfg.Cities = citiesPath
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel.Level()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry, err := cities.Load(ctx, cfg.Cities)
	if err != nil {
		return err
	}
	slog.Info("cities loaded", "file", cfg.Cities, "count", registry.Len(), "depot", registry.Depot().Name)

	provider, err := cfg.NewProvider(logger)
	if err != nil {
		return err
	}
	srv := server.New(registry, distance.NewBuilder(provider), server.Options{
		Metric:     cfg.Metric,
		SolveLimit: cfg.Server.SolveLimit,
		Logger:     logger,
	})
	if err = srv.Refresh(ctx); err != nil {
		return err
	}

	if cfg.Metric == distance.Road && cfg.Refresh.Enabled {
		scheduler := cron.New()
		_, err = scheduler.AddFunc(cfg.Refresh.Schedule, func() {
			rctx, cancel := context.WithTimeout(ctx, cfg.Router.TableTimeout+time.Second)
			defer cancel()
			if err := srv.Refresh(rctx); err != nil {
				slog.Error("scheduled refresh failed", "err", err)
			}
		})
		if err != nil {
			return err
		}
		scheduler.Start()
		defer scheduler.Stop()
		slog.Info("road matrix refresh scheduled", "schedule", cfg.Refresh.Schedule)
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Listen(cfg.Server.Addr) }()

	select {
	case err = <-errc:
		return err
	case <-ctx.Done():
		slog.Info("shutting down")
		return srv.Shutdown()
	}
}
