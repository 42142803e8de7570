// Command tspreport prints the coordinate table and distance matrix of a
// city registry, and optionally the routes found by each search.
//
//	tspreport -cities data/cities.yaml -metric road -solve
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/kr/pretty"
	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/cities"
	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/config"
	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/distance"
	"golang.org/x/exp/slog"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML configuration file")
		envPath    = flag.String("env", ".env", "dotenv file with overrides")
		citiesPath = flag.String("cities", "", "city list; overrides the config")
		metricName = flag.String("metric", "", "aerial or road; overrides the config")
		forced     = flag.Bool("forced", false, "build road distances one pair at a time")
		solve      = flag.Bool("solve", false, "also print nearest-neighbor and brute-force routes")
		dump       = flag.Bool("dump", false, "dump the build result structure")
	)
	flag.Parse()

	if err := run(*configPath, *envPath, *citiesPath, *metricName, *forced, *solve, *dump); err != nil {
		fmt.Fprintln(os.Stderr, "tspreport:", err)
		os.Exit(1)
	}
}

func run(configPath, envPath, citiesPath, metricName string, forced, solve, dump bool) error {
	cfg, err := config.Load(configPath, envPath)
	if err != nil {
		return err
	}
	if citiesPath != "" {
		cfg.Cities = citiesPath
	}
	if metricName != "" {
		if cfg.Metric, err = distance.MetricFromString(metricName); err != nil {
			return err
		}
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel.Level()}))

	ctx := context.Background()
	registry, err := cities.Load(ctx, cfg.Cities)
	if err != nil {
		return err
	}
	provider, err := cfg.NewProvider(logger)
	if err != nil {
		return err
	}
	builder := distance.NewBuilder(provider)

	var res distance.Result
	if forced {
		res, err = builder.BuildForced(ctx, registry.Coords())
	} else {
		res, err = builder.Build(ctx, registry.Coords(), cfg.Metric)
	}
	if err != nil {
		return err
	}

	w := os.Stdout
	if err = writeReport(w, registry, res, forced); err != nil {
		return err
	}
	if solve {
		if err = writeRoutes(w, registry, res.Matrix); err != nil {
			return err
		}
	}
	if dump {
		_, err = pretty.Fprintf(w, "%# v\n", res)
	}
	return err
}
