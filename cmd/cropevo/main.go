package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/agrosolve/cropevo/pkg/config"
	"github.com/agrosolve/cropevo/pkg/experiment"
	"github.com/agrosolve/cropevo/pkg/logging"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (defaults to the built-in reference problem)")
	chartPath := flag.String("chart", "", "override the fitness chart output path (empty string keeps the config value)")
	seed := flag.Int64("seed", 0, "override the random seed (0 keeps the config value)")
	workers := flag.Int("workers", 0, "override the worker count (0 keeps the config value)")
	flag.Parse()

	if err := run(*configPath, *chartPath, *seed, *workers); err != nil {
		fmt.Fprintf(os.Stderr, "cropevo: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, chartPath string, seed int64, workers int) error {
	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if chartPath != "" {
		cfg.Output.ChartPath = chartPath
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if workers != 0 {
		cfg.Workers = workers
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := logging.NewLogger(logging.Config{
		Severity: logging.ParseSeverity(cfg.LogLevel),
		Outputs:  []logging.Output{logging.NewConsoleOutput(true, logging.WithColor(true))},
	})
	logging.SetLogger(logger)

	problem, err := cfg.BuildProblem()
	if err != nil {
		return err
	}

	ctx := context.Background()
	results, err := experiment.RunAll(ctx, problem, cfg.Params(), cfg.Seed, cfg.Workers)
	if err != nil {
		return err
	}

	for _, r := range results {
		fmt.Print(experiment.FormatResult(r, cfg.Problem.CropNames))
	}

	if cfg.Output.ChartPath != "" {
		if err := experiment.RenderTraces(results, "Best fitness per generation", cfg.Output.ChartPath); err != nil {
			return err
		}
		logger.Info(ctx, "fitness chart written to %s", cfg.Output.ChartPath)
	}

	return nil
}
