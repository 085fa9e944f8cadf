// Command parscan runs and times the scan operations on integer arrays.
//
// Usage:
//
//	parscan -mode scan|repeats|count|devices [-in file | -n size -limit max -sorted -seed s] [-out file]
//
// Input files and output files are Arrow IPC streams (.arrow), Parquet
// files (.parquet), or text. Without -in, a random array is generated.
// Configuration comes from PARSCAN_ environment variables, optionally
// loaded from a .env file.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/exascience/parscan/bench"
	"github.com/exascience/parscan/dataset"
	"github.com/exascience/parscan/device"
	"github.com/exascience/parscan/internal/logging"
)

const modeDevices = "devices"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "parscan:", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("parscan", flag.ContinueOnError)
	var (
		mode       = flags.String("mode", string(bench.OpScan), "operation: scan, repeats, count, or devices")
		in         = flags.String("in", "", "input file (.arrow, .parquet, or text); generated if empty")
		out        = flags.String("out", "", "output file for scan results or repeat indices")
		size       = flags.Int("n", 1<<20, "size of the generated input")
		limit      = flags.Int("limit", 1000, "generated values are in [0, limit)")
		sorted     = flags.Bool("sorted", false, "sort the generated input")
		seed       = flags.Int64("seed", 1, "seed for the generated input")
		iterations = flags.Int("iterations", 0, "timed iterations, overrides PARSCAN_ITERATIONS")
		kind       = flags.String("device", "", "device kind, overrides PARSCAN_DEVICE")
		verify     = flags.Bool("verify", false, "verify against the sequential device")
		envFile    = flags.String("env", ".env", "environment file")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *size < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, *size)
	}

	cfg, err := LoadConfig(*envFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *iterations > 0 {
		cfg.Iterations = *iterations
	}
	if *kind != "" {
		cfg.Device = *kind
	}
	cfg.Verify = cfg.Verify || *verify
	if err := ValidateConfig(&cfg); err != nil {
		return err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Format, logCfg.Level = cfg.LogFormat, cfg.LogLevel
	logger, err := logging.NewLogger(logCfg)
	if err != nil {
		return err
	}
	if cfg.MetricsAddr != "" {
		serveMetrics(cfg.MetricsAddr, logger)
	}

	opts := []device.Option{
		device.WithBatches(cfg.Batches),
		device.WithMemoryLimit(cfg.MaxMemory),
		device.WithLogger(logger),
	}

	if *mode == modeDevices {
		return listDevices(ctx, stdout, opts)
	}

	op, err := bench.ParseOp(*mode)
	if err != nil {
		return err
	}
	dev, err := device.New(cfg.Device, opts...)
	if err != nil {
		return err
	}

	var input []int
	if *in != "" {
		if input, err = dataset.Load(*in); err != nil {
			return err
		}
	} else {
		input = dataset.Generate(*size, *limit, *sorted, *seed)
	}
	logger.Info().Int("n", len(input)).Str("device", dev.Info().Name).Str("op", string(op)).Msg("input ready")

	report, err := bench.Run(dev, op, input, bench.Options{
		Iterations: cfg.Iterations,
		Verify:     cfg.Verify,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	if *out != "" {
		if report.Output == nil {
			return errors.New("operation count has no output to save")
		}
		if err := dataset.Save(*out, report.Output); err != nil {
			return err
		}
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func listDevices(ctx context.Context, stdout io.Writer, opts []device.Option) error {
	infos, err := device.Enumerate(ctx, device.NewParallel(opts...), device.NewSequential(opts...))
	if err != nil {
		return err
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(infos)
}

func serveMetrics(addr string, logger zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		logger.Info().Str("address", addr).Msg("starting metrics server")
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Error().Err(err).Msg("metrics server stopped")
		}
	}()
}
