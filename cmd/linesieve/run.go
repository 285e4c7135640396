package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"linesieve/internal/filter"
	"linesieve/internal/metrics"
	"linesieve/internal/stream"

	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// runFilter opens the configured streams, drives the filter over the input,
// and tears everything down. One invocation owns its filter and streams
// exclusively; processing is strictly sequential.
func runFilter(config *Config, command string, f filter.Filter) error {
	// Optionally start Prometheus metrics endpoint
	var metricsStop = func() error { return nil }
	if config.Prometheus.Enable {
		// Register metrics explicitly to the default registry to avoid
		// init-time side effects
		if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
			return fmt.Errorf("failed to register prometheus metrics: %w", err)
		}
		metricsServer, err := metrics.Start(config.Prometheus.Addr)
		if err != nil {
			return fmt.Errorf("failed to start prometheus endpoint: %w", err)
		}
		metricsStop = metricsServer.Stop
	}
	defer func() { _ = metricsStop() }()

	in, err := stream.Open(config.Input)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer func() { _ = in.Close() }()

	out, err := stream.Create(config.Output)
	if err != nil {
		return fmt.Errorf("failed to open output: %w", err)
	}

	slog.Debug("starting filter run", "command", command, "input", config.Input, "output", config.Output)

	start := time.Now()
	runErr := filter.Run(f, stream.NewSource(in), stream.NewSink(out))
	metrics.ObserveRunDuration(command, time.Since(start))

	if cerr := out.Close(); runErr == nil {
		runErr = cerr
	}
	if runErr != nil {
		return runErr
	}

	slog.Debug("filter run complete", "command", command, "duration", time.Since(start))
	return nil
}

// setupLogging installs the default slog handler according to config:
// text to stderr, or to a size-rotated file when log.file is set.
func setupLogging(config *Config) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(config.Log.Level)); err != nil {
		return fmt.Errorf("invalid log.level %q: %w", config.Log.Level, err)
	}

	var w io.Writer = os.Stderr
	if config.Log.File != "" {
		w = &lumberjack.Logger{
			Filename:   config.Log.File,
			MaxSize:    config.Log.MaxSizeMB,
			MaxBackups: config.Log.MaxBackups,
			MaxAge:     config.Log.MaxAgeDays,
		}
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return nil
}
