// Package linesieve provides a simplified, stable root-level API for
// external users.
//
// Instead of importing internal subpackages, consumers can just:
//
//	import "linesieve"
//
// and use linesieve.NewGrep, linesieve.Run and friends directly.
package linesieve

import (
	"io"

	"linesieve/internal/filter"
	"linesieve/internal/metrics"
	"linesieve/internal/stream"

	"github.com/prometheus/client_golang/prometheus"
)

// Filter re-exports filter.Filter, the contract every command implements.
type Filter = filter.Filter

// Configuration types re-exported for root-level construction.
type (
	GrepConfig = filter.GrepConfig
	CutConfig  = filter.CutConfig
	SortConfig = filter.SortConfig
	UniqConfig = filter.UniqConfig
)

// Error types re-exported so callers can match on them with errors.As.
type (
	ConfigError = filter.ConfigError
	ParseError  = filter.ParseError
)

// IsConfigError reports whether err is a construction-time ConfigError.
func IsConfigError(err error) bool { return filter.IsConfigError(err) }

// IsParseError reports whether err is a whole-stream ParseError.
func IsParseError(err error) bool { return filter.IsParseError(err) }

// DefaultDelimiter is the field delimiter Cut uses when none is configured.
const DefaultDelimiter = filter.DefaultDelimiter

// NewGrep constructs a pattern-matching filter.
func NewGrep(cfg GrepConfig) (Filter, error) { return filter.NewGrep(cfg) }

// NewCut constructs a field-extraction filter.
func NewCut(cfg CutConfig) (Filter, error) { return filter.NewCut(cfg) }

// NewSort constructs a line-sorting filter.
func NewSort(cfg SortConfig) (Filter, error) { return filter.NewSort(cfg) }

// NewUniq constructs a duplicate-collapsing filter.
func NewUniq(cfg UniqConfig) (Filter, error) { return filter.NewUniq(cfg) }

// Run drives f over every line of r and writes all output lines to w.
func Run(f Filter, r io.Reader, w io.Writer) error {
	return filter.Run(f, stream.NewSource(r), stream.NewSink(w))
}

// StartMetrics registers linesieve metrics on the default Prometheus registry
// and starts an HTTP server. It returns a stop function to gracefully shut
// down the metrics server.
func StartMetrics(addr string) (func() error, error) {
	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		return nil, err
	}
	srv, err := metrics.Start(addr)
	if err != nil {
		return nil, err
	}
	return srv.Stop, nil
}
