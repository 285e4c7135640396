// Package filter implements line-oriented text filters sharing a single
// streaming contract. Per-line filters (Grep, Cut) decide emit-or-skip for
// each line independently; whole-stream filters (Sort, Uniq) accumulate
// every line and produce all output at finalization.
package filter

import (
	"linesieve/internal/metrics"
	"linesieve/internal/stream"
)

// Filter is the common contract for all line filters.
//
// Consume processes one line and returns the output line and whether it
// should be emitted immediately. Whole-stream filters accumulate in Consume
// and always return false; their entire output comes from Finalize.
//
// Finalize is called once after the source is exhausted. Per-line filters
// return (nil, nil). A non-nil error aborts the run and none of the returned
// lines are emitted.
type Filter interface {
	Consume(line string) (string, bool)
	Finalize() ([]string, error)
}

// Run drives f over every line of src and writes all produced output to dst.
// Source read errors abort immediately. A Finalize error aborts before any
// buffered output is written, so whole-stream failures are all-or-nothing.
func Run(f Filter, src *stream.Source, dst *stream.Sink) error {
	for src.Next() {
		metrics.IncLinesRead(1)
		out, emit := f.Consume(src.Line())
		if !emit {
			continue
		}
		if err := dst.WriteLine(out); err != nil {
			return err
		}
		metrics.IncLinesEmitted(1)
	}
	if err := src.Err(); err != nil {
		metrics.IncRunErrors()
		return err
	}

	out, err := f.Finalize()
	if err != nil {
		metrics.IncRunErrors()
		return err
	}
	for _, line := range out {
		if err := dst.WriteLine(line); err != nil {
			return err
		}
	}
	metrics.IncLinesEmitted(len(out))

	return dst.Flush()
}
