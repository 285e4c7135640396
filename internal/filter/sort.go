package filter

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// SortConfig configures a Sort filter.
type SortConfig struct {
	Reverse bool `mapstructure:"reverse"`
	Numeric bool `mapstructure:"numeric"`
}

// Sort buffers every line and emits them sorted at finalization. The sort is
// stable, so ties keep their input order.
type Sort struct {
	reverse bool
	numeric bool
	lines   []string
}

// NewSort returns a ready-to-run sort filter.
func NewSort(cfg SortConfig) (*Sort, error) {
	return &Sort{reverse: cfg.Reverse, numeric: cfg.Numeric}, nil
}

func (s *Sort) Consume(line string) (string, bool) {
	s.lines = append(s.lines, line)
	return "", false
}

// Finalize sorts the buffered lines once: byte-order comparison by default,
// float64 comparison in numeric mode. A line that does not parse in numeric
// mode fails the whole run with a ParseError; nothing is emitted.
func (s *Sort) Finalize() ([]string, error) {
	if s.numeric {
		return s.finalizeNumeric()
	}
	slices.SortStableFunc(s.lines, func(a, b string) int {
		return s.order(strings.Compare(a, b))
	})
	return s.lines, nil
}

func (s *Sort) finalizeNumeric() ([]string, error) {
	type keyed struct {
		key  float64
		line string
	}
	items := make([]keyed, len(s.lines))
	for i, line := range s.lines {
		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			return nil, &ParseError{Line: line, LineNum: i + 1, Err: err}
		}
		items[i] = keyed{key: v, line: line}
	}
	slices.SortStableFunc(items, func(a, b keyed) int {
		return s.order(cmp.Compare(a.key, b.key))
	})
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.line
	}
	return out, nil
}

func (s *Sort) order(c int) int {
	if s.reverse {
		return -c
	}
	return c
}
