package filter

import "regexp"

// GrepConfig configures a Grep filter.
type GrepConfig struct {
	Pattern    string `mapstructure:"pattern"`
	IgnoreCase bool   `mapstructure:"ignore-case"`
	Invert     bool   `mapstructure:"invert"`
}

// Grep emits lines matching a regular expression (search semantics, not
// anchored). With Invert set, the emitted set is exactly the complement.
type Grep struct {
	pattern *regexp.Regexp
	invert  bool
}

// NewGrep compiles the pattern and returns a ready-to-run filter. An invalid
// pattern fails with a ConfigError before any line is read.
func NewGrep(cfg GrepConfig) (*Grep, error) {
	expr := cfg.Pattern
	if cfg.IgnoreCase {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &ConfigError{Field: "pattern", Reason: "not a valid regular expression", Err: err}
	}
	return &Grep{pattern: re, invert: cfg.Invert}, nil
}

func (g *Grep) Consume(line string) (string, bool) {
	if g.pattern.MatchString(line) != g.invert {
		return line, true
	}
	return "", false
}

func (g *Grep) Finalize() ([]string, error) { return nil, nil }
