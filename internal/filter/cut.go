package filter

import (
	"fmt"
	"strings"
)

// DefaultDelimiter is the field delimiter used when none is configured.
const DefaultDelimiter = "\t"

// CutConfig configures a Cut filter. Fields are zero-based indices; repeats
// are allowed and output follows the order given here, not the line order.
type CutConfig struct {
	Fields    []int  `mapstructure:"fields"`
	Delimiter string `mapstructure:"delimiter"`
}

// Cut extracts delimiter-separated fields from each line.
type Cut struct {
	fields    []int
	delimiter string
}

// NewCut validates the field list and returns a ready-to-run filter.
func NewCut(cfg CutConfig) (*Cut, error) {
	if len(cfg.Fields) == 0 {
		return nil, &ConfigError{Field: "fields", Reason: "at least one field index is required"}
	}
	for _, i := range cfg.Fields {
		if i < 0 {
			return nil, &ConfigError{Field: "fields", Reason: fmt.Sprintf("field index %d is negative", i)}
		}
	}
	delim := cfg.Delimiter
	if delim == "" {
		delim = DefaultDelimiter
	}
	return &Cut{fields: cfg.Fields, delimiter: delim}, nil
}

// Consume splits the line on every delimiter occurrence (consecutive
// delimiters yield empty fields, no merging) and joins the selected fields
// with the same delimiter. If any requested index is out of range for this
// line, the original line is emitted unchanged.
func (c *Cut) Consume(line string) (string, bool) {
	parts := strings.Split(line, c.delimiter)
	selected := make([]string, 0, len(c.fields))
	for _, i := range c.fields {
		if i >= len(parts) {
			return line, true
		}
		selected = append(selected, parts[i])
	}
	return strings.Join(selected, c.delimiter), true
}

func (c *Cut) Finalize() ([]string, error) { return nil, nil }
