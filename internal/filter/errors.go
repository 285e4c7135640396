package filter

import (
	"errors"
	"fmt"
)

// ConfigError indicates an invalid filter configuration detected at
// construction time, before any line is read.
type ConfigError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// IsConfigError determines if the provided error is of type ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// ParseError indicates that a line failed a required conversion during
// whole-stream processing. LineNum is the 1-based position of the offending
// line in the input.
type ParseError struct {
	Line    string
	LineNum int
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q is not a number: %v", e.LineNum, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsParseError determines if the provided error is of type ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
