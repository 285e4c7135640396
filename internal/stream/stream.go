package stream

import (
	"bufio"
	"io"
	"strings"
)

// Source reads newline-terminated records from an io.Reader one at a time.
// The terminator (and a preceding carriage return, so CRLF input behaves)
// is stripped from each yielded line. A final line without a terminator is
// still yielded.
type Source struct {
	reader *bufio.Reader
	line   string
	err    error
	eof    bool
}

// NewSource wraps r in a buffered line source.
func NewSource(r io.Reader) *Source {
	return &Source{reader: bufio.NewReader(r)}
}

// Next advances to the next line. It returns false at end of input or on a
// read error; check Err after the loop to distinguish the two.
func (s *Source) Next() bool {
	if s.err != nil || s.eof {
		return false
	}
	chunk, err := s.reader.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			s.err = err
			return false
		}
		s.eof = true
		if chunk == "" {
			return false
		}
	}
	s.line = trimTerminator(chunk)
	return true
}

// Line returns the current line. Only valid after Next returned true.
func (s *Source) Line() string { return s.line }

// Err returns the first read error encountered, if any. io.EOF is not
// reported as an error.
func (s *Source) Err() error { return s.err }

func trimTerminator(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// Sink writes lines to an io.Writer, re-appending the line terminator on
// every write. Output is buffered; call Flush before discarding the sink.
type Sink struct {
	writer *bufio.Writer
}

// NewSink wraps w in a buffered line sink.
func NewSink(w io.Writer) *Sink {
	return &Sink{writer: bufio.NewWriter(w)}
}

// WriteLine writes one line followed by a newline.
func (s *Sink) WriteLine(line string) error {
	if _, err := s.writer.WriteString(line); err != nil {
		return err
	}
	return s.writer.WriteByte('\n')
}

// Flush writes any buffered output to the underlying writer.
func (s *Sink) Flush() error { return s.writer.Flush() }
