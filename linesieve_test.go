package linesieve_test

import (
	"bytes"
	"strings"
	"testing"

	"linesieve"
)

func TestRootAPI_GrepPipeline(t *testing.T) {
	f, err := linesieve.NewGrep(linesieve.GrepConfig{Pattern: "error", IgnoreCase: true})
	if err != nil {
		t.Fatalf("NewGrep failed: %v", err)
	}

	var out bytes.Buffer
	if err := linesieve.Run(f, strings.NewReader("Error: x\nok\nerror: y\n"), &out); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if out.String() != "Error: x\nerror: y\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestRootAPI_ErrorHelpers(t *testing.T) {
	_, err := linesieve.NewGrep(linesieve.GrepConfig{Pattern: "["})
	if err == nil || !linesieve.IsConfigError(err) {
		t.Fatalf("expected ConfigError, got %v", err)
	}

	f, err := linesieve.NewSort(linesieve.SortConfig{Numeric: true})
	if err != nil {
		t.Fatalf("NewSort failed: %v", err)
	}
	var out bytes.Buffer
	err = linesieve.Run(f, strings.NewReader("12\nbeta\n"), &out)
	if err == nil || !linesieve.IsParseError(err) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("no output expected on parse failure, got %q", out.String())
	}
}

func TestRootAPI_UniqSortChain(t *testing.T) {
	u, err := linesieve.NewUniq(linesieve.UniqConfig{})
	if err != nil {
		t.Fatalf("NewUniq failed: %v", err)
	}
	var deduped bytes.Buffer
	if err := linesieve.Run(u, strings.NewReader("b\na\nb\nc\na\n"), &deduped); err != nil {
		t.Fatalf("Run uniq failed: %v", err)
	}

	s, err := linesieve.NewSort(linesieve.SortConfig{})
	if err != nil {
		t.Fatalf("NewSort failed: %v", err)
	}
	var sorted bytes.Buffer
	if err := linesieve.Run(s, &deduped, &sorted); err != nil {
		t.Fatalf("Run sort failed: %v", err)
	}
	if sorted.String() != "a\nb\nc\n" {
		t.Fatalf("got %q", sorted.String())
	}
}
