package filter

import "testing"

func TestGrep_MatchAnywhere(t *testing.T) {
	g, err := NewGrep(GrepConfig{Pattern: "err"})
	if err != nil {
		t.Fatalf("NewGrep failed: %v", err)
	}
	if out, emit := g.Consume("no errors here"); !emit || out != "no errors here" {
		t.Fatalf("expected match to emit line unchanged, got %q emit=%v", out, emit)
	}
	if _, emit := g.Consume("all good"); emit {
		t.Fatal("expected non-matching line to be skipped")
	}
}

func TestGrep_IgnoreCase(t *testing.T) {
	g, err := NewGrep(GrepConfig{Pattern: "ERROR", IgnoreCase: true})
	if err != nil {
		t.Fatalf("NewGrep failed: %v", err)
	}
	for _, line := range []string{"Error: x", "error: y", "ERROR: z"} {
		if _, emit := g.Consume(line); !emit {
			t.Fatalf("expected %q to match case-insensitively", line)
		}
	}
}

func TestGrep_Invert(t *testing.T) {
	g, err := NewGrep(GrepConfig{Pattern: "drop", Invert: true})
	if err != nil {
		t.Fatalf("NewGrep failed: %v", err)
	}
	if _, emit := g.Consume("drop this"); emit {
		t.Fatal("expected matching line to be skipped with invert")
	}
	if _, emit := g.Consume("keep this"); !emit {
		t.Fatal("expected non-matching line to be emitted with invert")
	}
}

// The invert output set must be exactly the complement of the non-invert
// output set over the same input.
func TestGrep_InvertIsComplement(t *testing.T) {
	lines := []string{"alpha", "beta", "alphabet", "gamma", ""}

	plain, err := NewGrep(GrepConfig{Pattern: "alpha"})
	if err != nil {
		t.Fatalf("NewGrep failed: %v", err)
	}
	inverted, err := NewGrep(GrepConfig{Pattern: "alpha", Invert: true})
	if err != nil {
		t.Fatalf("NewGrep failed: %v", err)
	}

	for _, line := range lines {
		_, a := plain.Consume(line)
		_, b := inverted.Consume(line)
		if a == b {
			t.Fatalf("line %q: invert must flip the emit decision", line)
		}
	}
}

func TestGrep_Deterministic(t *testing.T) {
	lines := []string{"x1", "y2", "x3"}
	for run := 0; run < 2; run++ {
		g, err := NewGrep(GrepConfig{Pattern: "x"})
		if err != nil {
			t.Fatalf("NewGrep failed: %v", err)
		}
		var got []string
		for _, line := range lines {
			if out, emit := g.Consume(line); emit {
				got = append(got, out)
			}
		}
		if len(got) != 2 || got[0] != "x1" || got[1] != "x3" {
			t.Fatalf("run %d: got %v", run, got)
		}
	}
}

func TestGrep_InvalidPatternIsConfigError(t *testing.T) {
	_, err := NewGrep(GrepConfig{Pattern: "("})
	if err == nil {
		t.Fatal("expected error for invalid pattern")
	}
	if !IsConfigError(err) {
		t.Fatalf("expected ConfigError, got %T: %v", err, err)
	}
}

func TestGrep_FinalizeIsEmpty(t *testing.T) {
	g, err := NewGrep(GrepConfig{Pattern: "x"})
	if err != nil {
		t.Fatalf("NewGrep failed: %v", err)
	}
	g.Consume("x")
	out, err := g.Finalize()
	if err != nil || len(out) != 0 {
		t.Fatalf("per-line filter Finalize should be empty, got %v, %v", out, err)
	}
}
