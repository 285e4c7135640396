package filter

import (
	"cmp"
	"slices"
	"strconv"
)

// UniqConfig configures a Uniq filter.
type UniqConfig struct {
	Count bool `mapstructure:"count"`
}

// Uniq collapses duplicate lines anywhere in the stream (not just adjacent
// ones) and emits each distinct line once, most frequent first. Ties keep
// first-encountered order. With Count set, each line is prefixed with its
// occurrence count and a space.
type Uniq struct {
	count  bool
	counts map[string]int
	// distinct line contents in first-seen order
	order []string
}

// NewUniq returns a ready-to-run dedup filter.
func NewUniq(cfg UniqConfig) (*Uniq, error) {
	return &Uniq{count: cfg.Count, counts: make(map[string]int)}, nil
}

func (u *Uniq) Consume(line string) (string, bool) {
	if _, seen := u.counts[line]; !seen {
		u.order = append(u.order, line)
	}
	u.counts[line]++
	return "", false
}

func (u *Uniq) Finalize() ([]string, error) {
	// stable sort over first-seen order gives the tie-break for free
	slices.SortStableFunc(u.order, func(a, b string) int {
		return cmp.Compare(u.counts[b], u.counts[a])
	})
	out := make([]string, len(u.order))
	for i, line := range u.order {
		if u.count {
			out[i] = strconv.Itoa(u.counts[line]) + " " + line
		} else {
			out[i] = line
		}
	}
	return out, nil
}
