// Package grader drives the fixed/random test regime: it assembles a
// field once, runs the puzzle's three canonical tests, then (if those
// pass, or if fixed testing was skipped) fans a pool of worker
// goroutines out across a set of random seed ranges, aggregating a
// Score and a cheat/hardcoded classification.
package grader

import "github.com/killerbee13/tis100-go/node"

// Params bundles every per-run tuning knob the CLI flag table exposes.
// Run uses every field as given; it does not substitute DefaultParams'
// values for zero fields. A zero T21Size or T30Size makes the node
// constructors fall back to their default capacity.
type Params struct {
	CyclesLimit      int     // per-test cycle cap
	TotalCyclesLimit int     // aggregate cycles across all random tests; 0 = unbounded
	LimitMultiplier  float64 // random-test timeout = min(CyclesLimit, ceil(fixedCycles*LimitMultiplier))
	CheatRate        float64 // threshold in [0,1]
	T21Size          int     // per-node instruction capacity
	T30Size          int     // per-node stack capacity
	NumThreads       int     // 0 = runtime.GOMAXPROCS(0)
	RunFixed         bool    // run the 3 static tests before any random tests
	ComputeStats     bool    // disable early stopping; run every seed
}

// DefaultParams mirrors the CLI's documented defaults.
func DefaultParams() Params {
	return Params{
		CyclesLimit:      150000,
		TotalCyclesLimit: 0,
		LimitMultiplier:  5.0,
		CheatRate:        0.05,
		T21Size:          node.DefaultT21Size,
		T30Size:          node.DefaultT30Size,
		NumThreads:       0,
		RunFixed:         true,
		ComputeStats:     false,
	}
}
