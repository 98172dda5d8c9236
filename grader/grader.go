package grader

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/killerbee13/tis100-go/asm"
	"github.com/killerbee13/tis100-go/catalog"
	"github.com/killerbee13/tis100-go/field"
)

// stopRequested is the cooperative cancellation flag, set from a signal
// handler and polled once per simulated cycle. A run that observes it
// returns early; whatever score accumulated so far is still reported.
var stopRequested atomic.Bool

// RequestStop asks every in-flight run to wind down at its next cycle
// boundary. Safe to call from a signal handler goroutine.
func RequestStop() { stopRequested.Store(true) }

// ResetStop re-arms after a stop, for callers grading several solutions
// in one process.
func ResetStop() { stopRequested.Store(false) }

// Run assembles prog into a fresh field for puzzle, runs the fixed test
// battery (if params.RunFixed), then the random tests drawn from seeds,
// and returns the aggregated Score.
func Run(puzzle catalog.Puzzle, prog *asm.Program, seeds []SeedRange, params Params) (Score, error) {
	engine := sim.NewSerialEngine()
	master := field.NewField(engine, 1*sim.GHz, "Tis100", puzzle.Layout, params.T21Size, params.T30Size)
	if err := asm.Install(master, prog); err != nil {
		return Score{}, err
	}
	master.Link()

	sc := Score{Nodes: master.NodesUsed(), Instructions: master.Instructions()}

	var fixedCycles uint64
	fixedPassed := true
	if params.RunFixed {
		fixed, err := puzzle.FixedTests()
		if err != nil {
			return Score{}, err
		}
		for i, t := range fixed {
			cycles, validated, failErr := runOneTest(master, t, params.CyclesLimit)
			if cycles > fixedCycles {
				fixedCycles = cycles
			}
			if !validated {
				fixedPassed = false
				sc.FailureReason = explainFixedFailure(i, cycles, params.CyclesLimit, failErr)
				break
			}
			if len(master.Inputs()) == 0 {
				// Invariant levels (the image test patterns) generate the
				// same test for every seed; one round proves all three.
				break
			}
			if stopRequested.Load() {
				break
			}
		}
		sc.Validated = fixedPassed
		if fixedPassed {
			sc.Cycles = fixedCycles
			sc.Achievement = catalog.Achievement(puzzle.Segment, master, sc.Cycles)
		}
	}

	// ComputeStats forces the random battery even after a fixed-test
	// failure: stats mode wants the pass rate regardless of validation.
	runRandom := len(seeds) > 0 && (fixedPassed || !params.RunFixed || params.ComputeStats)
	if !runRandom {
		return sc, nil
	}
	if len(master.Inputs()) == 0 {
		// Sandbox/image-only levels have nothing to vary across seeds;
		// the reference runs exactly one synthetic iteration instead of
		// spinning up worker goroutines over a range that means nothing.
		seeds = []SeedRange{{Start: 0, End: 0}}
	}

	limit := params.CyclesLimit
	if params.RunFixed && fixedPassed {
		scaled := int(math.Ceil(float64(fixedCycles) * params.LimitMultiplier))
		if scaled < limit {
			limit = scaled
		}
	}

	worst, ran, valid, err := runSeedRanges(master, engine, puzzle, seeds, limit, params)
	if err != nil {
		return sc, err
	}
	sc.RandomTestRan = uint32(ran)
	sc.RandomTestValid = uint32(valid)
	if !params.RunFixed {
		// Achievements stay unset here: they are only evaluated when the
		// full fixed battery passes.
		sc.Cycles = worst
		sc.Validated = valid > 0
	}
	sc.Cheat = ran == 0 || valid < ran
	sc.Hardcoded = float64(valid) <= float64(ran)*params.CheatRate
	return sc, nil
}

// runSeedRanges fans seeds out across params.NumThreads worker
// goroutines, each driving its own clone of master: a shared seedCursor
// hands out work, a shared aggregate collects results, and each
// worker's field clone is otherwise untouched by the others.
func runSeedRanges(master *field.Field, engine sim.Engine, gen puzzleSource, seeds []SeedRange, limit int, params Params) (worst uint64, ran, valid int, err error) {
	threads := params.NumThreads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	if u := TotalSeeds(seeds); u < uint64(threads) {
		threads = int(u)
	}
	if threads < 1 {
		threads = 1
	}

	cursor := newSeedCursor(seeds)
	agg := &aggregate{}

	stopThreshold := 0.0
	if !params.ComputeStats {
		stopThreshold = params.CheatRate * float64(TotalSeeds(seeds))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	for i := 0; i < threads; i++ {
		worker := master.Clone(engine, fmt.Sprintf("Tis100Worker%d", i))
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				default:
				}
				seed, ok := cursor.next()
				if !ok {
					return nil
				}
				test, terr := gen.RandomTest(seed)
				if terr != nil {
					return terr
				}
				if test == nil {
					continue // generator signaled skip
				}
				cycles, validated, failErr := runOneTest(worker, *test, limit)
				if stopRequested.Load() {
					return nil
				}
				detail := explainRandomFailure(seed, cycles, limit, failErr)
				keepGoing := agg.record(seed, cycles, validated, detail, params.TotalCyclesLimit, stopThreshold)
				if !keepGoing {
					cancel()
					return nil
				}
			}
		})
	}

	if werr := g.Wait(); werr != nil {
		return 0, 0, 0, werr
	}
	ran, valid, worst, _ = agg.snapshot()
	return worst, ran, valid, nil
}

// runOneTest installs one test case, resets the field, and steps it
// until an output mismatch is impossible to avoid detecting, an HCF
// fires, or limit cycles elapse.
func runOneTest(f *field.Field, t catalog.Test, limit int) (cycles uint64, validated bool, failErr error) {
	installTest(f, t)
	f.Reset()
	for int(cycles) < limit && !stopRequested.Load() {
		cycles++
		active, err := f.Step()
		if err != nil {
			return cycles, false, err
		}
		if !active {
			return cycles, validateOutputs(f), nil
		}
	}
	return cycles, false, nil
}

func installTest(f *field.Field, t catalog.Test) {
	ins := f.Inputs()
	for i, vals := range t.Inputs {
		if i < len(ins) {
			ins[i].SetValues(vals)
		}
	}
	outs := f.Numeric()
	for i, vals := range t.Outputs {
		if i < len(outs) {
			outs[i].SetExpected(vals)
		}
	}
	imgs := f.Images()
	for i, img := range t.Images {
		if i < len(imgs) {
			imgs[i].SetExpected(img)
		}
	}
}

func validateOutputs(f *field.Field) bool {
	for _, o := range f.Numeric() {
		if !o.Valid() {
			return false
		}
	}
	for _, o := range f.Images() {
		if !o.Valid() {
			return false
		}
	}
	return true
}

func explainFixedFailure(testIndex int, cycles uint64, limit int, failErr error) string {
	if failErr != nil {
		return fmt.Sprintf("fixed test %d: %s after %d cycles", testIndex, failErr.Error(), cycles)
	}
	return fmt.Sprintf("fixed test %d: %s", testIndex, formatTimeout(cycles, limit))
}

func explainRandomFailure(seed uint32, cycles uint64, limit int, failErr error) string {
	if failErr != nil {
		return fmt.Sprintf("seed %d: %s", seed, failErr.Error())
	}
	return fmt.Sprintf("seed %d: %s", seed, formatTimeout(cycles, limit))
}
