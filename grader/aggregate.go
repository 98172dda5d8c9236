package grader

import (
	"fmt"
	"sync"

	"github.com/killerbee13/tis100-go/internal/tislog"
)

// aggregate accumulates random-test results under a single lock, the
// counterpart to seedCursor on the consuming side.
type aggregate struct {
	mu             sync.Mutex
	ran, valid     int
	worstCycles    uint64
	totalCycles    uint64
	firstFailure   string
	failurePrinted bool
}

// record folds one test result in and reports whether the caller should
// keep pulling seeds. stopThreshold is the pass count at which early
// stopping becomes eligible (cheat_rate * total_random_tests); callers
// pass 0 (never reachable) when computeStats disables early stopping.
func (a *aggregate) record(seed uint32, cycles uint64, validated bool, detail string, totalCyclesLimit int, stopThreshold float64) (keepGoing bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.ran++
	if validated {
		a.valid++
	}
	if cycles > a.worstCycles {
		a.worstCycles = cycles
	}
	a.totalCycles += cycles

	if !validated {
		if !a.failurePrinted {
			a.failurePrinted = true
			a.firstFailure = detail
			tislog.Logger.Info("random test failed", "seed", seed, "detail", detail)
		} else {
			tislog.Logger.Debug("random test failed", "seed", seed)
		}
	}

	if totalCyclesLimit > 0 && a.totalCycles >= uint64(totalCyclesLimit) {
		return false
	}
	if stopThreshold > 0 && a.valid > 0 && a.ran > a.valid && float64(a.valid) >= stopThreshold {
		return false
	}
	return true
}

func (a *aggregate) snapshot() (ran, valid int, worst uint64, firstFailure string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ran, a.valid, a.worstCycles, a.firstFailure
}

func formatTimeout(cycles uint64, limit int) string {
	if int(cycles) >= limit {
		return fmt.Sprintf("%d cycles [timeout]", cycles)
	}
	return fmt.Sprintf("%d cycles", cycles)
}
