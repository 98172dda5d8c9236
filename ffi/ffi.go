// Command ffi exposes a stable C ABI over the grader, built with
// -buildmode=c-shared (or c-archive): create/destroy a simulator
// handle, add seed ranges, set tuning knobs, run against a code string,
// and fetch the score struct and an error-message C string, matching
// the documented FFI surface field-for-field. It is a main package (cgo's
// //export directives only take effect in the package built as the
// archive/shared-library target) rather than a library package, and it
// is the one part of this module built directly on cgo rather than a
// third-party library: no Go library exports an arbitrary Go struct as
// a stable C struct layout, since that guarantee only comes from the
// cgo boundary itself.
package main

/*
#include <stdint.h>
#include <stdbool.h>
#include <stdlib.h>

typedef struct {
	uint64_t cycles;
	uint64_t nodes;
	uint64_t instructions;
	uint32_t random_test_ran;
	uint32_t random_test_valid;
	bool validated;
	bool achievement;
	bool cheat;
	bool hardcoded;
} tis100_score;
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/killerbee13/tis100-go/asm"
	"github.com/killerbee13/tis100-go/catalog"
	"github.com/killerbee13/tis100-go/grader"
)

// sim is one FFI-side simulator handle: a puzzle selection, a set of
// seed ranges, tuning knobs, and the error/score from the most recent
// run, all addressed by an opaque handle from the C side rather than a
// Go pointer (cgo rules forbid passing a Go pointer that holds other Go
// pointers across the boundary).
type sim struct {
	puzzle catalog.Puzzle
	seeds  []grader.SeedRange
	params grader.Params

	lastScore grader.Score
	lastErr   string
}

var (
	handlesMu sync.Mutex
	handles   = map[C.uintptr_t]*sim{}
	nextID    C.uintptr_t
)

func lookup(h C.uintptr_t) *sim {
	handlesMu.Lock()
	defer handlesMu.Unlock()
	return handles[h]
}

// tis100_create allocates a new simulator handle for the named built-in
// puzzle (segment id or display name), returning 0 on an unknown id.
//
//export tis100_create
func tis100_create(puzzleID *C.char) C.uintptr_t {
	p, err := catalog.Lookup(C.GoString(puzzleID))
	if err != nil {
		return 0
	}
	handlesMu.Lock()
	defer handlesMu.Unlock()
	nextID++
	handles[nextID] = &sim{puzzle: p, params: grader.DefaultParams()}
	return nextID
}

// tis100_destroy releases a handle. Calling it twice, or on an unknown
// handle, is a no-op.
//
//export tis100_destroy
func tis100_destroy(h C.uintptr_t) {
	handlesMu.Lock()
	defer handlesMu.Unlock()
	delete(handles, h)
}

// tis100_add_seed_range appends one inclusive [start,end] seed range to
// h's random-test plan.
//
//export tis100_add_seed_range
func tis100_add_seed_range(h C.uintptr_t, start, end C.uint32_t) C.bool {
	s := lookup(h)
	if s == nil {
		return false
	}
	s.seeds = append(s.seeds, grader.SeedRange{Start: uint32(start), End: uint32(end)})
	return true
}

// tis100_set_cycles_limit, tis100_set_total_cycles_limit,
// tis100_set_cheat_rate, tis100_set_limit_multiplier,
// tis100_set_node_sizes, and tis100_set_threads set the FFI-configurable
// tuning knobs; each is a no-op returning false on an unknown handle.
//
//export tis100_set_cycles_limit
func tis100_set_cycles_limit(h C.uintptr_t, limit C.uint64_t) C.bool {
	s := lookup(h)
	if s == nil {
		return false
	}
	s.params.CyclesLimit = int(limit)
	return true
}

//export tis100_set_total_cycles_limit
func tis100_set_total_cycles_limit(h C.uintptr_t, limit C.uint64_t) C.bool {
	s := lookup(h)
	if s == nil {
		return false
	}
	s.params.TotalCyclesLimit = int(limit)
	return true
}

//export tis100_set_cheat_rate
func tis100_set_cheat_rate(h C.uintptr_t, rate C.double) C.bool {
	s := lookup(h)
	if s == nil {
		return false
	}
	s.params.CheatRate = float64(rate)
	return true
}

//export tis100_set_limit_multiplier
func tis100_set_limit_multiplier(h C.uintptr_t, mult C.double) C.bool {
	s := lookup(h)
	if s == nil {
		return false
	}
	s.params.LimitMultiplier = float64(mult)
	return true
}

//export tis100_set_node_sizes
func tis100_set_node_sizes(h C.uintptr_t, t21Size, t30Size C.int) C.bool {
	s := lookup(h)
	if s == nil {
		return false
	}
	s.params.T21Size = int(t21Size)
	s.params.T30Size = int(t30Size)
	return true
}

//export tis100_set_threads
func tis100_set_threads(h C.uintptr_t, threads C.int) C.bool {
	s := lookup(h)
	if s == nil {
		return false
	}
	s.params.NumThreads = int(threads)
	return true
}

//export tis100_set_compute_stats
func tis100_set_compute_stats(h C.uintptr_t, on C.bool) C.bool {
	s := lookup(h)
	if s == nil {
		return false
	}
	s.params.ComputeStats = bool(on)
	return true
}

// tis100_run assembles code (the "@N"-block solution text) against h's
// puzzle and tuning knobs and runs the full fixed+random
// regime, stashing the Score and any error for retrieval by
// tis100_get_score / tis100_last_error.
//
//export tis100_run
func tis100_run(h C.uintptr_t, code *C.char) C.bool {
	s := lookup(h)
	if s == nil {
		return false
	}
	prog, diags := asm.Assemble(C.GoString(code), asm.Options{T21Size: s.params.T21Size})
	if len(diags) > 0 {
		s.lastErr = asm.Diagnostics(diags).Error()
		return false
	}
	sc, err := grader.Run(s.puzzle, prog, s.seeds, s.params)
	if err != nil {
		s.lastErr = err.Error()
		return false
	}
	s.lastScore = sc
	s.lastErr = ""
	return true
}

// tis100_get_score fills out with h's most recent Score.
//
//export tis100_get_score
func tis100_get_score(h C.uintptr_t, out *C.tis100_score) C.bool {
	s := lookup(h)
	if s == nil || out == nil {
		return false
	}
	sc := s.lastScore
	out.cycles = C.uint64_t(sc.Cycles)
	out.nodes = C.uint64_t(sc.Nodes)
	out.instructions = C.uint64_t(sc.Instructions)
	out.random_test_ran = C.uint32_t(sc.RandomTestRan)
	out.random_test_valid = C.uint32_t(sc.RandomTestValid)
	out.validated = C.bool(sc.Validated)
	out.achievement = C.bool(sc.Achievement)
	out.cheat = C.bool(sc.Cheat)
	out.hardcoded = C.bool(sc.Hardcoded)
	return true
}

// tis100_last_error returns h's most recent error message as a C
// string, or an empty string if the last run succeeded or h is
// unknown. The caller owns the returned pointer and must free it with
// tis100_free_string.
//
//export tis100_last_error
func tis100_last_error(h C.uintptr_t) *C.char {
	s := lookup(h)
	if s == nil {
		return C.CString("")
	}
	return C.CString(s.lastErr)
}

// tis100_free_string releases a string previously returned by
// tis100_last_error.
//
//export tis100_free_string
func tis100_free_string(s *C.char) {
	C.free(unsafe.Pointer(s))
}

// main is required by -buildmode=c-shared/c-archive but never runs;
// callers only ever reach this code through the exported C functions.
func main() {}
