package grader

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/killerbee13/tis100-go/catalog"
	"github.com/killerbee13/tis100-go/field"
	"github.com/killerbee13/tis100-go/node"
	"github.com/killerbee13/tis100-go/port"
	"github.com/killerbee13/tis100-go/word"
)

// passthroughField builds a single-node field whose one T21 forwards its
// input straight to its output (MOV UP, DOWN), for tests that need a
// field but not any particular puzzle's program.
func passthroughField(t *testing.T) (*field.Field, sim.Engine) {
	t.Helper()
	layout := field.Layout{
		Rows: 1, Cols: 1,
		Cells:   []field.CellKind{field.CellT21},
		Inputs:  []field.IOKind{field.IOIn},
		Outputs: []field.IOKind{field.IOOut},
	}
	engine := sim.NewSerialEngine()
	f := field.NewField(engine, 1*sim.GHz, "Test", layout, 0, 0)
	f.NodeByIndex(0).(*node.T21).Load([]node.Instruction{
		{Op: node.MOV, Src: node.Src{Port: port.Up}, Dst: port.Down},
	})
	f.Link()
	return f, engine
}

func TestRunSeedRangesSkipIsNonEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f, engine := passthroughField(t)
	src := newMockPuzzleSource(ctrl)
	src.EXPECT().RandomTest(gomock.Any()).Return(nil, nil).Times(3)

	seeds := []SeedRange{{Start: 0, End: 2}}
	_, ran, valid, err := runSeedRanges(f, engine, src, seeds, 1000, Params{NumThreads: 1, CheatRate: 0.05})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ran != 0 || valid != 0 {
		t.Fatalf("a skip must not count as a run or a pass: ran=%d valid=%d", ran, valid)
	}
}

// fakePuzzleSource drives the passthrough field with test cases it
// controls directly: seeds in passSeeds validate, every other seed is
// built to mismatch.
type fakePuzzleSource struct {
	passSeeds map[uint32]bool
}

func (f fakePuzzleSource) RandomTest(seed uint32) (*catalog.Test, error) {
	expected := word.Word(5)
	if !f.passSeeds[seed] {
		expected = word.Word(6) // the node always emits 5; this can't match
	}
	return &catalog.Test{
		Inputs:  [][]word.Word{{5}},
		Outputs: [][]word.Word{{expected}},
	}, nil
}

func TestCheatClassification(t *testing.T) {
	f, engine := passthroughField(t)

	const total, numPass = 100, 4 // 4% pass rate, comfortably under cheat_rate=0.05
	pass := make(map[uint32]bool, numPass)
	for i := uint32(0); i < numPass; i++ {
		pass[i] = true
	}
	src := fakePuzzleSource{passSeeds: pass}

	seeds := []SeedRange{{Start: 0, End: total - 1}}
	_, ran, valid, err := runSeedRanges(f, engine, src, seeds, 1000,
		Params{NumThreads: 2, CheatRate: 0.05, ComputeStats: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ran != total {
		t.Fatalf("expected all %d seeds to run under ComputeStats, got %d", total, ran)
	}
	if valid != numPass {
		t.Fatalf("expected %d passes, got %d", numPass, valid)
	}

	cheat := ran == 0 || valid < ran
	hardcoded := float64(valid) <= float64(ran)*0.05
	if !cheat {
		t.Fatalf("any failure must mark the solution as cheat")
	}
	if !hardcoded {
		t.Fatalf("a %d%% pass rate must be classified hardcoded at cheat_rate=0.05", 100*numPass/total)
	}
}

func TestCheatClassificationAllPass(t *testing.T) {
	f, engine := passthroughField(t)

	const total = 20
	pass := make(map[uint32]bool, total)
	for i := uint32(0); i < total; i++ {
		pass[i] = true
	}
	src := fakePuzzleSource{passSeeds: pass}

	seeds := []SeedRange{{Start: 0, End: total - 1}}
	_, ran, valid, err := runSeedRanges(f, engine, src, seeds, 1000,
		Params{NumThreads: 1, CheatRate: 0.05, ComputeStats: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ran != total || valid != total {
		t.Fatalf("expected every seed to run and pass, got ran=%d valid=%d", ran, valid)
	}
	if valid < ran {
		t.Fatalf("all seeds passing must not be cheat")
	}
}
