package grader

import "github.com/killerbee13/tis100-go/catalog"

// puzzleSource is the slice of catalog.Puzzle that runSeedRanges
// actually needs: one seed in, one test (or a skip) out. Extracting it
// lets random-test-loop tests substitute a fake generator without
// depending on the full 51-entry catalog.
type puzzleSource interface {
	RandomTest(seed uint32) (*catalog.Test, error)
}

var _ puzzleSource = catalog.Puzzle{}
