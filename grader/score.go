package grader

// Score is the result triple plus achievement/cheat classification.
// Field layout matches the stable FFI struct field-for-field, aside
// from the two FFI-only random-test counters, which live here too
// since they're useful to an in-process caller as well.
type Score struct {
	Cycles       uint64
	Nodes        int
	Instructions int

	RandomTestRan   uint32
	RandomTestValid uint32

	Validated   bool
	Achievement bool
	Cheat       bool
	Hardcoded   bool

	// FailureReason explains a false Validated, including a "[timeout]"
	// annotation when the failure was a cycle-limit hit.
	FailureReason string
}
