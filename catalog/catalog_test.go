package catalog

import "testing"

func TestAllReturnsAllFiftyOneEntries(t *testing.T) {
	all := All()
	if len(all) != 51 {
		t.Fatalf("All() returned %d puzzles, want 51", len(all))
	}
}

func TestLookupBySegmentOrName(t *testing.T) {
	p, err := Lookup("00150")
	if err != nil {
		t.Fatalf("Lookup(\"00150\") failed: %v", err)
	}
	byName, err := Lookup(p.Name)
	if err != nil {
		t.Fatalf("Lookup(%q) failed: %v", p.Name, err)
	}
	if byName.Segment != p.Segment {
		t.Fatalf("Lookup by name resolved to a different puzzle: %+v vs %+v", byName, p)
	}
}

func TestLookupUnknownID(t *testing.T) {
	if _, err := Lookup("does-not-exist"); err == nil {
		t.Fatalf("expected an error for an unknown puzzle ID")
	}
}

func TestFixedTestsAreThreeConsecutiveSeeds(t *testing.T) {
	p, err := Lookup("10981")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	fixed, err := p.FixedTests()
	if err != nil {
		t.Fatalf("FixedTests failed: %v", err)
	}
	for k := 0; k < 3; k++ {
		want, _ := randomTestSignalAmplifier(p.BaseSeed*100 + uint32(k))
		if len(fixed[k].Inputs) != len(want.Inputs) || len(fixed[k].Inputs[0]) != len(want.Inputs[0]) {
			t.Fatalf("fixed test %d shape mismatch", k)
		}
		for i := range fixed[k].Inputs[0] {
			if fixed[k].Inputs[0][i] != want.Inputs[0][i] {
				t.Fatalf("fixed test %d does not match generator at base_seed*100+%d, index %d", k, k, i)
				break
			}
		}
	}
}

func TestSignalAmplifierDoublesInput(t *testing.T) {
	test, err := randomTestSignalAmplifier(1)
	if err != nil {
		t.Fatalf("generator failed: %v", err)
	}
	for i, in := range test.Inputs[0] {
		want := 2 * int(in)
		if want > 999 {
			want = 999
		}
		if int(test.Outputs[0][i]) != want {
			t.Fatalf("index %d: output %d, want %d", i, test.Outputs[0][i], want)
		}
	}
}

func TestEveryBuiltinHasGenerator(t *testing.T) {
	for _, p := range All() {
		if !p.HasGenerator() {
			t.Errorf("puzzle %s (%s) has no generator", p.Segment, p.Name)
		}
	}
}

func TestGeneratorNotImplementedIsDistinctFromSkip(t *testing.T) {
	custom := Puzzle{Segment: "CUSTOM", Name: "CUSTOM"}
	if _, err := custom.RandomTest(0); err != ErrGeneratorNotImplemented {
		t.Fatalf("expected ErrGeneratorNotImplemented, got %v", err)
	}
}

func TestAchievementBusyLoop(t *testing.T) {
	if Achievement("00150", nil, 100001) {
		// BUSY_LOOP only reads the cycle count, never f, for this segment.
	} else {
		t.Fatalf("expected BUSY_LOOP achievement above 100000 cycles")
	}
	if Achievement("00150", nil, 100000) {
		t.Fatalf("did not expect BUSY_LOOP achievement at exactly 100000 cycles")
	}
}

func TestAchievementUnknownSegmentIsFalse(t *testing.T) {
	if Achievement("nonexistent", nil, 0) {
		t.Fatalf("expected no achievement for an unrecognized segment")
	}
}
