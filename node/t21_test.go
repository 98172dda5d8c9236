package node

import (
	"testing"

	"github.com/killerbee13/tis100-go/port"
)

// link wires a's Right neighbor to b and b's Left neighbor to a, the
// minimal topology a two-node port-protocol test needs.
func link(a, b *T21) {
	a.SetNeighbor(port.Right, b)
	b.SetNeighbor(port.Left, a)
}

func TestTwoPhaseWritePropagationDelay(t *testing.T) {
	a := NewT21(0, 0, 0)
	b := NewT21(1, 0, 0)
	link(a, b)

	a.Load([]Instruction{{Op: MOV, Src: Src{Port: port.IMMEDIATE, Value: 5}, Dst: port.Right}})
	b.Load([]Instruction{{Op: MOV, Src: Src{Port: port.Left}, Dst: port.ACC}})

	cycle := func() {
		a.Step()
		b.Step()
		a.Finalize()
		b.Finalize()
	}

	cycle() // issue: a begins the write, b stalls reading
	if b.acc != 0 {
		t.Fatalf("after cycle 1, b.acc = %d, want 0 (write must not be visible same cycle)", b.acc)
	}
	if b.activity != Read {
		t.Fatalf("after cycle 1, b.activity = %v, want Read (stalled)", b.activity)
	}

	cycle() // consume: b finally reads the word a offered last cycle
	if b.acc != 5 {
		t.Fatalf("after cycle 2, b.acc = %d, want 5", b.acc)
	}
}

func TestPCWrapsAfterNonJumpInstruction(t *testing.T) {
	a := NewT21(0, 0, 0)
	a.Load([]Instruction{
		{Op: NOP},
		{Op: NOP},
		{Op: NOP},
	})
	for i := 0; i < 3; i++ {
		want := (i + 1) % 3
		a.Step()
		a.Finalize()
		if a.pc != want {
			t.Fatalf("after step %d, pc = %d, want %d", i, a.pc, want)
		}
	}
}

func TestANYResolutionRecordsLast(t *testing.T) {
	a := NewT21(0, 0, 0)
	b := NewT21(1, 0, 0)
	link(a, b)

	a.Load([]Instruction{{Op: MOV, Src: Src{Port: port.IMMEDIATE, Value: 7}, Dst: port.Right}})
	b.Load([]Instruction{{Op: MOV, Src: Src{Port: port.ANY}, Dst: port.ACC}})

	a.Step()
	b.Step()
	a.Finalize()
	b.Finalize()

	a.Step()
	b.Step()
	a.Finalize()
	b.Finalize()

	if b.last != port.Left {
		t.Fatalf("after ANY read from LEFT, last = %v, want LEFT", b.last)
	}
	if b.acc != 7 {
		t.Fatalf("b.acc = %d, want 7", b.acc)
	}
}

func TestLASTReadWithNoPriorANYYieldsZero(t *testing.T) {
	a := NewT21(0, 0, 0)
	a.Load([]Instruction{{Op: MOV, Src: Src{Port: port.LAST}, Dst: port.ACC}})
	a.Step()
	if a.acc != 0 {
		t.Fatalf("MOV LAST,ACC with last==NIL should yield 0, got %d", a.acc)
	}
}

func TestHCFRaisesHalt(t *testing.T) {
	a := NewT21(3, 2, 0)
	a.Load([]Instruction{{Op: HCF, Line: 1}})
	a.Step()
	err := a.HCF()
	if err == nil {
		t.Fatalf("expected HCF to be raised")
	}
	if err.X != 3 || err.Y != 2 || err.Line != 1 {
		t.Fatalf("unexpected HCF coordinates: %+v", err)
	}
}

func TestSaturatingArithmeticOpcodes(t *testing.T) {
	a := NewT21(0, 0, 0)
	a.Load([]Instruction{
		{Op: MOV, Src: Src{Port: port.IMMEDIATE, Value: 900}, Dst: port.ACC},
		{Op: ADD, Src: Src{Port: port.IMMEDIATE, Value: 900}},
		{Op: NEG},
	})
	for i := 0; i < 3; i++ {
		a.Step()
		a.Finalize()
	}
	if a.acc != -999 {
		t.Fatalf("acc = %d, want -999 (900+900 saturates to 999, then NEG)", a.acc)
	}
}

func TestSWPAndSAV(t *testing.T) {
	a := NewT21(0, 0, 0)
	a.Load([]Instruction{
		{Op: MOV, Src: Src{Port: port.IMMEDIATE, Value: 3}, Dst: port.ACC},
		{Op: SAV},
		{Op: MOV, Src: Src{Port: port.IMMEDIATE, Value: 9}, Dst: port.ACC},
		{Op: SWP},
	})
	for i := 0; i < 4; i++ {
		a.Step()
		a.Finalize()
	}
	if a.acc != 3 || a.bak != 9 {
		t.Fatalf("acc=%d bak=%d, want acc=3 bak=9", a.acc, a.bak)
	}
}
