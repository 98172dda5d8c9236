package node

import (
	"fmt"
	"strings"

	"github.com/killerbee13/tis100-go/port"
	"github.com/killerbee13/tis100-go/word"
)

// HCFError is returned by Field.Tick (never panicked) when a compute node
// executes HCF. It carries enough context for the grader to log which
// node aborted the run.
type HCFError struct {
	X, Y, Line int
}

func (e *HCFError) Error() string {
	return fmt.Sprintf("HCF at (%d,%d) line %d", e.X, e.Y, e.Line)
}

// T21 is a compute node: the general-purpose cell that runs a short
// program against ACC/BAK registers and its four (or six) directional
// ports.
type T21 struct {
	base

	code []Instruction
	size int

	acc, bak word.Word
	pc       int
	last     port.Port // direction remembered from the most recent ANY resolution

	writeWord word.Optional
	writePort port.Port // NIL (not writing), a direction/ANY (pending), IMMEDIATE (just completed)

	activity Activity

	neighbors [4]Regular

	// hcf is set by Step when this node executes HCF; Field checks it
	// after the step sub-phase and turns it into an HCFError for the
	// caller. It is cleared by Reset.
	hcf *HCFError
}

// NewT21 constructs an empty, unprogrammed compute node at (x,y) with the
// given instruction capacity (0 means DefaultT21Size).
func NewT21(x, y, size int) *T21 {
	if size <= 0 {
		size = DefaultT21Size
	}
	t := &T21{base: newBase(x, y, KindT21), size: size}
	t.last = port.NIL
	t.writePort = port.NIL
	return t
}

// Load installs a program, resetting execution state. Called once by the
// assembler-to-field pipeline before linking.
func (t *T21) Load(code []Instruction) {
	t.code = code
	t.Reset()
}

// Code exposes the loaded program for static analysis (port-mask linking,
// achievement checks).
func (t *T21) Code() []Instruction { return t.code }

func (t *T21) Reset() {
	t.acc, t.bak = 0, 0
	t.pc = 0
	t.last = port.NIL
	t.writeWord = word.Empty
	t.writePort = port.NIL
	t.activity = Idle
	t.hcf = nil
}

func (t *T21) Clone() Regular {
	c := NewT21(t.x, t.y, t.size)
	c.code = t.code
	return c
}

func (t *T21) SetNeighbor(d port.Port, n Regular) {
	t.neighbors[d] = n
}

// HCF reports the pending halt, if Step raised one this cycle.
func (t *T21) HCF() *HCFError { return t.hcf }

// doRead asks the neighbor in direction d to emit toward us.
func (t *T21) doRead(d port.Port) word.Optional {
	n := t.neighbors[d]
	if n == nil {
		return word.Empty
	}
	return n.Emit(port.Invert(d))
}

// Emit answers a read request. p is already expressed in this node's own
// coordinate frame (the direction it would have to write out to reach the
// requester), matching write_port's own frame, so no inversion happens
// here; the caller (doRead) is responsible for translating its own
// direction into the neighbor's frame before calling Emit.
func (t *T21) Emit(p port.Port) word.Optional {
	if !t.writeWord.Valid {
		return word.Empty
	}
	if t.writePort == p || t.writePort == port.ANY {
		v := t.writeWord
		t.writeWord = word.Empty
		if t.writePort == port.ANY {
			t.last = p
		}
		// Mark the write complete; Finalize detects this and advances pc.
		t.writePort = port.IMMEDIATE
		t.fire(HookPosEmit, v)
		return v
	}
	return word.Empty
}

func (t *T21) State() string {
	var b strings.Builder
	fmt.Fprintf(&b, "(%d,%d) T21 {acc=%d bak=%d pc=%d last=%s %s}",
		t.x, t.y, t.acc, t.bak, t.pc, port.Name(t.last), t.activity)
	return b.String()
}

// Step runs the first cycle sub-phase. It never touches write_port
// resolution; that happens in Finalize.
func (t *T21) Step() {
	t.hcf = nil
	if len(t.code) == 0 {
		t.activity = Idle
		return
	}
	if t.activity == Write {
		// A write begun on a prior cycle hasn't been consumed yet.
		return
	}

	ins := t.code[t.pc%len(t.code)]

	// Only MOV, ADD, SUB and JRO take a source operand; the other opcodes
	// leave Src at its zero value, which is not read.
	val, ok := word.Word(0), true
	switch ins.Op {
	case MOV, ADD, SUB, JRO:
		val, ok = t.readSrc(ins.Src)
	}
	if !ok {
		t.activity = Read
		return
	}
	t.activity = Run

	switch ins.Op {
	case HCF:
		t.hcf = &HCFError{X: t.x, Y: t.y, Line: ins.Line}
		return
	case NOP:
		t.advance()
	case MOV:
		t.execMov(val, ins.Dst)
	case ADD:
		t.acc = word.Add(t.acc, val)
		t.advance()
	case SUB:
		t.acc = word.Sub(t.acc, val)
		t.advance()
	case NEG:
		t.acc = word.Neg(t.acc)
		t.advance()
	case SWP:
		t.acc, t.bak = t.bak, t.acc
		t.advance()
	case SAV:
		t.bak = t.acc
		t.advance()
	case JMP:
		t.pc = ins.Target
	case JEZ:
		t.branch(t.acc == 0, ins.Target)
	case JNZ:
		t.branch(t.acc != 0, ins.Target)
	case JGZ:
		t.branch(t.acc > 0, ins.Target)
	case JLZ:
		t.branch(t.acc < 0, ins.Target)
	case JRO:
		t.pc = clampPC(int(t.pc)+int(val), len(t.code))
	default:
		t.advance()
	}
	t.fire(HookPosStep, ins)
}

// readSrc evaluates an instruction's source operand. ok is false only
// when a directional/ANY/LAST read stalls for lack of data.
func (t *T21) readSrc(s Src) (word.Word, bool) {
	switch s.Port {
	case port.IMMEDIATE:
		return word.Word(s.Value), true
	case port.ACC:
		return t.acc, true
	case port.NIL:
		return 0, true
	case port.ANY:
		for d := port.First; d <= port.Last; d++ {
			if v := t.doRead(d); v.Valid {
				t.last = d
				return v.Value, true
			}
		}
		return 0, false
	case port.LAST:
		if t.last == port.NIL {
			return 0, true
		}
		if v := t.doRead(t.last); v.Valid {
			return v.Value, true
		}
		return 0, false
	default: // a direction
		if v := t.doRead(s.Port); v.Valid {
			return v.Value, true
		}
		return 0, false
	}
}

func (t *T21) execMov(val word.Word, dst port.Port) {
	switch dst {
	case port.ACC:
		t.acc = val
		t.advance()
	case port.NIL:
		t.advance()
	case port.LAST:
		if t.last == port.NIL {
			t.advance()
			return
		}
		t.beginWrite(val)
	default:
		t.beginWrite(val)
	}
}

func (t *T21) beginWrite(val word.Word) {
	t.writeWord = word.SomeWord(val)
	t.writePort = port.NIL
	t.activity = Write
}

func (t *T21) branch(taken bool, target int) {
	if taken {
		t.pc = target
	} else {
		t.advance()
	}
}

func (t *T21) advance() {
	t.pc = (t.pc + 1) % len(t.code)
}

func clampPC(v, n int) int {
	switch {
	case v < 0:
		return 0
	case v > n-1:
		return n - 1
	default:
		return v
	}
}

// Finalize runs the third cycle sub-phase: resolving the write port and
// completing in-flight writes.
func (t *T21) Finalize() {
	if len(t.code) == 0 || t.activity != Write {
		return
	}
	switch t.writePort {
	case port.NIL:
		ins := t.code[t.pc%len(t.code)]
		dst := ins.Dst
		if dst == port.LAST {
			dst = t.last
		}
		t.writePort = dst
	case port.IMMEDIATE:
		t.writePort = port.NIL
		t.activity = Run
		t.advance()
	default:
		// still in flight, nothing to do
	}
	t.fire(HookPosFinalize, nil)
}

var _ Regular = (*T21)(nil)
