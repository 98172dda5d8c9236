package asm

import (
	"testing"

	"github.com/killerbee13/tis100-go/node"
	"github.com/killerbee13/tis100-go/port"
)

func assembleOK(t *testing.T, src string, opts Options) *Program {
	t.Helper()
	prog, diags := Assemble(src, opts)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	return prog
}

func TestAssembleIdentityPassthrough(t *testing.T) {
	prog := assembleOK(t, "@0\nMOV UP, DOWN\n", Options{})
	code := prog.Nodes[0]
	if len(code) != 1 {
		t.Fatalf("expected 1 instruction, got %d", len(code))
	}
	if code[0].Op != node.MOV || code[0].Src.Port != port.Up || code[0].Dst != port.Down {
		t.Fatalf("unexpected instruction: %+v", code[0])
	}
}

func TestAssembleImmediateRange(t *testing.T) {
	_, diags := Assemble("@0\nMOV 1000, ACC\n", Options{})
	if len(diags) == 0 {
		t.Fatalf("expected out-of-range diagnostic")
	}
}

func TestAssembleLabelAndJump(t *testing.T) {
	prog := assembleOK(t, "@0\nloop: ADD 1\nJMP loop\n", Options{})
	code := prog.Nodes[0]
	if len(code) != 2 {
		t.Fatalf("expected 2 instructions, got %d", len(code))
	}
	if code[1].Op != node.JMP || code[1].Target != 0 {
		t.Fatalf("expected jump back to 0, got %+v", code[1])
	}
}

func TestAssembleDuplicateLabel(t *testing.T) {
	_, diags := Assemble("@0\na: NOP\na: NOP\n", Options{})
	if len(diags) == 0 {
		t.Fatalf("expected duplicate label diagnostic")
	}
}

func TestAssembleUndefinedLabel(t *testing.T) {
	_, diags := Assemble("@0\nJMP nowhere\n", Options{})
	if len(diags) == 0 {
		t.Fatalf("expected undefined label diagnostic")
	}
}

func TestLabelNormalizationOutOfRange(t *testing.T) {
	// "done" is bound to the index one past the last instruction: a
	// trailing label with nothing after it. The reference normalizes
	// such a jump target to 0 instead of producing an out-of-range pc.
	prog := assembleOK(t, "@0\nJMP done\nNOP\ndone:\n", Options{})
	code := prog.Nodes[0]
	if code[0].Target != 0 {
		t.Fatalf("expected out-of-range label to normalize to 0, got %d", code[0].Target)
	}
}

func TestForbiddenCharacter(t *testing.T) {
	_, diags := Assemble("@0\nMOV UP@, DOWN\n", Options{})
	if len(diags) == 0 {
		t.Fatalf("expected forbidden-character diagnostic")
	}
}

func TestMaxLineLengthEnforcedUnlessPermissive(t *testing.T) {
	longLine := "@0\nMOV UP, DOWN # this comment makes the line quite long indeed\n"
	_, diags := Assemble(longLine, Options{})
	if len(diags) == 0 {
		t.Fatalf("expected max-line-length diagnostic outside permissive mode")
	}
	_, diags = Assemble(longLine, Options{Permissive: true})
	if len(diags) != 0 {
		t.Fatalf("did not expect diagnostics under permissive mode: %v", diags)
	}
}

func TestPermissivePrefixPortNames(t *testing.T) {
	prog := assembleOK(t, "@0\nMOV L, R\n", Options{Permissive: true})
	code := prog.Nodes[0]
	if code[0].Src.Port != port.Left || code[0].Dst != port.Right {
		t.Fatalf("expected prefix-matched LEFT/RIGHT, got %+v", code[0])
	}
}

func TestRoundTrip(t *testing.T) {
	src := "@0\nstart: MOV UP, ACC\nADD 5\nSUB DOWN\nJEZ start\nNOP\nHCF\n"
	prog := assembleOK(t, src, Options{})
	code := prog.Nodes[0]

	rendered := FormatBlock(code)
	reprog := assembleOK(t, "@0\n"+rendered, Options{})
	recode := reprog.Nodes[0]

	if len(code) != len(recode) {
		t.Fatalf("round-trip length mismatch: %d vs %d", len(code), len(recode))
	}
	for i := range code {
		a, b := code[i], recode[i]
		if a.Op != b.Op || a.Src != b.Src || a.Dst != b.Dst || a.Target != b.Target {
			t.Fatalf("round-trip mismatch at %d: %+v vs %+v", i, a, b)
		}
	}
}
