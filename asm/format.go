package asm

import (
	"fmt"
	"strings"

	"github.com/killerbee13/tis100-go/node"
	"github.com/killerbee13/tis100-go/port"
)

// Format renders one instruction the way a disassembler/listing would,
// resolving jump targets back to a synthetic "Ln" label rather than the
// original source label name (which Assemble discards once resolved).
// FormatBlock followed by Assemble reproduces the same instruction
// vector as long as every rendered line fits the assembler's line-length
// limit: every synthetic label is unique and every operand renders in a
// form parseInstruction accepts. A labelled line can exceed the default
// 18 characters ("L0: MOV LEFT, RIGHT" is 19), and Assemble rejects it
// under the default Options.
func Format(ins node.Instruction) string {
	switch ins.Op {
	case node.HCF, node.NOP, node.SWP, node.SAV, node.NEG:
		return ins.Op.String()
	case node.MOV:
		return fmt.Sprintf("MOV %s, %s", formatOperand(ins.Src), port.Name(ins.Dst))
	case node.ADD, node.SUB, node.JRO:
		return fmt.Sprintf("%s %s", ins.Op, formatOperand(ins.Src))
	case node.JMP, node.JEZ, node.JNZ, node.JGZ, node.JLZ:
		return fmt.Sprintf("%s L%d", ins.Op, ins.Target)
	default:
		return ins.Op.String()
	}
}

func formatOperand(s node.Src) string {
	if s.Port == port.IMMEDIATE {
		return fmt.Sprintf("%d", s.Value)
	}
	return port.Name(s.Port)
}

// FormatBlock renders an entire node's instruction vector as assemblable
// source, prefixing each jump target it references with its synthetic
// "Ln:" label so the listing stands alone.
func FormatBlock(code []node.Instruction) string {
	targeted := make([]bool, len(code)+1)
	for _, ins := range code {
		switch ins.Op {
		case node.JMP, node.JEZ, node.JNZ, node.JGZ, node.JLZ:
			targeted[ins.Target] = true
		}
	}
	var b strings.Builder
	for i, ins := range code {
		if targeted[i] {
			fmt.Fprintf(&b, "L%d: %s\n", i, Format(ins))
		} else {
			b.WriteString(Format(ins))
			b.WriteByte('\n')
		}
	}
	return b.String()
}
