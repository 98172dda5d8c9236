package asm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/killerbee13/tis100-go/node"
	"github.com/killerbee13/tis100-go/port"
)

// DefaultMaxLineLength is the reference assembler's per-line character
// cap outside permissive mode; TIS-100-style solution text is written to
// fit a narrow terminal column, and every line (including its label and
// trailing comment) must fit within it.
const DefaultMaxLineLength = 18

// Options configures one Assemble call, mirroring the assembler-relevant
// fields of the reference engine's run_params.
type Options struct {
	// Permissive relaxes label-per-line, prefix port names, and the
	// blank/comment line budget.
	Permissive bool
	// MaxLineLength bounds source line length outside Permissive mode; 0
	// selects DefaultMaxLineLength.
	MaxLineLength int
	// T21Size bounds the number of instructions (and, outside Permissive
	// mode, the number of physical lines) per node; 0 selects
	// node.DefaultT21Size.
	T21Size int
}

func (o Options) maxLineLength() int {
	if o.MaxLineLength <= 0 {
		return DefaultMaxLineLength
	}
	return o.MaxLineLength
}

func (o Options) t21Size() int {
	if o.T21Size <= 0 {
		return node.DefaultT21Size
	}
	return o.T21Size
}

// Program is the assembled result: the instruction vector for every node
// index that had an "@N" block in the source, keyed by that index.
type Program struct {
	Nodes map[int][]node.Instruction
}

// pending is one not-yet-resolved instruction: jump targets are carried
// as label names until every label in the block has been seen.
type pending struct {
	op        node.Opcode
	src       node.Src
	dst       port.Port
	jumpLabel string
	line      int
}

// Assemble parses solution source in the "@N" block format into a
// Program. It never panics; every malformed construct is reported
// as a Diagnostic and assembly continues on a best-effort basis so a
// single bad node doesn't hide errors in the rest of the file.
func Assemble(src string, opts Options) (*Program, []Diagnostic) {
	prog := &Program{Nodes: map[int][]node.Instruction{}}
	var diags []Diagnostic

	for _, blk := range splitBlocks(src) {
		code, blkDiags := assembleBlock(blk, opts)
		diags = append(diags, blkDiags...)
		if code != nil {
			prog.Nodes[blk.index] = code
		}
	}
	return prog, diags
}

type block struct {
	index int
	lines []string
	// headerLine is the 1-based line within the whole source the "@N"
	// header itself occupied, used only for header diagnostics.
	headerLine int
}

// splitBlocks partitions src into per-node blocks on "@N" header lines.
// Text before the first header is ignored (matches the reference, which
// requires every node's code to be explicitly addressed).
func splitBlocks(src string) []block {
	var blocks []block
	var cur *block
	for i, raw := range strings.Split(src, "\n") {
		line := strings.TrimRight(raw, "\r")
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "@") {
			if n, err := strconv.Atoi(strings.TrimSpace(trimmed[1:])); err == nil {
				if cur != nil {
					blocks = append(blocks, *cur)
				}
				cur = &block{index: n, headerLine: i + 1}
				continue
			}
		}
		if cur != nil {
			cur.lines = append(cur.lines, line)
		}
	}
	if cur != nil {
		blocks = append(blocks, *cur)
	}
	return blocks
}

func assembleBlock(b block, opts Options) ([]node.Instruction, []Diagnostic) {
	var diags []Diagnostic
	labels := map[string]int{}
	var pend []pending
	budgetUsed := 0
	maxLen := opts.maxLineLength()
	size := opts.t21Size()

	errf := func(line int, format string, args ...interface{}) {
		diags = append(diags, Diagnostic{Node: b.index, Line: line, Message: fmt.Sprintf(format, args...)})
	}

	for i, raw := range b.lines {
		lineNo := i + 1

		if !opts.Permissive && len(raw) > maxLen {
			errf(lineNo, "line exceeds maximum length of %d characters", maxLen)
		}
		stripped := stripComment(raw)
		for j := 0; j < len(stripped); j++ {
			if forbiddenChar(stripped[j]) {
				errf(lineNo, "illegal character %q", stripped[j])
				break
			}
		}
		replaced := replaceFirstBang(stripped)
		lineLabels, body := splitLabel(replaced)
		trimmedBody := strings.TrimSpace(body)
		blank := trimmedBody == "" && len(lineLabels) == 0

		if !opts.Permissive && len(lineLabels) > 1 {
			errf(lineNo, "only one label allowed per line")
		}
		for _, name := range lineLabels {
			if _, dup := labels[name]; dup {
				errf(lineNo, "duplicate label %q", name)
				continue
			}
			labels[name] = len(pend)
		}

		countsTowardBudget := !blank || !opts.Permissive
		if countsTowardBudget {
			budgetUsed++
			if budgetUsed > size {
				errf(lineNo, "program exceeds node capacity of %d lines", size)
			}
		}

		if trimmedBody == "" {
			continue
		}

		toks := fields(trimmedBody)
		if len(toks) == 0 {
			continue
		}
		p, ok := parseInstruction(toks, opts.Permissive, lineNo)
		if !ok.valid {
			errf(lineNo, ok.err)
			continue
		}
		p.line = lineNo
		pend = append(pend, p)
	}

	code := make([]node.Instruction, len(pend))
	for i, p := range pend {
		target := 0
		if p.jumpLabel != "" {
			idx, found := labels[p.jumpLabel]
			if !found {
				errf(p.line, "undefined label %q", p.jumpLabel)
			} else {
				target = idx
			}
		}
		if target >= len(pend) {
			// A label bound to (or past) the end of the program: the
			// reference assembler's final pass normalizes this to a
			// jump back to the top rather than rejecting it.
			target = 0
		}
		code[i] = node.Instruction{Op: p.op, Src: p.src, Dst: p.dst, Target: target, Line: p.line}
	}
	return code, diags
}

type parseResult struct {
	valid bool
	err   string
}

func ok() parseResult       { return parseResult{valid: true} }
func fail(s string) parseResult { return parseResult{err: s} }

// parseInstruction dispatches on the mnemonic and fills in a pending
// instruction, reporting a parseResult instead of panicking on a bad
// operand count or unknown token.
func parseInstruction(toks []string, permissive bool, line int) (pending, parseResult) {
	mnemonic := strings.ToUpper(toks[0])
	ops := toks[1:]

	want := func(n int) bool { return len(ops) == n }

	switch mnemonic {
	case "HCF":
		if !want(0) {
			return pending{}, fail("HCF takes no operands")
		}
		return pending{op: node.HCF}, ok()
	case "NOP":
		if !want(0) {
			return pending{}, fail("NOP takes no operands")
		}
		return pending{op: node.NOP}, ok()
	case "SWP":
		if !want(0) {
			return pending{}, fail("SWP takes no operands")
		}
		return pending{op: node.SWP}, ok()
	case "SAV":
		if !want(0) {
			return pending{}, fail("SAV takes no operands")
		}
		return pending{op: node.SAV}, ok()
	case "NEG":
		if !want(0) {
			return pending{}, fail("NEG takes no operands")
		}
		return pending{op: node.NEG}, ok()
	case "MOV":
		if !want(2) {
			return pending{}, fail("MOV takes exactly 2 operands")
		}
		src, err := parseSrc(ops[0], permissive)
		if err != "" {
			return pending{}, fail(err)
		}
		dst, perr := parseDst(ops[1], permissive)
		if perr != "" {
			return pending{}, fail(perr)
		}
		return pending{op: node.MOV, src: src, dst: dst}, ok()
	case "ADD":
		if !want(1) {
			return pending{}, fail("ADD takes exactly 1 operand")
		}
		src, err := parseSrc(ops[0], permissive)
		if err != "" {
			return pending{}, fail(err)
		}
		return pending{op: node.ADD, src: src}, ok()
	case "SUB":
		if !want(1) {
			return pending{}, fail("SUB takes exactly 1 operand")
		}
		src, err := parseSrc(ops[0], permissive)
		if err != "" {
			return pending{}, fail(err)
		}
		return pending{op: node.SUB, src: src}, ok()
	case "JRO":
		if !want(1) {
			return pending{}, fail("JRO takes exactly 1 operand")
		}
		src, err := parseSrc(ops[0], permissive)
		if err != "" {
			return pending{}, fail(err)
		}
		return pending{op: node.JRO, src: src}, ok()
	case "JMP", "JEZ", "JNZ", "JGZ", "JLZ":
		if !want(1) {
			return pending{}, fail(mnemonic + " takes exactly 1 operand")
		}
		return pending{op: jumpOp(mnemonic), jumpLabel: ops[0]}, ok()
	default:
		return pending{}, fail(fmt.Sprintf("unknown instruction %q", toks[0]))
	}
}

func jumpOp(mnemonic string) node.Opcode {
	switch mnemonic {
	case "JMP":
		return node.JMP
	case "JEZ":
		return node.JEZ
	case "JNZ":
		return node.JNZ
	case "JGZ":
		return node.JGZ
	case "JLZ":
		return node.JLZ
	}
	panic("unreachable")
}

// parseSrc resolves a source operand: a decimal immediate, or one of the
// 8 port names (prefix-matched under permissive mode).
func parseSrc(tok string, permissive bool) (node.Src, string) {
	if v, err := strconv.ParseInt(tok, 10, 32); err == nil {
		if v < int64(-999) || v > int64(999) {
			return node.Src{}, fmt.Sprintf("immediate %d out of range [-999,999]", v)
		}
		return node.Src{Port: port.IMMEDIATE, Value: int16(v)}, ""
	}
	p, found := port.ParseOperand(strings.ToUpper(tok), permissive)
	if !found {
		return node.Src{}, fmt.Sprintf("invalid source operand %q", tok)
	}
	return node.Src{Port: p}, ""
}

// parseDst resolves a destination operand: always a port, never an
// immediate.
func parseDst(tok string, permissive bool) (port.Port, string) {
	p, found := port.ParseOperand(strings.ToUpper(tok), permissive)
	if !found {
		return 0, fmt.Sprintf("invalid destination operand %q", tok)
	}
	return p, ""
}
