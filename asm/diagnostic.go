// Package asm assembles TIS-100-style per-node source text into
// node.Instruction vectors ready to install into a field.Field via
// T21.Load. It never panics on malformed input: every failure mode is
// reported as a Diagnostic carrying the node index and source line, the
// same shape the reference assembler's invalid_argument exceptions carry.
package asm

import "fmt"

// Diagnostic is one assembly-time error: which node's block it came from,
// the 1-based line within that block, and a human-readable message.
type Diagnostic struct {
	Node    int
	Line    int
	Message string
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("node %d line %d: %s", d.Node, d.Line, d.Message)
}

// Diagnostics formats a slice of Diagnostic for a single combined error
// message, preserving node/line order as produced by Assemble.
type Diagnostics []Diagnostic

func (ds Diagnostics) Error() string {
	if len(ds) == 0 {
		return "asm: no diagnostics"
	}
	if len(ds) == 1 {
		return ds[0].Error()
	}
	s := fmt.Sprintf("%d assembly errors:", len(ds))
	for _, d := range ds {
		s += "\n  " + d.Error()
	}
	return s
}
