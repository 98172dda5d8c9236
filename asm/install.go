package asm

import (
	"fmt"

	"github.com/killerbee13/tis100-go/field"
	"github.com/killerbee13/tis100-go/node"
)

// Install loads every node block in prog into the corresponding compute
// cell of f, addressed by the same left-to-right, top-to-bottom index the
// "@N" block headers use. It must run before f.Link, since Link's static
// port-mask analysis depends on each T21's installed code.
func Install(f *field.Field, prog *Program) error {
	for idx, code := range prog.Nodes {
		n := f.NodeByIndex(idx)
		if n == nil {
			return fmt.Errorf("asm: @%d addresses a node outside this puzzle's layout", idx)
		}
		t21, isT21 := n.(*node.T21)
		if !isT21 {
			return fmt.Errorf("asm: @%d addresses a non-T21 cell", idx)
		}
		t21.Load(code)
	}
	return nil
}
