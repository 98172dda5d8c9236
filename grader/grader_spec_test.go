package grader_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/killerbee13/tis100-go/asm"
	"github.com/killerbee13/tis100-go/catalog"
	"github.com/killerbee13/tis100-go/grader"
	"github.com/killerbee13/tis100-go/node"
	"github.com/killerbee13/tis100-go/port"
)

// selfTestDiagnosticSolution routes column 0 straight down (three stacked
// T21s) and routes column 3's input across to column 2 and back down,
// since column 3's middle cell is a damaged cell in the "00150" puzzle's
// fixed layout.
func selfTestDiagnosticSolution() *asm.Program {
	mov := func(src port.Port, dst port.Port) node.Instruction {
		return node.Instruction{Op: node.MOV, Src: node.Src{Port: src}, Dst: dst}
	}
	return &asm.Program{Nodes: map[int][]node.Instruction{
		0:  {mov(port.Up, port.Down)},
		4:  {mov(port.Up, port.Down)},
		8:  {mov(port.Up, port.Down)},
		3:  {mov(port.Up, port.Left)},
		2:  {mov(port.Right, port.Down)},
		6:  {mov(port.Up, port.Down)},
		10: {mov(port.Up, port.Right)},
		11: {mov(port.Left, port.Down)},
	}}
}

var _ = Describe("Run", func() {
	It("validates a correct SELF-TEST DIAGNOSTIC solution", func() {
		puzzle, err := catalog.Lookup("00150")
		Expect(err).NotTo(HaveOccurred())

		params := grader.DefaultParams()
		sc, err := grader.Run(puzzle, selfTestDiagnosticSolution(), nil, params)
		Expect(err).NotTo(HaveOccurred())
		Expect(sc.Validated).To(BeTrue())
		Expect(sc.Nodes).To(Equal(8))
	})

	It("rejects an empty solution", func() {
		puzzle, err := catalog.Lookup("00150")
		Expect(err).NotTo(HaveOccurred())

		params := grader.DefaultParams()
		sc, err := grader.Run(puzzle, &asm.Program{Nodes: map[int][]node.Instruction{}}, nil, params)
		Expect(err).NotTo(HaveOccurred())
		Expect(sc.Validated).To(BeFalse())
	})

	It("validates a doubling SIGNAL AMPLIFIER solution", func() {
		puzzle, err := catalog.Lookup("10981")
		Expect(err).NotTo(HaveOccurred())

		src := `
@1
MOV UP, ACC
ADD ACC
MOV ACC, DOWN
@5
MOV UP, RIGHT
@6
MOV LEFT, DOWN
@10
MOV UP, DOWN
`
		prog, diags := asm.Assemble(src, asm.Options{})
		Expect(diags).To(BeEmpty())

		sc, err := grader.Run(puzzle, prog, nil, grader.DefaultParams())
		Expect(err).NotTo(HaveOccurred())
		Expect(sc.Validated).To(BeTrue())
		Expect(sc.Cycles).To(BeNumerically("<", 100000))
	})

	It("fails the first fixed test on HCF and never runs the rest", func() {
		puzzle, err := catalog.Lookup("00150")
		Expect(err).NotTo(HaveOccurred())

		prog := selfTestDiagnosticSolution()
		prog.Nodes[0] = []node.Instruction{{Op: node.HCF, Line: 1}}

		sc, err := grader.Run(puzzle, prog, nil, grader.DefaultParams())
		Expect(err).NotTo(HaveOccurred())
		Expect(sc.Validated).To(BeFalse())
		Expect(sc.FailureReason).To(ContainSubstring("fixed test 0"))
		Expect(sc.FailureReason).To(ContainSubstring("HCF"))
		// The failing test never contributes to the cycle score.
		Expect(sc.Cycles).To(BeNumerically("==", 0))
	})
})
