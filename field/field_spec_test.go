package field_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/killerbee13/tis100-go/field"
	"github.com/killerbee13/tis100-go/node"
	"github.com/killerbee13/tis100-go/port"
	"github.com/killerbee13/tis100-go/word"
)

func singleCellLayout() field.Layout {
	return field.Layout{
		Rows: 1, Cols: 1,
		Cells:   []field.CellKind{field.CellT21},
		Inputs:  []field.IOKind{field.IOIn},
		Outputs: []field.IOKind{field.IOOut},
	}
}

var _ = Describe("Field", func() {
	var f *field.Field

	BeforeEach(func() {
		engine := sim.NewSerialEngine()
		f = field.NewField(engine, 1*sim.GHz, "Spec", singleCellLayout(), 0, 0)
	})

	Context("a single node forwarding UP to DOWN", func() {
		BeforeEach(func() {
			f.NodeByIndex(0).(*node.T21).Load([]node.Instruction{
				{Op: node.MOV, Src: node.Src{Port: port.Up}, Dst: port.Down},
			})
			f.Link()
			f.Inputs()[0].SetValues([]word.Word{7, 8})
			f.Numeric()[0].SetExpected([]word.Word{7, 8})
		})

		It("reproduces the input sequence on the output", func() {
			for i := 0; i < 20; i++ {
				active, err := f.Step()
				Expect(err).NotTo(HaveOccurred())
				if !active {
					break
				}
			}
			Expect(f.Numeric()[0].Valid()).To(BeTrue())
		})
	})

	Context("a node whose program is HCF", func() {
		BeforeEach(func() {
			f.NodeByIndex(0).(*node.T21).Load([]node.Instruction{{Op: node.HCF}})
			f.Link()
		})

		It("reports an error from Step instead of panicking", func() {
			_, err := f.Step()
			Expect(err).To(HaveOccurred())
		})
	})

	Context("a node with no program installed", func() {
		It("is pruned out of the simulation set", func() {
			f.Link()
			Expect(f.NodesUsed()).To(Equal(0))
		})
	})
})
