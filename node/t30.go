package node

import (
	"fmt"
	"strings"

	"github.com/killerbee13/tis100-go/port"
	"github.com/killerbee13/tis100-go/word"
)

// T30 is a passive stack cell: a LIFO buffer that accepts pushes from any
// neighbor during Step and offers its top to the first neighbor that
// reads during the following cycle's Step.
type T30 struct {
	base

	maxSize  int
	data     []word.Word
	division int
	wrote    bool

	// Used latches true the first time anything is ever pushed, and
	// persists across Reset (it only survives for the lifetime of this
	// node instance, i.e. is cleared by Clone producing a fresh node). It
	// powers the NO_MEMORY achievement, which must see activity across an
	// entire grading run, not just the last test.
	Used bool

	neighbors [4]Regular
}

func NewT30(x, y, maxSize int) *T30 {
	if maxSize <= 0 {
		maxSize = DefaultT30Size
	}
	return &T30{base: newBase(x, y, KindT30), maxSize: maxSize}
}

func (s *T30) SetNeighbor(d port.Port, n Regular) { s.neighbors[d] = n }

func (s *T30) doRead(d port.Port) word.Optional {
	n := s.neighbors[d]
	if n == nil {
		return word.Empty
	}
	return n.Emit(port.Invert(d))
}

// Step accepts pushes from every directional neighbor, in direction order,
// until the buffer is full.
func (s *T30) Step() {
	if len(s.data) == s.maxSize {
		return
	}
	for d := port.First; d <= port.Last; d++ {
		if v := s.doRead(d); v.Valid {
			s.data = append(s.data, v.Value)
			s.Used = true
			if len(s.data) == s.maxSize {
				break
			}
		}
	}
}

func (s *T30) Finalize() {
	s.division = len(s.data)
	s.wrote = false
}

// Emit pops the top of the stack for the first reader this cycle; p (the
// direction the data would travel) is accepted unconditionally, since the
// stack does not address its output by port.
func (s *T30) Emit(p port.Port) word.Optional {
	if s.wrote || s.division == 0 {
		return word.Empty
	}
	s.division--
	v := s.data[s.division]
	s.data = s.data[:s.division]
	s.wrote = true
	s.fire(HookPosEmit, v)
	return word.Optional{Value: v, Valid: true}
}

func (s *T30) State() string {
	var b strings.Builder
	fmt.Fprintf(&b, "(%d,%d) T30 {", s.x, s.y)
	for i, w := range s.data {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", w)
	}
	b.WriteByte('}')
	return b.String()
}

// Reset clears the buffer between test cases. Used is NOT cleared here:
// per spec it persists for the lifetime of the field (i.e. across every
// test in a grading run).
func (s *T30) Reset() {
	s.data = s.data[:0]
	s.division = 0
	s.wrote = false
}

func (s *T30) Clone() Regular {
	return NewT30(s.x, s.y, s.maxSize)
}

var _ Regular = (*T30)(nil)

// Damaged is an inert node: present for topology only, never stepped,
// and acts as an opaque wall during neighbor linking and reachability
// pruning.
type Damaged struct {
	base
	neighbors [4]Regular
}

func NewDamaged(x, y int) *Damaged {
	return &Damaged{base: newBase(x, y, KindDamaged)}
}

func (d *Damaged) SetNeighbor(p port.Port, n Regular) { d.neighbors[p] = n }
func (d *Damaged) Step()                              {}
func (d *Damaged) Finalize()                          {}
func (d *Damaged) Emit(port.Port) word.Optional        { return word.Empty }
func (d *Damaged) State() string                       { return fmt.Sprintf("(%d,%d) {Damaged}", d.x, d.y) }
func (d *Damaged) Reset()                              {}
func (d *Damaged) Clone() Regular                      { return NewDamaged(d.x, d.y) }

var _ Regular = (*Damaged)(nil)
