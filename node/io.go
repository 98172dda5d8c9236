package node

import (
	"fmt"
	"strings"

	"github.com/killerbee13/tis100-go/port"
	"github.com/killerbee13/tis100-go/word"
)

// IO is the interface the field drives in the dedicated IO sub-phase,
// between the regular Step and Finalize sub-phases. IO nodes have a
// single directional attachment (always conceptually DOWN from an input
// into the grid, or UP from the grid into an output) rather than the
// four-way neighbor set regular nodes carry.
type IO interface {
	X() int
	Kind() Kind
	// Execute runs this node's one sub-phase for the cycle.
	Execute()
	SetNeighbor(n Regular)
	Reset()
	Clone() IO
	State() string
}

// Input offers a fixed sequence of words, one every cycle it isn't
// already holding an unread value, down into the column of compute cells
// beneath it.
type Input struct {
	x         int
	values    []word.Word
	idx       int
	pending   word.Optional
	writing   bool
	neighbor  Regular
}

func NewInput(x int, values []word.Word) *Input {
	return &Input{x: x, values: values}
}

func (in *Input) X() int        { return in.x }
func (in *Input) Kind() Kind    { return KindIn }

// SetValues installs a new word sequence for the next test case; takes
// effect once Reset clears the read index back to 0.
func (in *Input) SetValues(values []word.Word) { in.values = values }
func (in *Input) SetNeighbor(n Regular) { in.neighbor = n }

// Execute has no read-side effect; the original step() is a no-op and all
// the behavior lives in the finalize-equivalent below, run once per cycle
// from the IO sub-phase.
func (in *Input) Execute() {
	if in.writing {
		in.writing = false
		return
	}
	if !in.pending.Valid && in.idx != len(in.values) {
		in.pending = word.SomeWord(in.values[in.idx])
		in.idx++
	}
}

// Emit is called by the compute cell beneath this input when it reads Up;
// the cell passes port.Invert(Up), i.e. Down. The port is ignored.
func (in *Input) Emit(port.Port) word.Optional {
	if !in.pending.Valid {
		return word.Empty
	}
	in.writing = true
	v := in.pending
	in.pending = word.Empty
	return v
}

func (in *Input) Reset() {
	in.idx = 0
	in.pending = word.Empty
	in.writing = false
}

func (in *Input) Clone() IO {
	return NewInput(in.x, in.values)
}

func (in *Input) State() string {
	return fmt.Sprintf("I%d NUMERIC { emitted:(%d/%d) }", in.x, in.idx, len(in.values))
}

// NumericOutput compares what the grid writes into it, one word per
// cycle, against an expected sequence.
type NumericOutput struct {
	x        int
	expected []word.Word
	received []word.Word
	wrong    bool
	complete bool
	neighbor Regular
}

func NewNumericOutput(x int, expected []word.Word) *NumericOutput {
	return &NumericOutput{x: x, expected: expected}
}

func (o *NumericOutput) X() int        { return o.x }
func (o *NumericOutput) Kind() Kind    { return KindOut }

// SetExpected installs a new expected sequence for the next test case;
// takes effect once Reset clears received/wrong/complete.
func (o *NumericOutput) SetExpected(expected []word.Word) { o.expected = expected }
func (o *NumericOutput) SetNeighbor(n Regular) { o.neighbor = n }

func (o *NumericOutput) Execute() {
	if o.complete || o.neighbor == nil {
		return
	}
	v := o.neighbor.Emit(port.Down)
	if !v.Valid {
		return
	}
	i := len(o.received)
	o.received = append(o.received, v.Value)
	if i >= len(o.expected) || o.received[i] != o.expected[i] {
		o.wrong = true
	}
	o.complete = len(o.received) == len(o.expected)
}

// Valid reports whether this output fully and correctly matches its
// expectation. Only meaningful once the field has stopped running.
func (o *NumericOutput) Valid() bool {
	return o.complete && !o.wrong
}

func (o *NumericOutput) Received() []word.Word { return o.received }
func (o *NumericOutput) Expected() []word.Word { return o.expected }

func (o *NumericOutput) Reset() {
	o.received = nil
	o.wrong = false
	o.complete = false
}

func (o *NumericOutput) Clone() IO {
	return NewNumericOutput(o.x, o.expected)
}

func (o *NumericOutput) State() string {
	var b strings.Builder
	fmt.Fprintf(&b, "O%d NUMERIC {\nreceived:", o.x)
	for i, w := range o.received {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", w)
	}
	b.WriteByte('}')
	return b.String()
}

// ImageOutput consumes a (x,y,color)* control stream and validates the
// resulting canvas against an expected bitmap.
type ImageOutput struct {
	x        int
	expected Image
	received Image

	cx, cy   word.Optional
	wrongCnt int

	neighbor Regular
}

func NewImageOutput(x int, expected Image) *ImageOutput {
	o := &ImageOutput{x: x, expected: expected, received: NewImage(expected.Width, expected.Height)}
	o.recount()
	return o
}

func (o *ImageOutput) X() int        { return o.x }
func (o *ImageOutput) Kind() Kind    { return KindImage }

// SetExpected installs a new expected bitmap for the next test case,
// reallocating the received canvas to match its dimensions.
func (o *ImageOutput) SetExpected(expected Image) {
	o.expected = expected
	o.received = NewImage(expected.Width, expected.Height)
	o.cx, o.cy = word.Empty, word.Empty
	o.recount()
}
func (o *ImageOutput) SetNeighbor(n Regular) { o.neighbor = n }

func (o *ImageOutput) Execute() {
	if o.neighbor == nil {
		return
	}
	v := o.neighbor.Emit(port.Down)
	if !v.Valid {
		return
	}
	r := v.Value
	switch {
	case r < 0:
		o.cx, o.cy = word.Empty, word.Empty
	case !o.cx.Valid:
		o.cx = word.SomeWord(r)
	case !o.cy.Valid:
		o.cy = word.SomeWord(r)
	default:
		o.poke(NormalizePixel(int(r)))
		o.cx = word.SomeWord(word.Add(o.cx.Value, 1))
	}
}

func (o *ImageOutput) poke(p Pixel) {
	if !o.cx.Valid || !o.cy.Valid {
		return
	}
	x, y := int(o.cx.Value), int(o.cy.Value)
	if x < 0 || x >= o.received.Width || y < 0 || y >= o.received.Height {
		return
	}
	was := o.received.At(x, y) == o.expected.At(x, y)
	o.received.Set(x, y, p)
	now := o.received.At(x, y) == o.expected.At(x, y)
	if was && !now {
		o.wrongCnt++
	} else if !was && now {
		o.wrongCnt--
	}
}

func (o *ImageOutput) recount() {
	n := 0
	for i := range o.received.Pixels {
		if o.received.Pixels[i] != o.expected.Pixels[i] {
			n++
		}
	}
	o.wrongCnt = n
}

// Valid reports whether the received canvas exactly matches expected.
func (o *ImageOutput) Valid() bool {
	return o.wrongCnt == 0
}

func (o *ImageOutput) Received() Image { return o.received }
func (o *ImageOutput) Expected() Image { return o.expected }

func (o *ImageOutput) Reset() {
	o.received.fill(Black)
	o.cx, o.cy = word.Empty, word.Empty
	o.recount()
}

func (o *ImageOutput) Clone() IO {
	return NewImageOutput(o.x, o.expected)
}

func (o *ImageOutput) State() string {
	return fmt.Sprintf("O%d IMAGE {\n%s}", o.x, o.received.Text())
}
