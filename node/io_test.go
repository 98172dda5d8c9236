package node

import (
	"testing"

	"github.com/killerbee13/tis100-go/port"
	"github.com/killerbee13/tis100-go/word"
)

// scriptedEmitter stands in for a compute neighbor, answering every Emit
// with the next word of a fixed stream.
type scriptedEmitter struct {
	base
	stream []word.Word
}

func (s *scriptedEmitter) Step()                            {}
func (s *scriptedEmitter) Finalize()                        {}
func (s *scriptedEmitter) SetNeighbor(port.Port, Regular)   {}
func (s *scriptedEmitter) State() string                    { return "scripted" }
func (s *scriptedEmitter) Reset()                           {}
func (s *scriptedEmitter) Clone() Regular                   { return s }
func (s *scriptedEmitter) Emit(port.Port) word.Optional {
	if len(s.stream) == 0 {
		return word.Empty
	}
	v := s.stream[0]
	s.stream = s.stream[1:]
	return word.SomeWord(v)
}

func driveImage(t *testing.T, expected Image, stream []word.Word) *ImageOutput {
	t.Helper()
	o := NewImageOutput(0, expected)
	o.SetNeighbor(&scriptedEmitter{stream: stream})
	for range stream {
		o.Execute()
	}
	return o
}

func TestImageProtocolDrawsRow(t *testing.T) {
	expected := NewImage(4, 2)
	expected.Set(0, 0, White)
	expected.Set(1, 0, White)
	expected.Set(2, 0, White)

	// Reset, cursor (0,0), then three color pokes; X auto-advances after
	// each poke.
	o := driveImage(t, expected, []word.Word{-1, 0, 0, 3, 3, 3})
	if !o.Valid() {
		t.Fatalf("expected canvas to match after row draw:\n%s", o.Received().Text())
	}
}

func TestImageProtocolResetMidStream(t *testing.T) {
	expected := NewImage(4, 2)
	expected.Set(0, 0, White)
	expected.Set(2, 1, Red)

	o := driveImage(t, expected, []word.Word{
		-1, 0, 0, 3, // (0,0) white
		-1, 2, 1, 4, // reset, (2,1) red
	})
	if !o.Valid() {
		t.Fatalf("expected canvas to match after mid-stream reset:\n%s", o.Received().Text())
	}
}

func TestImageProtocolOutOfBoundsDropped(t *testing.T) {
	expected := NewImage(4, 2)
	// Cursor far outside the canvas: pokes are dropped, cursor values are
	// retained, and nothing lands until an explicit reset.
	o := driveImage(t, expected, []word.Word{-1, 50, 0, 3, 3})
	if !o.Valid() {
		t.Fatalf("out-of-bounds pokes must not corrupt the canvas:\n%s", o.Received().Text())
	}
}

func TestInputOffersOneWordPerCycle(t *testing.T) {
	in := NewInput(0, []word.Word{7, 9})

	in.Execute()
	if v := in.Emit(port.Up); !v.Valid || v.Value != 7 {
		t.Fatalf("first read = %v, want 7", v)
	}
	// The cycle after a consume is spent re-arming; the next value arrives
	// the cycle after that.
	in.Execute()
	if v := in.Emit(port.Up); v.Valid {
		t.Fatalf("input re-armed too quickly: got %v", v)
	}
	in.Execute()
	if v := in.Emit(port.Up); !v.Valid || v.Value != 9 {
		t.Fatalf("second read = %v, want 9", v)
	}
	in.Execute()
	in.Execute()
	if v := in.Emit(port.Up); v.Valid {
		t.Fatalf("exhausted input still offered %v", v)
	}
}

func TestNumericOutputDetectsMismatch(t *testing.T) {
	o := NewNumericOutput(0, []word.Word{1, 2})
	o.SetNeighbor(&scriptedEmitter{stream: []word.Word{1, 3}})
	o.Execute()
	o.Execute()
	if o.Valid() {
		t.Fatalf("mismatched second value must invalidate the output")
	}
	if len(o.Received()) != 2 {
		t.Fatalf("received %d values, want 2", len(o.Received()))
	}
}
