// Package node implements the per-cell state machines of the simulated
// grid: compute cells (T21), stack cells (T30), the three IO cell kinds,
// and the inert damaged cell. Each node type follows the same two-phase
// protocol (Step then Finalize) enforced by package field, and answers
// read requests through Emit.
package node

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/killerbee13/tis100-go/port"
	"github.com/killerbee13/tis100-go/word"
)

// HookPosStep, HookPosFinalize and HookPosEmit mark the three points at
// which a node notifies any attached sim.Hook, mirroring the send/recv/
// retrieve hook triple akita's own port package fires around message
// traffic.
var (
	HookPosStep     = &sim.HookPos{Name: "Node Step"}
	HookPosFinalize = &sim.HookPos{Name: "Node Finalize"}
	HookPosEmit     = &sim.HookPos{Name: "Node Emit"}
)

// Activity mirrors the four-state activity flag every regular node
// exposes for diagnostics (`IDLE`, `RUN`, `READ`, `WRITE`).
type Activity int8

const (
	Idle Activity = iota
	Run
	Read
	Write
)

func (a Activity) String() string {
	switch a {
	case Idle:
		return "IDLE"
	case Run:
		return "RUN"
	case Read:
		return "READ"
	case Write:
		return "WRTE"
	default:
		return "?"
	}
}

// Kind identifies the concrete node type, matching the original's
// node::type_t discriminant (HCF reads as opcode zero, never as a node
// kind, so this enum starts at 1).
type Kind int8

const (
	KindT21 Kind = iota + 1
	KindT30
	KindIn
	KindOut
	KindImage
	KindDamaged
)

// Regular is the interface every node that participates in the grid's
// neighbor graph implements: compute, stack, and damaged cells. IO cells
// are driven separately (see field.Field.Tick) since they execute in
// their own sub-phase and never receive neighbor links of their own.
type Regular interface {
	sim.Hookable

	X() int
	Y() int
	Kind() Kind

	// Step runs the first sub-phase of a cycle: reads, arithmetic, jumps,
	// stalls, and write-initiation.
	Step()
	// Finalize runs the third sub-phase: resolving write ports, completing
	// writes, advancing pc for completed MOVs.
	Finalize()
	// Emit answers a read request. p is in the emitting node's own frame:
	// a reader looking in direction d calls Emit(port.Invert(d)) on that
	// neighbor, and the node compares p with its pending write port
	// directly, without inverting it.
	Emit(p port.Port) word.Optional

	// SetNeighbor installs (or clears, with nil) the neighbor reachable in
	// direction d. Only field.Field calls this, during linking.
	SetNeighbor(d port.Port, n Regular)

	// State renders a human-readable snapshot, in the same
	// state()-style debug-string form as other node kinds.
	State() string

	// Reset restores the node to its post-construction state, ready for a
	// fresh test case; persistent fields (T30.Used) are untouched.
	Reset()

	// Clone returns a fresh node of the same kind and position, as if newly
	// constructed (not a deep copy: no neighbors, no accumulated state).
	Clone() Regular
}

const (
	// DefaultT21Size and DefaultT30Size bound the per-node instruction and
	// stack capacities respectively, absent an explicit override.
	DefaultT21Size = 15
	DefaultT30Size = 15
)

// base factors out position, kind, and the Hookable embedding shared by
// every concrete node type.
type base struct {
	sim.HookableBase
	x, y int
	kind Kind
}

func (b *base) X() int      { return b.x }
func (b *base) Y() int      { return b.y }
func (b *base) Kind() Kind  { return b.kind }

func (b *base) fire(pos *sim.HookPos, item any) {
	b.InvokeHook(sim.HookCtx{Domain: b, Pos: pos, Item: item})
}

func newBase(x, y int, k Kind) base {
	return base{x: x, y: y, kind: k}
}
