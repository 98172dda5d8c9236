// Package field assembles a grid of nodes into a simulated machine: it
// links node neighbors from static analysis of each compute cell's
// program, prunes cells that cannot influence any output, and drives the
// three-phase global cycle (step all regular cells, execute all IO
// cells, finalize all regular cells).
package field

// CellKind names what occupies one grid position in a Layout.
type CellKind int8

const (
	CellT21 CellKind = iota
	CellT30
	CellDamaged
)

// IOKind names what, if anything, is attached to a column on the top
// (input) or bottom (output) edge of the grid.
type IOKind int8

const (
	IONone IOKind = iota
	IOIn
	IOOut
	IOImage
)

// Layout is an immutable description of a puzzle's grid shape: which kind
// of cell occupies each position, and which columns carry IO attachments.
// Rows and Cols describe the regular-cell grid only (typically 3x4); the
// input/output vectors are indexed by column and have length Cols.
type Layout struct {
	Rows, Cols int
	Cells      []CellKind // row-major, len == Rows*Cols
	Inputs     []IOKind   // len == Cols, each IONone or IOIn
	Outputs    []IOKind   // len == Cols, each IONone, IOOut, or IOImage
}

func (l Layout) At(row, col int) CellKind {
	return l.Cells[row*l.Cols+col]
}

// StandardLayout is the typical 3-row x 4-column grid used by most
// built-in puzzles, with every cell a compute cell and no damaged cells,
// ready to be customized by the caller.
func StandardLayout() Layout {
	rows, cols := 3, 4
	cells := make([]CellKind, rows*cols)
	return Layout{
		Rows: rows, Cols: cols, Cells: cells,
		Inputs:  make([]IOKind, cols),
		Outputs: make([]IOKind, cols),
	}
}
