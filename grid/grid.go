package grid

import "fmt"

// Grid is the two-layer occupancy grid. It is created
// when routing begins and mutated only by MarkObstacle (before any search)
// and CommitCell/CommitPath (by the net scheduler, between searches).
//
// cells holds Layers flat, row-major planes: cells[layer][row*C+column].
// Storing two dense planes rather than a map keyed on (layer,row,column)
// keeps every operation O(1) with no hashing.
type Grid struct {
	rows, cols int
	cells      [Layers][]CellStatus
}

// NewGrid allocates an R×C two-layer grid with every cell Free.
// Complexity: O(R×C) time and memory.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{rows: rows, cols: cols}
	for l := 0; l < Layers; l++ {
		g.cells[l] = make([]CellStatus, rows*cols)
	}

	return g
}

// Size returns the fixed (R, C) dimensions of the grid.
func (g *Grid) Size() (rows, cols int) {
	return g.rows, g.cols
}

// InBounds reports whether (layer, row, column) names a valid cell.
// Complexity: O(1).
func (g *Grid) InBounds(layer, row, col int) bool {
	return layer >= 0 && layer < Layers &&
		row >= 0 && row < g.rows &&
		col >= 0 && col < g.cols
}

// index maps (row, column) to the row-major offset within one layer's plane.
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// Status returns the current status of a cell. Complexity: O(1).
func (g *Grid) Status(layer, row, col int) (CellStatus, error) {
	if !g.InBounds(layer, row, col) {
		return Free, fmt.Errorf("%w: (%d,%d,%d)", ErrOutOfBounds, layer, row, col)
	}

	return g.cells[layer][g.index(row, col)], nil
}

// MarkObstacle permanently blocks a cell as an input obstacle. It is
// idempotent (marking an already-obstacle cell is a no-op) and must only
// be called before any search begins. Complexity: O(1).
func (g *Grid) MarkObstacle(layer, row, col int) error {
	if !g.InBounds(layer, row, col) {
		return fmt.Errorf("%w: (%d,%d,%d)", ErrOutOfBounds, layer, row, col)
	}
	g.cells[layer][g.index(row, col)] = Obstacle

	return nil
}

// CommitCell transitions one cell from Free to Committed. It requires the
// prior status to be Free; on Obstacle or Committed it returns ErrNotFree,
// which the caller (router) must never trigger in practice — the search
// never proposes a step onto a non-Free cell. Complexity: O(1).
func (g *Grid) CommitCell(layer, row, col int) error {
	status, err := g.Status(layer, row, col)
	if err != nil {
		return err
	}
	if status != Free {
		return fmt.Errorf("%w: (%d,%d,%d) is %s", ErrNotFree, layer, row, col, status)
	}
	g.cells[layer][g.index(row, col)] = Committed

	return nil
}

// CommitPath commits every cell of path in order, including pins and
// intermediate via cells. It is all-or-nothing only in the sense that the
// router guarantees every cell was Free at the moment the path was found;
// CommitPath does not itself re-validate freshness beyond CommitCell's
// check. Complexity: O(len(path)).
func (g *Grid) CommitPath(path []Cell) error {
	for _, c := range path {
		if err := g.CommitCell(c.Layer, c.Row, c.Column); err != nil {
			return fmt.Errorf("grid: commit_path: %w", err)
		}
	}

	return nil
}
