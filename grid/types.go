package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrOutOfBounds indicates a cell coordinate lies outside [0,R)×[0,C)
	// or names a layer other than 0 or 1.
	ErrOutOfBounds = errors.New("grid: cell coordinate out of bounds")

	// ErrNotFree indicates CommitCell or CommitPath was asked to commit a
	// cell whose status is already Obstacle or Committed. This is a
	// programming error: the caller (router) must never propose such a
	// step.
	ErrNotFree = errors.New("grid: cell is not free")
)

// CellStatus is the tri-state occupancy of a single grid cell.
type CellStatus int

const (
	// Free cells may be entered by a search.
	Free CellStatus = iota
	// Obstacle cells are permanently blocked by input.
	Obstacle
	// Committed cells are blocked because an earlier net's path occupies them.
	Committed
)

// String renders a CellStatus for diagnostics.
func (s CellStatus) String() string {
	switch s {
	case Free:
		return "free"
	case Obstacle:
		return "obstacle"
	case Committed:
		return "committed"
	default:
		return "unknown"
	}
}

// Cell is a single grid coordinate: a layer and a (row, column) pair.
type Cell struct {
	Layer  int
	Row    int
	Column int
}

// Layers is the fixed layer count this router supports: no support for
// more than two layers.
const Layers = 2
