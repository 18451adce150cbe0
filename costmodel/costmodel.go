package costmodel

// Direction is a 2D displacement assigned only to same-layer steps. Via
// steps carry no Direction; the search represents "no direction" with a
// nil *Direction rather than a zero Direction, so a bend can never be
// confused with the very first step of a path.
type Direction struct {
	DRow, DCol int
}

// The four legal same-layer directions. No diagonals.
var (
	North = Direction{DRow: -1, DCol: 0}
	South = Direction{DRow: 1, DCol: 0}
	East  = Direction{DRow: 0, DCol: 1}
	West  = Direction{DRow: 0, DCol: -1}
)

// preferredBase and offBase are the per-layer base move costs: 1 for a
// layer's preferred direction, 3 for the other. These are constants of
// the cost model, not user-configurable.
const (
	preferredBase = 1
	offBase       = 3
)

// Weights carries the two user-configured penalties read from the input
// file header: BendPenalty and ViaPenalty. Both must be non-negative;
// the parser is responsible for rejecting negative values before a
// Weights value is constructed.
type Weights struct {
	BendPenalty int
	ViaPenalty  int
}

// StepCost computes the cost of one search step, following four ordered
// rules:
//
//  1. A via step costs exactly ViaPenalty, regardless of direction.
//  2. Otherwise the step is on-layer with direction newDir; its base cost
//     depends on (fromLayer, newDir): layer 0 prefers column-parallel
//     motion (δrow=0 → cost 1, δcolumn=0 → cost 3); layer 1 prefers
//     row-parallel motion (δcolumn=0 → cost 1, δrow=0 → cost 3).
//  3. BendPenalty is added iff prevDir is non-nil and differs from newDir.
//     prevDir is nil both at the path's source and immediately after a
//     via, so a via resets directional history and crossing one never
//     incurs a bend penalty.
//  4. The sum of base cost and (if applicable) BendPenalty is returned.
//
// Complexity: O(1).
func StepCost(fromLayer int, prevDir *Direction, newDir Direction, isVia bool, w Weights) int {
	if isVia {
		return w.ViaPenalty
	}

	cost := baseMoveCost(fromLayer, newDir)
	if prevDir != nil && *prevDir != newDir {
		cost += w.BendPenalty
	}

	return cost
}

// baseMoveCost implements rule 2 of StepCost in isolation.
func baseMoveCost(fromLayer int, dir Direction) int {
	switch fromLayer {
	case 0:
		if dir.DRow == 0 {
			return preferredBase
		}

		return offBase
	default: // layer 1
		if dir.DCol == 0 {
			return preferredBase
		}

		return offBase
	}
}
