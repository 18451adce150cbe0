package router

import (
	"container/heap"

	"github.com/KirolousFouty/MazeRouter/costmodel"
	"github.com/KirolousFouty/MazeRouter/grid"
)

// searchItem is one entry in the priority queue: a candidate arrival at
// cellID with accumulated cost g, carrying the parent cellID it was
// pushed from and the direction used to arrive (nil for the source seed
// and for any via). No path is cloned into the entry — only the
// back-pointer.
type searchItem struct {
	cost     int
	cellID   int
	parentID int // -1 marks the net's source cell itself (the walk's root)
	// maskParentID is usually equal to parentID; it differs only for the
	// second seed entry (the immediate via), which must point parentID at
	// the source cell for path reconstruction while still starting mask
	// accumulation from empty, since mask[parentID] is not yet guaranteed
	// populated — the source cell may not have been closed yet when the
	// via seed is popped.
	maskParentID int
	dir          *costmodel.Direction
}

// itemPQ is a min-heap of *searchItem ordered by ascending cost, the same
// lazy-decrease-key shape as a textbook Dijkstra priority queue: stale
// duplicates are pushed rather than updated in place, and are skipped on
// pop once their cell is already closed.
type itemPQ []*searchItem

func (pq itemPQ) Len() int            { return len(pq) }
func (pq itemPQ) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq itemPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *itemPQ) Push(x interface{}) { *pq = append(*pq, x.(*searchItem)) }
func (pq *itemPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// neighborOffsets enumerates the four same-layer directions; no
// diagonals.
var neighborOffsets = []struct {
	dir           costmodel.Direction
	dRow, dColumn int
}{
	{costmodel.North, -1, 0},
	{costmodel.South, 1, 0},
	{costmodel.East, 0, 1},
	{costmodel.West, 0, -1},
}

// cellIndex returns the dense node ID for a cell, given the grid's (R, C).
func cellIndex(rows, cols, layer, row, col int) int {
	return layer*rows*cols + row*cols + col
}

// Search runs the path search for one net against the current Grid
// state. It returns ErrTooFewPins if net has fewer than two
// pins, and ErrUnroutable if the source pin is not Free or the search
// exhausts the reachable state space without visiting every target pin.
// Complexity: O(R·C·log(R·C)) time, O(R·C) space.
func Search(g *grid.Grid, net Net, weights costmodel.Weights) (Path, error) {
	if len(net.Pins) < 2 {
		return nil, ErrTooFewPins
	}

	rows, cols := g.Size()
	source := net.Pins[0]
	targets := net.Pins[1:]

	sourceStatus, err := g.Status(source.Layer, source.Row, source.Column)
	if err != nil {
		return nil, err
	}
	if sourceStatus != grid.Free {
		// A net whose start pin lies on a blocked cell is declared
		// unroutable, not rerouted to a nearby cell.
		return nil, ErrUnroutable
	}

	// bitIndex maps a target pin's cell ID to its bit position in pinMask.
	bitIndex := make(map[int]int, len(targets))
	for i, p := range targets {
		bitIndex[cellIndex(rows, cols, p.Layer, p.Row, p.Column)] = i
	}
	fullCount := len(targets)

	n := rows * cols * grid.Layers
	closed := make([]bool, n)
	parent := make([]int, n)
	mask := make([]pinMask, n)
	cellAt := make([]grid.Cell, n)

	pq := make(itemPQ, 0, n)
	heap.Init(&pq)

	sourceID := cellIndex(rows, cols, source.Layer, source.Row, source.Column)
	cellAt[sourceID] = source
	heap.Push(&pq, &searchItem{cost: 0, cellID: sourceID, parentID: -1, maskParentID: -1, dir: nil})

	// Second seed: switch layers immediately at the source's (row,column).
	// This is pushed even though it costs ViaPenalty, letting the
	// search start with a layer change if that is cheaper overall. Its
	// maskParentID is -1 (not sourceID): mask[sourceID] is not guaranteed
	// populated yet when this seed is popped, but the accumulated mask
	// "before" either seed is always empty regardless.
	otherLayer := 1 - source.Layer
	if g.InBounds(otherLayer, source.Row, source.Column) {
		status, _ := g.Status(otherLayer, source.Row, source.Column)
		if status == grid.Free {
			otherID := cellIndex(rows, cols, otherLayer, source.Row, source.Column)
			cellAt[otherID] = grid.Cell{Layer: otherLayer, Row: source.Row, Column: source.Column}
			heap.Push(&pq, &searchItem{cost: weights.ViaPenalty, cellID: otherID, parentID: sourceID, maskParentID: -1, dir: nil})
		}
	}

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*searchItem)
		if closed[item.cellID] {
			continue
		}
		closed[item.cellID] = true
		parent[item.cellID] = item.parentID

		var accMask pinMask
		if item.maskParentID == -1 {
			accMask = newPinMask(fullCount)
		} else {
			accMask = mask[item.maskParentID]
		}
		if bit, isTarget := bitIndex[item.cellID]; isTarget {
			accMask = accMask.with(bit)
		}
		mask[item.cellID] = accMask

		if accMask.full(fullCount) {
			return reconstructPath(parent, cellAt, item.cellID), nil
		}

		expand(g, rows, cols, weights, item, cellAt, &pq)
	}

	return nil, ErrUnroutable
}

// expand pushes every legal successor of the just-closed cell in item.
func expand(g *grid.Grid, rows, cols int, weights costmodel.Weights, item *searchItem, cellAt []grid.Cell, pq *itemPQ) {
	cell := cellAt[item.cellID]

	for _, n := range neighborOffsets {
		nr, nc := cell.Row+n.dRow, cell.Column+n.dColumn
		if !g.InBounds(cell.Layer, nr, nc) {
			continue
		}
		status, _ := g.Status(cell.Layer, nr, nc)
		if status != grid.Free {
			continue
		}
		newDir := n.dir
		cost := item.cost + costmodel.StepCost(cell.Layer, item.dir, newDir, false, weights)
		id := cellIndex(rows, cols, cell.Layer, nr, nc)
		cellAt[id] = grid.Cell{Layer: cell.Layer, Row: nr, Column: nc}
		heap.Push(pq, &searchItem{cost: cost, cellID: id, parentID: item.cellID, maskParentID: item.cellID, dir: &newDir})
	}

	otherLayer := 1 - cell.Layer
	if g.InBounds(otherLayer, cell.Row, cell.Column) {
		status, _ := g.Status(otherLayer, cell.Row, cell.Column)
		if status == grid.Free {
			cost := item.cost + costmodel.StepCost(cell.Layer, item.dir, costmodel.Direction{}, true, weights)
			id := cellIndex(rows, cols, otherLayer, cell.Row, cell.Column)
			cellAt[id] = grid.Cell{Layer: otherLayer, Row: cell.Row, Column: cell.Column}
			heap.Push(pq, &searchItem{cost: cost, cellID: id, parentID: item.cellID, maskParentID: item.cellID, dir: nil})
		}
	}
}

// reconstructPath walks parent back-pointers from cellID to the search's
// root (parentID == -1) and returns the cells in source-to-target order.
func reconstructPath(parent []int, cellAt []grid.Cell, cellID int) Path {
	var reversed Path
	for id := cellID; id != -1; id = parent[id] {
		reversed = append(reversed, cellAt[id])
	}

	path := make(Path, len(reversed))
	for i, c := range reversed {
		path[len(reversed)-1-i] = c
	}

	return path
}
