package router

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/KirolousFouty/MazeRouter/costmodel"
	"github.com/KirolousFouty/MazeRouter/grid"
)

// pairSumDistance sums the Manhattan distance, in (row, column), over
// every unordered pair of a net's pins, ignoring layer. This is
// the net-ordering heuristic's difficulty score: shorter, easier nets
// route first while the grid is least congested.
func pairSumDistance(pins []grid.Cell) int {
	sum := 0
	for i := 0; i < len(pins); i++ {
		for j := i + 1; j < len(pins); j++ {
			sum += manhattan(pins[i], pins[j])
		}
	}

	return sum
}

func manhattan(a, b grid.Cell) int {
	return abs(a.Row-b.Row) + abs(a.Column-b.Column)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// RouteAll orders nets by ascending pairSumDistance (a stable sort, so
// nets tied on distance keep their input order, first-listed wins), then
// drives Search for each net in that order, committing successful paths
// into g before the next net is attempted. A net that returns
// ErrUnroutable is omitted from the result and logged; routing continues
// with the remaining nets — no rip-up-and-reroute, no retry, no reorder.
//
// The returned slice is in net-scheduling order, not input order.
func RouteAll(g *grid.Grid, nets []Net, weights costmodel.Weights) []RoutedNet {
	ordered := make([]Net, len(nets))
	copy(ordered, nets)
	sort.SliceStable(ordered, func(i, j int) bool {
		return pairSumDistance(ordered[i].Pins) < pairSumDistance(ordered[j].Pins)
	})

	routed := make([]RoutedNet, 0, len(ordered))
	for _, net := range ordered {
		path, err := Search(g, net, weights)
		if err != nil {
			if errors.Is(err, ErrUnroutable) {
				log.Printf("router: net %q could not be routed", net.Name)
			} else {
				log.Printf("router: net %q: %v", net.Name, err)
			}
			continue
		}
		if err := g.CommitPath([]grid.Cell(path)); err != nil {
			// The search never proposes a step onto a non-Free cell; a
			// commit failure here means that invariant was broken.
			panic(fmt.Sprintf("router: net %q: %v", net.Name, err))
		}
		log.Printf("router: net %q routed, %d cells", net.Name, len(path))
		routed = append(routed, RoutedNet{Name: net.Name, Path: path})
	}

	return routed
}
