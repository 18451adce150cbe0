package router_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirolousFouty/MazeRouter/costmodel"
	"github.com/KirolousFouty/MazeRouter/grid"
	"github.com/KirolousFouty/MazeRouter/router"
)

// SearchSuite covers the per-net path search against a handful of
// concrete routing scenarios, plus the invariants every returned Path
// must satisfy.
type SearchSuite struct {
	suite.Suite
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}

// assertValidPath checks the invariants common to every path.
func (s *SearchSuite) assertValidPath(net router.Net, path router.Path) {
	require.Equal(s.T(), net.Pins[0], path[0], "first cell must equal first pin")
	for _, target := range net.Pins[1:] {
		found := false
		for _, c := range path {
			if c == target {
				found = true

				break
			}
		}
		require.True(s.T(), found, "target pin %+v missing from path", target)
	}
	for i := 1; i < len(path); i++ {
		prev, cur := path[i-1], path[i]
		sameLayer := prev.Layer == cur.Layer
		viaStep := prev.Row == cur.Row && prev.Column == cur.Column && prev.Layer != cur.Layer
		if sameLayer {
			d := abs2(prev.Row-cur.Row) + abs2(prev.Column-cur.Column)
			require.Equal(s.T(), 1, d, "same-layer step %+v -> %+v must have Manhattan distance 1", prev, cur)
		} else {
			require.True(s.T(), viaStep, "cross-layer step %+v -> %+v must be a via (same row,column)", prev, cur)
		}
	}
}

func abs2(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// A plain 3x3 grid with no obstacles routes a horizontal net as a
// straight run.
func (s *SearchSuite) TestHorizontalNet_StraightRun() {
	g := grid.NewGrid(3, 3)
	net := router.Net{Name: "netA", Pins: []grid.Cell{
		{Layer: 0, Row: 1, Column: 0},
		{Layer: 0, Row: 1, Column: 2},
	}}
	weights := costmodel.Weights{BendPenalty: 5, ViaPenalty: 20}

	path, err := router.Search(g, net, weights)
	require.NoError(s.T(), err)
	want := router.Path{
		{Layer: 0, Row: 1, Column: 0},
		{Layer: 0, Row: 1, Column: 1},
		{Layer: 0, Row: 1, Column: 2},
	}
	require.Equal(s.T(), want, path)
}

// A single via beats a same-layer detour when the via is cheap.
func (s *SearchSuite) TestViaPreference() {
	g := grid.NewGrid(3, 3)
	net := router.Net{Name: "netA", Pins: []grid.Cell{
		{Layer: 0, Row: 0, Column: 0},
		{Layer: 1, Row: 0, Column: 0},
	}}
	weights := costmodel.Weights{BendPenalty: 100, ViaPenalty: 1}

	path, err := router.Search(g, net, weights)
	require.NoError(s.T(), err)
	want := router.Path{
		{Layer: 0, Row: 0, Column: 0},
		{Layer: 1, Row: 0, Column: 0},
	}
	require.Equal(s.T(), want, path)
}

// A blocked cell forces a same-layer detour around it.
func (s *SearchSuite) TestObstacleDetour() {
	g := grid.NewGrid(5, 5)
	require.NoError(s.T(), g.MarkObstacle(0, 2, 2))
	net := router.Net{Name: "netA", Pins: []grid.Cell{
		{Layer: 0, Row: 2, Column: 0},
		{Layer: 0, Row: 2, Column: 4},
	}}
	weights := costmodel.Weights{BendPenalty: 0, ViaPenalty: 100}

	path, err := router.Search(g, net, weights)
	require.NoError(s.T(), err)
	s.assertValidPath(net, path)
	require.Len(s.T(), path, 7)
	for _, c := range path {
		require.False(s.T(), c.Layer == 0 && c.Row == 2 && c.Column == 2, "path must not cross the obstacle")
	}
}

// A fully blocked row isolates the target pin entirely.
func (s *SearchSuite) TestUnroutable_FullyBlockedRow() {
	g := grid.NewGrid(3, 3)
	for l := 0; l < grid.Layers; l++ {
		for c := 0; c < 3; c++ {
			require.NoError(s.T(), g.MarkObstacle(l, 1, c))
		}
	}
	net := router.Net{Name: "netA", Pins: []grid.Cell{
		{Layer: 0, Row: 0, Column: 0},
		{Layer: 0, Row: 2, Column: 2},
	}}
	weights := costmodel.Weights{BendPenalty: 5, ViaPenalty: 20}

	_, err := router.Search(g, net, weights)
	require.ErrorIs(s.T(), err, router.ErrUnroutable)
}

// A three-pin net resolves to a single contiguous path touching all pins.
func (s *SearchSuite) TestThreePinNet() {
	g := grid.NewGrid(5, 5)
	net := router.Net{Name: "netA", Pins: []grid.Cell{
		{Layer: 0, Row: 0, Column: 0},
		{Layer: 0, Row: 0, Column: 4},
		{Layer: 0, Row: 4, Column: 4},
	}}
	weights := costmodel.Weights{BendPenalty: 0, ViaPenalty: 100}

	path, err := router.Search(g, net, weights)
	require.NoError(s.T(), err)
	s.assertValidPath(net, path)
}

// Determinism: identical input yields identical output.
func (s *SearchSuite) TestDeterminism() {
	build := func() (*grid.Grid, router.Net) {
		g := grid.NewGrid(5, 5)
		_ = g.MarkObstacle(0, 2, 2)

		return g, router.Net{Name: "netA", Pins: []grid.Cell{
			{Layer: 0, Row: 2, Column: 0},
			{Layer: 0, Row: 2, Column: 4},
		}}
	}
	weights := costmodel.Weights{BendPenalty: 0, ViaPenalty: 100}

	g1, net1 := build()
	p1, err1 := router.Search(g1, net1, weights)
	require.NoError(s.T(), err1)

	g2, net2 := build()
	p2, err2 := router.Search(g2, net2, weights)
	require.NoError(s.T(), err2)

	require.Equal(s.T(), p1, p2)
}

// Cost sanity: an obstacle-free single-net horizontal run is exactly
// k+1 cells, all on layer 0, row fixed, column monotonically increasing.
func (s *SearchSuite) TestCostSanity_StraightRun() {
	const k = 6
	g := grid.NewGrid(3, k+1)
	net := router.Net{Name: "netA", Pins: []grid.Cell{
		{Layer: 0, Row: 0, Column: 0},
		{Layer: 0, Row: 0, Column: k},
	}}
	weights := costmodel.Weights{BendPenalty: 5, ViaPenalty: 20}

	path, err := router.Search(g, net, weights)
	require.NoError(s.T(), err)
	require.Len(s.T(), path, k+1)
	for i, c := range path {
		require.Equal(s.T(), 0, c.Layer)
		require.Equal(s.T(), 0, c.Row)
		require.Equal(s.T(), i, c.Column)
	}
}

func (s *SearchSuite) TestSearch_TooFewPins() {
	g := grid.NewGrid(3, 3)
	net := router.Net{Name: "netA", Pins: []grid.Cell{{Layer: 0, Row: 0, Column: 0}}}
	_, err := router.Search(g, net, costmodel.Weights{})
	require.ErrorIs(s.T(), err, router.ErrTooFewPins)
}

func (s *SearchSuite) TestSearch_SourceOnObstacle() {
	g := grid.NewGrid(3, 3)
	require.NoError(s.T(), g.MarkObstacle(0, 0, 0))
	require.NoError(s.T(), g.MarkObstacle(1, 0, 0))
	net := router.Net{Name: "netA", Pins: []grid.Cell{
		{Layer: 0, Row: 0, Column: 0},
		{Layer: 0, Row: 1, Column: 1},
	}}
	_, err := router.Search(g, net, costmodel.Weights{BendPenalty: 1, ViaPenalty: 1})
	require.ErrorIs(s.T(), err, router.ErrUnroutable)
}
