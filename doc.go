// Package mazerouter is a two-layer grid maze router for printed-circuit
// and integrated-circuit style net routing.
//
// Given a rectangular cell grid spanning two metal layers, a set of
// blocked cells, and a list of nets (each a named group of two or more
// pins), MazeRouter computes for each net a connected path of grid cells
// that reaches every pin of the net while avoiding obstacles and the
// paths already committed by earlier nets. Paths are found by a
// uniform-cost best-first search over the three-dimensional state space
// (layer, row, column) that penalizes direction changes on a layer
// ("bends") and layer changes ("vias"), optionally favoring a preferred
// routing direction on each layer.
//
// Subpackages:
//
//	grid/           — the two-layer occupancy grid (free / obstacle / committed)
//	costmodel/      — the pure step-cost function shared by the search
//	router/         — the per-net path search and the net scheduler
//	netio/          — the text input parser and output serializer
//	viz/            — an optional per-layer PNG renderer
//	cmd/mazerouter/ — the command-line entry point
//
// A session runs parser → grid + net list → scheduler → (per net) search
// → committed paths → serializer, with the scheduler committing each
// successfully routed net back into the grid as an obstacle before the
// next net is attempted. There is no rip-up-and-reroute, no cross-net
// optimality, and no support for more than two layers.
package mazerouter
