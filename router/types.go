package router

import (
	"errors"

	"github.com/KirolousFouty/MazeRouter/grid"
)

// Sentinel errors for router operations.
var (
	// ErrTooFewPins indicates a net was given fewer than two pins. The
	// parser is expected to reject such nets before they ever reach
	// Search; this is a defensive check, not a reachable path in a
	// correctly driven session.
	ErrTooFewPins = errors.New("router: net must have at least two pins")

	// ErrUnroutable indicates the search exhausted the reachable state
	// space (or the net's source pin was not Free) without visiting
	// every target pin of the net.
	ErrUnroutable = errors.New("router: net is unroutable")
)

// Net is a named set of pins to be connected: the first pin is the
// search's source, the remaining pins are its target set.
type Net struct {
	Name string
	Pins []grid.Cell
}

// Path is the ordered sequence of cells realizing one net's connection,
// beginning at the net's source pin.
type Path []grid.Cell

// RoutedNet pairs a net's name with its committed Path, in
// net-scheduling order.
type RoutedNet struct {
	Name string
	Path Path
}
