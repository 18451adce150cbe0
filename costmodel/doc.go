// Package costmodel computes the per-step cost the router's search uses
// to compare candidate paths.
//
// StepCost is a pure function of (fromLayer, prevDir, newDir, isVia) and
// the configured Weights; it has no dependency on grid state and performs
// no I/O, so it can be called from any goroutine without synchronization.
//
// The per-layer base move costs (1 for a layer's preferred direction, 3
// for the other) and which direction each layer prefers — layer 0 prefers
// column-parallel motion, layer 1 prefers row-parallel motion — are fixed
// constants of the model. They are not user-configurable; only
// BendPenalty and ViaPenalty come from the input file header.
package costmodel
