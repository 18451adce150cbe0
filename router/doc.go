// Package router implements the per-net path search and the net
// scheduler that drives it across a whole routing session.
//
// Search performs a uniform-cost best-first search over the 3D state
// space (layer, row, column), seeded with two entries from the net's
// source pin — one staying on the source layer at cost 0, one switching
// layers immediately at cost ViaPenalty — and terminates the first time a
// popped, newly-closed cell's accumulated walk covers every target pin of
// the net.
//
// Search does not clone a growing path into
// every queue entry. Instead it keeps one parent back-pointer and one
// "pins covered so far" bitset per closed cell, indexed by a dense cell
// ID, and reconstructs the path once, by walking back-pointers, at
// termination. This changes the memory profile relative to a
// path-per-entry implementation; it does not change observable behavior.
//
// RouteAll orders the given nets by ascending Manhattan pair-sum
// distance (ties keep the input order, via a stable sort), invokes
// Search for each in turn, and commits every successful path into the
// Grid as Committed cells before moving to the next net. A net that
// cannot be routed is omitted from the result; routing continues with
// the remaining nets. There is no rip-up-and-reroute and no reordering
// on failure.
package router
