// Package grid implements the two-layer occupancy grid that the router
// searches and the net scheduler mutates.
//
// A Grid is a dense, array-backed mapping from a cell coordinate
// (layer, row, column) to a tri-state status: Free, Obstacle, or
// Committed. Obstacle and Committed are equivalent for search purposes —
// both mean "may not be entered" — but are tracked separately so callers
// can tell an input-time obstacle from a cell occupied by an
// already-routed net.
//
// Invariants:
//
//   - A cell never transitions out of Obstacle or Committed.
//   - The only legal transition is Free → Committed, performed by
//     CommitCell/CommitPath.
//   - All operations are O(1); the grid never allocates per call.
//
// Grid intentionally stores cells as a flat []CellStatus per layer rather
// than a map, since (R, C) is fixed for the session and dense storage
// keeps MarkObstacle/CommitCell/Status O(1) with no hashing.
package grid
