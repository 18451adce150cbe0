// Package netio reads and writes the router's plain-text session files.
//
// ParseInput reads the header line, obstacle lines, and net lines of an
// input file into a Header, a []grid.Cell of obstacles, and a
// []router.Net, tolerating malformed
// obstacle and net lines by skipping them with a logged diagnostic. Only
// an empty file or a malformed header aborts parsing outright.
//
// WriteOutput renders a []router.RoutedNet back to the one-line-per-net
// format the grammar expects, in the order given — callers pass the
// net-scheduling order produced by router.RouteAll, not input order.
package netio
