package netio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/KirolousFouty/MazeRouter/router"
)

// WriteOutput writes one line per routed net, in the order given:
//
//	<name> (l1, r1, c1) (l2, r2, c2) ... (ln, rn, cn)
//
// Callers are expected to pass router.RouteAll's result directly; a net
// that failed to route never reaches this function, so there is nothing
// here to omit.
func WriteOutput(w io.Writer, routed []router.RoutedNet) error {
	bw := bufio.NewWriter(w)

	for _, net := range routed {
		if _, err := fmt.Fprint(bw, net.Name); err != nil {
			return fmt.Errorf("netio: writing net %q: %w", net.Name, err)
		}
		for _, cell := range net.Path {
			if _, err := fmt.Fprintf(bw, " (%d, %d, %d)", cell.Layer, cell.Row, cell.Column); err != nil {
				return fmt.Errorf("netio: writing net %q: %w", net.Name, err)
			}
		}
		if _, err := fmt.Fprint(bw, "\n"); err != nil {
			return fmt.Errorf("netio: writing net %q: %w", net.Name, err)
		}
	}

	return bw.Flush()
}
