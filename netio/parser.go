package netio

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirolousFouty/MazeRouter/costmodel"
	"github.com/KirolousFouty/MazeRouter/grid"
	"github.com/KirolousFouty/MazeRouter/router"
)

// intRe pulls signed integers out of a line, ignoring parentheses,
// commas, and surrounding whitespace — every coordinate triple in the
// grammar tolerates whitespace around its separators, so matching digits
// directly is simpler and no less strict than stripping punctuation by
// hand.
var intRe = regexp.MustCompile(`-?\d+`)

// ParseInput reads one input file's worth of session data: the header
// line, the obstacle list, and the net list. A malformed or missing
// header aborts with ErrMalformedHeader or ErrNegativeWeight. Any other
// malformed line is logged and skipped; parsing continues with the rest
// of the file.
func ParseInput(r io.Reader) (Header, []grid.Cell, []router.Net, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return Header{}, nil, nil, ErrMalformedHeader
	}
	header, err := parseHeader(scanner.Text())
	if err != nil {
		return Header{}, nil, nil, err
	}

	var obstacles []grid.Cell
	var nets []router.Net

	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "OBS"):
			cell, ok := parseObstacleLine(line)
			if !ok {
				log.Printf("netio: line %d: malformed obstacle line: %q", lineNo, line)

				continue
			}
			obstacles = append(obstacles, cell)

		case strings.HasPrefix(strings.Fields(line)[0], "net"):
			net, ok := parseNetLine(line)
			if !ok {
				log.Printf("netio: line %d: malformed net line: %q", lineNo, line)

				continue
			}
			nets = append(nets, net)

		default:
			log.Printf("netio: line %d: unrecognized line: %q", lineNo, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return Header{}, nil, nil, fmt.Errorf("netio: reading input: %w", err)
	}

	return header, obstacles, nets, nil
}

func parseHeader(line string) (Header, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 4 {
		return Header{}, ErrMalformedHeader
	}

	values := make([]int, 4)
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Header{}, ErrMalformedHeader
		}
		values[i] = v
	}
	if values[0] < 0 || values[1] < 0 {
		return Header{}, ErrMalformedHeader
	}
	if values[2] < 0 || values[3] < 0 {
		return Header{}, ErrNegativeWeight
	}

	return Header{
		Rows:    values[0],
		Columns: values[1],
		Weights: costmodel.Weights{BendPenalty: values[2], ViaPenalty: values[3]},
	}, nil
}

// parseObstacleLine parses "OBS (layer, row, column)".
func parseObstacleLine(line string) (grid.Cell, bool) {
	nums := intRe.FindAllString(line, -1)
	if len(nums) != 3 {
		return grid.Cell{}, false
	}
	vals, ok := atoiAll(nums)
	if !ok {
		return grid.Cell{}, false
	}

	return grid.Cell{Layer: vals[0], Row: vals[1], Column: vals[2]}, true
}

// parseNetLine parses "<name> (l,r,c) (l,r,c) ...". The name is the
// line's first whitespace-delimited token; every run of three integers
// found afterward becomes one pin. A net line with fewer than two
// resulting pins is malformed (net_degenerate), not just skipped pins.
func parseNetLine(line string) (router.Net, bool) {
	fields := strings.Fields(line)
	name := fields[0]
	rest := strings.Join(fields[1:], " ")

	nums := intRe.FindAllString(rest, -1)
	if len(nums)%3 != 0 || len(nums) < 6 {
		return router.Net{}, false
	}
	vals, ok := atoiAll(nums)
	if !ok {
		return router.Net{}, false
	}

	pins := make([]grid.Cell, len(vals)/3)
	for i := range pins {
		pins[i] = grid.Cell{Layer: vals[3*i], Row: vals[3*i+1], Column: vals[3*i+2]}
	}

	return router.Net{Name: name, Pins: pins}, true
}

func atoiAll(nums []string) ([]int, bool) {
	out := make([]int, len(nums))
	for i, n := range nums {
		v, err := strconv.Atoi(n)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}

	return out, true
}
