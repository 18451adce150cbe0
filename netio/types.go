package netio

import "github.com/KirolousFouty/MazeRouter/costmodel"

// Header is the parsed first line of an input file: grid dimensions and
// the two user-configurable cost weights.
type Header struct {
	Rows    int
	Columns int
	Weights costmodel.Weights
}
