// Package viz renders a completed routing session as PNG images using
// gonum.org/v1/plot: one separate PNG file per grid layer. The two layers
// are not combined into a single image. Obstacles are drawn
// as filled squares; each net's committed cells are drawn in a distinct
// color from a fixed palette, with its source and target pins marked
// separately. This package is not on the correctness path — main wires
// it in optionally, after WriteOutput has already produced the text
// result.
package viz
