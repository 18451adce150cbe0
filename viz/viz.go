package viz

import (
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/KirolousFouty/MazeRouter/grid"
	"github.com/KirolousFouty/MazeRouter/router"
)

// cellSize is the glyph radius used to approximate a filled grid cell
// with a square marker; it is large enough that adjacent cells' squares
// visually touch at the chosen canvas size.
const cellSize = vg.Length(6)

// Render draws one PNG per grid layer into basePath with a "_layer0"/
// "_layer1" suffix inserted before the file extension. Each image shows
// obstacles as filled black squares, every routed net's cells in its own
// palette color with a legend entry, a distinct marker at each via, and
// "S"/"T" labels at the first and last cell of each net's path.
func Render(g *grid.Grid, obstacles []grid.Cell, routed []router.RoutedNet, basePath string) error {
	rows, cols := g.Size()

	for layer := 0; layer < grid.Layers; layer++ {
		p := plot.New()
		p.Title.Text = fmt.Sprintf("layer %d", layer)
		p.X.Label.Text = "column"
		p.Y.Label.Text = "row"
		p.X.Min, p.X.Max = -0.5, float64(cols)-0.5
		p.Y.Min, p.Y.Max = -0.5, float64(rows)-0.5

		if err := addObstacles(p, obstacles, layer); err != nil {
			return fmt.Errorf("viz: layer %d: %w", layer, err)
		}
		if err := addRoutedNets(p, routed, layer); err != nil {
			return fmt.Errorf("viz: layer %d: %w", layer, err)
		}

		path := layerPath(basePath, layer)
		if err := p.Save(8*vg.Inch, 8*vg.Inch, path); err != nil {
			return fmt.Errorf("viz: saving %s: %w", path, err)
		}
	}

	return nil
}

func layerPath(basePath string, layer int) string {
	idx := strings.LastIndex(basePath, ".")
	if idx < 0 {
		return fmt.Sprintf("%s_layer%d", basePath, layer)
	}

	return fmt.Sprintf("%s_layer%d%s", basePath[:idx], layer, basePath[idx:])
}

func addObstacles(p *plot.Plot, obstacles []grid.Cell, layer int) error {
	var xys plotter.XYs
	for _, c := range obstacles {
		if c.Layer != layer {
			continue
		}
		xys = append(xys, plotter.XY{X: float64(c.Column), Y: float64(c.Row)})
	}
	if len(xys) == 0 {
		return nil
	}

	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	sc.GlyphStyle = draw.GlyphStyle{Color: obstacleColor, Shape: draw.BoxGlyph{}, Radius: cellSize}
	p.Add(sc)

	return nil
}

func addRoutedNets(p *plot.Plot, routed []router.RoutedNet, layer int) error {
	for i, net := range routed {
		if err := addOneNet(p, net, layer, colorFor(i)); err != nil {
			return fmt.Errorf("net %q: %w", net.Name, err)
		}
	}

	return nil
}

func addOneNet(p *plot.Plot, net router.RoutedNet, layer int, clr color.RGBA) error {
	var xys plotter.XYs
	var vias plotter.XYs
	for i, c := range net.Path {
		if c.Layer != layer {
			continue
		}
		xys = append(xys, plotter.XY{X: float64(c.Column), Y: float64(c.Row)})
		if i > 0 && net.Path[i-1].Layer != c.Layer {
			vias = append(vias, plotter.XY{X: float64(c.Column), Y: float64(c.Row)})
		}
	}
	if len(xys) == 0 {
		return nil
	}

	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	sc.GlyphStyle = draw.GlyphStyle{Color: clr, Shape: draw.BoxGlyph{}, Radius: cellSize}
	p.Add(sc)
	p.Legend.Add(net.Name, sc)

	if len(vias) > 0 {
		viaSc, err := plotter.NewScatter(vias)
		if err != nil {
			return err
		}
		viaSc.GlyphStyle = draw.GlyphStyle{Color: viaColor, Shape: draw.CircleGlyph{}, Radius: cellSize / 2}
		p.Add(viaSc)
	}

	if err := addMarker(p, net.Path[0], "S", sourceColor); err != nil {
		return err
	}
	if len(net.Path) > 0 {
		last := net.Path[len(net.Path)-1]
		if err := addMarker(p, last, "T", targetColor); err != nil {
			return err
		}
	}

	return nil
}

func addMarker(p *plot.Plot, cell grid.Cell, label string, clr color.RGBA) error {
	xys := plotter.XYs{{X: float64(cell.Column), Y: float64(cell.Row)}}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: []string{label}})
	if err != nil {
		return err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Color = clr
	}
	p.Add(labels)

	return nil
}
