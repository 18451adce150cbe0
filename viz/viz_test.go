package viz

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KirolousFouty/MazeRouter/grid"
	"github.com/KirolousFouty/MazeRouter/router"
)

func TestLayerPath(t *testing.T) {
	cases := []struct {
		base  string
		layer int
		want  string
	}{
		{"out.png", 0, "out_layer0.png"},
		{"out.png", 1, "out_layer1.png"},
		{"out", 0, "out_layer0"},
		{"dir/session.out.png", 1, "dir/session.out_layer1.png"},
	}
	for _, c := range cases {
		if got := layerPath(c.base, c.layer); got != c.want {
			t.Errorf("layerPath(%q, %d) = %q, want %q", c.base, c.layer, got, c.want)
		}
	}
}

func TestColorFor_WrapsAroundPalette(t *testing.T) {
	if colorFor(0) != colorFor(len(palette)) {
		t.Fatalf("colorFor should wrap around after %d nets", len(palette))
	}
}

func TestRender_WritesOnePNGPerLayer(t *testing.T) {
	g := grid.NewGrid(3, 3)
	obstacles := []grid.Cell{{Layer: 0, Row: 1, Column: 1}}
	routed := []router.RoutedNet{
		{Name: "netA", Path: router.Path{
			{Layer: 0, Row: 0, Column: 0},
			{Layer: 0, Row: 0, Column: 1},
			{Layer: 0, Row: 0, Column: 2},
		}},
	}

	dir := t.TempDir()
	base := filepath.Join(dir, "result.png")
	if err := Render(g, obstacles, routed, base); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	for layer := 0; layer < grid.Layers; layer++ {
		path := layerPath(base, layer)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected %s to exist: %v", path, err)
		}
	}
}
