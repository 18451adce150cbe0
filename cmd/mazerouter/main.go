// Command mazerouter reads a routing session from an input file, routes
// every net in the file, writes the result to an output file, and
// renders a per-layer PNG alongside the output file.
//
// Usage:
//
//	mazerouter <input-file> <output-file>
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/KirolousFouty/MazeRouter/grid"
	"github.com/KirolousFouty/MazeRouter/netio"
	"github.com/KirolousFouty/MazeRouter/router"
	"github.com/KirolousFouty/MazeRouter/viz"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: mazerouter <input-file> <output-file>")
		os.Exit(1)
	}
	inputPath, outputPath := os.Args[1], os.Args[2]

	if err := run(inputPath, outputPath); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run(inputPath, outputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("mazerouter: opening input: %w", err)
	}
	defer in.Close()

	header, obstacles, nets, err := netio.ParseInput(in)
	if err != nil {
		return fmt.Errorf("mazerouter: parsing input: %w", err)
	}

	g := grid.NewGrid(header.Rows, header.Columns)
	for _, obs := range obstacles {
		if err := g.MarkObstacle(obs.Layer, obs.Row, obs.Column); err != nil {
			log.Printf("mazerouter: ignoring obstacle %+v: %v", obs, err)
		}
	}

	routed := router.RouteAll(g, nets, header.Weights)
	log.Printf("mazerouter: routed %d of %d nets", len(routed), len(nets))

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("mazerouter: creating output: %w", err)
	}
	defer out.Close()

	if err := netio.WriteOutput(out, routed); err != nil {
		return fmt.Errorf("mazerouter: writing output: %w", err)
	}

	if err := viz.Render(g, obstacles, routed, outputPath+".png"); err != nil {
		log.Printf("mazerouter: rendering visualization: %v", err)
	}

	return nil
}
