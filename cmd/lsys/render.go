package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/verdantlab/go-lsys/engine"
	"github.com/verdantlab/go-lsys/plotter"
	"github.com/verdantlab/go-lsys/settings"
)

func render(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	preset := fs.String("preset", "", "Start from a built-in preset (see 'lsys presets')")
	axiom := fs.String("axiom", "", "Axiom (overrides preset)")
	rules := fs.String("rules", "", "Rewrite rules (overrides preset)")
	iterations := fs.Int("n", -1, "Iterations (overrides preset)")
	angle := fs.Float64("angle", 0, "Turn angle in degrees (overrides preset)")
	seed := fs.Int64("seed", 0, "Random seed for variation (0 = random)")
	width := fs.Float64("width", 800, "Output width")
	height := fs.Float64("height", 600, "Output height")
	padding := fs.Float64("padding", 50, "Viewport padding")
	output := fs.String("output", "", "Output SVG file (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: lsys render [options]

Render an L-system to an SVG file.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  lsys render --preset plant --output plant.svg
  lsys render --preset dragon -n 12 --output dragon.svg
  lsys render --axiom F --rules "F:F+F--F+F" -n 4 --angle 60 --output koch.svg
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *output == "" {
		fs.Usage()
		return fmt.Errorf("--output required")
	}

	cfg := settings.Default()
	if *preset != "" {
		var err error
		if cfg, err = settings.Preset(*preset); err != nil {
			return err
		}
	}
	if *axiom != "" {
		cfg.Axiom = *axiom
	}
	if *rules != "" {
		cfg.Rules = *rules
	}
	if *iterations >= 0 {
		cfg.Iterations = *iterations
	}
	if *angle != 0 {
		cfg.Angle = *angle
	}
	cfg.Seed = *seed

	vp := plotter.Viewport{Width: *width, Height: *height, Padding: *padding}
	result, err := engine.New(vp).Apply(cfg)
	if err != nil {
		return err
	}

	if err := plotter.SaveSVG(*output, result.Segments, vp, cfg.Background); err != nil {
		return fmt.Errorf("write SVG: %w", err)
	}

	fmt.Printf("✓ Rendered to %s\n", *output)
	fmt.Printf("  Symbols:  %d\n", result.ExpandedLen)
	fmt.Printf("  Segments: %d\n", len(result.Segments))
	if result.CeilingWarned {
		fmt.Println("  Warning: large expansion, consider fewer iterations")
	}
	if result.UnmatchedPops > 0 {
		fmt.Printf("  Warning: %d unmatched ] ignored\n", result.UnmatchedPops)
	}
	return nil
}
