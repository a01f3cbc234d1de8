package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/verdantlab/go-lsys/settings"
)

func listPresets(args []string) error {
	fs := flag.NewFlagSet("presets", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: lsys presets\n\nList built-in L-system presets.")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	for _, name := range settings.PresetNames() {
		cfg, err := settings.Preset(name)
		if err != nil {
			return err
		}
		fmt.Printf("%-8s axiom=%q angle=%g iterations=%d rules=%q\n",
			name, cfg.Axiom, cfg.Angle, cfg.Iterations, cfg.Rules)
	}
	return nil
}
