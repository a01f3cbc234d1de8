package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/verdantlab/go-lsys/lsystem"
)

func expand(args []string) error {
	fs := flag.NewFlagSet("expand", flag.ExitOnError)
	axiom := fs.String("axiom", "X", "Axiom (seed string)")
	rules := fs.String("rules", "X:F+[[X]-X]-F[-FX]+X,F:FF", "Rewrite rules, e.g. \"F:FF,X:FX\"")
	iterations := fs.Int("n", 3, "Number of iterations")
	lengthOnly := fs.Bool("length", false, "Print only the expanded length")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: lsys expand [options]

Expand an axiom through its rewrite rules and print the result.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  lsys expand --axiom A --rules "A:AB,B:A" -n 3
  lsys expand --axiom F --rules "F:F+F--F+F" -n 4 --length
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	ruleSet := lsystem.ParseRules(*rules)
	result, err := lsystem.Expand(*axiom, ruleSet, *iterations)
	if err != nil {
		return err
	}

	if *lengthOnly {
		fmt.Println(len(result))
		return nil
	}
	fmt.Println(result)
	return nil
}
