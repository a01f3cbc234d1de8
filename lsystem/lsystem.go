// Package lsystem implements Lindenmayer-system string rewriting.
//
// An L-system is described by an axiom (the seed string) and a RuleSet
// mapping single symbols to replacement strings. Each iteration rewrites
// every symbol of the current string in a single left-to-right pass;
// symbols without a rule pass through unchanged, which is how drawing
// and control symbols (+, -, [, ]) survive rewriting.
package lsystem

import (
	"fmt"
	"math"
	"strings"
)

// RuleSet maps a symbol to its replacement string. Symbols absent from
// the set are left unchanged during expansion.
type RuleSet map[rune]string

// DefaultMaxExpansion is the default ceiling on the estimated expanded
// string length. Expansion grows multiplicatively per iteration, so a
// handful of extra iterations can exhaust memory; callers that want a
// different budget use ExpandWithCeiling.
const DefaultMaxExpansion = 10_000_000

// maxFactor returns the largest per-symbol growth factor of the rule
// set. A rule with an empty replacement still counts as factor 1 for
// estimation purposes so the estimate stays an upper bound on peak
// intermediate growth rather than collapsing to zero.
func maxFactor(rules RuleSet) float64 {
	factor := 1.0
	for _, replacement := range rules {
		if n := float64(len([]rune(replacement))); n > factor {
			factor = n
		}
	}
	return factor
}

// EstimateLength returns an upper-bound estimate of the expanded string
// length: |axiom| x maxFactor^iterations. It is the pre-flight hook a
// caller can use to warn before committing to an expensive expansion.
func EstimateLength(axiom string, rules RuleSet, iterations int) float64 {
	if iterations < 0 {
		iterations = 0
	}
	return float64(len([]rune(axiom))) * math.Pow(maxFactor(rules), float64(iterations))
}

// CheckCeiling reports whether expanding axiom for the given number of
// iterations stays within the ceiling. Returns ErrExpansionTooLarge
// (wrapped with the estimate) when it does not.
func CheckCeiling(axiom string, rules RuleSet, iterations int, ceiling float64) error {
	if est := EstimateLength(axiom, rules, iterations); est > ceiling {
		return fmt.Errorf("%w: estimated %.3g symbols, ceiling %.3g", ErrExpansionTooLarge, est, ceiling)
	}
	return nil
}

// Expand rewrites axiom through the given number of iterations using
// the default expansion ceiling. The result is deterministic: the same
// inputs always produce the same string.
func Expand(axiom string, rules RuleSet, iterations int) (string, error) {
	return ExpandWithCeiling(axiom, rules, iterations, DefaultMaxExpansion)
}

// ExpandWithCeiling is Expand with an explicit symbol ceiling. The
// ceiling is checked against the growth estimate before any string is
// built, so a runaway request fails fast instead of thrashing memory.
func ExpandWithCeiling(axiom string, rules RuleSet, iterations int, ceiling float64) (string, error) {
	if axiom == "" {
		return "", ErrEmptyAxiom
	}
	if iterations < 0 {
		return "", ErrNegativeIterations
	}
	if err := CheckCeiling(axiom, rules, iterations, ceiling); err != nil {
		return "", err
	}

	current := axiom
	for i := 0; i < iterations; i++ {
		var next strings.Builder
		next.Grow(len(current) * 2)
		for _, symbol := range current {
			if replacement, ok := rules[symbol]; ok {
				next.WriteString(replacement)
			} else {
				next.WriteRune(symbol)
			}
		}
		current = next.String()
	}
	return current, nil
}
