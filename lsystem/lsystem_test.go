package lsystem

import (
	"errors"
	"strings"
	"testing"
)

func TestExpandZeroIterations(t *testing.T) {
	rules := RuleSet{'F': "FF"}
	got, err := Expand("F+F", rules, 0)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if got != "F+F" {
		t.Errorf("Expand with 0 iterations = %q, want axiom unchanged", got)
	}
}

func TestExpandPassThrough(t *testing.T) {
	// No rule for F: the axiom survives any number of iterations.
	got, err := Expand("F", RuleSet{}, 3)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if got != "F" {
		t.Errorf("Expand = %q, want %q", got, "F")
	}
}

func TestExpandFibonacciWord(t *testing.T) {
	rules := RuleSet{'A': "AB", 'B': "A"}
	got, err := Expand("A", rules, 3)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if got != "ABAAB" {
		t.Errorf("Expand = %q, want %q", got, "ABAAB")
	}
}

func TestExpandIterationComposability(t *testing.T) {
	rules := RuleSet{'X': "F+[[X]-X]-F[-FX]+X", 'F': "FF"}

	direct, err := Expand("X", rules, 4)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	stepped := "X"
	for i := 0; i < 4; i++ {
		stepped, err = Expand(stepped, rules, 1)
		if err != nil {
			t.Fatalf("Expand step %d: %v", i, err)
		}
	}

	if direct != stepped {
		t.Errorf("Expand(axiom, rules, 4) differs from 4 sequential single-iteration expansions")
	}
}

func TestExpandDeterministic(t *testing.T) {
	rules := RuleSet{'F': "F+F--F+F"}
	first, err := Expand("F", rules, 4)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	second, err := Expand("F", rules, 4)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if first != second {
		t.Error("Expand is not deterministic for identical inputs")
	}
}

func TestExpandSinglePassSubstitution(t *testing.T) {
	// A rule's output must not be rescanned within the same iteration:
	// A -> AB applied once to "A" gives "AB", not "ABB...".
	rules := RuleSet{'A': "AB", 'B': "BB"}
	got, err := Expand("A", rules, 1)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if got != "AB" {
		t.Errorf("Expand = %q, want %q", got, "AB")
	}
}

func TestExpandInvalidInput(t *testing.T) {
	if _, err := Expand("", RuleSet{}, 1); !errors.Is(err, ErrEmptyAxiom) {
		t.Errorf("empty axiom: got %v, want ErrEmptyAxiom", err)
	}
	if _, err := Expand("F", RuleSet{}, -1); !errors.Is(err, ErrNegativeIterations) {
		t.Errorf("negative iterations: got %v, want ErrNegativeIterations", err)
	}
}

func TestExpandCeiling(t *testing.T) {
	// Doubling rule at 30 iterations estimates ~10^9 symbols and must be
	// rejected before any string is built.
	rules := RuleSet{'F': "FF"}
	_, err := Expand("F", rules, 30)
	if !errors.Is(err, ErrExpansionTooLarge) {
		t.Fatalf("got %v, want ErrExpansionTooLarge", err)
	}

	if err := CheckCeiling("F", rules, 30, DefaultMaxExpansion); !errors.Is(err, ErrExpansionTooLarge) {
		t.Errorf("CheckCeiling: got %v, want ErrExpansionTooLarge", err)
	}
	if err := CheckCeiling("F", rules, 10, DefaultMaxExpansion); err != nil {
		t.Errorf("CheckCeiling for modest growth: %v", err)
	}
}

func TestEstimateLength(t *testing.T) {
	rules := RuleSet{'F': "FF"}
	if got := EstimateLength("FF", rules, 3); got != 16 {
		t.Errorf("EstimateLength = %v, want 16", got)
	}
	// No rules: no growth regardless of iterations.
	if got := EstimateLength("FFF", RuleSet{}, 10); got != 3 {
		t.Errorf("EstimateLength with empty rules = %v, want 3", got)
	}
}

func TestParseRules(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RuleSet
	}{
		{"plant default", "X:F+[[X]-X]-F[-FX]+X,F:FF",
			RuleSet{'X': "F+[[X]-X]-F[-FX]+X", 'F': "FF"}},
		{"whitespace trimmed", " F : FF , X : FX ", RuleSet{'F': "FF", 'X': "FX"}},
		{"empty input", "", RuleSet{}},
		{"no colon", "FFF", RuleSet{}},
		{"malformed pairs skipped", "F:FF,junk,:empty,AB:CD", RuleSet{'F': "FF"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseRules(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseRules(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for symbol, replacement := range tt.want {
				if got[symbol] != replacement {
					t.Errorf("rule %q = %q, want %q", symbol, got[symbol], replacement)
				}
			}
		})
	}
}

func TestRuleSetStringCanonical(t *testing.T) {
	rules := RuleSet{'X': "FX", 'F': "FF", 'A': "AB"}
	got := rules.String()
	want := "A:AB,F:FF,X:FX"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	// Round trip through ParseRules.
	parsed := ParseRules(got)
	if parsed.String() != want {
		t.Errorf("round trip = %q, want %q", parsed.String(), want)
	}
}

func TestExpandGrowth(t *testing.T) {
	rules := RuleSet{'F': "F+F--F+F"}
	got, err := Expand("F", rules, 2)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	// Koch: each F becomes 8 symbols of which 4 are F.
	if n := strings.Count(got, "F"); n != 16 {
		t.Errorf("F count after 2 Koch iterations = %d, want 16", n)
	}
}
