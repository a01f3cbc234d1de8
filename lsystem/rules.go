package lsystem

import (
	"sort"
	"strings"
)

// ParseRules parses a rule string of the form "X:F+[[X]-X]-F[-FX]+X,F:FF"
// into a RuleSet. Pairs are comma separated, each pair is SYMBOL:REPLACEMENT
// with surrounding whitespace trimmed. Malformed pairs (no colon, empty
// key, multi-symbol key) are skipped rather than rejected, matching the
// lenient behavior a settings text field needs. An empty or colon-free
// input yields an empty set.
func ParseRules(s string) RuleSet {
	rules := RuleSet{}
	if !strings.Contains(s, ":") {
		return rules
	}
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		key, value, ok := strings.Cut(pair, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		symbols := []rune(key)
		if len(symbols) != 1 {
			continue
		}
		rules[symbols[0]] = value
	}
	return rules
}

// String renders the rule set back into the comma-separated text form,
// with rules ordered by symbol so the output is canonical. A RuleSet is
// therefore usable as part of a deterministic cache key.
func (r RuleSet) String() string {
	symbols := make([]rune, 0, len(r))
	for symbol := range r {
		symbols = append(symbols, symbol)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	var sb strings.Builder
	for i, symbol := range symbols {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(symbol)
		sb.WriteByte(':')
		sb.WriteString(r[symbol])
	}
	return sb.String()
}
