package settings

import (
	"fmt"
	"sort"
)

// presets are classic L-systems that only use the recognized command
// symbols, each tuned to a sensible iteration count and turn angle.
var presets = map[string]Config{
	"plant": Default(),
	"koch": {
		Axiom:      "F",
		Rules:      "F:F+F--F+F",
		Iterations: 4,
		Angle:      60,
		StartAngle: 0,
		Length:     5,
		LineWidth:  1,
		LineColor:  "#4fc3f7",
		Background: "#000000",
	},
	"dragon": {
		Axiom:      "FX",
		Rules:      "X:X+YF+,Y:-FX-Y",
		Iterations: 10,
		Angle:      90,
		StartAngle: 0,
		Length:     6,
		LineWidth:  1,
		LineColor:  "#e94560",
		Background: "#000000",
	},
	"bush": {
		Axiom:           "F",
		Rules:           "F:FF+[+F-F-F]-[-F+F+F]",
		Iterations:      4,
		Angle:           22.5,
		StartAngle:      90,
		Length:          5,
		LineWidth:       1,
		AngleVariation:  2,
		LengthVariation: 0.05,
		LineColor:       "#4daf4a",
		Background:      "#000000",
	},
}

// Preset returns the named built-in configuration.
func Preset(name string) (Config, error) {
	cfg, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("settings: unknown preset %q", name)
	}
	return cfg, nil
}

// PresetNames lists the built-in presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
