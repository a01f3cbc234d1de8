package settings

import (
	"errors"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty axiom", func(c *Config) { c.Axiom = "" }},
		{"negative iterations", func(c *Config) { c.Iterations = -1 }},
		{"zero length", func(c *Config) { c.Length = 0 }},
		{"negative length", func(c *Config) { c.Length = -5 }},
		{"zero line width", func(c *Config) { c.LineWidth = 0 }},
		{"negative angle variation", func(c *Config) { c.AngleVariation = -1 }},
		{"length variation above 1", func(c *Config) { c.LengthVariation = 1.5 }},
		{"bad line color", func(c *Config) { c.LineColor = "green" }},
		{"bad background", func(c *Config) { c.Background = "0,0,0" }},
		{"empty line color", func(c *Config) { c.LineColor = "" }},
		{"empty background", func(c *Config) { c.Background = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("got %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestRuleSet(t *testing.T) {
	cfg := Default()
	rules := cfg.RuleSet()
	if rules['F'] != "FF" {
		t.Errorf("rule F = %q, want FF", rules['F'])
	}
	if rules['X'] != "F+[[X]-X]-F[-FX]+X" {
		t.Errorf("rule X = %q", rules['X'])
	}
}

func TestPresetsAllValid(t *testing.T) {
	for _, name := range PresetNames() {
		cfg, err := Preset(name)
		if err != nil {
			t.Fatalf("Preset(%q): %v", name, err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %q fails validation: %v", name, err)
		}
	}
}

func TestPresetUnknown(t *testing.T) {
	if _, err := Preset("mandelbrot"); err == nil {
		t.Error("unknown preset should error")
	}
}

func TestPresetNamesSorted(t *testing.T) {
	names := PresetNames()
	if len(names) < 4 {
		t.Fatalf("expected at least 4 presets, got %v", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("preset names not sorted: %v", names)
		}
	}
}
