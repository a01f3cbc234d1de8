// Package settings holds the renderer configuration and its built-in
// presets. A Config is an explicit immutable value: collaborators build
// one, validate it at the boundary, and hand it to the engine wholesale.
// There is no process-wide mutable settings object.
package settings

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/verdantlab/go-lsys/lsystem"
)

// ErrInvalidConfig wraps all boundary validation failures.
var ErrInvalidConfig = errors.New("settings: invalid configuration")

var validate = validator.New()

// Config is the full parameter set for one render.
type Config struct {
	Axiom      string `validate:"required"`
	Rules      string // "F:FF,X:..." text form; malformed pairs are skipped
	Iterations int    `validate:"gte=0"`

	Angle      float64 `validate:"gte=-360,lte=360"` // turn per +/- command, degrees
	StartAngle float64 // initial heading, degrees
	Length     float64 `validate:"gt=0"`
	LineWidth  float64 `validate:"gt=0"`

	AngleVariation  float64 `validate:"gte=0"`          // degrees
	LengthVariation float64 `validate:"gte=0,lte=1"`    // fraction of Length
	LineColor       string  `validate:"hexcolor"`
	Background      string  `validate:"hexcolor"`

	// Seed pins the variation source; zero draws a fresh seed each run.
	Seed int64
}

// Default returns the classic fractal-plant configuration.
func Default() Config {
	return Config{
		Axiom:           "X",
		Rules:           "X:F+[[X]-X]-F[-FX]+X,F:FF",
		Iterations:      5,
		Angle:           25,
		StartAngle:      90,
		Length:          5,
		LineWidth:       1,
		AngleVariation:  3,
		LengthVariation: 0.05,
		LineColor:       "#00ff00",
		Background:      "#000000",
	}
}

// Validate checks the configuration at the boundary, before any
// computation runs. All failures wrap ErrInvalidConfig.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// RuleSet parses the textual rules into an lsystem.RuleSet.
func (c Config) RuleSet() lsystem.RuleSet {
	return lsystem.ParseRules(c.Rules)
}
