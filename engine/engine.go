// Package engine orchestrates the render pipeline: rule expansion,
// turtle interpretation and viewport fitting. It distinguishes the two
// trigger paths a UI exposes: Apply (new parameters, full pipeline)
// and Redraw (same parameters, fresh randomization over the cached
// expansion). All work runs synchronously to completion; there is no
// background computation and no cancellation.
package engine

import (
	"errors"
	"log/slog"
	"time"

	"github.com/verdantlab/go-lsys/cache"
	"github.com/verdantlab/go-lsys/lsystem"
	"github.com/verdantlab/go-lsys/plotter"
	"github.com/verdantlab/go-lsys/settings"
	"github.com/verdantlab/go-lsys/turtle"
)

// ErrNothingToRedraw is returned by Redraw before any successful Apply.
var ErrNothingToRedraw = errors.New("engine: no applied configuration to redraw")

// DefaultWarnExpansion is the estimated symbol count above which a
// render still runs but Result.CeilingWarned is set, so a UI can show
// a slowness banner well before the hard ceiling refuses the request.
const DefaultWarnExpansion = 1_000_000

// RunSink receives a record of every completed render. The render log
// implements it; a nil sink disables recording.
type RunSink interface {
	Record(run Run) error
}

// Run summarizes one completed render for the sink.
type Run struct {
	Trigger       string // "apply" or "redraw"
	Iterations    int
	ExpandedLen   int
	SegmentCount  int
	UnmatchedPops int
	CeilingWarned bool
	Duration      time.Duration
}

// Result is the outcome of an Apply or Redraw: segments already in
// viewport space, ready for a render sink, plus everything a UI needs
// for banners and status lines.
type Result struct {
	Segments      []turtle.Segment
	Bounds        turtle.Bounds // pre-transform drawing-space bounds
	ExpandedLen   int
	UnmatchedPops int
	CeilingWarned bool
	Duration      time.Duration
}

// Engine holds the current configuration and the memoized expansion.
// The configuration is replaced wholesale on Apply, never mutated in
// place, so a half-updated parameter set is never observable.
type Engine struct {
	viewport  plotter.Viewport
	ceiling   float64
	warnLevel float64
	cache     *cache.ExpansionCache
	sink      RunSink
	log       *slog.Logger

	cfg      settings.Config
	expanded string
	warned   bool
	applied  bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithCeiling overrides the expansion symbol ceiling.
func WithCeiling(ceiling float64) Option {
	return func(e *Engine) { e.ceiling = ceiling }
}

// WithWarnLevel overrides the estimate threshold that sets
// Result.CeilingWarned.
func WithWarnLevel(level float64) Option {
	return func(e *Engine) { e.warnLevel = level }
}

// WithSink registers a run sink, typically the render log.
func WithSink(sink RunSink) Option {
	return func(e *Engine) { e.sink = sink }
}

// WithLogger sets the engine logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// New creates an engine rendering into the given viewport.
func New(vp plotter.Viewport, opts ...Option) *Engine {
	e := &Engine{
		viewport:  vp,
		ceiling:   lsystem.DefaultMaxExpansion,
		warnLevel: DefaultWarnExpansion,
		cache:     cache.NewExpansionCache(32),
		log:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Check is the pre-flight hook for a UI: it validates the configuration
// and reports whether the expansion estimate trips the ceiling, without
// doing any work. A ceiling error here means Apply would refuse the
// same configuration.
func (e *Engine) Check(cfg settings.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return lsystem.CheckCeiling(cfg.Axiom, cfg.RuleSet(), cfg.Iterations, e.ceiling)
}

// Apply installs a new configuration and runs the full pipeline:
// validate, expand (memoized), interpret, fit.
func (e *Engine) Apply(cfg settings.Config) (*Result, error) {
	start := time.Now()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rules := cfg.RuleSet()
	if err := lsystem.CheckCeiling(cfg.Axiom, rules, cfg.Iterations, e.ceiling); err != nil {
		return nil, err
	}
	expanded, err := e.cache.GetOrExpand(cfg.Axiom, rules, cfg.Iterations)
	if err != nil {
		return nil, err
	}

	e.cfg = cfg
	e.expanded = expanded
	e.warned = lsystem.EstimateLength(cfg.Axiom, rules, cfg.Iterations) > e.warnLevel
	e.applied = true

	e.log.Debug("applied configuration",
		"axiom", cfg.Axiom, "iterations", cfg.Iterations, "expanded_len", len(expanded))

	return e.render("apply", start)
}

// Redraw re-interprets the cached expansion with fresh randomization
// and re-fits it. The rule engine does not run again.
func (e *Engine) Redraw() (*Result, error) {
	if !e.applied {
		return nil, ErrNothingToRedraw
	}
	return e.render("redraw", time.Now())
}

// Config returns the currently applied configuration.
func (e *Engine) Config() (settings.Config, bool) {
	return e.cfg, e.applied
}

func (e *Engine) render(trigger string, start time.Time) (*Result, error) {
	path, err := turtle.Interpret(e.expanded, turtle.Params{
		Step:        e.cfg.Length,
		Angle:       e.cfg.Angle,
		StartAngle:  e.cfg.StartAngle,
		AngleJitter: e.cfg.AngleVariation,
		StepJitter:  e.cfg.LengthVariation,
		Color:       e.cfg.LineColor,
		Width:       e.cfg.LineWidth,
		Seed:        e.cfg.Seed,
	})
	if err != nil {
		return nil, err
	}

	result := &Result{
		Segments:      plotter.Fit(path.Segments, path.Bounds, e.viewport),
		Bounds:        path.Bounds,
		ExpandedLen:   len(e.expanded),
		UnmatchedPops: path.UnmatchedPops,
		CeilingWarned: e.warned,
		Duration:      time.Since(start),
	}

	if path.UnmatchedPops > 0 {
		e.log.Warn("malformed string: ignored unmatched pops", "count", path.UnmatchedPops)
	}
	if e.sink != nil {
		run := Run{
			Trigger:       trigger,
			Iterations:    e.cfg.Iterations,
			ExpandedLen:   result.ExpandedLen,
			SegmentCount:  len(result.Segments),
			UnmatchedPops: result.UnmatchedPops,
			CeilingWarned: result.CeilingWarned,
			Duration:      result.Duration,
		}
		if err := e.sink.Record(run); err != nil {
			e.log.Warn("render log write failed", "err", err)
		}
	}

	return result, nil
}
