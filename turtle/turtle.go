// Package turtle interprets L-system symbol strings as turtle graphics,
// producing an ordered list of line segments plus their bounding box.
//
// The turtle lives in screen-style coordinates (y grows downward) and
// starts at the origin; fitting the result to a viewport is the
// plotter package's job. Heading is held in radians internally, all
// angles at the package boundary are degrees.
package turtle

import (
	"errors"
	"math"
	"math/rand"
	"time"
)

// ErrNonPositiveStep is returned when Params.Step is zero or negative.
var ErrNonPositiveStep = errors.New("turtle: step length must be > 0")

// Params configures one interpretation pass.
type Params struct {
	Step       float64 // nominal segment length, must be > 0
	Angle      float64 // nominal turn per +/- command, degrees
	StartAngle float64 // initial heading, degrees; 90 points up

	// AngleJitter adds a uniform perturbation in [-AngleJitter,
	// +AngleJitter] degrees to every turn. StepJitter scales every
	// step by a uniform factor in [1-StepJitter, 1+StepJitter].
	AngleJitter float64
	StepJitter  float64

	Color string  // carried onto every emitted segment
	Width float64 // carried onto every emitted segment

	// Seed pins the perturbation source so repeated runs reproduce the
	// same drawing. Zero means a fresh time-based seed per run. Rand,
	// when non-nil, overrides Seed entirely.
	Seed int64
	Rand *rand.Rand
}

func (p Params) source() *rand.Rand {
	if p.Rand != nil {
		return p.Rand
	}
	if p.Seed != 0 {
		return rand.New(rand.NewSource(p.Seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Path is the result of interpreting a symbol string: the segments in
// draw order, their accumulated bounds, and how many ']' commands found
// an empty stack. Unmatched pops are ignored during the walk (the
// string is treated leniently) but counted so a caller can surface a
// malformed-string warning.
type Path struct {
	Segments      []Segment
	Bounds        Bounds
	UnmatchedPops int
}

// Interpret walks the symbol string and emits a segment for every F.
// Recognized commands:
//
//	F  draw one step forward
//	+  turn clockwise by Angle
//	-  turn counter-clockwise by Angle
//	[  push the current state
//	]  pop the most recently pushed state
//
// Every other symbol is a no-op, which lets rewrite-only symbols (X, A,
// B) pass through harmlessly.
func Interpret(symbols string, p Params) (*Path, error) {
	if p.Step <= 0 {
		return nil, ErrNonPositiveStep
	}

	rng := p.source()
	uniform := func(lo, hi float64) float64 {
		if lo == hi {
			return lo
		}
		return lo + rng.Float64()*(hi-lo)
	}

	state := State{Heading: p.StartAngle * math.Pi / 180}
	var stack []State
	path := &Path{}

	for _, symbol := range symbols {
		switch symbol {
		case 'F':
			step := p.Step * uniform(1-p.StepJitter, 1+p.StepJitter)
			if step <= 0 {
				continue
			}
			from := state.Pos
			state.Pos.X += step * math.Cos(state.Heading)
			state.Pos.Y -= step * math.Sin(state.Heading)
			path.Segments = append(path.Segments, Segment{
				From:  from,
				To:    state.Pos,
				Color: p.Color,
				Width: p.Width,
			})
			path.Bounds.Add(from)
			path.Bounds.Add(state.Pos)
		case '+':
			state.Heading += (p.Angle + uniform(-p.AngleJitter, p.AngleJitter)) * math.Pi / 180
		case '-':
			state.Heading -= (p.Angle + uniform(-p.AngleJitter, p.AngleJitter)) * math.Pi / 180
		case '[':
			stack = append(stack, state)
		case ']':
			if len(stack) == 0 {
				path.UnmatchedPops++
				continue
			}
			state = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		}
	}

	return path, nil
}
