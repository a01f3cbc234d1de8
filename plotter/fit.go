// Package plotter fits turtle paths to a viewport and renders them as
// SVG line drawings.
package plotter

import "github.com/verdantlab/go-lsys/turtle"

// Viewport describes the target drawing surface in output units.
type Viewport struct {
	Width   float64
	Height  float64
	Padding float64
}

// Center returns the midpoint of the viewport.
func (v Viewport) Center() turtle.Point {
	return turtle.Point{X: v.Width / 2, Y: v.Height / 2}
}

// scaleFor derives the uniform scale that fits bounds inside the
// padded viewport. A single scalar keeps the aspect ratio intact; the
// plant must never distort. Degenerate bounds (zero width or height)
// fall back to scale 1 so a point or straight line is translated but
// never divided by zero.
func scaleFor(b turtle.Bounds, vp Viewport) float64 {
	bw, bh := b.Width(), b.Height()
	if bw == 0 || bh == 0 {
		return 1
	}
	avail := vp.Width - 2*vp.Padding
	if h := vp.Height - 2*vp.Padding; h < avail {
		avail = h
	}
	extent := bw
	if bh > extent {
		extent = bh
	}
	return avail / extent
}

// Fit maps segments from drawing space into viewport space: a uniform
// scale followed by a translation that puts the bounding-box center on
// the viewport center. Pure: identical inputs always yield identical
// output, and the input slice is never modified. Zero segments yield
// nil (nothing to draw is not an error).
func Fit(segments []turtle.Segment, b turtle.Bounds, vp Viewport) []turtle.Segment {
	if len(segments) == 0 || b.IsEmpty() {
		return nil
	}

	scale := scaleFor(b, vp)
	center := b.Center()
	target := vp.Center()
	tx := target.X - scale*center.X
	ty := target.Y - scale*center.Y

	out := make([]turtle.Segment, len(segments))
	for i, seg := range segments {
		out[i] = seg
		out[i].From = turtle.Point{X: seg.From.X*scale + tx, Y: seg.From.Y*scale + ty}
		out[i].To = turtle.Point{X: seg.To.X*scale + tx, Y: seg.To.Y*scale + ty}
	}
	return out
}
