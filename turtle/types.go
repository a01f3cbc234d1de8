package turtle

// Point is a position in drawing space. Coordinates are screen-style:
// x grows rightward, y grows downward.
type Point struct {
	X float64
	Y float64
}

// Segment is a single drawable line. Color and Width ride along with
// the geometry so a sink can draw each segment directly; today the
// interpreter emits uniform values, the fields exist for per-branch
// variation later.
type Segment struct {
	From  Point
	To    Point
	Color string
	Width float64
}

// Bounds is an axis-aligned bounding box accumulated over segment
// endpoints. The zero value is empty; Add establishes the box on first
// use.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64

	set bool
}

// Add grows the bounds to include p.
func (b *Bounds) Add(p Point) {
	if !b.set {
		b.MinX, b.MaxX = p.X, p.X
		b.MinY, b.MaxY = p.Y, p.Y
		b.set = true
		return
	}
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
}

// IsEmpty reports whether the bounds contain no points at all.
func (b Bounds) IsEmpty() bool { return !b.set }

// Width returns the horizontal extent of the bounds.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent of the bounds.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Center returns the midpoint of the bounds.
func (b Bounds) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// State is a turtle snapshot: position plus heading in radians. It is
// a value type; pushing copies it, so a popped state is independent of
// anything the branch did.
type State struct {
	Pos     Point
	Heading float64
}
