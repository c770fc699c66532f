package panzoom

import "math"

// Vec2 is a 2D vector used for pan offsets, screen points, and velocities
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Size is a width/height pair in screen pixels.
type Size struct {
	Width, Height float64
}

// MinViewportSize is the smallest viewport the view math accepts. Smaller
// (zero, negative, or NaN) dimensions are raised to it so aspect ratios stay
// finite.
var MinViewportSize = Size{Width: 1, Height: 1}

// sanitize returns s with each dimension raised to MinViewportSize.
func (s Size) sanitize() Size {
	if !(s.Width >= MinViewportSize.Width) {
		s.Width = MinViewportSize.Width
	}
	if !(s.Height >= MinViewportSize.Height) {
		s.Height = MinViewportSize.Height
	}
	return s
}

// Aspect returns Width/Height after sanitizing both dimensions.
func (s Size) Aspect() float64 {
	s = s.sanitize()
	return s.Width / s.Height
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteVec(v Vec2) bool {
	return finite(v.X) && finite(v.Y)
}

// round3 rounds v to 3 decimal places to suppress floating-point jitter.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
