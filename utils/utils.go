package utils

import "math"

// Vector is a 2D float vector used for positions and velocities.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vector) Add(o Vector) Vector       { return Vector{v.X + o.X, v.Y + o.Y} }
func (v Vector) Scale(f float64) Vector    { return Vector{v.X * f, v.Y * f} }
func (v Vector) Length() float64           { return math.Hypot(v.X, v.Y) }
func (v Vector) ApproxEqual(o Vector) bool { return ApproxEqual(v.X, o.X) && ApproxEqual(v.Y, o.Y) }

// Rect is an axis-aligned rectangle anchored at its lower-left corner.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"width"`
	H float64 `json:"height"`
}

func (r Rect) Right() float64 { return r.X + r.W }
func (r Rect) Top() float64   { return r.Y + r.H }
func (r Rect) Center() Vector { return Vector{r.X + r.W/2, r.Y + r.H/2} }

// Intersects reports whether two rectangles overlap. Touching edges count
// as an intersection, so zero-sized rectangles still collide.
func (r Rect) Intersects(o Rect) bool {
	if r.Right() < o.X || r.X > o.Right() {
		return false
	}
	if r.Top() < o.Y || r.Y > o.Top() {
		return false
	}
	return true
}

const epsilon = 1e-9

// ApproxEqual compares floats with a small absolute tolerance.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
