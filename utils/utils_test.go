package utils

import (
	"testing"
)

func TestRect_Intersects(t *testing.T) {
	base := Rect{X: 100, Y: 100, W: 20, H: 20}
	testCases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"Overlapping", Rect{X: 110, Y: 110, W: 20, H: 20}, true},
		{"Contained", Rect{X: 105, Y: 105, W: 5, H: 5}, true},
		{"TouchingRightEdge", Rect{X: 120, Y: 100, W: 10, H: 10}, true},
		{"ZeroSizedInside", Rect{X: 110, Y: 110}, true},
		{"LeftOf", Rect{X: 50, Y: 100, W: 49, H: 20}, false},
		{"Above", Rect{X: 100, Y: 121, W: 20, H: 20}, false},
		{"Below", Rect{X: 100, Y: 50, W: 20, H: 49}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Intersects(tc.other); got != tc.want {
				t.Errorf("Intersects(%+v) = %t, want %t", tc.other, got, tc.want)
			}
			if got := tc.other.Intersects(base); got != tc.want {
				t.Errorf("Intersects is not symmetric for %+v", tc.other)
			}
		})
	}
}

func TestRect_Edges(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	if r.Right() != 40 || r.Top() != 60 {
		t.Errorf("Expected right=40 top=60, got right=%v top=%v", r.Right(), r.Top())
	}
	if c := r.Center(); c != (Vector{25, 40}) {
		t.Errorf("Expected center (25,40), got %+v", c)
	}
}

func TestVector_Ops(t *testing.T) {
	v := Vector{3, 4}
	if v.Length() != 5 {
		t.Errorf("Expected length 5, got %v", v.Length())
	}
	if got := v.Scale(1.1); !got.ApproxEqual(Vector{3.3, 4.4}) {
		t.Errorf("Scale(1.1) = %+v", got)
	}
	if got := v.Add(Vector{-3, 1}); got != (Vector{0, 5}) {
		t.Errorf("Add = %+v", got)
	}
}
