package core

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"left of rect", 9, 12, false},
		{"below rect", 12, 25, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, want int
	}{
		{5, -1, 1, 1},
		{-7, -1, 1, -1},
		{0, -1, 1, 0},
	}
	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.want)
		}
	}
}

func TestLerpF(t *testing.T) {
	tests := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"start", 0, 10, 0, 0},
		{"halfway", 0, 10, 0.5, 5},
		{"end", 0, 10, 1, 10},
		{"overshoot clamps", 0, 10, 3, 10},
		{"negative clamps", 2, 10, -1, 2},
		{"descending", 2, -2, 0.25, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := LerpF(tc.a, tc.b, tc.t); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("LerpF(%v, %v, %v) = %v, expected %v", tc.a, tc.b, tc.t, got, tc.want)
			}
		})
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame(ActionJump)
	if !f.Has(ActionJump) || f.Has(ActionLaneLeft) {
		t.Fatal("NewInputFrame should set exactly the given actions")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should remove actions")
	}
	if !clone.Has(ActionJump) {
		t.Error("Clone should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionLaneRight)
	if !zero.Has(ActionLaneRight) {
		t.Error("Set on zero frame should allocate")
	}
}
