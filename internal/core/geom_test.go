package core

import (
	"math"
	"testing"
)

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Circle
		expected bool
	}{
		{
			name:     "same center",
			a:        Circle{Center: Pt(10, 10), Radius: 5},
			b:        Circle{Center: Pt(10, 10), Radius: 1},
			expected: true,
		},
		{
			name:     "touching edges count as overlap",
			a:        Circle{Center: Pt(0, 0), Radius: 30},
			b:        Circle{Center: Pt(50, 0), Radius: 20},
			expected: true,
		},
		{
			name:     "one pixel apart",
			a:        Circle{Center: Pt(0, 0), Radius: 30},
			b:        Circle{Center: Pt(51, 0), Radius: 20},
			expected: false,
		},
		{
			name:     "diagonal overlap",
			a:        Circle{Center: Pt(0, 0), Radius: 10},
			b:        Circle{Center: Pt(6, 8), Radius: 1},
			expected: true,
		},
		{
			name:     "zero radius points",
			a:        Circle{Center: Pt(3, 4), Radius: 0},
			b:        Circle{Center: Pt(3, 5), Radius: 0},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CirclesOverlap(tc.a, tc.b); got != tc.expected {
				t.Errorf("CirclesOverlap() = %v, expected %v", got, tc.expected)
			}
			if got := CirclesOverlap(tc.b, tc.a); got != tc.expected {
				t.Errorf("CirclesOverlap() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPointDistanceTo(t *testing.T) {
	p := Pt(0, 0)
	if d := p.DistanceTo(Pt(3, 4)); d != 5 {
		t.Errorf("DistanceTo() = %v, expected 5", d)
	}
	if d := Pt(-2, 7).DistanceTo(Pt(-2, 7)); d != 0 {
		t.Errorf("DistanceTo() = %v, expected 0", d)
	}
	if d := Pt(1, 1).DistanceTo(Pt(2, 2)); math.Abs(d-math.Sqrt2) > 1e-9 {
		t.Errorf("DistanceTo() = %v, expected %v", d, math.Sqrt2)
	}
	if got := Pt(1, 2).Add(3, -4); got != Pt(4, -2) {
		t.Errorf("Add() = %v, expected (4,-2)", got)
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"apart", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)
	if !r.Contains(10, 10) {
		t.Error("Contains(10, 10) should be true for the top-left corner")
	}
	if r.Contains(30, 25) {
		t.Error("Contains(30, 25) should be false, right and bottom edges are exclusive")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %v, expected 0", got)
	}
	if Abs(-5) != 5 || Abs(5) != 5 {
		t.Error("Abs should return the magnitude")
	}
}
