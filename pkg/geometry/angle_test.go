package geometry

import (
	"math"
	"testing"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		name  string
		theta float64
		want  float64
	}{
		{"zero", 0, 0},
		{"inside", 1.5, 1.5},
		{"just below zero", -0.1, TwoPi - 0.1},
		{"exactly two pi", TwoPi, 0},
		{"above two pi", TwoPi + 0.25, 0.25},
		{"tiny negative rounds to zero", -1e-20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAngle(tt.theta)
			if !floatEquals(got, tt.want) {
				t.Errorf("NormalizeAngle(%v) = %v; want %v", tt.theta, got, tt.want)
			}
			if got < 0 || got >= TwoPi {
				t.Errorf("NormalizeAngle(%v) = %v; outside [0, 2Pi)", tt.theta, got)
			}
		})
	}
}

func TestWrapToPi(t *testing.T) {
	tests := []struct {
		theta float64
		want  float64
	}{
		{0, 0},
		{math.Pi / 2, math.Pi / 2},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{math.Pi, math.Pi},
	}
	for _, tt := range tests {
		if got := WrapToPi(tt.theta); !floatEquals(got, tt.want) {
			t.Errorf("WrapToPi(%v) = %v; want %v", tt.theta, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 2); got != 2 {
		t.Errorf("Clamp(5, 2) = %v; want 2", got)
	}
	if got := Clamp(-5, 2); got != -2 {
		t.Errorf("Clamp(-5, 2) = %v; want -2", got)
	}
	if got := Clamp(1, 2); got != 1 {
		t.Errorf("Clamp(1, 2) = %v; want 1", got)
	}
	if got := Clamp(7, 0); got != 7 {
		t.Errorf("Clamp(7, 0) = %v; want 7 (disabled)", got)
	}
}
