package core

import (
	"errors"
	"math"
	"testing"
)

func TestNormalizeAngle(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{math.Pi, math.Pi},
		{TwoPi, 0},
		{-math.Pi / 2, 1.5 * math.Pi},
		{5 * math.Pi, math.Pi},
		{-1e-18, 0},
	}
	for _, tc := range cases {
		got := NormalizeAngle(tc.in)
		if math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("NormalizeAngle(%g) = %g, want %g", tc.in, got, tc.want)
		}
		if got < 0 || got >= TwoPi {
			t.Fatalf("NormalizeAngle(%g) = %g outside [0, 2π)", tc.in, got)
		}
	}
}

func TestNewPointRejectsNonFinite(t *testing.T) {
	if _, err := NewPoint(math.NaN(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("NewPoint(NaN) err = %v", err)
	}
	if _, err := NewPoint(0, math.Inf(1)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("NewPoint(Inf) err = %v", err)
	}
	p, err := NewPoint(3, 4)
	if err != nil || p.X != 3 || p.Y != 4 {
		t.Fatalf("NewPoint(3, 4) = %v, %v", p, err)
	}
}

func TestDistance(t *testing.T) {
	d, err := Distance(Point{X: 1, Y: 1}, Point{X: 4, Y: 5})
	if err != nil {
		t.Fatalf("Distance: %v", err)
	}
	if d != 5 {
		t.Fatalf("Distance = %g, want 5", d)
	}
	if _, err := Distance(Point{X: math.NaN()}, Point{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Distance with NaN err = %v", err)
	}
}
