package core

import (
	"math"
	"testing"
	"time"
)

func TestFixedStepDelta(t *testing.T) {
	fs := NewFixedStep(50)
	base := time.Unix(1000, 0)
	now := base
	fs.now = func() time.Time { return now }

	if got := fs.Delta(); math.Abs(got-0.02) > 1e-12 {
		t.Fatalf("first Delta = %g, want nominal 0.02", got)
	}
	now = now.Add(30 * time.Millisecond)
	if got := fs.Delta(); math.Abs(got-0.03) > 1e-12 {
		t.Fatalf("Delta = %g, want 0.03", got)
	}
	now = now.Add(5 * time.Second)
	if got := fs.Delta(); math.Abs(got-0.08) > 1e-12 {
		t.Fatalf("stalled Delta = %g, want clamp 0.08", got)
	}
}

func TestFixedStepDefaultsTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Step() != time.Second/60 {
		t.Fatalf("Step = %v, want 1/60s", fs.Step())
	}
}
