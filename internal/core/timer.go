package core

import "time"

// FixedStep paces a frame loop at a steady ticks-per-second rate and reports
// how much time passed between ticks.
type FixedStep struct {
	step     time.Duration
	maxDelta time.Duration
	last     time.Time
	now      func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
	// A stalled process must not turn one tick into a jump across the map.
	f.maxDelta = 4 * f.step
}

// Step returns the nominal duration of one tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// Delta returns the seconds elapsed since the previous call, clamped to four
// nominal ticks. The first call returns one nominal tick.
func (f *FixedStep) Delta() float64 {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
		return f.step.Seconds()
	}
	d := now.Sub(f.last)
	f.last = now
	if d < 0 {
		d = 0
	}
	if d > f.maxDelta {
		d = f.maxDelta
	}
	return d.Seconds()
}
