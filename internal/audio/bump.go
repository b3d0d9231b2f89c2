// Package audio plays the short thump heard when the body walks into a wall.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	bumpFreq   = 90.0
	bumpLength = 120 * time.Millisecond
	// minGap suppresses repeated bumps while a move key is held against a wall.
	minGap = 250 * time.Millisecond
)

// Bumper plays a collision thump through the speaker.
type Bumper struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	last        time.Time
	now         func() time.Time
}

// NewBumper creates a Bumper. Call Initialize before Play.
func NewBumper() *Bumper {
	return &Bumper{mixer: &beep.Mixer{}, now: time.Now}
}

// Initialize opens the speaker. A Bumper that failed to initialize stays silent.
func (b *Bumper) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Play queues a thump unless one played within minGap. It reports whether a
// sound was queued.
func (b *Bumper) Play() bool {
	if b == nil {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	now := b.now()
	if !b.last.IsZero() && now.Sub(b.last) < minGap {
		return false
	}
	b.last = now
	if !b.initialized {
		return false
	}
	speaker.Lock()
	b.mixer.Add(beep.Take(sampleRate.N(bumpLength), NewThump(sampleRate, bumpFreq)))
	speaker.Unlock()
	return true
}

// Close stops any queued sound.
func (b *Bumper) Close() {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	b.initialized = false
}

// Thump is a decaying low sine.
type Thump struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewThump creates a thump generator.
func NewThump(sr beep.SampleRate, freq float64) *Thump {
	return &Thump{sr: sr, freq: freq}
}

func (t *Thump) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		sec := float64(t.pos) / float64(t.sr)
		envelope := math.Exp(-sec*30) * math.Min(sec/0.005, 1)
		v := 0.4 * envelope * math.Sin(2*math.Pi*t.freq*sec)
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *Thump) Err() error { return nil }
