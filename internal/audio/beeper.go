// Package audio plays short notification tones on the default output device.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Beeper plays a click whenever agents collide. A Beeper that failed to
// initialize stays silent.
type Beeper struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	lastBeep    time.Time
	// MinGap rate-limits beeps so a crowded arena does not saturate the mixer.
	MinGap time.Duration
}

// NewBeeper creates a silent beeper; call Initialize to open the speaker.
func NewBeeper() *Beeper {
	return &Beeper{mixer: &beep.Mixer{}, MinGap: 80 * time.Millisecond}
}

// Initialize sets up the audio system
func (b *Beeper) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Collision plays a short tone, pitched up with the number of colliding pairs.
func (b *Beeper) Collision(pairs int) {
	if pairs <= 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized || time.Since(b.lastBeep) < b.MinGap {
		return
	}
	b.lastBeep = time.Now()
	freq := 660 + 40*math.Min(float64(pairs), 10)
	speaker.Lock()
	b.mixer.Add(beep.Take(sampleRate.N(time.Millisecond*60), newTone(sampleRate, freq)))
	speaker.Unlock()
}

// Close stops all sounds and closes the speaker.
func (b *Beeper) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	b.initialized = false
}

// tone is a sine wave with a short attack to avoid clicks.
type tone struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newTone(sr beep.SampleRate, freq float64) *tone {
	return &tone{sr: sr, freq: freq}
}

func (g *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Min(t/0.005, 1.0)
		sample := 0.15 * envelope * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *tone) Err() error {
	return nil
}
