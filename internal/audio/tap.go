package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"

	"github.com/iburimskiy/absorb/internal/config"
)

// Tap wraps a beep.Streamer and records the last N samples into a ring buffer
// so the renderer can show how loud the effects currently are.
type Tap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	level     float64
	mu        sync.RWMutex
}

func NewTap(src beep.Streamer, ringSize int) *Tap {
	return &Tap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = samples[i]
			t.nextIndex++
			if t.nextIndex >= len(t.buffer) {
				t.nextIndex = 0
			}
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }

// Snapshot returns up to the last n samples (stereo), oldest first.
func (t *Tap) Snapshot(n int) [][2]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > len(t.buffer) {
		n = len(t.buffer)
	}
	out := make([][2]float64, 0, n)
	idx := t.nextIndex - 1
	if idx < 0 {
		idx = len(t.buffer) - 1
	}
	for i := 0; i < n; i++ {
		out = append(out, t.buffer[idx])
		idx--
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
	}
	// reverse to chronological order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Level returns a smoothed, compressed RMS of the most recent samples in [0, 1].
// Call it once per rendered frame.
func (t *Tap) Level() float64 {
	samples := t.Snapshot(len(t.buffer) / 4)
	var sumSquares float64
	for _, s := range samples {
		mono := (s[0] + s[1]) * 0.5
		sumSquares += mono * mono
	}
	mag := 0.0
	if len(samples) > 0 {
		mag = clamp01(math.Pow(math.Sqrt(sumSquares/float64(len(samples))), 0.3))
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.level = config.SmoothingFactor*t.level + (1-config.SmoothingFactor)*mag
	return t.level
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
