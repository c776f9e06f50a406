// Package audio turns simulation events into short synthesised sound effects.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/absorb/internal/config"
	"github.com/iburimskiy/absorb/internal/sim"
)

const sampleRate = beep.SampleRate(44100)

// Absorb blips fire every frame while circles touch; keep them sparse.
const absorbCooldown = 90 * time.Millisecond

type note struct {
	freq  float64
	slide float64 // relative pitch change over the note
	dur   time.Duration
	vol   float64 // base-2 exponent, 0 = unchanged
}

var cues = map[sim.EventKind][]note{
	sim.EventAbsorb:     {{freq: 660, dur: 25 * time.Millisecond, vol: -3}},
	sim.EventPop:        {{freq: 220, slide: 1.5, dur: 180 * time.Millisecond, vol: -1}},
	sim.EventVanish:     {{freq: 880, slide: -0.5, dur: 70 * time.Millisecond, vol: -2}},
	sim.EventThrust:     {{freq: 110, slide: -0.3, dur: 40 * time.Millisecond, vol: -3}},
	sim.EventLevelClear: {{freq: 523, dur: 120 * time.Millisecond}, {freq: 659, dur: 120 * time.Millisecond}, {freq: 784, dur: 240 * time.Millisecond}},
}

// Player mixes effect cues into a single speaker stream.
type Player struct {
	mu         sync.Mutex
	mixer      *beep.Mixer
	tap        *Tap
	ready      bool
	lastAbsorb time.Time
	now        func() time.Time
}

func NewPlayer() *Player {
	mixer := &beep.Mixer{}
	return &Player{
		mixer: mixer,
		tap:   NewTap(mixer, config.MeterRingSize),
		now:   time.Now,
	}
}

// Init opens the speaker. The game runs silently if it fails.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return err
	}
	speaker.Play(p.tap)
	p.ready = true
	return nil
}

// Handle plays the cue for ev, if any.
func (p *Player) Handle(ev sim.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready || !p.allow(ev.Kind) {
		return
	}
	s := cueStreamer(ev.Kind)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func (p *Player) allow(kind sim.EventKind) bool {
	if kind != sim.EventAbsorb {
		return true
	}
	now := p.now()
	if now.Sub(p.lastAbsorb) < absorbCooldown {
		return false
	}
	p.lastAbsorb = now
	return true
}

// Level reports the current output loudness in [0, 1].
func (p *Player) Level() float64 {
	p.mu.Lock()
	ready := p.ready
	p.mu.Unlock()
	if !ready {
		return 0
	}
	return p.tap.Level()
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.ready = false
}

func cueStreamer(kind sim.EventKind) beep.Streamer {
	notes, ok := cues[kind]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		var s beep.Streamer = tone(sampleRate, n.freq, n.slide, n.dur)
		if n.vol != 0 {
			s = &effects.Volume{Streamer: s, Base: 2, Volume: n.vol}
		}
		parts = append(parts, s)
	}
	return beep.Seq(parts...)
}

// tone is a sine sweep with a linear decay envelope lasting exactly dur.
func tone(sr beep.SampleRate, freq, slide float64, dur time.Duration) beep.Streamer {
	total := sr.N(dur)
	pos := 0
	phase := 0.0
	return beep.Take(total, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			t := float64(pos) / float64(total)
			phase += 2 * math.Pi * freq * (1 + slide*t) / float64(sr)
			v := 0.3 * math.Sin(phase) * (1 - t)
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return len(samples), true
	}))
}
