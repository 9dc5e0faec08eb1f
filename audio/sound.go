// Package audio plays the game's sound effects. Every effect is synthesized
// on the fly, so no asset files are needed.
package audio

import (
	"sync"
	"time"

	"snake-arcade/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.25
)

// Player plays game sounds through the system speaker. The zero value and a
// player whose Initialize failed are silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. Calling it again is a no-op.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if p.mixer == nil {
		p.mixer = &beep.Mixer{}
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// SetMuted silences or restores playback without closing the speaker.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Play implements game.SoundPlayer.
func (p *Player) Play(s game.Sound) {
	p.mu.Lock()
	ready := p.initialized && !p.muted
	p.mu.Unlock()
	if !ready {
		return
	}

	streamer := Effect(s)
	if streamer == nil {
		return
	}

	// The mixer is read from the speaker goroutine.
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// Close stops all sounds and shuts the speaker down.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Effect builds a fresh, finite streamer for s, or nil for an unknown sound.
func Effect(s game.Sound) beep.Streamer {
	switch s {
	case game.SoundUp:
		return blip(880)
	case game.SoundDown:
		return blip(523)
	case game.SoundLeft:
		return blip(659)
	case game.SoundRight:
		return blip(784)
	case game.SoundEat:
		return beep.Seq(tone(660, 60*time.Millisecond), tone(990, 90*time.Millisecond))
	case game.SoundDeath:
		return beep.Take(sampleRate.N(450*time.Millisecond), NewSweepGenerator(sampleRate, 330, 70, 450*time.Millisecond))
	default:
		return nil
	}
}

func blip(freq float64) beep.Streamer {
	return tone(freq, 45*time.Millisecond)
}

func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	return beep.Take(sampleRate.N(d), &gain{Streamer: sine, volume: volume})
}

// gain scales another streamer.
type gain struct {
	beep.Streamer
	volume float64
}

func (g *gain) Stream(samples [][2]float64) (int, bool) {
	n, ok := g.Streamer.Stream(samples)
	for i := range samples[:n] {
		samples[i][0] *= g.volume
		samples[i][1] *= g.volume
	}
	return n, ok
}
