package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SweepGenerator is a square-ish wave gliding from one pitch to another with
// a linear fade out, used for the crash sound.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: sr.N(d),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		// Soft-clipped sine gives a buzzier edge than a pure tone.
		v := math.Tanh(3*math.Sin(2*math.Pi*g.phase)) * volume * (1 - progress)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
