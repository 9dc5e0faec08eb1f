package audio

import (
	"testing"
	"time"

	"snake-arcade/game"

	"github.com/gopxl/beep"
)

// drain reads s to the end and returns the number of samples and the peak.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			for _, v := range sample {
				if v > peak {
					peak = v
				}
				if -v > peak {
					peak = -v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

func TestEffectsAreFiniteAndBounded(t *testing.T) {
	sounds := []game.Sound{
		game.SoundUp, game.SoundDown, game.SoundLeft, game.SoundRight,
		game.SoundEat, game.SoundDeath,
	}

	for _, s := range sounds {
		t.Run(s.String(), func(t *testing.T) {
			streamer := Effect(s)
			if streamer == nil {
				t.Fatal("expected a streamer")
			}
			n, peak := drain(t, streamer)
			if n == 0 {
				t.Error("effect produced no samples")
			}
			if n > sampleRate.N(time.Second) {
				t.Errorf("effect is %d samples long, want under a second", n)
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak amplitude %f out of (0, 1]", peak)
			}
		})
	}
}

func TestUnknownEffect(t *testing.T) {
	if Effect(game.Sound(99)) != nil {
		t.Error("unknown sound should have no effect")
	}
}

func TestSweepGeneratorLength(t *testing.T) {
	g := NewSweepGenerator(sampleRate, 400, 100, 100*time.Millisecond)
	n, _ := drain(t, g)
	if want := sampleRate.N(100 * time.Millisecond); n != want {
		t.Errorf("streamed %d samples, want %d", n, want)
	}
	if g.Err() != nil {
		t.Errorf("Err() = %v", g.Err())
	}
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer()
	p.Play(game.SoundEat)
	p.SetMuted(true)
	if !p.Muted() {
		t.Error("Muted() = false after SetMuted(true)")
	}
	p.Close()

	var zero Player
	zero.Play(game.SoundDeath)
}
