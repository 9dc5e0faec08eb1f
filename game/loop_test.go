package game

import (
	"testing"
	"time"

	"snake-arcade/game/types"
)

func counter(n *int) func() bool {
	return func() bool {
		*n++
		return true
	}
}

func TestFrameCountsWholeIntervals(t *testing.T) {
	tests := []struct {
		name    string
		frames  []time.Duration
		want    int
		pending time.Duration
	}{
		{"below interval", []time.Duration{100 * time.Millisecond}, 0, 100 * time.Millisecond},
		{"exact interval", []time.Duration{130 * time.Millisecond}, 1, 0},
		{"remainder carried", []time.Duration{100 * time.Millisecond, 100 * time.Millisecond}, 1, 70 * time.Millisecond},
		{"fifty hertz second", repeat(20*time.Millisecond, 50), 7, 90 * time.Millisecond},
		{"stall is capped", []time.Duration{5 * time.Second}, 1, 70 * time.Millisecond},
		{"negative ignored", []time.Duration{-time.Second, 130 * time.Millisecond}, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFixedStep(130*time.Millisecond, 200*time.Millisecond)
			ticks := 0
			total := 0
			for _, d := range tt.frames {
				total += f.Frame(d, counter(&ticks))
			}
			if ticks != tt.want || total != tt.want {
				t.Errorf("ticks = %d (reported %d), want %d", ticks, total, tt.want)
			}
			if f.Pending() != tt.pending {
				t.Errorf("Pending() = %v, want %v", f.Pending(), tt.pending)
			}
		})
	}
}

func repeat(d time.Duration, n int) []time.Duration {
	out := make([]time.Duration, n)
	for i := range out {
		out[i] = d
	}
	return out
}

func TestFrameCatchUpWithinCap(t *testing.T) {
	f := NewFixedStep(50*time.Millisecond, 200*time.Millisecond)
	ticks := 0
	if n := f.Frame(180*time.Millisecond, counter(&ticks)); n != 3 {
		t.Errorf("Frame() = %d, want 3", n)
	}
	if f.Pending() != 30*time.Millisecond {
		t.Errorf("Pending() = %v, want 30ms", f.Pending())
	}
}

func TestFrameStopsWhenTickDeclines(t *testing.T) {
	f := NewFixedStep(50*time.Millisecond, 200*time.Millisecond)
	calls := 0
	n := f.Frame(200*time.Millisecond, func() bool {
		calls++
		return calls < 2
	})
	if n != 2 || calls != 2 {
		t.Errorf("Frame() = %d with %d calls, want 2", n, calls)
	}
	if f.Pending() != 0 {
		t.Errorf("backlog kept after stop: %v", f.Pending())
	}
}

func TestFixedStepDefaultsAndReset(t *testing.T) {
	f := NewFixedStep(0, -1)
	if f.Interval() != DefaultTickInterval {
		t.Errorf("Interval() = %v, want %v", f.Interval(), DefaultTickInterval)
	}
	f.Frame(100*time.Millisecond, func() bool { return true })
	f.Reset()
	if f.Pending() != 0 {
		t.Errorf("Pending() after Reset = %v", f.Pending())
	}
}

// Equal wall time must produce equal simulation regardless of frame rate.
func TestSimulationIsFrameRateIndependent(t *testing.T) {
	run := func(frame time.Duration, frames int) []types.Point {
		e := newTestEngine(t, 21)
		e.Start()
		e.food = types.Point{X: 19, Y: 19}
		f := NewFixedStep(DefaultTickInterval, DefaultMaxFrameDelta)
		for i := 0; i < frames; i++ {
			f.Frame(frame, func() bool { return e.Advance() != ResultGameOver })
		}
		return e.Body()
	}

	slow := run(40*time.Millisecond, 20)
	fast := run(10*time.Millisecond, 80)
	if len(slow) != len(fast) {
		t.Fatalf("length differs: %d vs %d", len(slow), len(fast))
	}
	for i := range slow {
		if slow[i] != fast[i] {
			t.Errorf("segment %d: %v vs %v", i, slow[i], fast[i])
		}
	}
	if slow[0] != (types.Point{X: 7, Y: 4}) {
		t.Errorf("head after 800ms = %v, want (7,4)", slow[0])
	}
}

func TestInputQueueFIFO(t *testing.T) {
	var q InputQueue
	if _, ok := q.Pop(); ok {
		t.Fatal("Pop on empty queue succeeded")
	}
	q.Push(types.Left)
	q.Push(types.Down)
	if q.Push(types.Right) {
		t.Error("third Push should be dropped")
	}

	d, _ := q.Pop()
	if d != types.Left {
		t.Errorf("first Pop = %v, want left", d)
	}
	q.Push(types.Up)
	if got := q.Pending(); len(got) != 2 || got[0] != types.Down || got[1] != types.Up {
		t.Errorf("Pending() = %v, want [down up]", got)
	}

	q.Clear()
	if q.Len() != 0 {
		t.Errorf("Len() after Clear = %d", q.Len())
	}
}
