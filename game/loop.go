package game

import "time"

const (
	// DefaultTickInterval is the logical time between two ticks.
	DefaultTickInterval = 130 * time.Millisecond
	// DefaultMaxFrameDelta caps how much wall time one frame may add, so a
	// stalled frame does not trigger a long burst of catch-up ticks.
	DefaultMaxFrameDelta = 200 * time.Millisecond
)

// FixedStep turns variable frame times into a whole number of fixed ticks,
// carrying the remainder to the next frame.
type FixedStep struct {
	interval    time.Duration
	maxFrame    time.Duration
	accumulator time.Duration
}

// NewFixedStep returns a driver ticking every interval. Non-positive values
// fall back to the defaults.
func NewFixedStep(interval, maxFrame time.Duration) *FixedStep {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	if maxFrame <= 0 {
		maxFrame = DefaultMaxFrameDelta
	}
	return &FixedStep{interval: interval, maxFrame: maxFrame}
}

func (f *FixedStep) Interval() time.Duration {
	return f.interval
}

// Pending is the time carried over toward the next tick.
func (f *FixedStep) Pending() time.Duration {
	return f.accumulator
}

func (f *FixedStep) Reset() {
	f.accumulator = 0
}

// Frame adds elapsed wall time and calls tick once per whole interval. If
// tick returns false the remaining backlog is dropped and Frame returns.
// It returns how many times tick ran.
func (f *FixedStep) Frame(elapsed time.Duration, tick func() bool) int {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > f.maxFrame {
		elapsed = f.maxFrame
	}
	f.accumulator += elapsed

	n := 0
	for f.accumulator >= f.interval {
		f.accumulator -= f.interval
		n++
		if !tick() {
			f.accumulator = 0
			break
		}
	}
	return n
}
