package game

import (
	"log"
	"time"

	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"github.com/google/uuid"
)

// Sound identifies an effect the host plays in reaction to the game.
type Sound int

const (
	SoundUp Sound = iota
	SoundDown
	SoundLeft
	SoundRight
	SoundEat
	SoundDeath
)

func (s Sound) String() string {
	switch s {
	case SoundUp:
		return "up"
	case SoundDown:
		return "down"
	case SoundLeft:
		return "left"
	case SoundRight:
		return "right"
	case SoundEat:
		return "eat"
	case SoundDeath:
		return "death"
	default:
		return "unknown"
	}
}

// SoundForDirection maps an accepted turn to its blip.
func SoundForDirection(d types.Direction) (Sound, bool) {
	switch d {
	case types.Up:
		return SoundUp, true
	case types.Down:
		return SoundDown, true
	case types.Left:
		return SoundLeft, true
	case types.Right:
		return SoundRight, true
	}
	return 0, false
}

// SoundPlayer plays effects. Implementations must not block.
type SoundPlayer interface {
	Play(Sound)
}

// HighScoreStore keeps the best score across runs.
type HighScoreStore interface {
	GetHighScore() int
	SetHighScore(score int) error
}

// RunRecorder is implemented by stores that also keep a run history.
type RunRecorder interface {
	RecordRun(run manager.RunRecord) error
}

// Pilot steers the snake in place of a player. Next is asked once before
// every tick.
type Pilot interface {
	Next(snap Snapshot) (types.Direction, bool)
}

type silentPlayer struct{}

func (silentPlayer) Play(Sound) {}

type memoryStore struct{ best int }

func (m *memoryStore) GetHighScore() int { return m.best }

func (m *memoryStore) SetHighScore(score int) error {
	m.best = score
	return nil
}

// FrameReport summarizes what happened during one Frame call.
type FrameReport struct {
	Ticks        int
	Ate          int
	GameOver     bool
	NewHighScore bool
}

// Session is the host side of a game: it drives the engine at a fixed rate
// and connects it to sound, persistence and an optional pilot.
type Session struct {
	engine *Engine
	step   *FixedStep
	sound  SoundPlayer
	store  HighScoreStore
	pilot  Pilot
	logger *log.Logger
	now    func() time.Time

	runID     uuid.UUID
	startedAt time.Time
	highScore int
	newBest   bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

func WithSoundPlayer(p SoundPlayer) SessionOption {
	return func(s *Session) {
		if p != nil {
			s.sound = p
		}
	}
}

func WithHighScoreStore(store HighScoreStore) SessionOption {
	return func(s *Session) {
		if store != nil {
			s.store = store
		}
	}
}

func WithPilot(p Pilot) SessionOption {
	return func(s *Session) {
		s.pilot = p
	}
}

func WithLogger(l *log.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock replaces time.Now for run timestamps.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

func NewSession(engine *Engine, step *FixedStep, opts ...SessionOption) *Session {
	s := &Session{
		engine: engine,
		step:   step,
		sound:  silentPlayer{},
		store:  &memoryStore{},
		logger: log.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.highScore = s.store.GetHighScore()
	return s
}

func (s *Session) Engine() *Engine {
	return s.engine
}

func (s *Session) HighScore() int {
	return s.highScore
}

func (s *Session) RunID() uuid.UUID {
	return s.runID
}

// SetPilot swaps the autopilot; nil hands control back to the player.
// Turns the player left in the queue are dropped when a pilot takes over.
func (s *Session) SetPilot(p Pilot) {
	s.pilot = p
	if p != nil {
		s.engine.ClearInput()
	}
}

func (s *Session) Piloted() bool {
	return s.pilot != nil
}

// Start begins a fresh run and restarts the tick clock.
func (s *Session) Start() {
	s.engine.Start()
	s.step.Reset()
	s.newBest = false
	s.runID = uuid.New()
	s.startedAt = s.now()
	s.logger.Printf("run %s started (best %d)", s.runID, s.highScore)
}

// ReturnToMenu stops driving the engine.
func (s *Session) ReturnToMenu() {
	if s.engine.Running() {
		s.logger.Printf("run %s abandoned at score %d", s.runID, s.engine.Score())
	}
	s.engine.Reset()
	s.step.Reset()
}

// Steer queues a turn and plays its blip when the engine keeps it.
func (s *Session) Steer(d types.Direction) bool {
	if !s.engine.QueueDirection(d) {
		return false
	}
	if snd, ok := SoundForDirection(d); ok {
		s.sound.Play(snd)
	}
	return true
}

// Frame feeds one frame's wall time to the tick clock and reacts to every
// tick it produces. Nothing happens unless a run is in progress.
func (s *Session) Frame(elapsed time.Duration) FrameReport {
	var report FrameReport
	if !s.engine.Running() {
		return report
	}

	report.Ticks = s.step.Frame(elapsed, func() bool {
		if s.pilot != nil {
			// The pilot decides for the current head; nothing older may run first.
			s.engine.ClearInput()
			if d, ok := s.pilot.Next(s.Snapshot()); ok && d != s.engine.Velocity() {
				s.engine.QueueDirection(d)
			}
		}

		switch s.engine.Advance() {
		case ResultAte:
			report.Ate++
			s.sound.Play(SoundEat)
		case ResultGameOver:
			report.GameOver = true
			report.NewHighScore = s.finishRun()
			return false
		}
		return true
	})
	return report
}

// finishRun settles the best score and history once a run ends.
func (s *Session) finishRun() bool {
	s.sound.Play(SoundDeath)

	score := s.engine.Score()
	cause := s.engine.CrashCause()
	s.logger.Printf("run %s over: score %d after %d ticks (%s)", s.runID, score, s.engine.Ticks(), cause)

	newBest := score > s.highScore
	s.newBest = newBest
	if newBest {
		s.highScore = score
		if err := s.store.SetHighScore(score); err != nil {
			s.logger.Printf("save high score: %v", err)
		} else {
			s.logger.Printf("new high score %d", score)
		}
	}

	if rec, ok := s.store.(RunRecorder); ok {
		run := manager.RunRecord{
			ID:        s.runID,
			StartTime: s.startedAt,
			EndTime:   s.now(),
			Score:     score,
			Ticks:     s.engine.Ticks(),
			Cause:     cause.String(),
		}
		if err := rec.RecordRun(run); err != nil {
			s.logger.Printf("record run: %v", err)
		}
	}
	return newBest
}

// Snapshot is the engine view plus the best score, for renderers.
func (s *Session) Snapshot() Snapshot {
	snap := s.engine.Snapshot()
	snap.HighScore = s.highScore
	snap.NewHighScore = s.newBest && snap.State == StateGameOver
	return snap
}
