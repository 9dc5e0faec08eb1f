package game

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

// State is the lifecycle phase of the engine.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game over"
	default:
		return "idle"
	}
}

// TickResult is what a single Advance call produced.
type TickResult int

const (
	ResultContinue TickResult = iota
	ResultAte
	ResultGameOver
)

func (r TickResult) String() string {
	switch r {
	case ResultAte:
		return "ate"
	case ResultGameOver:
		return "game over"
	default:
		return "continue"
	}
}

// StartLength is the number of segments a run begins with.
const StartLength = 3

// Engine owns the simulation state of one run. It is not safe for
// concurrent use; a single host drives it and reads it between ticks.
type Engine struct {
	grid         types.Grid
	snake        *entity.Snake
	velocity     types.Direction
	food         types.Point
	queue        InputQueue
	score        int
	ticks        int
	state        State
	crashPoint   types.Point
	crashCause   manager.CollisionType
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
}

// NewEngine creates an idle engine on a tileCount x tileCount grid.
// Food placement draws from rng; nil uses a randomly seeded source.
func NewEngine(tileCount int, rng *rand.Rand) *Engine {
	grid := types.NewSquareGrid(tileCount)
	collisionMgr := manager.NewCollisionManager(grid)
	return &Engine{
		grid:         grid,
		snake:        entity.NewSnake(),
		state:        StateIdle,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, rng),
	}
}

// StartPosition is the head cell of a new run. On the 20 tile grid it is (7,10).
func StartPosition(tileCount int) types.Point {
	return types.Point{X: tileCount * 7 / 20, Y: tileCount / 2}
}

// Start begins a new run from Idle or GameOver. Calling it while running
// restarts the run.
func (e *Engine) Start() {
	head := StartPosition(e.grid.Width)
	body := make([]types.Point, StartLength)
	for i := range body {
		body[i] = types.Point{X: head.X, Y: head.Y + i}
	}

	e.snake = entity.NewSnake(body...)
	e.velocity = types.Up
	e.queue.Clear()
	e.score = 0
	e.ticks = 0
	e.crashPoint = types.Point{}
	e.crashCause = manager.NoCollision
	e.food = e.foodMgr.PlaceFood(e.snake)
	e.state = StateRunning
}

// Reset returns the engine to Idle. The last run's body and score stay
// readable until the next Start.
func (e *Engine) Reset() {
	e.queue.Clear()
	e.state = StateIdle
}

// QueueDirection buffers a heading for a later tick and reports whether it
// was kept. Input is ignored unless a run is in progress.
func (e *Engine) QueueDirection(d types.Direction) bool {
	if e.state != StateRunning || !d.Valid() {
		return false
	}
	return e.queue.Push(d)
}

// ClearInput drops every buffered heading.
func (e *Engine) ClearInput() {
	e.queue.Clear()
}

// Advance runs one tick. Outside a run it changes nothing and reports
// ResultGameOver.
func (e *Engine) Advance() TickResult {
	if e.state != StateRunning {
		return ResultGameOver
	}

	// Only a direct reversal is refused; it would fold the head back onto
	// the segment behind it.
	if next, ok := e.queue.Pop(); ok && next != e.velocity.Opposite() {
		e.velocity = next
	}

	newHead := e.snake.GetHead().Add(e.velocity.ToPoint())

	if cause := e.collisionMgr.CheckCollision(newHead, e.snake); cause != manager.NoCollision {
		e.crashPoint = newHead
		e.crashCause = cause
		e.state = StateGameOver
		return ResultGameOver
	}

	e.ticks++
	e.snake.Move(newHead)

	if e.collisionMgr.IsFoodCollision(newHead, e.food) {
		e.score++
		e.food = e.foodMgr.PlaceFood(e.snake)
		return ResultAte
	}

	e.snake.RemoveTail()
	return ResultContinue
}

func (e *Engine) State() State {
	return e.state
}

func (e *Engine) Running() bool {
	return e.state == StateRunning
}

func (e *Engine) Score() int {
	return e.score
}

// Ticks counts the moves made in the current run.
func (e *Engine) Ticks() int {
	return e.ticks
}

func (e *Engine) Velocity() types.Direction {
	return e.velocity
}

func (e *Engine) Food() types.Point {
	return e.food
}

func (e *Engine) Grid() types.Grid {
	return e.grid
}

// Body returns a copy of the snake, head first.
func (e *Engine) Body() []types.Point {
	return e.snake.Segments()
}

// PendingInput returns the buffered headings, oldest first.
func (e *Engine) PendingInput() []types.Direction {
	return e.queue.Pending()
}

// CrashPoint is the cell the head tried to enter when the run ended.
func (e *Engine) CrashPoint() (types.Point, bool) {
	return e.crashPoint, e.state == StateGameOver
}

func (e *Engine) CrashCause() manager.CollisionType {
	return e.crashCause
}

// Snapshot copies the state a renderer needs.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Grid:    e.grid,
		Snake:   e.snake.Segments(),
		Food:    e.food,
		Heading: e.velocity,
		Score:   e.score,
		Ticks:   e.ticks,
		State:   e.state,
	}
	if p, ok := e.CrashPoint(); ok {
		snap.Crash = &p
		snap.CrashCause = e.crashCause.String()
	}
	return snap
}

// Snapshot is a read-only view of one moment of a run.
type Snapshot struct {
	Grid       types.Grid
	Snake      []types.Point
	Food       types.Point
	Heading    types.Direction
	Score      int
	HighScore  int
	Ticks      int
	State      State
	Crash      *types.Point
	CrashCause string
	// NewHighScore is set once a finished run strictly beat the previous best.
	NewHighScore bool
}

// Head returns the head cell, or false for an empty snake.
func (s Snapshot) Head() (types.Point, bool) {
	if len(s.Snake) == 0 {
		return types.Point{}, false
	}
	return s.Snake[0], true
}
