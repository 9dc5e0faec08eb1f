// Package ai contains computer players that steer the snake in demo mode.
package ai

import (
	"snake-arcade/game"
	"snake-arcade/game/types"
)

// Autopilot is a greedy player. Each tick it looks at going straight,
// turning left and turning right, drops the moves that crash on the next
// tick, and takes the one that gets closest to the food.
type Autopilot struct{}

func NewAutopilot() *Autopilot {
	return &Autopilot{}
}

// Next implements game.Pilot.
func (a *Autopilot) Next(snap game.Snapshot) (types.Direction, bool) {
	head, ok := snap.Head()
	if !ok || !snap.Heading.Valid() {
		return types.None, false
	}

	candidates := [3]types.Direction{
		snap.Heading,
		snap.Heading.TurnLeft(),
		snap.Heading.TurnRight(),
	}

	best := types.None
	bestScore := 0.0
	for _, dir := range candidates {
		score := a.evaluate(snap, head, dir)
		if best == types.None || score > bestScore {
			best, bestScore = dir, score
		}
	}
	return best, true
}

// evaluate scores a move between -1 (immediate crash) and 1 (eats food).
func (a *Autopilot) evaluate(snap game.Snapshot, head types.Point, dir types.Direction) float64 {
	next := head.Add(dir.ToPoint())
	if isDanger(snap, next) {
		return -1.0
	}
	if next == snap.Food {
		return 1.0
	}

	score := 0.0
	switch d, cur := manhattanDistance(next, snap.Food), manhattanDistance(head, snap.Food); {
	case d < cur:
		score = 0.5
	case d > cur:
		score = -0.3
	}

	// Prefer cells that still have a way out.
	exits := 0
	for _, out := range types.Directions {
		if !isDanger(snap, next.Add(out.ToPoint())) {
			exits++
		}
	}
	if exits == 0 {
		score -= 0.6
	}
	return score
}

// isDanger reports whether the head entering p ends the run. The tail moves
// away this tick unless food is eaten, but the engine still counts it, so
// it is treated as solid here too.
func isDanger(snap game.Snapshot, p types.Point) bool {
	if !snap.Grid.Contains(p) {
		return true
	}
	for _, part := range snap.Snake {
		if part == p {
			return true
		}
	}
	return false
}

func manhattanDistance(p1, p2 types.Point) int {
	return abs(p1.X-p2.X) + abs(p1.Y-p2.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
