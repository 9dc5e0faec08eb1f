package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

type FoodManager struct {
	grid         types.Grid
	collisionMgr *CollisionManager
	rng          *rand.Rand
}

// NewFoodManager returns a food placer drawing cells from rng. A nil rng is
// seeded from the package source.
func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, rng *rand.Rand) *FoodManager {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Uint64()))
	}
	return &FoodManager{
		grid:         grid,
		collisionMgr: collisionMgr,
		rng:          rng,
	}
}

// PlaceFood samples uniformly random cells until one is not covered by the
// snake. It never returns when the snake fills the whole grid.
func (fm *FoodManager) PlaceFood(snake *entity.Snake) types.Point {
	for {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}

		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food
		}
	}
}
