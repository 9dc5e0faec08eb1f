// Package window runs the game in a raylib window.
package window

import (
	"log"
	"time"

	"snake-arcade/ui/control"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const targetFPS = 60

// Run opens a window sized for the board and plays until the player quits
// or closes the window.
func Run(ctrl *control.Controller, cellSize int, logger *log.Logger) {
	grid := ctrl.Session().Engine().Grid()
	r := NewRenderer(grid, int32(cellSize))

	rl.InitWindow(r.ScreenWidth(), r.ScreenHeight(), "Snake")
	defer rl.CloseWindow()
	rl.SetExitKey(0)
	rl.SetTargetFPS(targetFPS)
	logger.Printf("window frontend started at %dx%d", r.ScreenWidth(), r.ScreenHeight())

	for !rl.WindowShouldClose() {
		// Keys come out of raylib's queue in the order they were pressed,
		// so two quick turns inside one frame both reach the engine.
		for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
			ctrl.Handle(actionForKey(key))
		}
		if ctrl.Quit() {
			return
		}

		elapsed := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		ctrl.Session().Frame(elapsed)

		r.Draw(ctrl.Session().Snapshot(), ctrl.Palette(), ctrl.Session().Piloted())
	}
}
