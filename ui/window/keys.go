package window

import (
	"snake-arcade/ui/control"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// actionForKey maps a raylib key code to a controller action.
func actionForKey(key int32) control.Action {
	switch key {
	case rl.KeyUp, rl.KeyW:
		return control.ActionUp
	case rl.KeyDown, rl.KeyS:
		return control.ActionDown
	case rl.KeyLeft, rl.KeyA:
		return control.ActionLeft
	case rl.KeyRight, rl.KeyD:
		return control.ActionRight
	case rl.KeyEnter, rl.KeySpace, rl.KeyR:
		return control.ActionStart
	case rl.KeyM, rl.KeyH:
		return control.ActionHome
	case rl.KeyT:
		return control.ActionTheme
	case rl.KeyP:
		return control.ActionAutopilot
	case rl.KeyN:
		return control.ActionMute
	case rl.KeyQ, rl.KeyEscape:
		return control.ActionQuit
	}
	return control.ActionNone
}
