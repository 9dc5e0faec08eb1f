package terminal

import (
	"unicode"

	"snake-arcade/game/types"
	"snake-arcade/ui/control"

	"github.com/gdamore/tcell/v2"
)

// DirectionForKey maps arrows and WASD to a heading.
func DirectionForKey(key tcell.Key, r rune) (types.Direction, bool) {
	switch key {
	case tcell.KeyUp:
		return types.Up, true
	case tcell.KeyDown:
		return types.Down, true
	case tcell.KeyLeft:
		return types.Left, true
	case tcell.KeyRight:
		return types.Right, true
	case tcell.KeyRune:
		switch unicode.ToLower(r) {
		case 'w':
			return types.Up, true
		case 's':
			return types.Down, true
		case 'a':
			return types.Left, true
		case 'd':
			return types.Right, true
		}
	}
	return types.None, false
}

// ActionForKey maps a key event to a controller action. Unbound keys give
// control.ActionNone.
func ActionForKey(key tcell.Key, r rune) control.Action {
	if d, ok := DirectionForKey(key, r); ok {
		switch d {
		case types.Up:
			return control.ActionUp
		case types.Down:
			return control.ActionDown
		case types.Left:
			return control.ActionLeft
		case types.Right:
			return control.ActionRight
		}
	}

	switch key {
	case tcell.KeyEnter:
		return control.ActionStart
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return control.ActionQuit
	case tcell.KeyRune:
		switch unicode.ToLower(r) {
		case ' ', 'r':
			return control.ActionStart
		case 'm', 'h':
			return control.ActionHome
		case 't':
			return control.ActionTheme
		case 'p':
			return control.ActionAutopilot
		case 'n':
			return control.ActionMute
		case 'q':
			return control.ActionQuit
		}
	}
	return control.ActionNone
}
