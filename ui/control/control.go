// Package control turns frontend key presses into session commands. It has
// no rendering dependencies so both frontends share it.
package control

import (
	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/ui/theme"
)

type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionStart
	ActionHome
	ActionTheme
	ActionAutopilot
	ActionMute
	ActionQuit
)

// Direction returns the heading for a steering action.
func (a Action) Direction() (types.Direction, bool) {
	switch a {
	case ActionUp:
		return types.Up, true
	case ActionDown:
		return types.Down, true
	case ActionLeft:
		return types.Left, true
	case ActionRight:
		return types.Right, true
	}
	return types.None, false
}

// Muter is implemented by sound players that can be silenced.
type Muter interface {
	SetMuted(bool)
	Muted() bool
}

type Controller struct {
	session *game.Session
	palette theme.Palette
	pilot   game.Pilot
	muter   Muter
	quit    bool
}

// New returns a controller for session. pilot is what ActionAutopilot
// switches on; muter may be nil.
func New(session *game.Session, palette theme.Palette, pilot game.Pilot, muter Muter) *Controller {
	return &Controller{
		session: session,
		palette: palette,
		pilot:   pilot,
		muter:   muter,
	}
}

func (c *Controller) Session() *game.Session {
	return c.session
}

func (c *Controller) Palette() theme.Palette {
	return c.palette
}

// Quit reports whether the player asked to leave.
func (c *Controller) Quit() bool {
	return c.quit
}

// Handle applies one action. Steering while the autopilot is on is ignored.
func (c *Controller) Handle(a Action) {
	if d, ok := a.Direction(); ok {
		if !c.session.Piloted() {
			c.session.Steer(d)
		}
		return
	}

	switch a {
	case ActionStart:
		if c.session.Engine().State() != game.StateRunning {
			c.session.Start()
		}
	case ActionHome:
		c.session.ReturnToMenu()
	case ActionTheme:
		c.palette = theme.Next(c.palette.Name)
	case ActionAutopilot:
		if c.session.Piloted() {
			c.session.SetPilot(nil)
		} else if c.pilot != nil {
			c.session.SetPilot(c.pilot)
		}
	case ActionMute:
		if c.muter != nil {
			c.muter.SetMuted(!c.muter.Muted())
		}
	case ActionQuit:
		c.quit = true
	}
}
