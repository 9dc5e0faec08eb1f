package terminal

import (
	"fmt"

	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/ui/theme"

	"github.com/gdamore/tcell/v2"
)

const (
	// cellWidth is the number of terminal columns per board cell, which
	// keeps cells roughly square.
	cellWidth = 2
	hudRows   = 1
)

// canvas is the part of tcell.Screen the renderer draws on.
type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

func color(c theme.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func styleOn(fg, bg theme.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(color(fg)).Background(color(bg))
}

// layout positions the board inside the screen.
type layout struct {
	originX, originY int
}

func newLayout(c canvas, grid types.Grid) layout {
	w, _ := c.Size()
	x := (w - grid.Width*cellWidth) / 2
	if x < 0 {
		x = 0
	}
	return layout{originX: x, originY: hudRows}
}

func (l layout) cell(c canvas, p types.Point, left, right rune, st tcell.Style) {
	x := l.originX + p.X*cellWidth
	y := l.originY + p.Y
	c.SetContent(x, y, left, nil, st)
	c.SetContent(x+1, y, right, nil, st)
}

// draw renders one snapshot: board, food, snake, HUD and any overlay.
func draw(c canvas, snap game.Snapshot, p theme.Palette, piloted bool) {
	w, h := c.Size()
	bg := styleOn(p.Text, p.Background)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.SetContent(x, y, ' ', nil, bg)
		}
	}

	l := newLayout(c, snap.Grid)
	for y := 0; y < snap.Grid.Height; y++ {
		for x := 0; x < snap.Grid.Width; x++ {
			tile := p.Tile(x, y)
			l.cell(c, types.Point{X: x, Y: y}, ' ', ' ', styleOn(tile, tile))
		}
	}

	if snap.State != game.StateIdle {
		tile := p.Tile(snap.Food.X, snap.Food.Y)
		l.cell(c, snap.Food, '●', ' ', styleOn(p.Food, tile))

		body := styleOn(p.Text, p.Snake)
		for i := len(snap.Snake) - 1; i >= 1; i-- {
			l.cell(c, snap.Snake[i], ' ', ' ', body)
		}
		if head, ok := snap.Head(); ok {
			left, right := eyes(snap.Heading)
			l.cell(c, head, left, right, body.Bold(true))
		}
		if snap.Crash != nil && snap.Grid.Contains(*snap.Crash) {
			l.cell(c, *snap.Crash, '✖', '✖', styleOn(p.Text, p.Food).Bold(true))
		}
	}

	drawHUD(c, snap, p, piloted)

	switch snap.State {
	case game.StateIdle:
		overlay(c, l, snap.Grid, p,
			"S N A K E",
			"Enter / Space to play",
			"arrows or WASD to steer",
			"t theme  p autopilot  n mute  q quit",
		)
	case game.StateGameOver:
		result := fmt.Sprintf("Score %d", snap.Score)
		if snap.NewHighScore {
			result += "  new best!"
		}
		overlay(c, l, snap.Grid, p,
			"GAME OVER",
			result,
			"Enter to restart",
			"h for menu",
		)
	}
}

// eyes picks the glyphs that make the head face its heading.
func eyes(d types.Direction) (rune, rune) {
	switch d {
	case types.Left:
		return '•', ' '
	case types.Right:
		return ' ', '•'
	}
	return '•', '•'
}

func drawHUD(c canvas, snap game.Snapshot, p theme.Palette, piloted bool) {
	st := styleOn(p.Text, p.Background).Bold(true)
	text := fmt.Sprintf(" Score %d   Best %d ", snap.Score, snap.HighScore)
	if piloted {
		text += "  [autopilot]"
	}
	drawText(c, 0, 0, text, st)
}

func overlay(c canvas, l layout, grid types.Grid, p theme.Palette, lines ...string) {
	title := styleOn(p.Accent, p.Background).Bold(true)
	body := styleOn(p.Text, p.Background)

	centerX := l.originX + grid.Width*cellWidth/2
	top := l.originY + grid.Height/2 - len(lines)/2
	for i, line := range lines {
		st := body
		if i == 0 {
			st = title
		}
		drawText(c, centerX-len([]rune(line))/2, top+i, line, st)
	}
}

func drawText(c canvas, x, y int, text string, st tcell.Style) {
	for i, r := range []rune(text) {
		c.SetContent(x+i, y, r, nil, st)
	}
}
