package terminal

import (
	"strings"
	"testing"

	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/ui/control"
	"snake-arcade/ui/theme"

	"github.com/gdamore/tcell/v2"
)

func TestDirectionForKey(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want types.Direction
		ok   bool
	}{
		{tcell.KeyUp, 0, types.Up, true},
		{tcell.KeyDown, 0, types.Down, true},
		{tcell.KeyLeft, 0, types.Left, true},
		{tcell.KeyRight, 0, types.Right, true},
		{tcell.KeyRune, 'w', types.Up, true},
		{tcell.KeyRune, 'S', types.Down, true},
		{tcell.KeyRune, 'a', types.Left, true},
		{tcell.KeyRune, 'D', types.Right, true},
		{tcell.KeyRune, 'x', types.None, false},
		{tcell.KeyEnter, 0, types.None, false},
	}

	for _, tt := range tests {
		got, ok := DirectionForKey(tt.key, tt.r)
		if got != tt.want || ok != tt.ok {
			t.Errorf("DirectionForKey(%v, %q) = %v,%v, want %v,%v", tt.key, tt.r, got, ok, tt.want, tt.ok)
		}
	}
}

func TestActionForKey(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want control.Action
	}{
		{tcell.KeyUp, 0, control.ActionUp},
		{tcell.KeyRune, 'd', control.ActionRight},
		{tcell.KeyEnter, 0, control.ActionStart},
		{tcell.KeyRune, ' ', control.ActionStart},
		{tcell.KeyRune, 'r', control.ActionStart},
		{tcell.KeyRune, 'h', control.ActionHome},
		{tcell.KeyRune, 'M', control.ActionHome},
		{tcell.KeyRune, 't', control.ActionTheme},
		{tcell.KeyRune, 'p', control.ActionAutopilot},
		{tcell.KeyRune, 'n', control.ActionMute},
		{tcell.KeyRune, 'q', control.ActionQuit},
		{tcell.KeyEscape, 0, control.ActionQuit},
		{tcell.KeyCtrlC, 0, control.ActionQuit},
		{tcell.KeyRune, 'z', control.ActionNone},
		{tcell.KeyTab, 0, control.ActionNone},
	}

	for _, tt := range tests {
		if got := ActionForKey(tt.key, tt.r); got != tt.want {
			t.Errorf("ActionForKey(%v, %q) = %v, want %v", tt.key, tt.r, got, tt.want)
		}
	}
}

type cell struct {
	r  rune
	st tcell.Style
}

type fakeCanvas struct {
	w, h  int
	cells map[[2]int]cell
}

func newFakeCanvas(w, h int) *fakeCanvas {
	return &fakeCanvas{w: w, h: h, cells: map[[2]int]cell{}}
}

func (f *fakeCanvas) SetContent(x, y int, r rune, _ []rune, st tcell.Style) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return
	}
	f.cells[[2]int{x, y}] = cell{r, st}
}

func (f *fakeCanvas) Size() (int, int) { return f.w, f.h }

func (f *fakeCanvas) row(y int) string {
	var b strings.Builder
	for x := 0; x < f.w; x++ {
		c, ok := f.cells[[2]int{x, y}]
		if !ok {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.r)
	}
	return b.String()
}

func (f *fakeCanvas) text() string {
	var b strings.Builder
	for y := 0; y < f.h; y++ {
		b.WriteString(f.row(y))
		b.WriteByte('\n')
	}
	return b.String()
}

func testSnapshot(state game.State) game.Snapshot {
	return game.Snapshot{
		Grid:      types.NewSquareGrid(10),
		Snake:     []types.Point{{X: 3, Y: 5}, {X: 3, Y: 6}, {X: 3, Y: 7}},
		Food:      types.Point{X: 6, Y: 2},
		Heading:   types.Up,
		Score:     4,
		HighScore: 9,
		State:     state,
	}
}

func TestDrawRunning(t *testing.T) {
	c := newFakeCanvas(40, 12)
	p, _ := theme.Lookup(theme.Default)
	draw(c, testSnapshot(game.StateRunning), p, false)

	if hud := c.row(0); !strings.Contains(hud, "Score 4") || !strings.Contains(hud, "Best 9") {
		t.Errorf("HUD = %q", hud)
	}

	l := newLayout(c, types.NewSquareGrid(10))
	food := c.cells[[2]int{l.originX + 6*cellWidth, l.originY + 2}]
	if food.r != '●' {
		t.Errorf("food glyph = %q", food.r)
	}

	_, bg, _ := c.cells[[2]int{l.originX + 3*cellWidth, l.originY + 6}].st.Decompose()
	if bg != color(p.Snake) {
		t.Errorf("body background = %v, want snake color", bg)
	}
	if strings.Contains(c.text(), "GAME OVER") {
		t.Error("game over overlay drawn during play")
	}
}

func TestDrawOverlays(t *testing.T) {
	p, _ := theme.Lookup(theme.Default)

	c := newFakeCanvas(40, 12)
	draw(c, testSnapshot(game.StateIdle), p, false)
	if !strings.Contains(c.text(), "S N A K E") {
		t.Error("menu overlay missing")
	}

	c = newFakeCanvas(40, 12)
	snap := testSnapshot(game.StateGameOver)
	snap.Score, snap.HighScore, snap.NewHighScore = 9, 9, true
	draw(c, snap, p, true)
	out := c.text()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "new best!") {
		t.Errorf("game over overlay missing:\n%s", out)
	}
	if !strings.Contains(c.row(0), "[autopilot]") {
		t.Error("autopilot marker missing from HUD")
	}
}

func TestDrawGameOverTieIsNotNewBest(t *testing.T) {
	p, _ := theme.Lookup(theme.Default)
	c := newFakeCanvas(40, 12)
	snap := testSnapshot(game.StateGameOver)
	snap.Score, snap.HighScore = 5, 5
	draw(c, snap, p, false)

	out := c.text()
	if !strings.Contains(out, "Score 5") {
		t.Errorf("final score missing:\n%s", out)
	}
	if strings.Contains(out, "new best!") {
		t.Errorf("tying the best drawn as a new best:\n%s", out)
	}
}
