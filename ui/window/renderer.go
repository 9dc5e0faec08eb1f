package window

import (
	"fmt"

	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/ui/theme"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const hudHeight = 40

type Renderer struct {
	grid     types.Grid
	cellSize int32
	offsetX  int32
	offsetY  int32
}

func NewRenderer(grid types.Grid, cellSize int32) *Renderer {
	return &Renderer{
		grid:     grid,
		cellSize: cellSize,
		offsetY:  hudHeight,
	}
}

func (r *Renderer) ScreenWidth() int32 {
	return r.cellSize * int32(r.grid.Width)
}

func (r *Renderer) ScreenHeight() int32 {
	return hudHeight + r.cellSize*int32(r.grid.Height)
}

func rlColor(c theme.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}

// center returns the pixel center of a board cell.
func (r *Renderer) center(p types.Point) rl.Vector2 {
	half := float32(r.cellSize) / 2
	return rl.NewVector2(
		float32(r.offsetX+int32(p.X)*r.cellSize)+half,
		float32(r.offsetY+int32(p.Y)*r.cellSize)+half,
	)
}

func (r *Renderer) Draw(snap game.Snapshot, p theme.Palette, piloted bool) {
	rl.BeginDrawing()
	rl.ClearBackground(rlColor(p.Background))

	r.drawBoard(p)
	if snap.State != game.StateIdle {
		r.drawApple(snap.Food, p)
		r.drawSnake(snap, p)
		if snap.Crash != nil && r.grid.Contains(*snap.Crash) {
			r.drawCrash(*snap.Crash)
		}
	}
	r.drawHUD(snap, p, piloted)

	switch snap.State {
	case game.StateIdle:
		r.drawOverlay(p, "SNAKE",
			"Press Enter or Space to play",
			"Arrows / WASD steer   T theme",
			"P autopilot   N mute   Q quit",
		)
	case game.StateGameOver:
		result := fmt.Sprintf("Score: %d", snap.Score)
		if snap.NewHighScore {
			result = fmt.Sprintf("New best: %d", snap.Score)
		}
		r.drawOverlay(p, "Game Over", result,
			"Enter to play again",
			"H for menu",
		)
	}

	rl.EndDrawing()
}

func (r *Renderer) drawBoard(p theme.Palette) {
	for y := 0; y < r.grid.Height; y++ {
		for x := 0; x < r.grid.Width; x++ {
			rl.DrawRectangle(
				r.offsetX+int32(x)*r.cellSize,
				r.offsetY+int32(y)*r.cellSize,
				r.cellSize, r.cellSize, rlColor(p.Tile(x, y)))
		}
	}
}

func (r *Renderer) drawApple(food types.Point, p theme.Palette) {
	cs := float32(r.cellSize)
	c := r.center(food)
	radius := cs * 0.38

	stemTop := rl.NewVector2(c.X+cs*0.05, c.Y-radius-cs*0.12)
	rl.DrawLineEx(rl.NewVector2(c.X, c.Y-radius+cs*0.05), stemTop, cs*0.07, rl.NewColor(101, 67, 33, 255))
	rl.DrawEllipse(int32(stemTop.X+cs*0.1), int32(stemTop.Y+cs*0.04), cs*0.12, cs*0.06, rl.NewColor(76, 175, 80, 255))

	rl.DrawCircleV(c, radius, rlColor(p.Food))
	rl.DrawCircleV(rl.NewVector2(c.X-radius*0.35, c.Y-radius*0.35), radius*0.25, rl.Fade(rl.White, 0.45))
}

// drawSnake paints from tail to head so the head sits on top.
func (r *Renderer) drawSnake(snap game.Snapshot, p theme.Palette) {
	body := snap.Snake
	if len(body) == 0 {
		return
	}
	cs := float32(r.cellSize)
	inset := cs * 0.08
	color := rlColor(p.Snake)

	for i := len(body) - 1; i >= 0; i-- {
		seg := body[i]
		rec := rl.NewRectangle(
			float32(r.offsetX+int32(seg.X)*r.cellSize)+inset,
			float32(r.offsetY+int32(seg.Y)*r.cellSize)+inset,
			cs-2*inset, cs-2*inset)
		rl.DrawRectangleRounded(rec, 0.5, 6, color)

		if i > 0 {
			// Bridge the gap to the next segment toward the head.
			a, b := r.center(seg), r.center(body[i-1])
			rl.DrawLineEx(a, b, cs-2*inset, color)
		}
	}

	r.drawFace(body[0], snap.Heading, snap.State == game.StateRunning)
}

func (r *Renderer) drawFace(head types.Point, heading types.Direction, alive bool) {
	cs := float32(r.cellSize)
	c := r.center(head)
	fwd := heading.ToPoint()
	fx, fy := float32(fwd.X), float32(fwd.Y)
	// Perpendicular to the heading.
	sx, sy := -fy, fx

	for _, side := range []float32{-1, 1} {
		eye := rl.NewVector2(c.X+fx*cs*0.12+sx*side*cs*0.2, c.Y+fy*cs*0.12+sy*side*cs*0.2)
		rl.DrawCircleV(eye, cs*0.13, rl.White)
		pupil := rl.NewVector2(eye.X+fx*cs*0.05, eye.Y+fy*cs*0.05)
		rl.DrawCircleV(pupil, cs*0.06, rl.Black)
	}

	if alive {
		tongueStart := rl.NewVector2(c.X+fx*cs*0.45, c.Y+fy*cs*0.45)
		tongueEnd := rl.NewVector2(c.X+fx*cs*0.7, c.Y+fy*cs*0.7)
		rl.DrawLineEx(tongueStart, tongueEnd, cs*0.06, rl.NewColor(229, 57, 53, 255))
	}
}

func (r *Renderer) drawCrash(at types.Point) {
	cs := float32(r.cellSize)
	c := r.center(at)
	d := cs * 0.3
	rl.DrawLineEx(rl.NewVector2(c.X-d, c.Y-d), rl.NewVector2(c.X+d, c.Y+d), cs*0.1, rl.Black)
	rl.DrawLineEx(rl.NewVector2(c.X-d, c.Y+d), rl.NewVector2(c.X+d, c.Y-d), cs*0.1, rl.Black)
}

func (r *Renderer) drawHUD(snap game.Snapshot, p theme.Palette, piloted bool) {
	fontSize := int32(hudHeight / 2)
	textY := (hudHeight - fontSize) / 2
	text := rlColor(p.Text)

	rl.DrawRectangle(0, 0, r.ScreenWidth(), hudHeight, rlColor(p.Background))
	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), 12, textY, fontSize, text)

	best := fmt.Sprintf("Best: %d", snap.HighScore)
	rl.DrawText(best, r.ScreenWidth()-rl.MeasureText(best, fontSize)-12, textY, fontSize, rlColor(p.Accent))

	if piloted {
		label := "AUTOPILOT"
		small := fontSize * 3 / 4
		rl.DrawText(label, (r.ScreenWidth()-rl.MeasureText(label, small))/2, (hudHeight-small)/2, small, text)
	}
}

// drawOverlay dims the board and centers a title over the given lines.
func (r *Renderer) drawOverlay(p theme.Palette, title string, lines ...string) {
	boardW := r.cellSize * int32(r.grid.Width)
	boardH := r.cellSize * int32(r.grid.Height)
	rl.DrawRectangle(r.offsetX, r.offsetY, boardW, boardH, rl.Fade(rl.Black, 0.55))

	titleSize := boardW / 9
	lineSize := boardW / 28
	if lineSize < 12 {
		lineSize = 12
	}
	total := titleSize + int32(len(lines))*(lineSize+8) + 16
	y := r.offsetY + (boardH-total)/2

	rl.DrawText(title, r.offsetX+(boardW-rl.MeasureText(title, titleSize))/2, y, titleSize, rlColor(p.Accent))
	y += titleSize + 16
	for _, line := range lines {
		rl.DrawText(line, r.offsetX+(boardW-rl.MeasureText(line, lineSize))/2, y, lineSize, rlColor(p.Text))
		y += lineSize + 8
	}
}
