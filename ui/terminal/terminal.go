// Package terminal runs the game in a terminal with tcell.
package terminal

import (
	"context"
	"fmt"
	"log"
	"time"

	"snake-arcade/ui/control"

	"github.com/gdamore/tcell/v2"
)

const frameRate = 60

// Run takes over the terminal and plays until the player quits or ctx is
// cancelled.
func Run(ctx context.Context, ctrl *control.Controller, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	tick := time.NewTicker(time.Second / frameRate)
	defer tick.Stop()

	w, h := screen.Size()
	logger.Printf("terminal frontend started at %dx%d", w, h)

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				ctrl.Handle(ActionForKey(e.Key(), e.Rune()))
				if ctrl.Quit() {
					return nil
				}
			}
		case now := <-tick.C:
			ctrl.Session().Frame(now.Sub(last))
			last = now

			draw(screen, ctrl.Session().Snapshot(), ctrl.Palette(), ctrl.Session().Piloted())
			screen.Show()
		}
	}
}
