package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"snake-arcade/ai"
	"snake-arcade/audio"
	"snake-arcade/config"
	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/ui/control"
	"snake-arcade/ui/terminal"
	"snake-arcade/ui/theme"
	"snake-arcade/ui/window"

	"golang.org/x/exp/rand"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logFile, err := setupLogging(cfg.LogDir(), cfg.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg, log.Default()); err != nil {
		log.Printf("fatal: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *log.Logger) error {
	stats, err := manager.NewStateManager(cfg.StatsPath())
	if err != nil {
		return fmt.Errorf("load stats: %w", err)
	}
	logger.Printf("loaded %s: best %d over %d runs", stats.Path(), stats.GetHighScore(), len(stats.GetRuns()))

	player := audio.NewPlayer()
	if err := player.Initialize(); err != nil {
		logger.Printf("audio disabled: %v", err)
	}
	defer player.Close()
	player.SetMuted(cfg.Mute)

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	logger.Printf("food seed %d", seed)

	engine := game.NewEngine(cfg.TileCount, rand.New(rand.NewSource(seed)))
	step := game.NewFixedStep(cfg.TickInterval, cfg.MaxFrameDelta)

	pilot := ai.NewAutopilot()
	opts := []game.SessionOption{
		game.WithSoundPlayer(player),
		game.WithHighScoreStore(stats),
		game.WithLogger(logger),
	}
	if cfg.Autopilot {
		opts = append(opts, game.WithPilot(pilot))
	}
	session := game.NewSession(engine, step, opts...)

	palette, _ := theme.Lookup(cfg.Theme)
	ctrl := control.New(session, palette, pilot, player)

	switch cfg.UI {
	case config.UITerminal:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := terminal.Run(ctx, ctrl, logger); err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
	default:
		window.Run(ctrl, cfg.CellSize, logger)
	}

	logger.Printf("exit: best %d, average %.1f over %d runs", stats.GetHighScore(), stats.AverageScore(), len(stats.GetRuns()))
	return nil
}
