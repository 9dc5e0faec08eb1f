// Package config holds the command-line settings of the game.
package config

import (
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"time"

	"snake-arcade/ui/theme"
)

// Board and timing defaults.
const (
	DefaultTileCount     = 20
	DefaultCellSize      = 40
	DefaultTickInterval  = 130 * time.Millisecond
	DefaultMaxFrameDelta = 200 * time.Millisecond
	MinTileCount         = 8
	MaxTileCount         = 64
)

// Frontends
const (
	UIWindow   = "window"
	UITerminal = "terminal"
)

const (
	statsFileName = "snake_stats.json"
	logDirName    = "logs"
)

var (
	ErrTileCount = errors.New("tile count out of range")
	ErrCellSize  = errors.New("invalid cell size")
	ErrTiming    = errors.New("invalid timing")
	ErrUI        = errors.New("unknown frontend")
	ErrTheme     = errors.New("unknown theme")
)

type Config struct {
	TileCount     int
	CellSize      int
	TickInterval  time.Duration
	MaxFrameDelta time.Duration
	UI            string
	Theme         string
	DataDir       string
	Mute          bool
	Debug         bool
	Autopilot     bool
	Seed          uint64
}

func Default() Config {
	return Config{
		TileCount:     DefaultTileCount,
		CellSize:      DefaultCellSize,
		TickInterval:  DefaultTickInterval,
		MaxFrameDelta: DefaultMaxFrameDelta,
		UI:            UIWindow,
		Theme:         theme.Default,
		DataDir:       "data",
	}
}

// RegisterFlags binds every setting to fs, using the current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.TileCount, "tiles", c.TileCount, "Cells per side of the square board")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "Cell size in pixels (window frontend)")
	fs.DurationVar(&c.TickInterval, "tick", c.TickInterval, "Time between two snake moves")
	fs.DurationVar(&c.MaxFrameDelta, "max-frame", c.MaxFrameDelta, "Largest frame time fed to the simulation")
	fs.StringVar(&c.UI, "ui", c.UI, "Frontend: window or terminal")
	fs.StringVar(&c.Theme, "theme", c.Theme, "Color theme")
	fs.StringVar(&c.DataDir, "data", c.DataDir, "Directory for the high score file and logs")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "Disable sound")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Write a debug log under the data directory")
	fs.BoolVar(&c.Autopilot, "autopilot", c.Autopilot, "Let the computer play")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Food placement seed (0 picks one at random)")
}

// Parse loads settings from args on top of the defaults.
func Parse(name string, args []string) (Config, error) {
	cfg := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.TileCount < MinTileCount || c.TileCount > MaxTileCount {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrTileCount, c.TileCount, MinTileCount, MaxTileCount)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: %d", ErrCellSize, c.CellSize)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick %v must be positive", ErrTiming, c.TickInterval)
	}
	if c.MaxFrameDelta < c.TickInterval {
		return fmt.Errorf("%w: max frame %v is shorter than tick %v", ErrTiming, c.MaxFrameDelta, c.TickInterval)
	}
	if c.UI != UIWindow && c.UI != UITerminal {
		return fmt.Errorf("%w: %q", ErrUI, c.UI)
	}
	if _, ok := theme.Lookup(c.Theme); !ok {
		return fmt.Errorf("%w: %q", ErrTheme, c.Theme)
	}
	return nil
}

func (c Config) StatsPath() string {
	return filepath.Join(c.DataDir, statsFileName)
}

func (c Config) LogDir() string {
	return filepath.Join(c.DataDir, logDirName)
}
