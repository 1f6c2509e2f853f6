// Package config provides configuration loading for the game.
package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"simple-snake/game/types"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Grid      GridConfig      `yaml:"grid"`
	Timing    TimingConfig    `yaml:"timing"`
	Snake     SnakeConfig     `yaml:"snake"`
	Food      FoodConfig      `yaml:"food"`
	Input     InputConfig     `yaml:"input"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Title     string `yaml:"title"`
	BlockSize int    `yaml:"block_size"` // Pixels per grid cell
	TargetFPS int    `yaml:"target_fps"`
}

// GridConfig holds the board size in cells, border ring included.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig holds the simulation periods, in seconds.
type TimingConfig struct {
	MovingPeriod float64 `yaml:"moving_period"`
	RestartDelay float64 `yaml:"restart_delay"`
}

type SnakeConfig struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
}

// FoodConfig holds the fixed food cells used at game start and on restart.
type FoodConfig struct {
	InitialX int `yaml:"initial_x"`
	InitialY int `yaml:"initial_y"`
	RestartX int `yaml:"restart_x"`
	RestartY int `yaml:"restart_y"`
}

type InputConfig struct {
	// AnyKeyAdvances makes non-directional keys force a step along the
	// current heading.
	AnyKeyAdvances bool `yaml:"any_key_advances"`
}

type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

type TelemetryConfig struct {
	OutputDir string `yaml:"output_dir"`
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load: %v", err))
	}
	return cfg
}

// Validate rejects configurations the simulation cannot run with.
func (c *Config) Validate() error {
	if c.Grid.Width < 8 || c.Grid.Height < 4 {
		return fmt.Errorf("grid %dx%d is smaller than 8x4", c.Grid.Width, c.Grid.Height)
	}
	if c.Timing.MovingPeriod <= 0 {
		return fmt.Errorf("timing.moving_period must be positive, got %v", c.Timing.MovingPeriod)
	}
	if c.Timing.RestartDelay <= 0 {
		return fmt.Errorf("timing.restart_delay must be positive, got %v", c.Timing.RestartDelay)
	}
	if c.Screen.BlockSize <= 0 {
		return fmt.Errorf("screen.block_size must be positive, got %d", c.Screen.BlockSize)
	}
	if c.Screen.TargetFPS <= 0 {
		return fmt.Errorf("screen.target_fps must be positive, got %d", c.Screen.TargetFPS)
	}

	grid := c.GridSize()
	head := types.Point{X: c.Snake.StartX + types.InitialSize - 1, Y: c.Snake.StartY}
	tail := types.Point{X: c.Snake.StartX, Y: c.Snake.StartY}
	if !grid.Interior(tail) || !grid.Interior(head) {
		return fmt.Errorf("snake start (%d,%d) does not fit inside the %dx%d grid",
			c.Snake.StartX, c.Snake.StartY, c.Grid.Width, c.Grid.Height)
	}
	for _, p := range []types.Point{c.InitialFood(), c.RestartFood()} {
		if !grid.Interior(p) {
			return fmt.Errorf("food cell (%d,%d) is outside the grid interior", p.X, p.Y)
		}
	}

	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// GridSize returns the board dimensions.
func (c *Config) GridSize() types.Grid {
	return types.Grid{Width: c.Grid.Width, Height: c.Grid.Height}
}

func (c *Config) InitialFood() types.Point {
	return types.Point{X: c.Food.InitialX, Y: c.Food.InitialY}
}

func (c *Config) RestartFood() types.Point {
	return types.Point{X: c.Food.RestartX, Y: c.Food.RestartY}
}

// WindowSize returns the window size in pixels.
func (c *Config) WindowSize() (int, int) {
	return c.Grid.Width * c.Screen.BlockSize, c.Grid.Height * c.Screen.BlockSize
}

// WriteYAML saves the configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
}
