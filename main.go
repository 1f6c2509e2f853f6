package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"simple-snake/config"
	"simple-snake/game"
	"simple-snake/telemetry"
	"simple-snake/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Uint64("seed", 0, "RNG seed for food placement (0 = time-based)")
	headless := flag.Bool("headless", false, "Run the simulation without a window")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited; headless defaults to 10000)")
	outputDir := flag.String("output-dir", "", "Directory for the CSV round log (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	level, _ := config.ParseLevel(cfg.Log.Level)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = uint64(time.Now().UnixNano())
	}

	dir := cfg.Telemetry.OutputDir
	if *outputDir != "" {
		dir = *outputDir
	}
	output, err := telemetry.NewOutputManager(dir)
	if err != nil {
		slog.Error("failed to open round log", "error", err)
		os.Exit(1)
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	recorder := telemetry.NewRecorder(output, logger)
	g := game.NewGame(cfg,
		game.WithSeed(rngSeed),
		game.WithLogger(logger),
		game.WithObserver(recorder),
	)
	slog.Info("session", "id", g.UUID, "seed", rngSeed, "headless", *headless)

	if *headless {
		runHeadless(g, cfg, *maxTicks)
	} else {
		runWindowed(g, cfg, *maxTicks)
	}

	recorder.Stats.LogStats()
}

// runHeadless drives the simulation with a fixed time step and no input.
func runHeadless(g *game.Game, cfg *config.Config, maxTicks int) {
	if maxTicks <= 0 {
		maxTicks = 10000
	}
	dt := 1.0 / float64(cfg.Screen.TargetFPS)
	for tick := 0; tick < maxTicks; tick++ {
		g.Update(dt)
	}
	slog.Info("max ticks reached", "tick", maxTicks)
}

func runWindowed(g *game.Game, cfg *config.Config, maxTicks int) {
	width, height := cfg.WindowSize()
	rl.InitWindow(int32(width), int32(height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	renderer := ui.NewRenderer(cfg.Screen.BlockSize)

	for tick := 0; !rl.WindowShouldClose(); tick++ {
		for _, key := range ui.PollKeys() {
			g.KeyPressed(key)
		}

		renderer.Draw(g.Snapshot())
		g.Update(float64(rl.GetFrameTime()))

		if maxTicks > 0 && tick >= maxTicks {
			break
		}
	}
}
