package main

import (
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/waveline/app"
	"github.com/pthm-cable/waveline/config"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics (clock and telemetry only)")
	logStats := flag.Bool("log-stats", false, "Output frame stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	maxFrames := flag.Uint64("max-frames", 0, "Stop after N frames (0 = unlimited)")
	showHUD := flag.Bool("hud", false, "Draw the debug overlay")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	opts := app.Options{
		LogStats:  *logStats,
		OutputDir: *outputDir,
		Headless:  *headless,
		ShowHUD:   *showHUD,
	}

	if *headless {
		a, err := app.New(opts)
		if err != nil {
			slog.Error("failed to create app", "error", err)
			os.Exit(1)
		}
		defer a.Unload()

		slog.Info("starting headless run",
			"max_frames", *maxFrames,
			"stats_window", cfg.Telemetry.StatsWindow,
		)

		for {
			a.UpdateHeadless()

			if *maxFrames > 0 && a.Frame() >= *maxFrames {
				slog.Info("frame budget reached", "frame", a.Frame())
				return
			}
		}
	}

	// Graphical mode
	if cfg.Screen.Resizable {
		rl.SetConfigFlags(rl.FlagWindowResizable)
	}
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	if !rl.IsWindowReady() {
		// No GPU context: nothing to draw into, but not a crash either.
		slog.Error("window context unavailable, aborting setup")
		return
	}
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	a, err := app.New(opts)
	if err != nil {
		slog.Error("failed to create app", "error", err)
		os.Exit(1)
	}
	defer a.Unload()
	a.Init()

	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()

		if *maxFrames > 0 && a.Frame() >= *maxFrames {
			slog.Info("frame budget reached", "frame", a.Frame())
			break
		}
	}
}
