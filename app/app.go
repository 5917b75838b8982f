// Package app drives the render loop: it owns the clock, the background
// renderer, the HUD, and the telemetry hooks, and exposes a bounded-step
// interface so runs can be cut off after a frame budget.
package app

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/waveline/config"
	"github.com/pthm-cable/waveline/renderer"
	"github.com/pthm-cable/waveline/telemetry"
	"github.com/pthm-cable/waveline/ui"
)

// Background is the drawable surface content. Satisfied by
// renderer.LinesBackground; tests substitute stubs.
type Background interface {
	Init()
	Resize(w, h int32)
	Draw(elapsed float32)
	Degraded() bool
	Unload()
}

// Options configures an App.
type Options struct {
	LogStats  bool   // Log window stats via slog
	OutputDir string // Directory for CSV output and config snapshot ("" = disabled)
	Headless  bool   // No window; clock and telemetry only
	ShowHUD   bool   // Draw the overlay with frame/FPS info

	// Background overrides the default renderer when non-nil. Used by tests.
	Background Background
}

// App holds the renderer lifecycle state: constructed once, initialized once,
// then stepped every frame until the host loop stops it.
type App struct {
	opts       Options
	background Background
	hud        *ui.HUD
	clock      *Clock
	frames     *telemetry.FrameCollector
	output     *telemetry.OutputManager

	frame         uint64
	width, height int32

	statsWindow float64
	lastFlush   float64
}

// New creates an App from the global config. Config must be initialized.
func New(opts Options) (*App, error) {
	cfg := config.Cfg()

	a := &App{
		opts:        opts,
		clock:       NewClock(),
		frames:      telemetry.NewFrameCollector(cfg.Telemetry.PerfCollectorWindow),
		width:       int32(cfg.Screen.Width),
		height:      int32(cfg.Screen.Height),
		statsWindow: cfg.Telemetry.StatsWindow,
	}

	a.background = opts.Background
	if a.background == nil {
		a.background = renderer.NewLinesBackground(a.width, a.height, cfg.Derived.Params)
	}
	if opts.ShowHUD {
		a.hud = ui.NewHUD()
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	a.output = om
	if err := a.output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	return a, nil
}

// Init sets up GPU resources. In graphical mode it must run after the window
// exists; Draw calls it lazily as well.
func (a *App) Init() {
	a.background.Init()
	a.background.Resize(a.width, a.height)
}

// Update advances one frame in graphical mode: it tracks viewport resizes and
// records frame telemetry.
func (a *App) Update() {
	if rl.IsWindowResized() {
		a.Resize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	}
	a.advanceFrame()
}

// UpdateHeadless advances one frame without touching the window.
func (a *App) UpdateHeadless() {
	a.advanceFrame()
}

func (a *App) advanceFrame() {
	a.frame++
	a.frames.RecordFrame()

	elapsed := a.clock.Elapsed()
	if a.statsWindow > 0 && elapsed-a.lastFlush >= a.statsWindow {
		a.lastFlush = elapsed
		a.flushStats(elapsed)
	}
}

func (a *App) flushStats(elapsed float64) {
	stats := a.frames.Stats()
	stats.ElapsedSec = elapsed
	stats.Frame = a.frame

	if a.opts.LogStats {
		stats.Log()
	}
	if err := a.output.WriteFrameStats(stats); err != nil {
		slog.Error("failed to write frame stats", "error", err)
	}
}

// Draw renders one frame.
func (a *App) Draw() {
	rl.BeginDrawing()

	a.background.Draw(float32(a.clock.Elapsed()))

	if a.hud != nil {
		a.hud.Draw(ui.HUDData{
			Title:        config.Cfg().Screen.Title,
			Elapsed:      a.clock.Elapsed(),
			Frame:        a.frame,
			FPS:          rl.GetFPS(),
			ScreenWidth:  a.width,
			ScreenHeight: a.height,
			Degraded:     a.background.Degraded(),
		})
	}

	rl.EndDrawing()
}

// Resize propagates new surface dimensions to the renderer.
func (a *App) Resize(w, h int32) {
	if w <= 0 || h <= 0 {
		return
	}
	a.width, a.height = w, h
	a.background.Resize(w, h)
	slog.Debug("surface resized", "width", w, "height", h)
}

// Frame returns the number of frames advanced so far.
func (a *App) Frame() uint64 {
	return a.frame
}

// Elapsed returns the render clock in seconds.
func (a *App) Elapsed() float64 {
	return a.clock.Elapsed()
}

// Size returns the current surface dimensions.
func (a *App) Size() (w, h int32) {
	return a.width, a.height
}

// Unload releases GPU resources and closes telemetry output.
func (a *App) Unload() {
	a.background.Unload()
	if err := a.output.Close(); err != nil {
		slog.Error("failed to close telemetry output", "error", err)
	}
}
