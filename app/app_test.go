package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/waveline/config"
)

// stubBackground records renderer calls without touching the GPU.
type stubBackground struct {
	initCalls    int
	lastW, lastH int32
	resizes      int
	draws        int
	degraded     bool
	unloaded     bool
}

func (s *stubBackground) Init()                { s.initCalls++ }
func (s *stubBackground) Resize(w, h int32)    { s.lastW, s.lastH = w, h; s.resizes++ }
func (s *stubBackground) Draw(elapsed float32) { s.draws++ }
func (s *stubBackground) Degraded() bool       { return s.degraded }
func (s *stubBackground) Unload()              { s.unloaded = true }

func newTestApp(t *testing.T, bg Background) *App {
	t.Helper()
	config.MustInit("")
	a, err := New(Options{Headless: true, Background: bg})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

func TestResizeUpdatesSurfaceDimensions(t *testing.T) {
	bg := &stubBackground{}
	a := newTestApp(t, bg)
	a.Init()

	a.Resize(800, 600)

	w, h := a.Size()
	if w != 800 || h != 600 {
		t.Errorf("size = %dx%d, want 800x600", w, h)
	}
	if bg.lastW != 800 || bg.lastH != 600 {
		t.Errorf("renderer got %dx%d, want 800x600", bg.lastW, bg.lastH)
	}
}

func TestResizeIgnoresDegenerateDimensions(t *testing.T) {
	bg := &stubBackground{}
	a := newTestApp(t, bg)
	a.Init()
	before := bg.resizes

	a.Resize(0, 600)
	a.Resize(800, -1)

	if bg.resizes != before {
		t.Errorf("renderer resized %d times on degenerate input", bg.resizes-before)
	}
}

func TestHeadlessFramesAdvance(t *testing.T) {
	a := newTestApp(t, &stubBackground{})

	prev := a.Elapsed()
	for i := 0; i < 100; i++ {
		a.UpdateHeadless()
		e := a.Elapsed()
		if e < prev {
			t.Fatalf("frame %d: elapsed decreased %v -> %v", i, prev, e)
		}
		prev = e
	}
	if a.Frame() != 100 {
		t.Errorf("frame count = %d, want 100", a.Frame())
	}
}

// A failed shader setup degrades the renderer but must not stop the frame
// loop from advancing.
func TestDegradedBackgroundKeepsScheduling(t *testing.T) {
	bg := &stubBackground{degraded: true}
	a := newTestApp(t, bg)
	a.Init()

	for i := 0; i < 50; i++ {
		a.UpdateHeadless()
	}
	if a.Frame() != 50 {
		t.Errorf("frame count = %d, want 50", a.Frame())
	}
}

func TestUnloadReleasesBackground(t *testing.T) {
	bg := &stubBackground{}
	a := newTestApp(t, bg)
	a.Init()
	a.Unload()

	if !bg.unloaded {
		t.Error("background not unloaded")
	}
}

func TestStatsFlushWritesCSV(t *testing.T) {
	config.MustInit("")
	dir := t.TempDir()
	a, err := New(Options{Headless: true, OutputDir: dir, Background: &stubBackground{}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Force an immediate flush on the next frame
	a.statsWindow = 0.000001
	a.UpdateHeadless()
	a.UpdateHeadless()
	a.Unload()

	if _, err := os.Stat(filepath.Join(dir, "frames.csv")); err != nil {
		t.Errorf("frames.csv: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config.yaml snapshot: %v", err)
	}
}
