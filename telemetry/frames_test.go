package telemetry

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFrameCollectorEmptyWindow(t *testing.T) {
	fc := NewFrameCollector(60)
	s := fc.Stats()
	if s.Frames != 0 || s.FPS != 0 || s.MeanMs != 0 {
		t.Errorf("empty collector stats = %+v, want zeros", s)
	}
}

func TestFrameCollectorStats(t *testing.T) {
	fc := NewFrameCollector(10)
	// 16ms, 17ms, ..., 25ms
	for i := 0; i < 10; i++ {
		fc.RecordDuration(time.Duration(16+i) * time.Millisecond)
	}

	s := fc.Stats()
	if s.Frames != 10 {
		t.Fatalf("frames = %d, want 10", s.Frames)
	}
	if math.Abs(s.MeanMs-20.5) > 0.001 {
		t.Errorf("mean = %v, want 20.5", s.MeanMs)
	}
	if s.MinMs != 16 || s.MaxMs != 25 {
		t.Errorf("min/max = %v/%v, want 16/25", s.MinMs, s.MaxMs)
	}
	wantFPS := 1000 / 20.5
	if math.Abs(s.FPS-wantFPS) > 0.01 {
		t.Errorf("fps = %v, want %v", s.FPS, wantFPS)
	}
	if s.MedianMs < s.MinMs || s.MedianMs > s.MaxMs {
		t.Errorf("p50 = %v outside [%v, %v]", s.MedianMs, s.MinMs, s.MaxMs)
	}
	if s.P99Ms < s.MedianMs || s.P99Ms > s.MaxMs {
		t.Errorf("p99 = %v outside [p50, max]", s.P99Ms)
	}
}

func TestFrameCollectorRollingWindow(t *testing.T) {
	fc := NewFrameCollector(4)
	// Fill the window, then push it past capacity with a different value
	for i := 0; i < 4; i++ {
		fc.RecordDuration(10 * time.Millisecond)
	}
	for i := 0; i < 4; i++ {
		fc.RecordDuration(20 * time.Millisecond)
	}

	s := fc.Stats()
	if s.Frames != 4 {
		t.Fatalf("frames = %d, want window size 4", s.Frames)
	}
	// Old samples must have been overwritten
	if math.Abs(s.MeanMs-20) > 0.001 {
		t.Errorf("mean = %v, want 20 after rollover", s.MeanMs)
	}
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("NewOutputManager(\"\") error: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}
	// nil manager must be safe to use
	if err := om.WriteFrameStats(WindowStats{}); err != nil {
		t.Errorf("nil WriteFrameStats: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("nil Close: %v", err)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	if err := om.WriteFrameStats(WindowStats{ElapsedSec: 1.5, Frame: 90, Frames: 90, FPS: 60}); err != nil {
		t.Fatalf("WriteFrameStats: %v", err)
	}
	if err := om.WriteFrameStats(WindowStats{ElapsedSec: 3.0, Frame: 180, Frames: 90, FPS: 59}); err != nil {
		t.Fatalf("WriteFrameStats: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "frames.csv"))
	if err != nil {
		t.Fatalf("read frames.csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("frames.csv has %d lines, want header + 2 records", len(lines))
	}
	if !strings.Contains(lines[0], "fps") || !strings.Contains(lines[0], "elapsed") {
		t.Errorf("header = %q, missing expected columns", lines[0])
	}
	// Header must not repeat on the second record
	if strings.Contains(lines[2], "fps") {
		t.Errorf("second record %q looks like a header", lines[2])
	}
}
