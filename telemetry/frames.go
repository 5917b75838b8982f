// Package telemetry collects frame timing over a rolling window and writes
// optional CSV output for offline analysis.
package telemetry

import (
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// FrameCollector tracks frame durations over a rolling window.
type FrameCollector struct {
	windowSize  int
	samples     []time.Duration
	writeIndex  int
	sampleCount int

	lastFrame time.Time
}

// NewFrameCollector creates a new frame collector.
// windowSize: number of frames to aggregate over (e.g., 120 for 2 seconds at 60fps).
func NewFrameCollector(windowSize int) *FrameCollector {
	if windowSize < 1 {
		windowSize = 120
	}
	return &FrameCollector{
		windowSize: windowSize,
		samples:    make([]time.Duration, windowSize),
	}
}

// RecordFrame marks the end of a frame and records its duration.
// The first call only establishes the reference point.
func (f *FrameCollector) RecordFrame() {
	now := time.Now()
	if !f.lastFrame.IsZero() {
		f.RecordDuration(now.Sub(f.lastFrame))
	}
	f.lastFrame = now
}

// RecordDuration inserts a frame duration directly. Used by headless runs
// where there is no real frame pacing.
func (f *FrameCollector) RecordDuration(d time.Duration) {
	f.samples[f.writeIndex] = d
	f.writeIndex = (f.writeIndex + 1) % f.windowSize
	if f.sampleCount < f.windowSize {
		f.sampleCount++
	}
}

// SampleCount returns the number of frames currently in the window.
func (f *FrameCollector) SampleCount() int {
	return f.sampleCount
}

// WindowStats holds aggregated frame statistics for one window.
type WindowStats struct {
	ElapsedSec float64 `csv:"elapsed"` // Render clock at flush time
	Frame      uint64  `csv:"frame"`   // Total frames rendered so far
	Frames     int     `csv:"frames_in_window"`

	FPS      float64 `csv:"fps"`
	MeanMs   float64 `csv:"frame_ms_mean"`
	MinMs    float64 `csv:"frame_ms_min"`
	MaxMs    float64 `csv:"frame_ms_max"`
	MedianMs float64 `csv:"frame_ms_p50"`
	P99Ms    float64 `csv:"frame_ms_p99"`
}

// Stats computes aggregated statistics over the current window.
func (f *FrameCollector) Stats() WindowStats {
	if f.sampleCount == 0 {
		return WindowStats{}
	}

	ms := make([]float64, f.sampleCount)
	for i := 0; i < f.sampleCount; i++ {
		ms[i] = float64(f.samples[i]) / float64(time.Millisecond)
	}
	sort.Float64s(ms)

	mean := stat.Mean(ms, nil)
	s := WindowStats{
		Frames:   f.sampleCount,
		MeanMs:   mean,
		MinMs:    ms[0],
		MaxMs:    ms[len(ms)-1],
		MedianMs: stat.Quantile(0.50, stat.Empirical, ms, nil),
		P99Ms:    stat.Quantile(0.99, stat.Empirical, ms, nil),
	}
	if mean > 0 {
		s.FPS = 1000 / mean
	}
	return s
}

// Log writes the stats to the default slog logger.
func (s WindowStats) Log() {
	slog.Info("frame stats",
		"elapsed", s.ElapsedSec,
		"frame", s.Frame,
		"fps", s.FPS,
		"frame_ms_mean", s.MeanMs,
		"frame_ms_p50", s.MedianMs,
		"frame_ms_p99", s.P99Ms,
		"frame_ms_max", s.MaxMs,
	)
}
