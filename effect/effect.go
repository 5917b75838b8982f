// Package effect defines the flowing-lines background effect: the GLSL
// sources the GPU runs, the tunable parameters they take, and a pure CPU
// reference implementation of the same fragment function for tests and
// offline rendering.
package effect

import (
	_ "embed"
	"math"
)

//go:embed shaders/lines.fs
var fragmentSource string

//go:embed shaders/lines.vs
var vertexSource string

// FragmentSource returns the fragment stage GLSL.
func FragmentSource() string {
	return fragmentSource
}

// VertexSource returns the vertex stage GLSL.
func VertexSource() string {
	return vertexSource
}

// Line mask thresholds and glow falloff. Shared constants between the GLSL
// source and the CPU reference path; shaders/lines.fs hard-codes the same
// values.
const (
	LineEdgeLo   = 0.003
	LineEdgeHi   = 0.008
	GlowFalloff  = 20.0
	GlowStrength = 0.3
	WaveSpeed    = 0.2
	WaveFreq     = 8.0
	WaveAmp      = 0.2
)

// Params holds the host-tunable effect parameters, uploaded as uniforms.
type Params struct {
	// LineCount is the number of layered sine lines.
	LineCount int
	// BaseColor is the RGB background the lines accumulate onto, in [0, 1].
	BaseColor [3]float32
	// TimeScale multiplies elapsed time before upload (1 = real time).
	TimeScale float32
}

// DefaultParams returns the stock look: six blue lines on near-black.
func DefaultParams() Params {
	return Params{
		LineCount: 6,
		BaseColor: [3]float32{0.05, 0.05, 0.10},
		TimeScale: 1.0,
	}
}

// Smoothstep is the GLSL smoothstep: 0 for x <= lo, 1 for x >= hi, and a
// cubic Hermite ease in between.
func Smoothstep(lo, hi, x float32) float32 {
	t := (x - lo) / (hi - lo)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

// ShadePixel evaluates the fragment function on the CPU. uvX and uvY are the
// recentered coordinates (pixel position divided by resolution, minus 0.5);
// t is elapsed time in seconds. The returned RGB is the raw accumulated
// color, unclamped; alpha is always 1.
func (p Params) ShadePixel(uvX, uvY, t float32) (r, g, b, a float32) {
	r, g, b = p.BaseColor[0], p.BaseColor[1], p.BaseColor[2]

	n := float32(p.LineCount)
	for i := 0; i < p.LineCount; i++ {
		f := float32(i) / n
		speed := 1 + f

		wave := sinf(t*speed*WaveSpeed+uvY*WaveFreq) * WaveAmp
		d := uvX - wave
		if d < 0 {
			d = -d
		}

		line := 1 - Smoothstep(LineEdgeLo, LineEdgeHi, d)
		glow := expf(-d*GlowFalloff) * GlowStrength

		w := line + glow
		r += w * (0.2 + f)
		g += w * 0.3
		b += w * 0.8
	}

	return r, g, b, 1
}

func sinf(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func expf(x float32) float32 {
	return float32(math.Exp(float64(x)))
}
