// Package renderer owns the GPU side of the effect: the compiled shader
// program, its uniform locations, and the per-frame full-screen draw.
package renderer

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/waveline/effect"
)

// LinesBackground renders the animated sine-line effect as a full-screen quad.
type LinesBackground struct {
	shader        rl.Shader
	timeLoc       int32
	resolutionLoc int32
	baseColorLoc  int32
	lineCountLoc  int32

	width, height float32
	params        effect.Params

	initialized bool
	degraded    bool
}

// NewLinesBackground creates a new background renderer.
func NewLinesBackground(screenW, screenH int32, params effect.Params) *LinesBackground {
	if params.LineCount <= 0 {
		params = effect.DefaultParams()
	}
	return &LinesBackground{
		width:  float32(screenW),
		height: float32(screenH),
		params: params,
	}
}

// Init compiles and links the shader program and uploads the static uniforms.
// Must be called after the raylib window is created. On compile or link
// failure raylib has already logged the stage's info log; the renderer then
// degrades to a flat base-color fill rather than binding an invalid program,
// and the frame loop keeps running.
func (b *LinesBackground) Init() {
	if b.initialized {
		return
	}
	b.initialized = true

	b.shader = rl.LoadShaderFromMemory(effect.VertexSource(), effect.FragmentSource())
	if b.shader.ID == 0 {
		slog.Error("shader compile/link failed, using flat fill",
			"width", b.width, "height", b.height)
		b.degraded = true
		return
	}

	b.timeLoc = rl.GetShaderLocation(b.shader, "iTime")
	b.resolutionLoc = rl.GetShaderLocation(b.shader, "iResolution")
	b.baseColorLoc = rl.GetShaderLocation(b.shader, "baseColor")
	b.lineCountLoc = rl.GetShaderLocation(b.shader, "lineCount")

	// Set static uniforms
	rl.SetShaderValue(b.shader, b.baseColorLoc, b.params.BaseColor[:], rl.ShaderUniformVec3)
	rl.SetShaderValue(b.shader, b.lineCountLoc, []float32{float32(b.params.LineCount)}, rl.ShaderUniformFloat)
	b.uploadResolution()

	slog.Info("background shader ready",
		"shader_id", b.shader.ID,
		"lines", b.params.LineCount,
		"resolution", []float32{b.width, b.height},
	)
}

// Resize updates the surface dimensions and the resolution uniform.
// Idempotent; safe to call every frame.
func (b *LinesBackground) Resize(w, h int32) {
	b.width = float32(w)
	b.height = float32(h)
	if b.initialized && !b.degraded {
		b.uploadResolution()
	}
}

func (b *LinesBackground) uploadResolution() {
	rl.SetShaderValue(b.shader, b.resolutionLoc, []float32{b.width, b.height}, rl.ShaderUniformVec2)
}

// Draw renders one frame of the effect at the given elapsed time (seconds).
func (b *LinesBackground) Draw(elapsed float32) {
	if !b.initialized {
		b.Init()
	}

	if b.degraded {
		bc := b.params.BaseColor
		rl.ClearBackground(rl.NewColor(
			uint8(bc[0]*255), uint8(bc[1]*255), uint8(bc[2]*255), 255))
		return
	}

	rl.SetShaderValue(b.shader, b.timeLoc, []float32{elapsed * b.params.TimeScale}, rl.ShaderUniformFloat)

	// Draw fullscreen quad
	rl.BeginShaderMode(b.shader)
	rl.DrawRectangle(0, 0, int32(b.width), int32(b.height), rl.White)
	rl.EndShaderMode()
}

// SetParams re-uploads the tunable uniforms. Used by the preview tool.
func (b *LinesBackground) SetParams(params effect.Params) {
	b.params = params
	if !b.initialized || b.degraded {
		return
	}
	rl.SetShaderValue(b.shader, b.baseColorLoc, b.params.BaseColor[:], rl.ShaderUniformVec3)
	rl.SetShaderValue(b.shader, b.lineCountLoc, []float32{float32(b.params.LineCount)}, rl.ShaderUniformFloat)
}

// Size returns the current surface dimensions in pixels.
func (b *LinesBackground) Size() (w, h float32) {
	return b.width, b.height
}

// Degraded reports whether shader setup failed and the renderer is in
// flat-fill fallback mode.
func (b *LinesBackground) Degraded() bool {
	return b.degraded
}

// Unload frees the shader program.
func (b *LinesBackground) Unload() {
	if b.initialized && !b.degraded {
		rl.UnloadShader(b.shader)
	}
	b.initialized = false
	b.degraded = false
}
