// Shader snapshot tool - renders the effect at a fixed time to a PNG file.
//
// Usage: go run ./cmd/shadersnap -t 3.5 -out snap.png
//
// With -cpu the frame is evaluated by the pure Go reference implementation
// instead of the GPU, which is useful for comparing the two paths.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/waveline/config"
	"github.com/pthm-cable/waveline/effect"
	"github.com/pthm-cable/waveline/renderer"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outPath := flag.String("out", "snap.png", "Output PNG path")
	atTime := flag.Float64("t", 0, "Effect time in seconds")
	width := flag.Int("width", 512, "Render width")
	height := flag.Int("height", 512, "Render height")
	cpu := flag.Bool("cpu", false, "Render with the CPU reference path instead of the GPU")
	flag.Parse()

	config.MustInit(*configPath)
	params := config.Cfg().Derived.Params

	if *cpu {
		if err := renderCPU(params, *width, *height, float32(*atTime), *outPath); err != nil {
			fmt.Fprintf(os.Stderr, "CPU render failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Effect rendered (CPU) to: %s (%dx%d)\n", *outPath, *width, *height)
		return
	}

	renderGPU(params, *width, *height, float32(*atTime), *outPath)
}

func renderGPU(params effect.Params, width, height int, t float32, outPath string) {
	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(width), int32(height), "Shader Snapshot")
	defer rl.CloseWindow()

	bg := renderer.NewLinesBackground(int32(width), int32(height), params)
	bg.Init()
	defer bg.Unload()

	if bg.Degraded() {
		fmt.Fprintln(os.Stderr, "Shader failed to compile; snapshot would be a flat fill")
		os.Exit(1)
	}

	// Render the effect to a texture
	target := rl.LoadRenderTexture(int32(width), int32(height))
	defer rl.UnloadRenderTexture(target)

	rl.BeginTextureMode(target)
	rl.ClearBackground(rl.Black)
	bg.Draw(t)
	rl.EndTextureMode()

	// Get image from texture and flip it (OpenGL convention)
	img := rl.LoadImageFromTexture(target.Texture)
	rl.ImageFlipVertical(img)

	success := rl.ExportImage(*img, outPath)
	rl.UnloadImage(img)

	if !success {
		fmt.Fprintln(os.Stderr, "Failed to export image")
		os.Exit(1)
	}
	fmt.Printf("Effect rendered to: %s (%dx%d)\n", outPath, width, height)
}

func renderCPU(params effect.Params, width, height int, t float32, outPath string) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	w := float32(width)
	h := float32(height)

	// Scale elapsed time the same way the GPU path does before upload.
	t *= params.TimeScale

	for y := 0; y < height; y++ {
		// Image rows run top-down; fragment coordinates run bottom-up.
		fragY := h - float32(y) - 0.5
		uvY := fragY/h - 0.5
		for x := 0; x < width; x++ {
			uvX := (float32(x)+0.5)/w - 0.5
			r, g, b, _ := params.ShadePixel(uvX, uvY, t)
			img.SetRGBA(x, y, color.RGBA{toByte(r), toByte(g), toByte(b), 255})
		}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}

func toByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
