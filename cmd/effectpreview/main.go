// Effect preview tool - interactive tuning of the line effect with sliders.
//
// Usage: go run ./cmd/effectpreview
package main

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/waveline/config"
	"github.com/pthm-cable/waveline/effect"
	"github.com/pthm-cable/waveline/renderer"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
)

func main() {
	config.MustInit("")
	params := config.Cfg().Derived.Params

	rl.InitWindow(windowWidth, windowHeight, "Waveline Effect Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	bg := renderer.NewLinesBackground(previewSize, previewSize, params)
	bg.Init()
	defer bg.Unload()

	// Preview target so the effect renders at a fixed resolution regardless
	// of where it lands in the window
	target := rl.LoadRenderTexture(previewSize, previewSize)
	defer rl.UnloadRenderTexture(target)

	var elapsed float32

	for !rl.WindowShouldClose() {
		elapsed += rl.GetFrameTime()

		// Render the effect into the preview texture
		rl.BeginTextureMode(target)
		rl.ClearBackground(rl.Black)
		bg.Draw(elapsed)
		rl.EndTextureMode()

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Draw preview (render textures are vertically flipped)
		rl.DrawTexturePro(
			target.Texture,
			rl.Rectangle{X: 0, Y: 0, Width: previewSize, Height: -previewSize},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Time: %.1fs  FPS: %d", elapsed, rl.GetFPS()), 15, statsY, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Effect Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		changed := false

		// Line count slider
		rl.DrawText("Lines", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newCount := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"1", "12",
			float32(params.LineCount), 1, 12,
		)
		rl.DrawText(fmt.Sprintf("%d", params.LineCount), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if int(newCount) != params.LineCount {
			params.LineCount = int(newCount)
			changed = true
		}
		panelY += 35

		// Time scale slider
		rl.DrawText("Time scale", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newScale := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0.0", "4.0",
			params.TimeScale, 0, 4,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.TimeScale), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newScale != params.TimeScale {
			params.TimeScale = newScale
			changed = true
		}
		panelY += 35

		// Base color sliders
		labels := []string{"Base R", "Base G", "Base B"}
		for i := range params.BaseColor {
			rl.DrawText(labels[i], int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 18
			newC := gui.SliderBar(
				rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
				"0.0", "0.5",
				params.BaseColor[i], 0, 0.5,
			)
			rl.DrawText(fmt.Sprintf("%.2f", params.BaseColor[i]), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
			if newC != params.BaseColor[i] {
				params.BaseColor[i] = newC
				changed = true
			}
			panelY += 35
		}

		if changed {
			bg.SetParams(params)
		}

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 28}, "Reset") {
			params = effect.DefaultParams()
			bg.SetParams(params)
		}

		rl.EndDrawing()
	}
}
