package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the overlay.
type HUDData struct {
	Title        string
	Elapsed      float64
	Frame        uint64
	FPS          int32
	ScreenWidth  int32
	ScreenHeight int32
	Degraded     bool
}

// HUD renders the heads-up overlay.
type HUD struct {
	theme Theme
}

// NewHUD creates a HUD with the default theme.
func NewHUD() *HUD {
	return &HUD{theme: DefaultTheme()}
}

// Draw renders the overlay in the top-left corner.
func (h *HUD) Draw(data HUDData) {
	t := h.theme

	lines := 3
	if data.Degraded {
		lines++
	}
	panelH := t.Padding*2 + t.TitleFontSize + 5 + int32(lines-1)*t.LineHeight
	rl.DrawRectangle(0, 0, 280, panelH, t.PanelBg)
	rl.DrawRectangleLines(0, 0, 280, panelH, t.PanelBorder)

	x := t.Padding
	y := t.Padding
	rl.DrawText(data.Title, x, y, t.TitleFontSize, t.TitleColor)
	y += t.TitleFontSize + 5

	rl.DrawText(
		fmt.Sprintf("t: %7.1fs | frame: %d", data.Elapsed, data.Frame),
		x, y, t.FontSize, t.LabelColor,
	)
	y += t.LineHeight

	rl.DrawText(
		fmt.Sprintf("FPS: %d | %dx%d", data.FPS, data.ScreenWidth, data.ScreenHeight),
		x, y, t.FontSize, t.LabelColor,
	)
	y += t.LineHeight

	if data.Degraded {
		rl.DrawText("SHADER FAILED - flat fill", x, y, t.FontSize, t.AlertColor)
	}
}
