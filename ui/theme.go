// Package ui draws the optional debug overlay on top of the effect.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds the overlay colors and metrics.
type Theme struct {
	PanelBg     rl.Color
	PanelBorder rl.Color
	TitleColor  rl.Color
	LabelColor  rl.Color
	AlertColor  rl.Color

	TitleFontSize int32
	FontSize      int32
	LineHeight    int32
	Padding       int32
}

// DefaultTheme returns the default overlay styling.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:       rl.NewColor(0, 0, 0, 160),
		PanelBorder:   rl.NewColor(255, 255, 255, 40),
		TitleColor:    rl.White,
		LabelColor:    rl.LightGray,
		AlertColor:    rl.Yellow,
		TitleFontSize: 20,
		FontSize:      16,
		LineHeight:    20,
		Padding:       10,
	}
}
