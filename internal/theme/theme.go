package theme

import (
	"image/color"
)

// Theme defines the colors used by the editor window.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Window area around the canvas
	Foreground color.RGBA // Status and message text

	// Bars
	ToolbarBackground color.RGBA
	StatusBackground  color.RGBA

	// Buttons
	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonBackgroundPress color.RGBA
	ButtonText            color.RGBA
	ButtonBorder          color.RGBA
	Selection             color.RGBA // Outline of the active swatch or toggle

	MessageBackground color.RGBA

	// Canvas
	CheckerLight color.RGBA
	CheckerDark  color.RGBA
	GridLine     color.RGBA
}

// Default returns the hardcoded light theme used when nothing else loads.
func Default() *Theme {
	return &Theme{
		Name:                  "default",
		Background:            color.RGBA{220, 220, 220, 255},
		Foreground:            color.RGBA{0, 0, 0, 255},
		ToolbarBackground:     color.RGBA{220, 220, 220, 255},
		StatusBackground:      color.RGBA{230, 230, 230, 255},
		ButtonBackground:      color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover: color.RGBA{180, 180, 180, 255},
		ButtonBackgroundPress: color.RGBA{150, 150, 150, 255},
		ButtonText:            color.RGBA{0, 0, 0, 255},
		ButtonBorder:          color.RGBA{0, 0, 0, 255},
		Selection:             color.RGBA{255, 255, 255, 255},
		MessageBackground:     color.RGBA{230, 230, 230, 230},
		CheckerLight:          color.RGBA{211, 211, 211, 255},
		CheckerDark:           color.RGBA{169, 169, 169, 255},
		GridLine:              color.RGBA{0, 0, 0, 255},
	}
}
