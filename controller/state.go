package controller

import "image/color"

// State is what a surface renders
type State struct {
	AutoClear      bool
	GoHome         bool
	DarkMode       bool
	UseSystemTheme bool

	// ThemeCapable is false when the theme toggle is disabled by config
	ThemeCapable bool
	// ShowGoHome is always false; the row exists but stays hidden
	ShowGoHome bool

	Palette Palette
}

// Palette holds the colors derived from the dark mode flag
type Palette struct {
	Background color.NRGBA
	Text       color.NRGBA
	Card       color.NRGBA
}

var (
	darkBlack       = color.NRGBA{R: 0x12, G: 0x12, B: 0x12, A: 0xff}
	darkCard        = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
	white           = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	lightBackground = color.NRGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff}
	lightText       = color.NRGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff}
)

// PaletteFor derives the palette for dark or light mode
func PaletteFor(dark bool) Palette {
	if dark {
		return Palette{Background: darkBlack, Text: white, Card: darkCard}
	}
	return Palette{Background: lightBackground, Text: lightText, Card: white}
}
