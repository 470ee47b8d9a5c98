package ui

import (
	"image/color"

	"clearit/controller"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// paletteTheme pins the Fyne variant to the controller's dark mode and
// overrides the colors the palette owns.
type paletteTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	palette controller.Palette
}

func newPaletteTheme(dark bool, palette controller.Palette) fyne.Theme {
	variant := theme.VariantLight
	if dark {
		variant = theme.VariantDark
	}
	return &paletteTheme{base: theme.DefaultTheme(), variant: variant, palette: palette}
}

func (t *paletteTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return t.palette.Background
	case theme.ColorNameForeground:
		return t.palette.Text
	case theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return t.palette.Card
	}
	return t.base.Color(name, t.variant)
}

func (t *paletteTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *paletteTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *paletteTheme) Size(name fyne.ThemeSizeName) float32 {
	return t.base.Size(name)
}
