package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// demoTheme darkens the base theme so the swatches stand out.
type demoTheme struct {
	fyne.Theme
}

func newDemoTheme(t fyne.Theme) fyne.Theme {
	return &demoTheme{Theme: t}
}

func (t *demoTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.NRGBA{R: 28, G: 30, B: 34, A: 255}
	case theme.ColorNameForeground:
		return color.White
	case theme.ColorNameHover, theme.ColorNamePressed:
		return color.NRGBA{R: 60, G: 100, B: 180, A: 200} // Blue hover/pressed effect.
	}
	return t.Theme.Color(name, t.Variant())
}

// Variant always reports dark so Fyne picks light text and icons.
func (t *demoTheme) Variant() fyne.ThemeVariant {
	return theme.VariantDark
}
