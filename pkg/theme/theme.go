package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// PlotTheme is a dark theme with tighter spacing.
type PlotTheme struct{}

func (m PlotTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.RGBA{R: 23, G: 23, B: 24, A: 255}
	case theme.ColorNameHover:
		return color.RGBA{R: 0x21, G: 0x99, B: 0xF3, A: 0x40}
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

func (m PlotTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (m PlotTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (m PlotTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameSeparatorThickness:
		return 0
	case theme.SizeNameScrollBarSmall:
		return 5
	case theme.SizeNameScrollBar:
		return 8
	case theme.SizeNameText:
		return 14
	}
	return theme.DefaultTheme().Size(name)
}
