package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ScreenTheme defines the app theme: touch-friendly padding and a red error colour
type ScreenTheme struct{}

// NewScreenTheme creates a new theme
func NewScreenTheme() fyne.Theme {
	return &ScreenTheme{}
}

// Color returns theme colors
func (t *ScreenTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameError:
		if variant == theme.VariantDark {
			return color.RGBA{R: 242, G: 184, B: 181, A: 255}
		}
		return color.RGBA{R: 179, G: 38, B: 30, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 103, G: 80, B: 164, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 28, G: 27, B: 31, A: 255}
		}
		return color.RGBA{R: 255, G: 251, B: 254, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *ScreenTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ScreenTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *ScreenTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6
	case theme.SizeNameInnerPadding:
		return 10
	case theme.SizeNameInputRadius:
		return 8
	case theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}
