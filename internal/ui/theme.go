package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// DashboardTheme is a light theme on a white background
type DashboardTheme struct{}

// NewDashboardTheme creates a new dashboard theme
func NewDashboardTheme() fyne.Theme {
	return &DashboardTheme{}
}

// Color returns theme colors. The variant is ignored: the dashboard is
// always drawn light.
func (t *DashboardTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.White
	case theme.ColorNameForeground:
		return color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 33, G: 150, B: 243, A: 255} // Matches the "Happy" blue
	case theme.ColorNameButton:
		return color.White
	}

	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

// Font returns theme fonts
func (t *DashboardTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *DashboardTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *DashboardTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameHeadingText:
		return HeaderTextSize + 8
	case theme.SizeNameCaptionText:
		return CaptionTextSize
	case theme.SizeNameScrollBar:
		return 12
	}

	return theme.DefaultTheme().Size(name)
}
