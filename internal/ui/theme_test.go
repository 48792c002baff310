package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/theme"
)

func TestDashboardThemeIsAlwaysLight(t *testing.T) {
	th := NewDashboardTheme()

	for _, variant := range []bool{false, true} {
		v := theme.VariantLight
		if variant {
			v = theme.VariantDark
		}
		if th.Color(theme.ColorNameBackground, v) != color.White {
			t.Errorf("Background should be white for variant %v", v)
		}
	}
}

func TestDashboardThemeSizes(t *testing.T) {
	th := NewDashboardTheme()

	if th.Size(theme.SizeNameCaptionText) != CaptionTextSize {
		t.Errorf("Expected caption size %v, got %v", CaptionTextSize, th.Size(theme.SizeNameCaptionText))
	}
	if th.Size(theme.SizeNamePadding) != theme.DefaultTheme().Size(theme.SizeNamePadding) {
		t.Error("Unlisted sizes should come from the default theme")
	}
}
