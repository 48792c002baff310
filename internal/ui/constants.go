package ui

import "image/color"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// App identity
const (
	AppID    = "com.mindguard.dashboard"
	AppTitle = "MindGuard Dashboard"
)

// Text sizes
const (
	TitleTextSize    float32 = 20
	SubtitleTextSize float32 = 14
	HeaderTextSize   float32 = 12
	CaptionTextSize  float32 = 10
	IconTextSize     float32 = 20
)

// Layout sizing
const (
	SectionPadding float32 = 20
	ItemSpacing    float32 = 10

	DonutMinSize    float32 = 300
	LineChartWidth  float32 = 340
	LineChartHeight float32 = 212

	SwatchWidth       float32 = 16
	SwatchHeight      float32 = 12
	SwatchStrokeWidth float32 = 1

	IconTileRadius float32 = 6
)

// Chart raster sizes in pixels
const (
	DonutPixels      = 350
	LineChartPixelsW = 400
	LineChartPixelsH = 250
	DonutRingWidth   = 0.4
)

// Colors
var (
	ColorIconDefault     color.Color = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	ColorIconHighlighted color.Color = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	ColorIconTint        color.Color = color.NRGBA{R: 0, G: 0, B: 255, A: 48}
	ColorText            color.Color = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	ColorSwatchBorder    color.Color = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
)
