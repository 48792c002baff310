package ui

import (
	"fmt"
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"github.com/mindguard/dashboard/internal/model"
	"github.com/mindguard/dashboard/internal/plot"
)

// DashboardView builds the single dashboard screen
type DashboardView struct {
	localization *Localization
	renderer     plot.Renderer
	palette      HoverPalette
	hover        *HoverTable

	NavButtons    []*widget.Button
	Donut         *canvas.Image
	MoodLegend    *Legend
	LineChart     *canvas.Image
	EmotionLegend *Legend
	Footer        *Footer
}

// NewDashboardView creates a view; nothing is built until Build is called
func NewDashboardView(localization *Localization, renderer plot.Renderer, palette HoverPalette, hover *HoverTable) *DashboardView {
	return &DashboardView{
		localization: localization,
		renderer:     renderer,
		palette:      palette,
		hover:        hover,
	}
}

// Build constructs every section top to bottom and returns the content.
// Any rendering failure aborts the build.
func (v *DashboardView) Build() (fyne.CanvasObject, error) {
	moodSection, err := v.buildMoodSection()
	if err != nil {
		return nil, fmt.Errorf("mood section: %w", err)
	}
	emotionSection, err := v.buildEmotionSection()
	if err != nil {
		return nil, fmt.Errorf("emotion section: %w", err)
	}
	log.Debug().Msg("dashboard charts rendered")

	v.Footer = NewFooter(model.DefaultFooter(), v.footerLabels(), v.palette, v.hover)

	content := container.NewVBox(
		v.buildNavBar(),
		v.buildHeadings(),
		moodSection,
		emotionSection,
		v.Footer.Object(),
	)
	log.Debug().Int("footer_icons", len(v.Footer.Icons)).Msg("dashboard built")
	return content, nil
}

func (v *DashboardView) buildNavBar() fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(model.NavItems()))
	for _, key := range model.NavItems() {
		// Navigation targets are not wired.
		btn := widget.NewButton(v.localization.GetText(key), nil)
		btn.Importance = widget.LowImportance
		v.NavButtons = append(v.NavButtons, btn)
		objects = append(objects, btn)
	}
	return padded(container.NewHBox(objects...))
}

func (v *DashboardView) buildHeadings() fyne.CanvasObject {
	title := newText(v.localization.GetText(KeyTitle), TitleTextSize, true)
	subtitle := newText(v.localization.GetText(KeySubtitle), SubtitleTextSize, false)
	mood := newText(v.localization.GetText(KeyMoodHeader), HeaderTextSize, false)
	timeframe := newText(v.localization.GetText(KeyTimeframe), CaptionTextSize, false)

	return padded(container.NewVBox(title, subtitle, mood, timeframe))
}

func (v *DashboardView) buildMoodSection() (fyne.CanvasObject, error) {
	moods := model.DefaultMoods()

	hexes := make([]string, len(moods))
	keys := make([]string, len(moods))
	for i, m := range moods {
		hexes[i] = m.Color
		keys[i] = m.Key
	}
	parsed, err := plot.ParseColors(hexes)
	if err != nil {
		return nil, err
	}
	colors := imageColors(parsed)

	img, err := v.renderer.Donut(plot.DonutOptions{
		Weights:   model.MoodWeights(moods),
		Colors:    colors,
		RingWidth: DonutRingWidth,
		Size:      DonutPixels,
	})
	if err != nil {
		return nil, err
	}
	v.Donut = chartImage(img, fyne.NewSize(DonutMinSize, DonutMinSize))

	v.MoodLegend, err = NewLegend(v.localization.GetTexts(keys), colors)
	if err != nil {
		return nil, err
	}
	return padded(container.NewVBox(v.Donut, v.MoodLegend.Object())), nil
}

func (v *DashboardView) buildEmotionSection() (fyne.CanvasObject, error) {
	curves := model.SampleEmotions()

	names := make([]string, len(curves))
	keys := make([]string, len(curves))
	for i, curve := range curves {
		names[i] = curve.Color
		keys[i] = curve.Key
	}
	parsed, err := plot.ParseColors(names)
	if err != nil {
		return nil, err
	}

	series := make([]plot.Series, len(curves))
	for i, curve := range curves {
		series[i] = toSeries(v.localization.GetText(curve.Key), parsed[i], curve.Points)
	}
	colors := imageColors(parsed)

	img, err := v.renderer.Line(plot.LineOptions{
		Series: series,
		Title:  v.localization.GetText(KeyChartTitle),
		XLabel: v.localization.GetText(KeyAxisTime),
		YLabel: v.localization.GetText(KeyAxisLevel),
		Width:  LineChartPixelsW,
		Height: LineChartPixelsH,
	})
	if err != nil {
		return nil, err
	}
	v.LineChart = chartImage(img, fyne.NewSize(LineChartWidth, LineChartHeight))

	v.EmotionLegend, err = NewLegend(v.localization.GetTexts(keys), colors)
	if err != nil {
		return nil, err
	}
	return padded(container.NewVBox(v.LineChart, v.EmotionLegend.Object())), nil
}

func (v *DashboardView) footerLabels() []string {
	entries := model.DefaultFooter()
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return v.localization.GetTexts(keys)
}

func toSeries(name string, c plot.Color, points []model.Point) plot.Series {
	s := plot.Series{
		Name:    name,
		Color:   c,
		XValues: make([]float64, len(points)),
		YValues: make([]float64, len(points)),
	}
	for i, p := range points {
		s.XValues[i] = p.X
		s.YValues[i] = p.Y
	}
	return s
}

func imageColors(colors []plot.Color) []color.Color {
	out := make([]color.Color, len(colors))
	for i, c := range colors {
		out[i] = c
	}
	return out
}

func chartImage(img image.Image, minSize fyne.Size) *canvas.Image {
	c := canvas.NewImageFromImage(img)
	c.FillMode = canvas.ImageFillContain
	c.SetMinSize(minSize)
	return c
}

func newText(text string, size float32, bold bool) *canvas.Text {
	t := canvas.NewText(text, ColorText)
	t.TextSize = size
	t.TextStyle = fyne.TextStyle{Bold: bold}
	t.Alignment = fyne.TextAlignLeading
	return t
}

// padded insets a section by the outer screen margins
func padded(obj fyne.CanvasObject) fyne.CanvasObject {
	return container.New(layout.NewCustomPaddedLayout(ItemSpacing/2, ItemSpacing/2, SectionPadding, SectionPadding), obj)
}
