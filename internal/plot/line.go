package plot

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Line chart defaults
const (
	DefaultLineWidth  = 400
	DefaultLineHeight = 250
	seriesStrokeWidth = 2.0
	gridAlpha         = 77 // ~30% opacity
)

// Series is one named curve on a line chart
type Series struct {
	Name    string
	Color   drawing.Color
	XValues []float64
	YValues []float64
}

// LineOptions configures RenderLine
type LineOptions struct {
	Series []Series
	Title  string
	XLabel string
	YLabel string
	Width  int
	Height int
}

// RenderLine draws every series on shared axes and returns the decoded image
func RenderLine(opts LineOptions) (image.Image, error) {
	if len(opts.Series) == 0 {
		return nil, ErrNoSeries
	}
	if opts.Width <= 0 {
		opts.Width = DefaultLineWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultLineHeight
	}

	series := make([]chart.Series, 0, len(opts.Series))
	for _, s := range opts.Series {
		if len(s.XValues) != len(s.YValues) {
			return nil, fmt.Errorf("%w: series %q has %d x and %d y values", ErrLengthMismatch, s.Name, len(s.XValues), len(s.YValues))
		}
		if len(s.XValues) < 2 {
			return nil, fmt.Errorf("%w: series %q", ErrShortSeries, s.Name)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: s.XValues,
			YValues: s.YValues,
			Style: chart.Style{
				StrokeColor: s.Color,
				StrokeWidth: seriesStrokeWidth,
			},
		})
	}

	grid := chart.Style{
		StrokeColor: drawing.ColorBlack.WithAlpha(gridAlpha),
		StrokeWidth: 1,
	}
	ch := chart.Chart{
		Title:      opts.Title,
		TitleStyle: chart.Style{FontSize: 12},
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 28, Left: 16, Right: 12, Bottom: 12}},
		XAxis: chart.XAxis{
			Name:           opts.XLabel,
			NameStyle:      chart.Style{FontSize: 10},
			GridMajorStyle: grid,
		},
		YAxis: chart.YAxis{
			Name:           opts.YLabel,
			NameStyle:      chart.Style{FontSize: 10},
			GridMajorStyle: grid,
		},
		Series: series,
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render line chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode line chart: %w", err)
	}
	return img, nil
}
