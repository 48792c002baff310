package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Donut defaults
const (
	DefaultRingWidth = 0.4
	DefaultDonutSize = 350
	DonutStartAngle  = 90.0
	donutMargin      = 0.1
	donutEdgeWidth   = 2.0
)

// Wedge is the angular extent of one donut slice, in degrees. Angles grow
// counterclockwise from 3 o'clock.
type Wedge struct {
	Start float64
	Sweep float64
}

// End returns the angle at which the wedge ends
func (w Wedge) End() float64 {
	return w.Start + w.Sweep
}

// DonutOptions configures RenderDonut
type DonutOptions struct {
	Weights    []float64
	Colors     []color.Color
	RingWidth  float64
	Size       int
	Background color.Color
	EdgeColor  color.Color
}

// Wedges splits a full turn proportionally to weights, starting at 12 o'clock
func Wedges(weights []float64) ([]Wedge, error) {
	if len(weights) == 0 {
		return nil, ErrNoWeights
	}

	var total float64
	for i, w := range weights {
		if !(w > 0) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: weight %d is %v", ErrBadWeight, i, w)
		}
		total += w
	}

	wedges := make([]Wedge, len(weights))
	start := DonutStartAngle
	for i, w := range weights {
		sweep := 360 * w / total
		wedges[i] = Wedge{Start: start, Sweep: sweep}
		start += sweep
	}
	return wedges, nil
}

// RenderDonut draws a ring chart of weights with the given colors
func RenderDonut(opts DonutOptions) (image.Image, error) {
	if len(opts.Weights) != len(opts.Colors) {
		return nil, fmt.Errorf("%w: %d weights, %d colors", ErrLengthMismatch, len(opts.Weights), len(opts.Colors))
	}
	wedges, err := Wedges(opts.Weights)
	if err != nil {
		return nil, err
	}
	opts = donutDefaults(opts)

	img := image.NewRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	gc, err := drawing.NewRasterGraphicContext(img)
	if err != nil {
		return nil, fmt.Errorf("create graphic context: %w", err)
	}

	center := float64(opts.Size) / 2
	outer := center * (1 - donutMargin)
	inner := outer * (1 - opts.RingWidth)

	gc.SetStrokeColor(opts.EdgeColor)
	gc.SetLineWidth(donutEdgeWidth)
	for i, w := range wedges {
		gc.SetFillColor(opts.Colors[i])
		gc.FillStroke(wedgePath(center, inner, outer, w))
	}
	return img, nil
}

// wedgePath traces a ring segment. The raster y axis points down, so math
// angles are negated.
func wedgePath(center, inner, outer float64, w Wedge) *drawing.Path {
	start := -radians(w.Start)
	end := -radians(w.End())
	sweep := radians(w.Sweep)

	path := &drawing.Path{}
	path.MoveTo(center+math.Cos(start)*outer, center+math.Sin(start)*outer)
	path.ArcTo(center, center, outer, outer, start, -sweep)
	path.LineTo(center+math.Cos(end)*inner, center+math.Sin(end)*inner)
	path.ArcTo(center, center, inner, inner, end, sweep)
	path.Close()
	return path
}

func donutDefaults(opts DonutOptions) DonutOptions {
	if opts.RingWidth <= 0 || opts.RingWidth > 1 {
		opts.RingWidth = DefaultRingWidth
	}
	if opts.Size <= 0 {
		opts.Size = DefaultDonutSize
	}
	if opts.Background == nil {
		opts.Background = color.White
	}
	if opts.EdgeColor == nil {
		opts.EdgeColor = color.White
	}
	return opts
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
