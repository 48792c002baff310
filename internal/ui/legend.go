package ui

import (
	"errors"
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ErrLegendMismatch is returned when labels and colors differ in length
var ErrLegendMismatch = errors.New("legend: labels and colors differ in length")

// LegendItem is a color swatch followed by its label
type LegendItem struct {
	Swatch *canvas.Rectangle
	Label  *widget.Label
}

// Legend is a horizontal strip of legend items
type Legend struct {
	Items []LegendItem
	row   *fyne.Container
}

// NewLegend pairs labels with colors, preserving order
func NewLegend(labels []string, colors []color.Color) (*Legend, error) {
	if len(labels) != len(colors) {
		return nil, fmt.Errorf("%w: %d labels, %d colors", ErrLegendMismatch, len(labels), len(colors))
	}

	l := &Legend{Items: make([]LegendItem, 0, len(labels))}
	objects := make([]fyne.CanvasObject, 0, len(labels))
	for i, text := range labels {
		swatch := canvas.NewRectangle(colors[i])
		swatch.StrokeColor = ColorSwatchBorder
		swatch.StrokeWidth = SwatchStrokeWidth
		swatch.SetMinSize(fyne.NewSize(SwatchWidth, SwatchHeight))

		label := widget.NewLabel(text)
		l.Items = append(l.Items, LegendItem{Swatch: swatch, Label: label})
		objects = append(objects, container.NewHBox(container.NewCenter(swatch), label))
	}

	l.row = container.NewCenter(container.NewHBox(objects...))
	return l, nil
}

// Object returns the legend row
func (l *Legend) Object() fyne.CanvasObject {
	return l.row
}
