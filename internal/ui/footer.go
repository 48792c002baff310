package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/mindguard/dashboard/internal/model"
)

// HoverPalette holds the colors a footer icon switches between. Color emoji
// ignore the text color, so the highlight also tints the tile behind the glyph.
type HoverPalette struct {
	Default     color.Color
	Highlighted color.Color
	Tint        color.Color
}

// DefaultHoverPalette returns black icons that turn blue under the pointer
func DefaultHoverPalette() HoverPalette {
	return HoverPalette{Default: ColorIconDefault, Highlighted: ColorIconHighlighted, Tint: ColorIconTint}
}

// Color returns the palette color for a state
func (p HoverPalette) Color(state model.IconState) color.Color {
	if state.IsHighlighted() {
		return p.Highlighted
	}
	return p.Default
}

// Background returns the tile color for a state
func (p HoverPalette) Background(state model.IconState) color.Color {
	if state.IsHighlighted() && p.Tint != nil {
		return p.Tint
	}
	return color.Transparent
}

// HoverIcon is an emoji glyph that forwards pointer enter/leave to a HoverTable
type HoverIcon struct {
	widget.BaseWidget

	id    uuid.UUID
	table *HoverTable
	text  *canvas.Text
	tile  *canvas.Rectangle
}

var (
	_ desktop.Hoverable  = (*HoverIcon)(nil)
	_ desktop.Cursorable = (*HoverIcon)(nil)
)

// NewHoverIcon creates an icon registered in table under id
func NewHoverIcon(id uuid.UUID, glyph string, palette HoverPalette, table *HoverTable) *HoverIcon {
	icon := &HoverIcon{
		id:    id,
		table: table,
		text:  canvas.NewText(glyph, palette.Default),
		tile:  canvas.NewRectangle(color.Transparent),
	}
	icon.text.TextSize = IconTextSize
	icon.text.Alignment = fyne.TextAlignCenter
	icon.tile.CornerRadius = IconTileRadius
	icon.ExtendBaseWidget(icon)

	table.Register(id, func(state model.IconState) {
		icon.text.Color = palette.Color(state)
		icon.tile.FillColor = palette.Background(state)
		icon.text.Refresh()
		icon.tile.Refresh()
	})
	return icon
}

// CreateRenderer implements fyne.Widget
func (i *HoverIcon) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(i.tile, i.text))
}

// MouseIn implements desktop.Hoverable
func (i *HoverIcon) MouseIn(*desktop.MouseEvent) {
	i.table.Dispatch(i.id, PointerEnter)
}

// MouseMoved implements desktop.Hoverable
func (i *HoverIcon) MouseMoved(*desktop.MouseEvent) {}

// MouseOut implements desktop.Hoverable
func (i *HoverIcon) MouseOut() {
	i.table.Dispatch(i.id, PointerLeave)
}

// Cursor implements desktop.Cursorable
func (i *HoverIcon) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// Footer is the bottom strip of icons with captions
type Footer struct {
	Icons  []*HoverIcon
	Labels []*widget.Label
	row    *fyne.Container
}

// NewFooter builds one column per entry. labels holds the localized caption
// for each entry, in order.
func NewFooter(entries []model.FooterEntry, labels []string, palette HoverPalette, table *HoverTable) *Footer {
	f := &Footer{
		Icons:  make([]*HoverIcon, 0, len(entries)),
		Labels: make([]*widget.Label, 0, len(entries)),
	}

	columns := make([]fyne.CanvasObject, 0, len(entries))
	for i, entry := range entries {
		caption := entry.Key
		if i < len(labels) {
			caption = labels[i]
		}

		icon := NewHoverIcon(WidgetID("footer/"+entry.Key), entry.Icon, palette, table)
		label := widget.NewLabel(caption)
		label.Alignment = fyne.TextAlignCenter

		f.Icons = append(f.Icons, icon)
		f.Labels = append(f.Labels, label)
		columns = append(columns, container.NewVBox(icon, label))
	}

	f.row = container.NewGridWithColumns(max(len(columns), 1), columns...)
	return f
}

// Object returns the footer row
func (f *Footer) Object() fyne.CanvasObject {
	return f.row
}
