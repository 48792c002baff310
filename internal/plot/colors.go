package plot

import (
	"fmt"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Color is an RGBA color usable both by go-chart and as an image/color.Color
type Color = drawing.Color

// Named colors accepted by ParseColor. Values follow the matplotlib palette.
var namedColors = map[string]drawing.Color{
	"black": drawing.ColorBlack,
	"white": drawing.ColorWhite,
	"red":   drawing.ColorFromHex("FF0000"),
	"green": drawing.ColorFromHex("008000"),
	"blue":  drawing.ColorFromHex("0000FF"),
	"gray":  drawing.ColorFromHex("808080"),
}

// ParseColor parses "#rrggbb", "rrggbb" or one of the named colors
func ParseColor(s string) (drawing.Color, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[value]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(value, "#")
	if len(hex) != 6 || strings.Trim(hex, "0123456789abcdef") != "" {
		return drawing.Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return drawing.ColorFromHex(hex), nil
}

// ParseColors parses every color in order
func ParseColors(values []string) ([]drawing.Color, error) {
	colors := make([]drawing.Color, len(values))
	for i, v := range values {
		c, err := ParseColor(v)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	return colors, nil
}
