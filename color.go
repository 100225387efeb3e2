package richedit

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned when a color string is neither a hex color nor a known name.
var ErrInvalidColor = errors.New("invalid color")

var (
	Black = color.RGBA{0, 0, 0, 255}
	White = color.RGBA{255, 255, 255, 255}
)

// ParseColor parses "#rrggbb", "#rgb" or an SVG color name such as "darkred".
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		if len(s) == 4 {
			s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		r, g, b := c.RGB255()
		return color.RGBA{r, g, b, 255}, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// ColorHex returns the color as "#rrggbb". Alpha is dropped. A nil or fully
// transparent color yields "".
func ColorHex(c color.Color) string {
	if c == nil {
		return ""
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return ""
	}
	return cf.Hex()
}

// ColorsEqual compares two colors by their RGBA values. Two nil colors are equal.
func ColorsEqual(c1, c2 color.Color) bool {
	if c1 == nil || c2 == nil {
		return c1 == nil && c2 == nil
	}
	r1, g1, b1, a1 := c1.RGBA()
	r2, g2, b2, a2 := c2.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}
