package richedit

import (
	"image/color"

	"github.com/phrozen/blend"
)

// BlendMode selects how a cell background is composited over the table background.
type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendColor
	BlendDarken
	BlendLighten
	BlendMultiply
	BlendOverlay
	BlendScreen
	BlendSoftLight
	BlendHardLight
	BlendLuminosity
)

// BlendColors composites the overlay color over the base color. With BlendNormal the
// overlay simply replaces the base. A nil color on either side yields the other color.
func BlendColors(mode BlendMode, base, overlay color.Color) color.Color {
	if overlay == nil {
		return base
	}
	if base == nil {
		return overlay
	}
	switch mode {
	case BlendColor:
		return blend.Color(base, overlay)
	case BlendDarken:
		return blend.Darken(base, overlay)
	case BlendLighten:
		return blend.Lighten(base, overlay)
	case BlendMultiply:
		return blend.Multiply(base, overlay)
	case BlendOverlay:
		return blend.Overlay(base, overlay)
	case BlendScreen:
		return blend.Screen(base, overlay)
	case BlendSoftLight:
		return blend.SoftLight(base, overlay)
	case BlendHardLight:
		return blend.HardLight(base, overlay)
	case BlendLuminosity:
		return blend.Luminosity(base, overlay)
	default:
		return overlay
	}
}
