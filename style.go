package richedit

import (
	"image/color"
	"strings"
)

// FormatFlag is one attribute of a StyleDef that takes effect when the style is applied.
type FormatFlag uint16

const (
	FontFamily  FormatFlag = 1
	FontSize    FormatFlag = 2
	FGColorNone FormatFlag = 4
	FGColor     FormatFlag = 8
	BGColorNone FormatFlag = 16
	BGColor     FormatFlag = 32
	Bold        FormatFlag = 64
	Italic      FormatFlag = 128
	Underline   FormatFlag = 256
	Strikeout   FormatFlag = 512
)

// allFormatFlags lists the flags in bit order.
var allFormatFlags = []FormatFlag{FontFamily, FontSize, FGColorNone, FGColor, BGColorNone, BGColor,
	Bold, Italic, Underline, Strikeout}

func (f FormatFlag) String() string {
	switch f {
	case FontFamily:
		return "FontFamily"
	case FontSize:
		return "FontSize"
	case FGColorNone:
		return "FGColorNone"
	case FGColor:
		return "FGColor"
	case BGColorNone:
		return "BGColorNone"
	case BGColor:
		return "BGColor"
	case Bold:
		return "Bold"
	case Italic:
		return "Italic"
	case Underline:
		return "Underline"
	case Strikeout:
		return "Strikeout"
	default:
		return "NoFormat"
	}
}

// ParseFormatFlag returns the flag with the given name.
func ParseFormatFlag(name string) (FormatFlag, bool) {
	for _, f := range allFormatFlags {
		if f.String() == name {
			return f, true
		}
	}
	return 0, false
}

// FormatFlags is a set of FormatFlag values.
type FormatFlags uint16

// NoFormat is the empty flag set: applying the style changes nothing.
const NoFormat FormatFlags = 0

func NewFormatFlags(flags ...FormatFlag) FormatFlags {
	var ff FormatFlags
	for _, f := range flags {
		ff = ff.Add(f)
	}
	return ff
}

func (ff FormatFlags) Has(f FormatFlag) bool { return ff&FormatFlags(f) != 0 }

func (ff FormatFlags) Add(f FormatFlag) FormatFlags { return ff | FormatFlags(f) }

func (ff FormatFlags) Remove(f FormatFlag) FormatFlags { return ff &^ FormatFlags(f) }

// Flags returns the flags of the set in bit order.
func (ff FormatFlags) Flags() []FormatFlag {
	var flags []FormatFlag
	for _, f := range allFormatFlags {
		if ff.Has(f) {
			flags = append(flags, f)
		}
	}
	return flags
}

func (ff FormatFlags) String() string {
	flags := ff.Flags()
	if len(flags) == 0 {
		return "NoFormat"
	}
	names := make([]string, len(flags))
	for i, f := range flags {
		names[i] = f.String()
	}
	return strings.Join(names, "|")
}

// StyleDef is a named text style. Only the attributes whose flag is set are applied;
// everything else on the styled text stays as it was.
type StyleDef struct {
	Name            string
	Description     string
	FontFamily      string
	PointSize       float32
	TextColor       color.Color
	BackgroundColor color.Color
	Bold            bool
	Italic          bool
	Underline       bool
	Strikeout       bool
	Flags           FormatFlags
}

// NewStyleDef returns a style with default attributes and no flags.
func NewStyleDef() StyleDef {
	return StyleDef{
		FontFamily:      "Helvetica",
		PointSize:       10,
		TextColor:       Black,
		BackgroundColor: White,
		Flags:           NoFormat,
	}
}

// SetAllFormatFlags flags the font, the font attributes and the clearing of both colors.
func (s *StyleDef) SetAllFormatFlags() {
	s.Flags = NewFormatFlags(FontFamily, FontSize, Bold, Italic, Underline, Strikeout, FGColorNone, BGColorNone)
}

// applyTo changes the flagged attributes of f. Clearing a color happens before setting
// one, so a style flagging both ends up with the color.
func (s StyleDef) applyTo(f *CharFormat) {
	if s.Flags == NoFormat {
		return
	}
	if s.Flags.Has(FontFamily) {
		f.SetFontFamily(s.FontFamily)
	}
	if s.Flags.Has(FontSize) {
		f.SetFontPointSize(s.PointSize)
	}
	if s.Flags.Has(FGColorNone) {
		f.ClearForeground()
	}
	if s.Flags.Has(FGColor) {
		f.SetForeground(s.TextColor)
	}
	if s.Flags.Has(BGColorNone) {
		f.ClearBackground()
	}
	if s.Flags.Has(BGColor) {
		f.SetBackground(s.BackgroundColor)
	}
	if s.Flags.Has(Bold) {
		if s.Bold {
			f.SetFontWeight(WeightBold)
		} else {
			f.SetFontWeight(WeightNormal)
		}
	}
	if s.Flags.Has(Italic) {
		f.SetFontItalic(s.Italic)
	}
	if s.Flags.Has(Underline) {
		f.SetFontUnderline(s.Underline)
	}
	if s.Flags.Has(Strikeout) {
		f.SetFontStrikeOut(s.Strikeout)
	}
}
