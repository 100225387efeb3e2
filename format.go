package richedit

import (
	"image/color"

	"github.com/bits-and-blooms/bitset"
	"github.com/chewxy/math32"
)

// FontWeight is the weight of a font on the usual 100..900 scale.
type FontWeight int

const (
	WeightNormal FontWeight = 400
	WeightBold   FontWeight = 700
)

// charProperty is a bit index into the property set of a CharFormat.
type charProperty uint

const (
	propFontFamily charProperty = iota
	propFontPointSize
	propFontWeight
	propFontItalic
	propFontUnderline
	propFontStrikeOut
	propForeground
	propBackground
	propAnchorHref
	propImageName
	charPropertyCount
)

// CharFormat is the formatting of a run of characters. Only properties that have been set
// are part of the format, so merging a format onto another one changes exactly the set
// properties and leaves everything else alone. A property can only be removed by a Clear
// method followed by replacing the whole format.
//
// CharFormat is a value type. Setters never modify a property set shared with a copy.
type CharFormat struct {
	props      *bitset.BitSet
	fontFamily string
	pointSize  float32
	weight     FontWeight
	italic     bool
	underline  bool
	strikeOut  bool
	foreground color.Color
	background color.Color
	anchorHref string
	imageName  string
}

func (f *CharFormat) mark(p charProperty) {
	props := bitset.New(uint(charPropertyCount))
	if f.props != nil {
		props = f.props.Clone()
	}
	f.props = props.Set(uint(p))
}

func (f *CharFormat) unmark(p charProperty) {
	if f.props == nil {
		return
	}
	f.props = f.props.Clone().Clear(uint(p))
}

func (f CharFormat) has(p charProperty) bool {
	return f.props != nil && f.props.Test(uint(p))
}

// IsEmpty returns true if no property is set.
func (f CharFormat) IsEmpty() bool {
	return f.props == nil || f.props.Count() == 0
}

// HasFontFamily returns true if the font family property is set.
func (f CharFormat) HasFontFamily() bool { return f.has(propFontFamily) }

// HasFontPointSize returns true if the point size property is set.
func (f CharFormat) HasFontPointSize() bool { return f.has(propFontPointSize) }

// HasForeground returns true if a foreground brush is set.
func (f CharFormat) HasForeground() bool { return f.has(propForeground) }

// HasBackground returns true if a background brush is set.
func (f CharFormat) HasBackground() bool { return f.has(propBackground) }

func (f CharFormat) FontFamily() string {
	if !f.has(propFontFamily) {
		return ""
	}
	return f.fontFamily
}

func (f *CharFormat) SetFontFamily(family string) {
	f.fontFamily = family
	f.mark(propFontFamily)
}

// FontPointSize returns the point size, 0 if it is not set.
func (f CharFormat) FontPointSize() float32 {
	if !f.has(propFontPointSize) {
		return 0
	}
	return f.pointSize
}

func (f *CharFormat) SetFontPointSize(size float32) {
	f.pointSize = size
	f.mark(propFontPointSize)
}

// FontWeight returns the weight, WeightNormal if it is not set.
func (f CharFormat) FontWeight() FontWeight {
	if !f.has(propFontWeight) {
		return WeightNormal
	}
	return f.weight
}

func (f *CharFormat) SetFontWeight(w FontWeight) {
	f.weight = w
	f.mark(propFontWeight)
}

func (f CharFormat) FontItalic() bool { return f.has(propFontItalic) && f.italic }

func (f *CharFormat) SetFontItalic(on bool) {
	f.italic = on
	f.mark(propFontItalic)
}

func (f CharFormat) FontUnderline() bool { return f.has(propFontUnderline) && f.underline }

func (f *CharFormat) SetFontUnderline(on bool) {
	f.underline = on
	f.mark(propFontUnderline)
}

func (f CharFormat) FontStrikeOut() bool { return f.has(propFontStrikeOut) && f.strikeOut }

func (f *CharFormat) SetFontStrikeOut(on bool) {
	f.strikeOut = on
	f.mark(propFontStrikeOut)
}

// Foreground returns the text color, or nil if there is no foreground brush.
func (f CharFormat) Foreground() color.Color {
	if !f.has(propForeground) {
		return nil
	}
	return f.foreground
}

// SetForeground sets the text color. A nil color clears the property.
func (f *CharFormat) SetForeground(c color.Color) {
	if c == nil {
		f.ClearForeground()
		return
	}
	f.foreground = c
	f.mark(propForeground)
}

func (f *CharFormat) ClearForeground() {
	f.foreground = nil
	f.unmark(propForeground)
}

// Background returns the background color, or nil if there is no background brush.
func (f CharFormat) Background() color.Color {
	if !f.has(propBackground) {
		return nil
	}
	return f.background
}

// SetBackground sets the background color. A nil color clears the property.
func (f *CharFormat) SetBackground(c color.Color) {
	if c == nil {
		f.ClearBackground()
		return
	}
	f.background = c
	f.mark(propBackground)
}

func (f *CharFormat) ClearBackground() {
	f.background = nil
	f.unmark(propBackground)
}

// IsAnchor returns true if the format carries a hyperlink.
func (f CharFormat) IsAnchor() bool { return f.has(propAnchorHref) }

func (f CharFormat) AnchorHref() string {
	if !f.has(propAnchorHref) {
		return ""
	}
	return f.anchorHref
}

func (f *CharFormat) SetAnchorHref(href string) {
	f.anchorHref = href
	f.mark(propAnchorHref)
}

func (f *CharFormat) ClearAnchor() {
	f.anchorHref = ""
	f.unmark(propAnchorHref)
}

// IsImageFormat returns true if the format describes an inline image.
func (f CharFormat) IsImageFormat() bool { return f.has(propImageName) }

func (f CharFormat) ImageName() string {
	if !f.has(propImageName) {
		return ""
	}
	return f.imageName
}

func (f *CharFormat) SetImageName(name string) {
	f.imageName = name
	f.mark(propImageName)
}

func (f *CharFormat) clearImage() {
	f.imageName = ""
	f.unmark(propImageName)
}

// Merge copies every property that is set in other onto f. Properties not set in other
// are left as they are.
func (f *CharFormat) Merge(other CharFormat) {
	if other.props == nil {
		return
	}
	for i, ok := other.props.NextSet(0); ok; i, ok = other.props.NextSet(i + 1) {
		switch charProperty(i) {
		case propFontFamily:
			f.SetFontFamily(other.fontFamily)
		case propFontPointSize:
			f.SetFontPointSize(other.pointSize)
		case propFontWeight:
			f.SetFontWeight(other.weight)
		case propFontItalic:
			f.SetFontItalic(other.italic)
		case propFontUnderline:
			f.SetFontUnderline(other.underline)
		case propFontStrikeOut:
			f.SetFontStrikeOut(other.strikeOut)
		case propForeground:
			f.SetForeground(other.foreground)
		case propBackground:
			f.SetBackground(other.background)
		case propAnchorHref:
			f.SetAnchorHref(other.anchorHref)
		case propImageName:
			f.SetImageName(other.imageName)
		}
	}
}

// Equal returns true if both formats set the same properties to the same values.
func (f CharFormat) Equal(other CharFormat) bool {
	for p := charProperty(0); p < charPropertyCount; p++ {
		if f.has(p) != other.has(p) {
			return false
		}
		if !f.has(p) {
			continue
		}
		switch p {
		case propFontFamily:
			if f.fontFamily != other.fontFamily {
				return false
			}
		case propFontPointSize:
			if f.pointSize != other.pointSize {
				return false
			}
		case propFontWeight:
			if f.weight != other.weight {
				return false
			}
		case propFontItalic:
			if f.italic != other.italic {
				return false
			}
		case propFontUnderline:
			if f.underline != other.underline {
				return false
			}
		case propFontStrikeOut:
			if f.strikeOut != other.strikeOut {
				return false
			}
		case propForeground:
			if !ColorsEqual(f.foreground, other.foreground) {
				return false
			}
		case propBackground:
			if !ColorsEqual(f.background, other.background) {
				return false
			}
		case propAnchorHref:
			if f.anchorHref != other.anchorHref {
				return false
			}
		case propImageName:
			if f.imageName != other.imageName {
				return false
			}
		}
	}
	return true
}

// insertionFormat is the format used for text typed after a character of format f.
// Links and images do not extend to new text.
func (f CharFormat) insertionFormat() CharFormat {
	g := f
	g.ClearAnchor()
	g.clearImage()
	return g
}

// Alignment is the horizontal alignment of a block.
type Alignment int

const (
	AlignLeft Alignment = iota + 1
	AlignRight
	AlignHCenter
	AlignJustify
)

// AlignCenter is the same as AlignHCenter.
const AlignCenter = AlignHCenter

func (a Alignment) String() string {
	switch a {
	case AlignRight:
		return "right"
	case AlignHCenter:
		return "center"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// BlockFormat is the paragraph-level formatting of a block.
type BlockFormat struct {
	Alignment    Alignment
	Indent       int
	TopMargin    float32
	BottomMargin float32
	LeftMargin   float32
	RightMargin  float32
}

// ListStyle is the bullet or numbering style of a list.
type ListStyle int

const (
	ListDisc ListStyle = iota + 1
	ListCircle
	ListSquare
	ListDecimal
	ListLowerAlpha
	ListUpperAlpha
	ListLowerRoman
	ListUpperRoman
)

func (s ListStyle) String() string {
	switch s {
	case ListDisc:
		return "disc"
	case ListCircle:
		return "circle"
	case ListSquare:
		return "square"
	case ListDecimal:
		return "decimal"
	case ListLowerAlpha:
		return "lower-alpha"
	case ListUpperAlpha:
		return "upper-alpha"
	case ListLowerRoman:
		return "lower-roman"
	case ListUpperRoman:
		return "upper-roman"
	default:
		return "unknown"
	}
}

// IsNumbered returns true for the numbering styles.
func (s ListStyle) IsNumbered() bool {
	return s >= ListDecimal && s <= ListUpperRoman
}

// ListFormat describes a list: its style and its indentation depth.
type ListFormat struct {
	Style  ListStyle
	Indent int
}

// TextLengthType determines how a TextLength value is interpreted.
type TextLengthType int

const (
	VariableLength TextLengthType = iota
	FixedLength
	PercentageLength
)

func (t TextLengthType) String() string {
	switch t {
	case FixedLength:
		return "Fixed"
	case PercentageLength:
		return "Percentage"
	default:
		return "Variable"
	}
}

// TextLength is a width constraint, such as the width of a table column.
type TextLength struct {
	Type  TextLengthType
	Value float32
}

// Resolve returns the length in points for the given available width. Variable lengths
// resolve to 0, meaning the layout decides.
func (l TextLength) Resolve(available float32) float32 {
	switch l.Type {
	case FixedLength:
		return l.Value
	case PercentageLength:
		return math32.Round(math32.Min(l.Value, 100) * available / 100)
	default:
		return 0
	}
}

// BorderStyle is the line style of a frame border.
type BorderStyle int

const (
	BorderStyleNone BorderStyle = iota
	BorderStyleDotted
	BorderStyleDashed
	BorderStyleSolid
	BorderStyleDouble
)

func (s BorderStyle) String() string {
	switch s {
	case BorderStyleDotted:
		return "dotted"
	case BorderStyleDashed:
		return "dashed"
	case BorderStyleSolid:
		return "solid"
	case BorderStyleDouble:
		return "double"
	default:
		return "none"
	}
}

// FrameFormat is the formatting of a frame. A nil color means no brush.
type FrameFormat struct {
	Background  color.Color
	Foreground  color.Color
	Border      float32
	BorderBrush color.Color
	BorderStyle BorderStyle
	Margin      float32
	Padding     float32
	Width       TextLength
	Height      TextLength
}

// TableFormat is the formatting of a table. Tables are frames, so the frame part of the
// format is embedded.
type TableFormat struct {
	FrameFormat
	CellSpacing       float32
	CellPadding       float32
	HeaderRowCount    int
	BorderCollapse    bool
	Alignment         Alignment
	columnConstraints []TextLength
}

// ColumnWidthConstraints returns a copy of the per-column width constraints.
func (f TableFormat) ColumnWidthConstraints() []TextLength {
	if f.columnConstraints == nil {
		return nil
	}
	return append([]TextLength(nil), f.columnConstraints...)
}

func (f *TableFormat) SetColumnWidthConstraints(constraints []TextLength) {
	if constraints == nil {
		f.columnConstraints = nil
		return
	}
	f.columnConstraints = append([]TextLength(nil), constraints...)
}

// CellFormat holds per-cell overrides. Nil colors mean the cell shows the table's format.
type CellFormat struct {
	Background color.Color
	Foreground color.Color
}

func (f *CellFormat) ClearBackground() { f.Background = nil }

func (f *CellFormat) ClearForeground() { f.Foreground = nil }
