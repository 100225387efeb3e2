package richedit

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/dimchansky/utfbom"
	"go.uber.org/zap"
)

var (
	ErrStyleFileNotFound  = errors.New("style file not found")
	ErrMalformedStyleFile = errors.New("malformed style file")
)

type xmlValue struct {
	Value string `xml:"value,attr"`
}

type xmlStyle struct {
	ID              int        `xml:"id,attr"`
	Name            string     `xml:"name,attr"`
	Description     string     `xml:"description,attr"`
	FontFamily      *xmlValue  `xml:"FontFamily"`
	FontSize        *xmlValue  `xml:"FontSize"`
	TextColor       *xmlValue  `xml:"TextColor"`
	BackgroundColor *xmlValue  `xml:"BackgroundColor"`
	Bold            *xmlValue  `xml:"Bold"`
	Italic          *xmlValue  `xml:"Italic"`
	Underline       *xmlValue  `xml:"Underline"`
	Strikeout       *xmlValue  `xml:"Strikeout"`
	Flags           []xmlValue `xml:"Flags"`
}

type xmlShortcut struct {
	Index   int `xml:"index,attr"`
	StyleID int `xml:"styleId,attr"`
}

type xmlStyles struct {
	XMLName   xml.Name      `xml:"styles"`
	Styles    []xmlStyle    `xml:"Style"`
	Shortcuts []xmlShortcut `xml:"Shortcut"`
}

func yesNo(b bool) *xmlValue {
	if b {
		return &xmlValue{Value: "yes"}
	}
	return &xmlValue{Value: "no"}
}

func isYes(v *xmlValue) bool {
	return v != nil && v.Value == "yes"
}

// LoadStyleDefs replaces all styles and shortcuts by those in the XML file at path. If
// the file is missing or malformed, an error wrapping ErrStyleFileNotFound or
// ErrMalformedStyleFile is returned and the manager is left without styles.
func (m *StyleManager) LoadStyleDefs(path string) error {
	f, err := os.Open(path)
	if err != nil {
		m.clear()
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrStyleFileNotFound, path)
		}
		return fmt.Errorf("loading styles from %s: %w", path, err)
	}
	defer f.Close()
	if err := m.ReadStyleDefs(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("styles loaded", zap.String("path", path), zap.Int("count", m.NumStyles()))
	return nil
}

// ReadStyleDefs replaces all styles and shortcuts by those read from r. A leading byte
// order mark is skipped.
func (m *StyleManager) ReadStyleDefs(r io.Reader) error {
	var doc xmlStyles
	m.clear()
	if err := xml.NewDecoder(utfbom.SkipOnly(r)).Decode(&doc); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedStyleFile, err)
	}
	styles := make(map[int]StyleDef, len(doc.Styles))
	for _, xs := range doc.Styles {
		s, err := xs.styleDef()
		if err != nil {
			return fmt.Errorf("%w: style %d: %w", ErrMalformedStyleFile, xs.ID, err)
		}
		if xs.ID < 0 {
			return fmt.Errorf("%w: negative style id %d", ErrMalformedStyleFile, xs.ID)
		}
		styles[xs.ID] = s
	}
	for id, s := range styles {
		m.SetStyle(s, id)
	}
	for _, sc := range doc.Shortcuts {
		m.SetShortcutStyleId(sc.Index, sc.StyleID)
	}
	return nil
}

func (xs xmlStyle) styleDef() (StyleDef, error) {
	s := NewStyleDef()
	s.Name = xs.Name
	s.Description = xs.Description
	if xs.FontFamily != nil {
		s.FontFamily = xs.FontFamily.Value
	}
	if xs.FontSize != nil {
		size, err := strconv.ParseFloat(xs.FontSize.Value, 32)
		if err != nil {
			return s, err
		}
		s.PointSize = float32(size)
	}
	if xs.TextColor != nil {
		c, err := ParseColor(xs.TextColor.Value)
		if err != nil {
			return s, err
		}
		s.TextColor = c
	}
	if xs.BackgroundColor != nil {
		c, err := ParseColor(xs.BackgroundColor.Value)
		if err != nil {
			return s, err
		}
		s.BackgroundColor = c
	}
	s.Bold = isYes(xs.Bold)
	s.Italic = isYes(xs.Italic)
	s.Underline = isYes(xs.Underline)
	s.Strikeout = isYes(xs.Strikeout)
	for _, v := range xs.Flags {
		f, ok := ParseFormatFlag(v.Value)
		if !ok {
			return s, fmt.Errorf("unknown format flag %q", v.Value)
		}
		s.Flags = s.Flags.Add(f)
	}
	return s, nil
}

// SaveStyleDefs writes all styles and configured shortcuts to the XML file at path.
func (m *StyleManager) SaveStyleDefs(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving styles to %s: %w", path, err)
	}
	if err := m.WriteStyleDefs(f); err != nil {
		f.Close()
		return fmt.Errorf("saving styles to %s: %w", path, err)
	}
	return f.Close()
}

// WriteStyleDefs writes all styles in ascending id order and the configured shortcuts.
func (m *StyleManager) WriteStyleDefs(w io.Writer) error {
	doc := xmlStyles{}
	for _, id := range m.StyleIds() {
		s := m.styles[id]
		xs := xmlStyle{
			ID:          id,
			Name:        s.Name,
			Description: s.Description,
			FontFamily:  &xmlValue{Value: s.FontFamily},
			FontSize:    &xmlValue{Value: strconv.FormatFloat(float64(s.PointSize), 'g', -1, 32)},
			Bold:        yesNo(s.Bold),
			Italic:      yesNo(s.Italic),
			Underline:   yesNo(s.Underline),
			Strikeout:   yesNo(s.Strikeout),
		}
		if hex := ColorHex(s.TextColor); hex != "" {
			xs.TextColor = &xmlValue{Value: hex}
		}
		if hex := ColorHex(s.BackgroundColor); hex != "" {
			xs.BackgroundColor = &xmlValue{Value: hex}
		}
		for _, f := range s.Flags.Flags() {
			xs.Flags = append(xs.Flags, xmlValue{Value: f.String()})
		}
		doc.Styles = append(doc.Styles, xs)
	}
	for i, id := range m.shortcuts {
		if id != NoStyle {
			doc.Shortcuts = append(doc.Shortcuts, xmlShortcut{Index: i, StyleID: id})
		}
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
