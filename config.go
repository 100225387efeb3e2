package richedit

import (
	"image/color"
)

// Config stores configuration information for an editor.
type Config struct {
	DefaultFontFamily  string      // font family of new documents
	DefaultFontSize    float32     // point size of new documents
	FontSizes          []float32   // the sizes offered by the size selector
	DefaultColumnWidth float32     // fixed width of columns created from text
	TableBorder        float32     // border width of new tables
	TableBorderColor   color.Color // border brush of new tables
	TableCellPadding   float32     // padding of new tables
	TableBackground    color.Color // background of tables created from text
	CellBlend          BlendMode   // how a cell background is composited over the table background
	InternalLinkPrefix string      // prefix of links to notebook pages
	PastePrompt        string      // question asked before pasting formatted text
	AddendumLayout     string      // time layout of the addendum stamp
}

// NewConfig returns a new config with default values.
func NewConfig() *Config {
	c := &Config{}
	c.DefaultFontFamily = "Helvetica"
	c.DefaultFontSize = 10
	c.FontSizes = []float32{6, 7, 8, 9, 10, 11, 12, 14, 16, 18, 20, 22, 24, 26, 28, 36, 48, 72}
	c.DefaultColumnWidth = 100
	c.TableBorder = 1
	c.TableBorderColor = Black
	c.TableCellPadding = 4
	c.TableBackground = White
	c.CellBlend = BlendNormal
	c.InternalLinkPrefix = InternalLinkPrefix
	c.PastePrompt = "Paste with formatting?"
	c.AddendumLayout = "Monday, January 2, 2006 15:04"
	return c
}

// newTableFormat returns the format of tables created by the editor.
func (c *Config) newTableFormat() TableFormat {
	var f TableFormat
	f.Border = c.TableBorder
	f.BorderBrush = c.TableBorderColor
	f.BorderStyle = BorderStyleSolid
	f.CellPadding = c.TableCellPadding
	f.BorderCollapse = true
	f.Alignment = AlignLeft
	return f
}
