package richedit

import (
	"fmt"

	"go.uber.org/zap"
)

// Dump logs the format of the table and, recursively, the content of every cell at
// debug level.
func (t *TextTable) Dump() {
	if !t.IsBound() {
		logger.Debug("unbound table")
		return
	}
	dumpTable(t.table, 0)
}

func lengthStrings(ls []TextLength) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = fmt.Sprintf("%v %g", l.Type, l.Value)
	}
	return out
}

func dumpTable(t *Table, depth int) {
	f := t.Format()
	logger.Debug("table",
		zap.Int("depth", depth),
		zap.Int("rows", t.Rows()),
		zap.Int("columns", t.Columns()),
		zap.String("background", ColorHex(f.Background)),
		zap.Float32("border", f.Border),
		zap.String("borderBrush", ColorHex(f.BorderBrush)),
		zap.Stringer("borderStyle", f.BorderStyle),
		zap.Float32("cellPadding", f.CellPadding),
		zap.Float32("cellSpacing", f.CellSpacing),
		zap.Int("headerRows", f.HeaderRowCount),
		zap.Strings("columnConstraints", lengthStrings(f.ColumnWidthConstraints())))
	for _, row := range t.cells {
		for _, cell := range row {
			dumpCell(cell, depth)
		}
	}
}

func dumpCell(cell *Cell, depth int) {
	f := cell.Format()
	logger.Debug("cell",
		zap.Int("depth", depth),
		zap.Int("row", cell.Row()),
		zap.Int("column", cell.Column()),
		zap.String("background", ColorHex(f.Background)),
		zap.String("foreground", ColorHex(f.Foreground)))
	dumpFrame(cell.Frame(), depth+1)
}

func dumpFrame(f *Frame, depth int) {
	for _, it := range f.items {
		switch v := it.(type) {
		case *Block:
			dumpBlock(v, depth)
		case *Table:
			dumpTable(v, depth)
		}
	}
}

func dumpBlock(b *Block, depth int) {
	bf := b.Format()
	logger.Debug("block",
		zap.Int("depth", depth),
		zap.Int("position", b.Position()),
		zap.String("text", b.Text()),
		zap.Stringer("alignment", bf.Alignment),
		zap.Int("indent", bf.Indent))
	for _, frag := range b.Fragments() {
		cf := frag.Format
		logger.Debug("fragment",
			zap.Int("depth", depth),
			zap.String("text", frag.Text),
			zap.String("fontFamily", cf.FontFamily()),
			zap.Float32("pointSize", cf.FontPointSize()),
			zap.Int("weight", int(cf.FontWeight())),
			zap.Bool("italic", cf.FontItalic()),
			zap.Bool("underline", cf.FontUnderline()),
			zap.Bool("strikeOut", cf.FontStrikeOut()),
			zap.String("foreground", ColorHex(cf.Foreground())),
			zap.String("background", ColorHex(cf.Background())))
	}
}
