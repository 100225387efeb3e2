package richedit

import "image/color"

// TextTable is a handle on a table of a document. An unbound handle reports -1 rows and
// columns, and every change made through it is ignored.
type TextTable struct {
	table *Table
}

// IsCursorInTable returns true if the cursor is inside a table.
func IsCursorInTable(c *Cursor) bool {
	return c.CurrentTable() != nil
}

// TableFromCursor returns a handle on the innermost table containing the cursor, or nil.
func TableFromCursor(c *Cursor) *TextTable {
	t := c.CurrentTable()
	if t == nil {
		return nil
	}
	return &TextTable{table: t}
}

// CreateTableAtCursor inserts an empty table with the default table format.
func CreateTableAtCursor(c *Cursor, rows, cols int) *TextTable {
	return createTableAtCursor(c, rows, cols, NewConfig())
}

func createTableAtCursor(c *Cursor, rows, cols int, cfg *Config) *TextTable {
	return &TextTable{table: c.InsertTable(rows, cols, cfg.newTableFormat())}
}

func cellAtCursor(c *Cursor) (*Table, *Cell) {
	t := c.CurrentTable()
	if t == nil {
		return nil, nil
	}
	return t, t.CellAtPosition(c.Position())
}

// CurrentTableRow returns the row of the cell containing the cursor, -1 outside tables.
func CurrentTableRow(c *Cursor) int {
	_, cell := cellAtCursor(c)
	if cell == nil {
		return -1
	}
	return cell.Row()
}

// CurrentTableColumn returns the column of the cell containing the cursor, -1 outside
// tables.
func CurrentTableColumn(c *Cursor) int {
	_, cell := cellAtCursor(c)
	if cell == nil {
		return -1
	}
	return cell.Column()
}

// InsertRow inserts a row above or below the row containing the cursor. Below the last
// row the table is appended to.
func InsertRow(c *Cursor, above bool) {
	t, cell := cellAtCursor(c)
	if t == nil {
		return
	}
	switch {
	case above:
		t.InsertRows(cell.Row(), 1)
	case cell.Row() == t.Rows()-1:
		t.AppendRows(1)
	default:
		t.InsertRows(cell.Row()+1, 1)
	}
}

// InsertColumn inserts a column left or right of the column containing the cursor.
func InsertColumn(c *Cursor, left bool) {
	t, cell := cellAtCursor(c)
	if t == nil {
		return
	}
	switch {
	case left:
		t.InsertColumns(cell.Column(), 1)
	case cell.Column() == t.Columns()-1:
		t.AppendColumns(1)
	default:
		t.InsertColumns(cell.Column()+1, 1)
	}
}

// DeleteRowAtCursor removes the row containing the cursor. The cursor moves to the
// same column of the row that took its place.
func DeleteRowAtCursor(c *Cursor) {
	t, cell := cellAtCursor(c)
	if t == nil {
		return
	}
	row, col := cell.Row(), cell.Column()
	t.RemoveRows(row, 1)
	placeInTable(c, t, row, col)
}

func DeleteColumnAtCursor(c *Cursor) {
	t, cell := cellAtCursor(c)
	if t == nil {
		return
	}
	row, col := cell.Row(), cell.Column()
	t.RemoveColumns(col, 1)
	placeInTable(c, t, row, col)
}

// placeInTable moves the cursor to the start of the cell nearest to row and col. If
// the table is gone, the cursor is only clamped to the document.
func placeInTable(c *Cursor, t *Table, row, col int) {
	if t.frame == nil {
		c.SetPosition(c.Position(), MoveAnchor)
		return
	}
	cell := t.CellAt(min(row, t.Rows()-1), min(col, t.Columns()-1))
	c.SetPosition(cell.FirstPosition(), MoveAnchor)
}

// CopyRow copies the rich content of every cell of sourceRow into the cell of the same
// column in the row containing the cursor. The table keeps its size.
func CopyRow(c *Cursor, sourceRow int) {
	t, cell := cellAtCursor(c)
	if t == nil {
		return
	}
	dest := cell.Row()
	for col := 0; col < t.Columns(); col++ {
		CopyCell(t, sourceRow, col, dest, col)
	}
}

// CopyColumn copies the rich content of every cell of sourceColumn into the cell of the
// same row in the column containing the cursor.
func CopyColumn(c *Cursor, sourceColumn int) {
	t, cell := cellAtCursor(c)
	if t == nil {
		return
	}
	dest := cell.Column()
	for row := 0; row < t.Rows(); row++ {
		CopyCell(t, row, sourceColumn, row, dest)
	}
}

// CopyCell inserts a copy of the source cell's content at the start of the destination
// cell. Copying a cell onto itself does nothing.
func CopyCell(t *Table, sourceRow, sourceColumn, destRow, destColumn int) {
	src := t.CellAt(sourceRow, sourceColumn)
	dst := t.CellAt(destRow, destColumn)
	if src == nil || dst == nil || src == dst {
		return
	}
	frag := FragmentFromFrame(src.Frame())
	dst.FirstCursorPosition().InsertFragment(frag)
}

// TableCellText returns the text of a cell, "" for a cell out of range.
func TableCellText(t *Table, row, col int) string {
	cell := t.CellAt(row, col)
	if cell == nil {
		return ""
	}
	return cell.Text()
}

// Table returns the underlying table, nil for an unbound handle.
func (t *TextTable) Table() *Table {
	if t == nil {
		return nil
	}
	return t.table
}

// IsBound returns true if the handle refers to a table that is still in its document.
func (t *TextTable) IsBound() bool {
	return t != nil && t.table != nil && t.table.frame != nil
}

func (t *TextTable) Rows() int {
	if !t.IsBound() {
		return -1
	}
	return t.table.Rows()
}

func (t *TextTable) Columns() int {
	if !t.IsBound() {
		return -1
	}
	return t.table.Columns()
}

func (t *TextTable) Resize(rows, cols int) {
	if t.IsBound() {
		t.table.Resize(rows, cols)
	}
}

// TableFormat returns the format of the table, the zero format if unbound.
func (t *TextTable) TableFormat() TableFormat {
	if !t.IsBound() {
		return TableFormat{}
	}
	return t.table.Format()
}

func (t *TextTable) SetTableFormat(f TableFormat) {
	if t.IsBound() {
		t.table.SetFormat(f)
	}
}

// FrameFormat returns the frame part of the table format.
func (t *TextTable) FrameFormat() FrameFormat {
	return t.TableFormat().FrameFormat
}

// Background returns the table background, nil if there is none.
func (t *TextTable) Background() color.Color {
	return t.TableFormat().Background
}

// SetBackground sets the table background, or clears it for a nil color. Cell
// backgrounds and foregrounds are cleared on every cell so that the table color shows
// through. Setting a color also gives the table a solid one point black border.
func (t *TextTable) SetBackground(c color.Color) {
	if !t.IsBound() {
		return
	}
	f := t.table.Format()
	f.Background = c
	if c != nil {
		f.BorderBrush = Black
		f.BorderStyle = BorderStyleSolid
		f.Border = 1
	}
	for _, row := range t.table.cells {
		for _, cell := range row {
			cell.format.ClearBackground()
			cell.format.ClearForeground()
		}
	}
	t.table.SetFormat(f)
}

func (t *TextTable) ColumnConstraints() []TextLength {
	return t.TableFormat().ColumnWidthConstraints()
}

func (t *TextTable) SetColumnConstraints(constraints []TextLength) {
	if !t.IsBound() {
		return
	}
	f := t.table.Format()
	f.SetColumnWidthConstraints(constraints)
	t.table.SetFormat(f)
}

// EffectiveCellBackground returns the color a renderer paints behind a cell: the cell's
// own background composited over the table background with the given blend mode.
func (t *TextTable) EffectiveCellBackground(row, col int, mode BlendMode) color.Color {
	if !t.IsBound() {
		return nil
	}
	cell := t.table.CellAt(row, col)
	if cell == nil {
		return nil
	}
	return BlendColors(mode, t.table.Format().Background, cell.Format().Background)
}
