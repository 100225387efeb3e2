package richedit

// Cell is a table cell. Its content is a frame of its own, so cells may contain several
// blocks and nested tables.
type Cell struct {
	format  CellFormat
	content *Frame
	table   *Table
}

func newCell(t *Table, doc *Document) *Cell {
	c := &Cell{table: t}
	c.content = newFrame(doc, c)
	return c
}

func (c *Cell) Table() *Table { return c.table }

func (c *Cell) Frame() *Frame { return c.content }

func (c *Cell) Format() CellFormat { return c.format }

func (c *Cell) SetFormat(f CellFormat) {
	c.format = f
	c.content.doc.changed()
}

// Row returns the row index of the cell, -1 if the cell was removed from its table.
func (c *Cell) Row() int {
	r, _ := c.table.indexOf(c)
	return r
}

// Column returns the column index of the cell, -1 if the cell was removed from its table.
func (c *Cell) Column() int {
	_, col := c.table.indexOf(c)
	return col
}

func (c *Cell) FirstPosition() int { return c.content.FirstPosition() }

func (c *Cell) LastPosition() int { return c.content.LastPosition() }

// FirstCursorPosition returns a cursor at the start of the cell.
func (c *Cell) FirstCursorPosition() *Cursor {
	cur := NewCursor(c.content.doc)
	cur.SetPosition(c.FirstPosition(), MoveAnchor)
	return cur
}

// LastCursorPosition returns a cursor at the end of the cell.
func (c *Cell) LastCursorPosition() *Cursor {
	cur := NewCursor(c.content.doc)
	cur.SetPosition(c.LastPosition(), MoveAnchor)
	return cur
}

// Text returns the plain text of the cell, blocks separated by newlines.
func (c *Cell) Text() string {
	text := ""
	for i, b := range c.content.Blocks() {
		if i > 0 {
			text += "\n"
		}
		text += b.Text()
	}
	return text
}

// Table is a grid of cells embedded in a frame.
type Table struct {
	format TableFormat
	cells  [][]*Cell
	frame  *Frame
}

func newTable(doc *Document, rows, cols int, format TableFormat) *Table {
	t := &Table{format: format}
	t.cells = make([][]*Cell, rows)
	for r := range t.cells {
		t.cells[r] = t.newRow(doc, cols)
	}
	return t
}

func (t *Table) newRow(doc *Document, cols int) []*Cell {
	row := make([]*Cell, cols)
	for c := range row {
		row[c] = newCell(t, doc)
	}
	return row
}

func (t *Table) parentFrame() *Frame { return t.frame }

// ParentFrame returns the frame the table is embedded in.
func (t *Table) ParentFrame() *Frame { return t.frame }

func (t *Table) Document() *Document { return t.frame.doc }

func (t *Table) Rows() int { return len(t.cells) }

func (t *Table) Columns() int {
	if len(t.cells) == 0 {
		return 0
	}
	return len(t.cells[0])
}

func (t *Table) Format() TableFormat { return t.format }

func (t *Table) SetFormat(f TableFormat) {
	t.format = f
	t.Document().changed()
}

func (t *Table) indexOf(c *Cell) (int, int) {
	for r, row := range t.cells {
		for col, cell := range row {
			if cell == c {
				return r, col
			}
		}
	}
	return -1, -1
}

// CellAt returns the cell at row and column, nil if out of range.
func (t *Table) CellAt(row, col int) *Cell {
	if row < 0 || row >= t.Rows() || col < 0 || col >= t.Columns() {
		return nil
	}
	return t.cells[row][col]
}

// CellAtPosition returns the cell of this table containing pos, nil if pos is outside
// the table. For positions inside a nested table the enclosing cell of this table is
// returned.
func (t *Table) CellAtPosition(pos int) *Cell {
	b, _ := t.Document().FindBlock(pos)
	for f := b.frame; f != nil && f.cell != nil; f = f.cell.table.frame {
		if f.cell.table == t {
			return f.cell
		}
	}
	return nil
}

func (t *Table) FirstPosition() int {
	return t.cells[0][0].FirstPosition()
}

func (t *Table) LastPosition() int {
	return t.cells[t.Rows()-1][t.Columns()-1].LastPosition()
}

// InsertRows inserts n empty rows before row idx.
func (t *Table) InsertRows(idx, n int) {
	if n <= 0 || idx < 0 || idx > t.Rows() {
		return
	}
	doc := t.Document()
	rows := make([][]*Cell, n)
	for i := range rows {
		rows[i] = t.newRow(doc, t.Columns())
	}
	tail := append([][]*Cell(nil), t.cells[idx:]...)
	t.cells = append(append(t.cells[:idx], rows...), tail...)
	doc.changed()
}

func (t *Table) AppendRows(n int) {
	t.InsertRows(t.Rows(), n)
}

// RemoveRows removes n rows starting at idx. Removing every row removes the table.
func (t *Table) RemoveRows(idx, n int) {
	if n <= 0 || idx < 0 || idx >= t.Rows() {
		return
	}
	n = min(n, t.Rows()-idx)
	if n == t.Rows() {
		t.remove()
		return
	}
	t.cells = append(t.cells[:idx], t.cells[idx+n:]...)
	t.Document().changed()
}

// InsertColumns inserts n empty columns before column idx. If the table has column
// width constraints, each new column gets a copy of its left neighbour's constraint,
// or of the first column's when inserting at the front.
func (t *Table) InsertColumns(idx, n int) {
	if n <= 0 || idx < 0 || idx > t.Columns() {
		return
	}
	doc := t.Document()
	for r := range t.cells {
		cells := make([]*Cell, n)
		for i := range cells {
			cells[i] = newCell(t, doc)
		}
		tail := append([]*Cell(nil), t.cells[r][idx:]...)
		t.cells[r] = append(append(t.cells[r][:idx], cells...), tail...)
	}
	if cs := t.format.columnConstraints; len(cs) > 0 {
		like := cs[max(0, min(idx-1, len(cs)-1))]
		added := make([]TextLength, n)
		for i := range added {
			added[i] = like
		}
		at := min(idx, len(cs))
		tail := append([]TextLength(nil), cs[at:]...)
		t.format.columnConstraints = append(append(cs[:at:at], added...), tail...)
	}
	doc.changed()
}

func (t *Table) AppendColumns(n int) {
	t.InsertColumns(t.Columns(), n)
}

// RemoveColumns removes n columns starting at idx together with their width
// constraints. Removing every column removes the table.
func (t *Table) RemoveColumns(idx, n int) {
	if n <= 0 || idx < 0 || idx >= t.Columns() {
		return
	}
	n = min(n, t.Columns()-idx)
	if n == t.Columns() {
		t.remove()
		return
	}
	for r := range t.cells {
		t.cells[r] = append(t.cells[r][:idx], t.cells[r][idx+n:]...)
	}
	if cs := t.format.columnConstraints; idx < len(cs) {
		end := min(idx+n, len(cs))
		t.format.columnConstraints = append(cs[:idx:idx], cs[end:]...)
	}
	t.Document().changed()
}

// Resize adds or removes rows and columns at the end of the table.
func (t *Table) Resize(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		return
	}
	switch {
	case cols > t.Columns():
		t.AppendColumns(cols - t.Columns())
	case cols < t.Columns():
		t.RemoveColumns(cols, t.Columns()-cols)
	}
	switch {
	case rows > t.Rows():
		t.AppendRows(rows - t.Rows())
	case rows < t.Rows():
		t.RemoveRows(rows, t.Rows()-rows)
	}
}

func (t *Table) remove() {
	f := t.frame
	if f == nil {
		return
	}
	if idx := f.indexOf(t); idx >= 0 {
		f.removeItem(idx)
		t.frame = nil
		f.doc.changed()
	}
}
