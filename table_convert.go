package richedit

import "strings"

// SelectionToTable replaces the selected text by a table. Lines become rows and fields
// become cells: fields are tab separated if the selection contains a tab and whitespace
// separated otherwise. Blank lines are skipped and the widest line determines the
// column count. Returns nil if the selection holds no text.
func SelectionToTable(c *Cursor) *TextTable {
	return selectionToTable(c, NewConfig())
}

func selectionToTable(c *Cursor, cfg *Config) *TextTable {
	if !c.HasSelection() {
		return nil
	}
	grid := parseGrid(c.SelectedText())
	if len(grid) == 0 {
		return nil
	}
	cols := 0
	for _, fields := range grid {
		cols = max(cols, len(fields))
	}
	c.RemoveSelectedText()
	format := cfg.newTableFormat()
	constraints := make([]TextLength, cols)
	for i := range constraints {
		constraints[i] = TextLength{Type: FixedLength, Value: cfg.DefaultColumnWidth}
	}
	format.SetColumnWidthConstraints(constraints)
	format.Background = cfg.TableBackground
	t := c.InsertTable(len(grid), cols, format)
	for row, fields := range grid {
		for col, text := range fields {
			if text == "" {
				continue
			}
			t.CellAt(row, col).FirstCursorPosition().InsertText(text)
		}
	}
	c.SetPosition(t.CellAt(0, 0).FirstPosition(), MoveAnchor)
	return &TextTable{table: t}
}

func parseGrid(text string) [][]string {
	text = strings.ReplaceAll(text, string(ParagraphSeparator), "\n")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	tabbed := strings.Contains(text, "\t")
	var grid [][]string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !tabbed {
			grid = append(grid, strings.Fields(line))
			continue
		}
		fields := strings.Split(line, "\t")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		grid = append(grid, fields)
	}
	return grid
}

// TableToText replaces the table containing the cursor by its text: cells joined by a
// space, rows by newlines, followed by a newline. The table is removed together with
// the empty paragraph that inserting it split off before it, and the text starts the
// block that followed it.
func TableToText(c *Cursor) {
	t := c.CurrentTable()
	if t == nil {
		return
	}
	lines := make([]string, t.Rows())
	for r := range lines {
		cells := make([]string, t.Columns())
		for col := range cells {
			cells[col] = TableCellText(t, r, col)
		}
		lines[r] = strings.Join(cells, " ")
	}
	text := strings.Join(lines, "\n") + "\n"
	f := t.frame
	idx := f.indexOf(t)
	f.removeItem(idx)
	t.frame = nil
	if idx > 0 {
		if prev, ok := f.items[idx-1].(*Block); ok && prev.Length() == 0 && prev.list == nil {
			f.removeItem(idx - 1)
			idx--
		}
	}
	next, ok := f.items[min(idx, len(f.items)-1)].(*Block)
	if !ok || idx >= len(f.items) {
		next = &Block{}
		f.insertItems(idx, next)
	}
	f.doc.changed()
	c.SetPosition(next.Position(), MoveAnchor)
	c.InsertText(text)
}
