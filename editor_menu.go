package richedit

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// ContextMenu returns the context menu for the current cursor. Entries depend on the
// selection, the defined styles, a table at the cursor and a list that can be merged.
func (e *TextEdit) ContextMenu() *fyne.Menu {
	c := e.cursor
	var items []*fyne.MenuItem
	if e.Clipboard != nil {
		if c.HasSelection() {
			items = append(items,
				fyne.NewMenuItem("Cut", func() { e.copySelection(e.Clipboard, true) }),
				fyne.NewMenuItem("Copy", func() { e.copySelection(e.Clipboard, false) }))
		}
		items = append(items, fyne.NewMenuItem("Paste", func() {
			e.InsertFromMimeData(MimeData{Text: e.Clipboard.Content()})
		}))
	}
	items = append(items, fyne.NewMenuItem("Select All", e.SelectAll))
	if c.HasSelection() && e.styles != nil && e.styles.NumStyles() > 0 {
		item := fyne.NewMenuItem("Apply Style", nil)
		item.ChildMenu = e.styleMenu()
		items = append(items, fyne.NewMenuItemSeparator(), item)
	}
	items = append(items, fyne.NewMenuItemSeparator())
	if IsCursorInTable(c) {
		items = append(items, e.tableMenuItems()...)
		items = append(items, fyne.NewMenuItemSeparator())
	}
	if c.HasSelection() {
		items = append(items,
			fyne.NewMenuItem("Convert Selection to Table", func() { e.ConvertSelectionToTable() }),
			fyne.NewMenuItem("Turn Selection into Web Link", func() { e.UrlifySelection() }))
	}
	if CanMergeWithPreviousList(c) {
		items = append(items, fyne.NewMenuItem("Merge with Previous List", e.MergeWithPreviousList))
	}
	items = append(items,
		fyne.NewMenuItem("Insert Link to Page...", func() { request(e.OnPageLinkRequested) }),
		fyne.NewMenuItem("Insert Web Link...", func() { request(e.OnWebLinkRequested) }),
		fyne.NewMenuItem("Insert Image from File...", func() { request(e.OnImageFileRequested) }))
	return fyne.NewMenu("", items...)
}

func request(fn func()) {
	if fn != nil {
		fn()
	}
}

func (e *TextEdit) styleMenu() *fyne.Menu {
	var items []*fyne.MenuItem
	for _, id := range e.styles.StyleIds() {
		style, _ := e.styles.Style(id)
		styleID := id
		items = append(items, fyne.NewMenuItem(style.Name, func() { e.ApplyStyle(styleID) }))
	}
	return fyne.NewMenu("", items...)
}

func (e *TextEdit) tableMenuItems() []*fyne.MenuItem {
	row := []*fyne.MenuItem{
		fyne.NewMenuItem("Insert Row Above", e.InsertTableRowAbove),
		fyne.NewMenuItem("Insert Row Below", e.InsertTableRowBelow),
		fyne.NewMenuItem("Copy Row", e.CopyTableRow),
	}
	if e.copiedRow != -1 {
		row = append(row, fyne.NewMenuItem("Paste Row", e.PasteTableRow))
	}
	row = append(row, fyne.NewMenuItem("Delete Row", e.DeleteTableRow))
	col := []*fyne.MenuItem{
		fyne.NewMenuItem("Insert Column Left", e.InsertTableColumnLeft),
		fyne.NewMenuItem("Insert Column Right", e.InsertTableColumnRight),
		fyne.NewMenuItem("Copy Column", e.CopyTableColumn),
	}
	if e.copiedColumn != -1 {
		col = append(col, fyne.NewMenuItem("Paste Column", e.PasteTableColumn))
	}
	col = append(col, fyne.NewMenuItem("Delete Column", e.DeleteTableColumn))
	rowItem := fyne.NewMenuItem("Row", nil)
	rowItem.ChildMenu = fyne.NewMenu("", row...)
	colItem := fyne.NewMenuItem("Column", nil)
	colItem.ChildMenu = fyne.NewMenu("", col...)
	return []*fyne.MenuItem{
		rowItem,
		colItem,
		fyne.NewMenuItem("Format Table...", e.FormatTable),
		fyne.NewMenuItem("Convert Table to Text", e.ConvertTableToText),
	}
}

// TappedSecondary shows the context menu.
func (e *TextEdit) TappedSecondary(evt *fyne.PointEvent) {
	menu := e.ContextMenu()
	if e.OnContextMenu != nil {
		e.OnContextMenu(menu, evt.AbsolutePosition)
		return
	}
	app := fyne.CurrentApp()
	if app == nil {
		return
	}
	if cv := app.Driver().CanvasForObject(e); cv != nil {
		widget.ShowPopUpMenuAtPosition(menu, cv, evt.AbsolutePosition)
	}
}

// Row and column numbers of a copied row or column are invalid once the table changes
// shape, so inserting or deleting forgets them.
func (e *TextEdit) forgetCopies() {
	e.copiedRow = -1
	e.copiedColumn = -1
}

func (e *TextEdit) InsertTableRowAbove() {
	InsertRow(e.cursor, true)
	e.forgetCopies()
}

func (e *TextEdit) InsertTableRowBelow() {
	InsertRow(e.cursor, false)
	e.forgetCopies()
}

func (e *TextEdit) InsertTableColumnLeft() {
	InsertColumn(e.cursor, true)
	e.forgetCopies()
}

func (e *TextEdit) InsertTableColumnRight() {
	InsertColumn(e.cursor, false)
	e.forgetCopies()
}

func (e *TextEdit) DeleteTableRow() {
	DeleteRowAtCursor(e.cursor)
	e.forgetCopies()
	e.cursorChanged()
}

func (e *TextEdit) DeleteTableColumn() {
	DeleteColumnAtCursor(e.cursor)
	e.forgetCopies()
	e.cursorChanged()
}

// CopyTableRow remembers the row at the cursor for a later paste.
func (e *TextEdit) CopyTableRow() {
	e.copiedRow = CurrentTableRow(e.cursor)
}

func (e *TextEdit) CopyTableColumn() {
	e.copiedColumn = CurrentTableColumn(e.cursor)
}

// PasteTableRow copies the remembered row into the row at the cursor.
func (e *TextEdit) PasteTableRow() {
	if e.copiedRow == -1 {
		return
	}
	CopyRow(e.cursor, e.copiedRow)
}

func (e *TextEdit) PasteTableColumn() {
	if e.copiedColumn == -1 {
		return
	}
	CopyColumn(e.cursor, e.copiedColumn)
}

// FormatTable asks the switchboard for a table format dialog.
func (e *TextEdit) FormatTable() {
	if t := TableFromCursor(e.cursor); t != nil {
		e.board.EmitTableFormatRequested(t)
	}
}

func (e *TextEdit) ConvertTableToText() {
	TableToText(e.cursor)
	e.forgetCopies()
	e.cursorChanged()
}

// ConvertSelectionToTable replaces the selection by a table using the editor's
// configuration.
func (e *TextEdit) ConvertSelectionToTable() *TextTable {
	t := selectionToTable(e.cursor, e.Config)
	if t != nil {
		e.forgetCopies()
		e.cursorChanged()
	}
	return t
}

// InsertTable inserts an empty table with the editor's table format.
func (e *TextEdit) InsertTable(rows, cols int) *TextTable {
	t := createTableAtCursor(e.cursor, rows, cols, e.Config)
	e.forgetCopies()
	e.cursorChanged()
	return t
}

func (e *TextEdit) MergeWithPreviousList() {
	MergeListWithPrevious(e.cursor)
}
