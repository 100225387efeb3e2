package richedit

import (
	"errors"
	"net/url"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLocator struct {
	pos int
	ok  bool
}

func (l *fakeLocator) PositionAt(fyne.Position) (int, bool) { return l.pos, l.ok }

type fakePrompter struct {
	answer bool
	asked  []string
}

func (p *fakePrompter) Confirm(question string) bool {
	p.asked = append(p.asked, question)
	return p.answer
}

type fakeOpener struct {
	opened []string
	err    error
}

func (o *fakeOpener) OpenURL(u *url.URL) error {
	o.opened = append(o.opened, u.String())
	return o.err
}

type fakeClipboard struct {
	content string
}

func (c *fakeClipboard) Content() string { return c.content }

func (c *fakeClipboard) SetContent(content string) { c.content = content }

func newTestEdit(t *testing.T, text string, styles *StyleManager, store PageStore) *TextEdit {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)
	e := NewTextEdit(1, styles, store, nil)
	e.Document().SetPlainText(text)
	return e
}

func selectText(e *TextEdit, start, end int) {
	c := e.TextCursor()
	c.SetPosition(start, MoveAnchor)
	c.SetPosition(end, KeepAnchor)
	e.SetTextCursor(c)
}

func menuLabels(m *fyne.Menu) []string {
	var labels []string
	for _, item := range m.Items {
		if item.IsSeparator {
			continue
		}
		labels = append(labels, item.Label)
	}
	return labels
}

func childMenu(m *fyne.Menu, label string) *fyne.Menu {
	for _, item := range m.Items {
		if item.Label == label {
			return item.ChildMenu
		}
	}
	return nil
}

func TestTabInPlainText(t *testing.T) {
	e := newTestEdit(t, "ab", nil, nil)
	assert.False(t, e.HandleTab(false))
	selectText(e, 1, 1)
	e.TypedKey(&fyne.KeyEvent{Name: fyne.KeyTab})
	assert.Equal(t, "a\tb", e.Document().PlainText())
	e.TypedShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyTab, Modifier: fyne.KeyModifierShift})
	assert.Equal(t, "a\tb", e.Document().PlainText())
}

func TestTabInList(t *testing.T) {
	e := newTestEdit(t, "a\nb", nil, nil)
	selectText(e, 0, 3)
	InsertBullet(e)
	selectText(e, 2, 2)
	require.True(t, e.HandleTab(false))
	assert.Equal(t, ListFormat{Style: ListCircle, Indent: 2}, e.TextCursor().CurrentList().Format())
	require.True(t, e.HandleTab(true))
	assert.Equal(t, ListFormat{Style: ListDisc, Indent: 1}, e.TextCursor().CurrentList().Format())
	assert.Equal(t, "a\nb", e.Document().PlainText())
}

func TestTabInTable(t *testing.T) {
	e := newTestEdit(t, "", nil, nil)
	tt := e.InsertTable(2, 2)
	require.NotNil(t, tt)
	require.True(t, e.HandleTab(false))
	assert.Equal(t, 1, CurrentTableColumn(e.TextCursor()))
	require.True(t, e.HandleTab(false))
	assert.Equal(t, 1, CurrentTableRow(e.TextCursor()))
	assert.Equal(t, 0, CurrentTableColumn(e.TextCursor()))
	require.True(t, e.HandleTab(true))
	assert.Equal(t, 0, CurrentTableRow(e.TextCursor()))
	assert.Equal(t, 1, CurrentTableColumn(e.TextCursor()))
}

func TestPastePlainWhenDeclined(t *testing.T) {
	e := newTestEdit(t, "", nil, nil)
	p := &fakePrompter{}
	e.Prompter = p
	e.InsertFromMimeData(MimeData{Text: "plain", Fragment: NewFragmentFromText("rich")})
	assert.Equal(t, "plain", e.Document().PlainText())
	assert.Equal(t, []string{e.Config.PastePrompt}, p.asked)

	p.answer = true
	e.InsertFromMimeData(MimeData{Text: "plain", Fragment: NewFragmentFromText("rich")})
	assert.Equal(t, "plainrich", e.Document().PlainText())

	e.InsertFromMimeData(MimeData{Text: "!"})
	assert.Equal(t, "plainrich!", e.Document().PlainText())
	assert.Len(t, p.asked, 2)
}

func TestCopyCutPaste(t *testing.T) {
	e := newTestEdit(t, "hello world", nil, nil)
	cb := &fakeClipboard{}
	selectText(e, 0, 5)
	e.TypedShortcut(&fyne.ShortcutCopy{Clipboard: cb})
	assert.Equal(t, "hello", cb.content)
	assert.Equal(t, "hello world", e.Document().PlainText())
	e.TypedShortcut(&fyne.ShortcutCut{Clipboard: cb})
	assert.Equal(t, " world", e.Document().PlainText())
	selectText(e, 6, 6)
	e.TypedShortcut(&fyne.ShortcutPaste{Clipboard: cb})
	assert.Equal(t, " worldhello", e.Document().PlainText())
}

func TestInsertImage(t *testing.T) {
	store := NewMemoryPageStore()
	e := newTestEdit(t, "ab", nil, store)
	selectText(e, 1, 1)
	require.True(t, e.InsertImage([]byte{1, 2, 3}))
	assert.Equal(t, "a\ufffcb", e.Document().PlainText())
	names := store.ImagesOfPage(1)
	require.Len(t, names, 1)
	data, ok := e.Document().Resource(names[0])
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, data)
	assert.Equal(t, names[0], formatAt(e.Document(), 1).ImageName())

	assert.False(t, e.InsertImage(nil))
	assert.False(t, newTestEdit(t, "", nil, nil).InsertImage([]byte{1}))
}

func TestEditorNotifiesChanges(t *testing.T) {
	e := newTestEdit(t, "", nil, nil)
	changed, boardChanged, moved := 0, 0, 0
	e.OnChanged = func() { changed++ }
	e.OnCursorChanged = func() { moved++ }
	e.Switchboard().OnTextChanged(func() { boardChanged++ })
	e.TypedRune('x')
	assert.Equal(t, "x", e.Document().PlainText())
	assert.Equal(t, 1, changed)
	assert.Equal(t, 1, boardChanged)
	assert.Equal(t, 1, moved)
	e.TypedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})
	assert.Equal(t, "", e.Document().PlainText())
	e.TypedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})
	assert.Equal(t, 2, changed)
}

func TestBoldShortcut(t *testing.T) {
	e := newTestEdit(t, "bold", nil, nil)
	selectText(e, 0, 4)
	e.TypedShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyB, Modifier: fyne.KeyModifierControl})
	assert.Equal(t, WeightBold, formatAt(e.Document(), 2).FontWeight())
}

func TestStyleShortcut(t *testing.T) {
	styles := NewStyleManager()
	s := NewStyleDef()
	s.Italic = true
	s.Flags = NewFormatFlags(Italic)
	styles.SetShortcutStyleId(1, styles.AddStyle(s))
	e := newTestEdit(t, "styled", styles, nil)
	selectText(e, 0, 6)
	e.TypedShortcut(&desktop.CustomShortcut{KeyName: fyne.Key1, Modifier: fyne.KeyModifierAlt})
	assert.False(t, formatAt(e.Document(), 0).FontItalic())
	e.TypedShortcut(&desktop.CustomShortcut{KeyName: fyne.Key2, Modifier: fyne.KeyModifierAlt})
	assert.True(t, formatAt(e.Document(), 0).FontItalic())
}

func TestRemoveShortcutHandler(t *testing.T) {
	e := newTestEdit(t, "bold", nil, nil)
	sc := &desktop.CustomShortcut{KeyName: fyne.KeyB, Modifier: fyne.KeyModifierControl}
	e.RemoveShortcutHandler(GetKeyboardShortcutKey(sc))
	selectText(e, 0, 4)
	e.TypedShortcut(sc)
	assert.Equal(t, WeightNormal, formatAt(e.Document(), 2).FontWeight())
	e.RemoveKeyHandler(fyne.KeyBackspace)
	e.TypedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})
	assert.Equal(t, "bold", e.Document().PlainText())
}

func TestContextMenu(t *testing.T) {
	styles := NewStyleManager()
	s := NewStyleDef()
	s.Name = "Quote"
	styles.AddStyle(s)
	e := newTestEdit(t, "some text", styles, nil)
	e.Clipboard = &fakeClipboard{}

	labels := menuLabels(e.ContextMenu())
	assert.Equal(t, []string{"Paste", "Select All", "Insert Link to Page...", "Insert Web Link...",
		"Insert Image from File..."}, labels)

	selectText(e, 0, 4)
	m := e.ContextMenu()
	labels = menuLabels(m)
	assert.Contains(t, labels, "Cut")
	assert.Contains(t, labels, "Apply Style")
	assert.Contains(t, labels, "Convert Selection to Table")
	assert.Contains(t, labels, "Turn Selection into Web Link")
	assert.NotContains(t, labels, "Row")
	assert.Equal(t, []string{"Quote"}, menuLabels(childMenu(m, "Apply Style")))
}

func TestTableContextMenu(t *testing.T) {
	e := newTestEdit(t, "", nil, nil)
	e.InsertTable(2, 2)
	m := e.ContextMenu()
	assert.Contains(t, menuLabels(m), "Format Table...")
	assert.NotContains(t, menuLabels(childMenu(m, "Row")), "Paste Row")

	e.CopyTableRow()
	e.CopyTableColumn()
	m = e.ContextMenu()
	assert.Contains(t, menuLabels(childMenu(m, "Row")), "Paste Row")
	assert.Contains(t, menuLabels(childMenu(m, "Column")), "Paste Column")

	e.InsertTableRowBelow()
	m = e.ContextMenu()
	assert.NotContains(t, menuLabels(childMenu(m, "Row")), "Paste Row")
	assert.NotContains(t, menuLabels(childMenu(m, "Column")), "Paste Column")
	assert.Equal(t, 3, TableFromCursor(e.TextCursor()).Rows())
}

func TestTableSlots(t *testing.T) {
	e := newTestEdit(t, "", nil, nil)
	tt := e.InsertTable(2, 2)
	tt.Table().CellAt(0, 0).FirstCursorPosition().InsertText("x")
	e.CopyTableRow()
	c := e.TextCursor()
	c.SetPosition(tt.Table().CellAt(1, 0).FirstPosition(), MoveAnchor)
	e.SetTextCursor(c)
	e.PasteTableRow()
	assert.Equal(t, "x", TableCellText(tt.Table(), 1, 0))

	var requested *TextTable
	e.Switchboard().OnTableFormatRequested(func(t *TextTable) { requested = t })
	e.FormatTable()
	require.NotNil(t, requested)
	assert.Same(t, tt.Table(), requested.Table())

	e.InsertTableColumnRight()
	e.DeleteTableRow()
	assert.Equal(t, 1, tt.Rows())
	assert.Equal(t, 3, tt.Columns())
	assert.Equal(t, 0, CurrentTableRow(e.TextCursor()))
	assert.Equal(t, 0, CurrentTableColumn(e.TextCursor()))
	e.ConvertTableToText()
	assert.False(t, tt.IsBound())
	assert.False(t, IsCursorInTable(e.TextCursor()))
}

func TestConvertSelectionToTable(t *testing.T) {
	e := newTestEdit(t, "a b\nc d", nil, nil)
	e.SelectAll()
	tt := e.ConvertSelectionToTable()
	require.NotNil(t, tt)
	assert.Equal(t, 2, tt.Rows())
	assert.True(t, IsCursorInTable(e.TextCursor()))
}

func linkDoc(t *testing.T, store PageStore) *TextEdit {
	e := newTestEdit(t, "", nil, store)
	require.NoError(t, e.InsertWebLink("https://example.com", "web"))
	e.TypedRune(' ')
	require.NoError(t, e.InsertPageLink(2, ""))
	return e
}

func TestInsertLinks(t *testing.T) {
	store := NewMemoryPageStore()
	store.SetPageTitle(2, "Second")
	e := linkDoc(t, store)
	assert.Equal(t, "web Second", e.Document().PlainText())
	anchors := e.Links().Anchors()
	require.Len(t, anchors, 2)
	assert.Equal(t, "https://example.com", anchors[0].Href)
	assert.Equal(t, "NB://page=2", anchors[1].Href)
	assert.False(t, formatAt(e.Document(), 3).IsAnchor())

	require.NoError(t, e.InsertPageLink(5, ""))
	assert.Equal(t, "web SecondPage 5", e.Document().PlainText())

	assert.ErrorIs(t, e.InsertPageLink(InvalidPageID, "x"), ErrInvalidLink)
	assert.ErrorIs(t, e.InsertWebLink("example.com", ""), ErrInvalidLink)
	assert.ErrorIs(t, e.InsertWebLink("NB://page=1", ""), ErrInvalidLink)
}

func TestHoverOverride(t *testing.T) {
	e := linkDoc(t, nil)
	loc := &fakeLocator{pos: 1, ok: true}
	e.Locator = loc
	var status []string
	e.OnStatusMessage = func(msg string) { status = append(status, msg) }

	assert.Equal(t, desktop.TextCursor, e.Cursor())
	e.MouseIn(&desktop.MouseEvent{})
	e.MouseMoved(&desktop.MouseEvent{})
	assert.Equal(t, desktop.PointerCursor, e.Cursor())
	assert.Equal(t, []string{"https://example.com"}, status)

	loc.pos = 5
	e.MouseMoved(&desktop.MouseEvent{})
	assert.Equal(t, desktop.PointerCursor, e.Cursor())
	assert.Equal(t, "Go to page 2", status[len(status)-1])

	loc.pos = 3
	e.MouseMoved(&desktop.MouseEvent{})
	assert.Equal(t, desktop.TextCursor, e.Cursor())
	assert.False(t, e.override.Active())
	assert.Equal(t, "", status[len(status)-1])

	loc.pos = 0
	e.MouseMoved(&desktop.MouseEvent{})
	e.MouseOut()
	assert.False(t, e.override.Active())

	e.MouseIn(&desktop.MouseEvent{})
	e.Destroy()
	assert.False(t, e.override.Active())
}

func TestTappedFollowsLinks(t *testing.T) {
	e := linkDoc(t, nil)
	loc := &fakeLocator{pos: 5, ok: true}
	e.Locator = loc
	var pages []PageID
	e.Switchboard().OnGotoPage(func(id PageID) { pages = append(pages, id) })
	e.Tapped(&fyne.PointEvent{})
	assert.Equal(t, []PageID{2}, pages)

	opener := &fakeOpener{err: errors.New("no browser")}
	e.Opener = opener
	loc.pos = 0
	e.Tapped(&fyne.PointEvent{})
	assert.Equal(t, []string{"https://example.com"}, opener.opened)

	loc.pos = 3
	e.Tapped(&fyne.PointEvent{})
	assert.Equal(t, 3, e.TextCursor().Position())
	assert.Len(t, pages, 1)

	e.FollowLink(Link{Kind: PageLink, Href: "NB://nopage"})
	assert.Len(t, pages, 1)
}

func TestUrlifySelection(t *testing.T) {
	e := newTestEdit(t, "visit example.com now", nil, nil)
	selectText(e, 6, 17)
	require.True(t, e.UrlifySelection())
	a, ok := e.Links().AnchorAt(6)
	require.True(t, ok)
	assert.Equal(t, "https://example.com", a.Href)
	assert.Equal(t, Range{Start: 6, End: 17}, a.Range)

	selectText(e, 0, 13)
	assert.False(t, e.UrlifySelection())
	selectText(e, 0, 0)
	assert.False(t, e.UrlifySelection())
}
