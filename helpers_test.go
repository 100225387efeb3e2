package richedit

import "testing"

// testEditor is a TextEditor without a widget.
type testEditor struct {
	cursor *Cursor
}

func (e *testEditor) TextCursor() *Cursor { return e.cursor.Clone() }

func (e *testEditor) SetTextCursor(c *Cursor) { e.cursor = c.Clone() }

func newTestDocument(t *testing.T, text string) *Document {
	t.Helper()
	doc := NewDocument()
	doc.SetPlainText(text)
	return doc
}

// selectRange returns an editor on doc with [start, end) selected.
func selectRange(doc *Document, start, end int) *testEditor {
	c := NewCursor(doc)
	c.SetPosition(start, MoveAnchor)
	c.SetPosition(end, KeepAnchor)
	return &testEditor{cursor: c}
}

func formatAt(doc *Document, pos int) CharFormat {
	b, off := doc.FindBlock(pos)
	return b.formatAt(off)
}
