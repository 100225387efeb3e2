package richedit

import "image/color"

// TextEditor is anything that edits a document through a cursor. Formatting functions
// take the editor's cursor, change the document through it and hand it back.
type TextEditor interface {
	TextCursor() *Cursor
	SetTextCursor(c *Cursor)
}

func mergeFormat(e TextEditor, f CharFormat) {
	c := e.TextCursor()
	c.MergeCharFormat(f)
	e.SetTextCursor(c)
}

// ToggleBold makes the selection bold unless the format at the cursor already is.
func ToggleBold(e TextEditor) {
	var f CharFormat
	if e.TextCursor().CharFormat().FontWeight() != WeightBold {
		f.SetFontWeight(WeightBold)
	} else {
		f.SetFontWeight(WeightNormal)
	}
	mergeFormat(e, f)
}

func ToggleItalic(e TextEditor) {
	var f CharFormat
	f.SetFontItalic(!e.TextCursor().CharFormat().FontItalic())
	mergeFormat(e, f)
}

func ToggleUnderline(e TextEditor) {
	var f CharFormat
	f.SetFontUnderline(!e.TextCursor().CharFormat().FontUnderline())
	mergeFormat(e, f)
}

func ToggleStrikethrough(e TextEditor) {
	var f CharFormat
	f.SetFontStrikeOut(!e.TextCursor().CharFormat().FontStrikeOut())
	mergeFormat(e, f)
}

func setAlignment(e TextEditor, a Alignment) {
	c := e.TextCursor()
	bf := c.BlockFormat()
	bf.Alignment = a
	c.SetBlockFormat(bf)
	e.SetTextCursor(c)
}

// LeftAlign aligns every paragraph touched by the selection to the left.
func LeftAlign(e TextEditor) { setAlignment(e, AlignLeft) }

func CenterAlign(e TextEditor) { setAlignment(e, AlignCenter) }

func RightAlign(e TextEditor) { setAlignment(e, AlignRight) }

// SetTextColor merges a foreground color into the selection.
func SetTextColor(e TextEditor, c color.Color) {
	if c == nil {
		NoTextColor(e)
		return
	}
	var f CharFormat
	f.SetForeground(c)
	mergeFormat(e, f)
}

// NoTextColor removes the foreground brush. Merging cannot remove a property, so every
// run of the selection gets its own format back with the property cleared.
func NoTextColor(e TextEditor) {
	c := e.TextCursor()
	c.formatSelection((*CharFormat).ClearForeground)
	e.SetTextCursor(c)
}

// SetBackgroundColor merges a background color into the selection.
func SetBackgroundColor(e TextEditor, c color.Color) {
	if c == nil {
		NoBackgroundColor(e)
		return
	}
	var f CharFormat
	f.SetBackground(c)
	mergeFormat(e, f)
}

// NoBackgroundColor removes the background brush of the selection.
func NoBackgroundColor(e TextEditor) {
	c := e.TextCursor()
	c.formatSelection((*CharFormat).ClearBackground)
	e.SetTextCursor(c)
}

func SetFont(e TextEditor, family string) {
	var f CharFormat
	f.SetFontFamily(family)
	mergeFormat(e, f)
}

func SetFontSize(e TextEditor, points float32) {
	if points <= 0 {
		return
	}
	var f CharFormat
	f.SetFontPointSize(points)
	mergeFormat(e, f)
}

// InsertBullet turns the selected paragraphs into a bulleted list at indent 1.
func InsertBullet(e TextEditor) {
	c := e.TextCursor()
	c.CreateList(ListFormat{Style: ListDisc, Indent: 1})
	e.SetTextCursor(c)
}

// InsertNumberList turns the selected paragraphs into a numbered list at indent 1.
func InsertNumberList(e TextEditor) {
	c := e.TextCursor()
	c.CreateList(ListFormat{Style: ListDecimal, Indent: 1})
	e.SetTextCursor(c)
}

// SetBulletStyle changes the style of the list at the cursor. The indent stays.
func SetBulletStyle(e TextEditor, style ListStyle) {
	l := e.TextCursor().CurrentList()
	if l == nil {
		return
	}
	lf := l.Format()
	lf.Style = style
	l.SetFormat(lf)
}
