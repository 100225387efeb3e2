package richedit

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRed = color.RGBA{255, 0, 0, 255}

func TestColorAfterNoTextColor(t *testing.T) {
	doc := newTestDocument(t, "colored")
	ed := selectRange(doc, 0, 7)
	SetTextColor(ed, color.RGBA{0, 128, 0, 255})
	NoTextColor(ed)
	SetTextColor(ed, testRed)
	for pos := 0; pos < 7; pos++ {
		assert.True(t, ColorsEqual(testRed, formatAt(doc, pos).Foreground()))
	}
}

func TestNoTextColorRemovesForeground(t *testing.T) {
	doc := newTestDocument(t, "colored")
	ed := selectRange(doc, 0, 7)
	SetTextColor(ed, testRed)
	NoTextColor(ed)
	f := formatAt(doc, 2)
	assert.False(t, f.HasForeground())
	assert.Nil(t, f.Foreground())
}

func TestNilColorClears(t *testing.T) {
	doc := newTestDocument(t, "bg")
	ed := selectRange(doc, 0, 2)
	SetBackgroundColor(ed, testRed)
	require.True(t, formatAt(doc, 0).HasBackground())
	SetBackgroundColor(ed, nil)
	assert.False(t, formatAt(doc, 0).HasBackground())
}

func TestToggles(t *testing.T) {
	doc := newTestDocument(t, "toggle me")
	ed := selectRange(doc, 0, 6)
	ToggleBold(ed)
	assert.Equal(t, WeightBold, formatAt(doc, 1).FontWeight())
	assert.Equal(t, WeightNormal, formatAt(doc, 7).FontWeight())
	ToggleBold(ed)
	assert.Equal(t, WeightNormal, formatAt(doc, 1).FontWeight())

	ToggleItalic(ed)
	ToggleUnderline(ed)
	ToggleStrikethrough(ed)
	f := formatAt(doc, 3)
	assert.True(t, f.FontItalic())
	assert.True(t, f.FontUnderline())
	assert.True(t, f.FontStrikeOut())
	ToggleItalic(ed)
	assert.False(t, formatAt(doc, 3).FontItalic())
}

func TestToggleWithoutSelectionSetsTypingFormat(t *testing.T) {
	doc := newTestDocument(t, "ab")
	c := NewCursor(doc)
	c.SetPosition(1, MoveAnchor)
	ed := &testEditor{cursor: c}
	ToggleBold(ed)
	assert.Equal(t, WeightNormal, formatAt(doc, 0).FontWeight())
	c = ed.TextCursor()
	c.InsertText("X")
	ed.SetTextCursor(c)
	assert.Equal(t, "aXb", doc.PlainText())
	assert.Equal(t, WeightBold, formatAt(doc, 1).FontWeight())
}

func TestAlignment(t *testing.T) {
	doc := newTestDocument(t, "one\ntwo\nthree")
	ed := selectRange(doc, 1, 5)
	CenterAlign(ed)
	blocks := doc.Blocks()
	assert.Equal(t, AlignCenter, blocks[0].Format().Alignment)
	assert.Equal(t, AlignCenter, blocks[1].Format().Alignment)
	assert.NotEqual(t, AlignCenter, blocks[2].Format().Alignment)
	RightAlign(ed)
	assert.Equal(t, AlignRight, blocks[1].Format().Alignment)
	LeftAlign(ed)
	assert.Equal(t, "left", blocks[0].Format().Alignment.String())
}

func TestFontAndSize(t *testing.T) {
	doc := newTestDocument(t, "font")
	ed := selectRange(doc, 0, 4)
	SetFont(ed, "Courier")
	SetFontSize(ed, 16)
	SetFontSize(ed, 0)
	f := formatAt(doc, 2)
	assert.Equal(t, "Courier", f.FontFamily())
	assert.Equal(t, float32(16), f.FontPointSize())
}

func TestBulletAndNumberList(t *testing.T) {
	doc := newTestDocument(t, "a\nb")
	ed := selectRange(doc, 0, 3)
	InsertBullet(ed)
	l := ed.TextCursor().CurrentList()
	require.NotNil(t, l)
	assert.Equal(t, ListFormat{Style: ListDisc, Indent: 1}, l.Format())
	SetBulletStyle(ed, ListSquare)
	assert.Equal(t, ListFormat{Style: ListSquare, Indent: 1}, l.Format())

	doc = newTestDocument(t, "x")
	ed = selectRange(doc, 0, 0)
	InsertNumberList(ed)
	require.NotNil(t, ed.TextCursor().CurrentList())
	assert.True(t, ed.TextCursor().CurrentList().Format().Style.IsNumbered())
}
