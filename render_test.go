package richedit

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentsOfListAndLink(t *testing.T) {
	doc := newTestDocument(t, "item\n")
	selectRange(doc, 0, 0).cursor.CreateList(ListFormat{Style: ListDecimal, Indent: 1})
	c := NewCursor(doc)
	c.SetPosition(5, MoveAnchor)
	insertAnchor(c, "site", "https://example.com")

	segs := Segments(doc)
	require.Len(t, segs, 5)
	assert.Equal(t, "    1. ", segs[0].(*widget.TextSegment).Text)
	assert.Equal(t, "item", segs[1].(*widget.TextSegment).Text)
	assert.False(t, segs[2].(*widget.TextSegment).Style.Inline)
	link, ok := segs[3].(*widget.HyperlinkSegment)
	require.True(t, ok)
	assert.Equal(t, "site", link.Text)
	assert.Equal(t, "example.com", link.URL.Host)
}

func TestSegmentStyles(t *testing.T) {
	doc := newTestDocument(t, "big")
	ed := selectRange(doc, 0, 3)
	SetFontSize(ed, 18)
	ToggleBold(ed)
	RightAlign(ed)
	segs := Segments(doc)
	require.Len(t, segs, 2)
	text := segs[0].(*widget.TextSegment)
	assert.True(t, text.Style.TextStyle.Bold)
	assert.Equal(t, theme.SizeNameHeadingText, text.Style.SizeName)
	assert.Equal(t, fyne.TextAlignTrailing, segs[1].(*widget.TextSegment).Style.Alignment)
}

func TestSegmentsOfTable(t *testing.T) {
	doc := newTestDocument(t, "a\tb\nc\td")
	require.NotNil(t, SelectionToTable(selectAll(doc)))
	var rows []string
	for _, s := range Segments(doc) {
		if ts, ok := s.(*widget.TextSegment); ok && ts.Text != "" {
			rows = append(rows, ts.Text)
		}
	}
	assert.Equal(t, []string{"a │ b", "c │ d"}, rows)
}
