package richedit

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWidget(t *testing.T, text string, styles *StyleManager) *RichTextEditWidget {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)
	w := NewRichTextEditWidget(1, styles, NewMemoryPageStore(), nil)
	w.SetDocumentText(text)
	return w
}

func TestFindClosestSize(t *testing.T) {
	w := newTestWidget(t, "", nil)
	assert.Equal(t, float32(14), w.FindClosestSize(14))
	assert.Equal(t, float32(14), w.FindClosestSize(13))
	assert.Equal(t, float32(6), w.FindClosestSize(1))
	assert.Equal(t, float32(72), w.FindClosestSize(100))
	w.Edit.Config.FontSizes = nil
	assert.Equal(t, float32(13), w.FindClosestSize(13))
}

func TestFindWraps(t *testing.T) {
	w := newTestWidget(t, "one two\none two", nil)
	sel := func() Range {
		c := w.Edit.TextCursor()
		return Range{Start: c.SelectionStart(), End: c.SelectionEnd()}
	}
	require.True(t, w.Find("two", false, true))
	assert.Equal(t, Range{Start: 4, End: 7}, sel())
	require.True(t, w.Find("two", false, true))
	assert.Equal(t, Range{Start: 12, End: 15}, sel())
	require.True(t, w.Find("two", false, true))
	assert.Equal(t, Range{Start: 4, End: 7}, sel())

	require.True(t, w.Find("ONE", true, false))
	assert.Equal(t, Range{Start: 0, End: 3}, sel())
	require.True(t, w.Find("ONE", true, false))
	assert.Equal(t, Range{Start: 8, End: 11}, sel())

	assert.False(t, w.Find("ONE", false, true))
	assert.False(t, w.Find("", false, true))
	assert.False(t, w.Find("three", true, false))
}

func TestToolbarFollowsCursor(t *testing.T) {
	styles := NewStyleManager()
	s := NewStyleDef()
	s.Name = "Heading"
	styles.SetShortcutStyleId(0, styles.AddStyle(s))
	w := newTestWidget(t, "some\ntext", styles)
	var states []ToolbarState
	w.OnControlsChanged = func(s ToolbarState) { states = append(states, s) }

	selectText(w.Edit, 0, 4)
	w.Bold()
	w.AlignCenter()
	w.TextColor(testRed)
	w.UpdateControls()
	require.NotEmpty(t, states)
	state := w.State()
	assert.Equal(t, states[len(states)-1], state)
	assert.True(t, state.Bold)
	assert.False(t, state.Italic)
	assert.Equal(t, AlignCenter, state.Alignment)
	assert.True(t, ColorsEqual(testRed, state.TextColor))
	assert.Equal(t, "Helvetica", state.FontFamily)
	assert.Equal(t, float32(10), state.FontSize)
	assert.False(t, state.InList)
	assert.False(t, state.InTable)
	assert.Equal(t, ShortcutButton{Label: "Heading", Enabled: true}, state.Shortcuts[0])
	assert.False(t, state.Shortcuts[1].Enabled)

	selectText(w.Edit, 6, 6)
	assert.False(t, w.State().Bold)
	assert.Equal(t, AlignLeft, w.State().Alignment)
	w.BulletList()
	w.UpdateControls()
	assert.True(t, w.State().InList)
}

func TestFontSizeSnapsToOfferedSize(t *testing.T) {
	w := newTestWidget(t, "size", nil)
	selectText(w.Edit, 0, 4)
	w.FontSize(15)
	assert.Equal(t, float32(16), formatAt(w.Edit.Document(), 1).FontPointSize())
	w.FontFamily("Courier")
	assert.Equal(t, "Courier", w.State().FontFamily)
	assert.Equal(t, float32(16), w.State().FontSize)
}

func TestShortcutButton(t *testing.T) {
	styles := NewStyleManager()
	s := NewStyleDef()
	s.Underline = true
	s.Flags = NewFormatFlags(Underline)
	styles.SetShortcutStyleId(2, styles.AddStyle(s))
	w := newTestWidget(t, "underline", styles)
	selectText(w.Edit, 0, 9)
	w.ShortcutButton(1)
	w.ShortcutButton(NumShortcutButtons)
	assert.False(t, formatAt(w.Edit.Document(), 0).FontUnderline())
	w.ShortcutButton(2)
	assert.True(t, formatAt(w.Edit.Document(), 0).FontUnderline())
}

func TestSetGlobalFont(t *testing.T) {
	w := newTestWidget(t, "ab\ncd", nil)
	w.SetGlobalFont("Courier", 13)
	family, size := w.Edit.Document().DefaultFont()
	assert.Equal(t, "Courier", family)
	assert.Equal(t, float32(14), size)
	for _, pos := range []int{0, 1, 3, 4} {
		f := formatAt(w.Edit.Document(), pos)
		assert.Equal(t, "Courier", f.FontFamily())
		assert.Equal(t, float32(14), f.FontPointSize())
	}

	rev := w.Edit.Document().Revision()
	w.SetGlobalFont("", 3)
	assert.Equal(t, rev, w.Edit.Document().Revision())

	w.SetGlobalFont("", 20)
	family, size = w.Edit.Document().DefaultFont()
	assert.Equal(t, "Courier", family)
	assert.Equal(t, float32(20), size)
	assert.Equal(t, "Courier", formatAt(w.Edit.Document(), 0).FontFamily())
}

func TestAddAddendum(t *testing.T) {
	w := newTestWidget(t, "abc", nil)
	selectText(w.Edit, 1, 1)
	w.AddAddendum(time.Date(2024, 3, 4, 15, 6, 0, 0, time.UTC))
	doc := w.Edit.Document()
	assert.Equal(t, "abc\nAddendum Monday, March 4, 2024 15:06\n", doc.PlainText())
	assert.Equal(t, WeightBold, formatAt(doc, 5).FontWeight())
	assert.Equal(t, doc.CharacterCount()-1, w.Edit.TextCursor().Position())
}

func TestNewDocument(t *testing.T) {
	w := newTestWidget(t, "old", nil)
	assert.True(t, w.IsModified())
	w.SetDocumentModified(false)
	assert.False(t, w.IsModified())

	w.NewDocument("Times", 12)
	assert.Equal(t, "", w.Edit.Document().PlainText())
	assert.False(t, w.IsModified())
	assert.Equal(t, "Times", w.State().FontFamily)
	assert.Equal(t, float32(12), w.State().FontSize)

	changed := 0
	w.OnTextChanged = func() { changed++ }
	w.Edit.TypedRune('n')
	assert.Equal(t, 1, changed)
	assert.True(t, w.IsModified())
	assert.Equal(t, "Times", formatAt(w.Edit.Document(), 0).FontFamily())
}
