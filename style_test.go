package richedit

import (
	"bytes"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFlags(t *testing.T) {
	ff := NewFormatFlags(Bold, FGColor)
	assert.True(t, ff.Has(Bold))
	assert.False(t, ff.Has(Italic))
	assert.Equal(t, []FormatFlag{FGColor, Bold}, ff.Flags())
	assert.Equal(t, "FGColor|Bold", ff.String())
	ff = ff.Remove(Bold)
	assert.False(t, ff.Has(Bold))
	f, ok := ParseFormatFlag("BGColorNone")
	require.True(t, ok)
	assert.Equal(t, BGColorNone, f)
	_, ok = ParseFormatFlag("Sparkle")
	assert.False(t, ok)
}

func TestStyleIdsAreNeverReused(t *testing.T) {
	m := NewStyleManager()
	for want := 1; want <= 3; want++ {
		assert.Equal(t, want, m.AddStyle(NewStyleDef()))
	}
	m.DeleteStyle(2)
	assert.Equal(t, 4, m.AddStyle(NewStyleDef()))
	assert.Equal(t, []int{1, 3, 4}, m.StyleIds())
	assert.False(t, m.IsValidStyleId(2))
}

func TestDanglingShortcut(t *testing.T) {
	m := NewStyleManager()
	id := m.AddStyle(NewStyleDef())
	m.SetShortcutStyleId(3, id)
	assert.True(t, m.StyleShortcutIsValid(3))
	m.DeleteStyle(id)
	assert.False(t, m.StyleShortcutIsValid(3))
	assert.Equal(t, NoStyle, m.ShortcutStyleId(0))
	assert.Equal(t, NoStyle, m.ShortcutStyleId(NumShortcuts))
}

func TestApplyBoldStyleLeavesOtherAttributes(t *testing.T) {
	doc := newTestDocument(t, "hello world")
	ed := selectRange(doc, 0, 11)
	var f CharFormat
	f.SetFontFamily("Courier")
	f.SetFontPointSize(12)
	f.SetForeground(color.RGBA{200, 0, 0, 255})
	f.SetBackground(color.RGBA{0, 0, 200, 255})
	ed.cursor.MergeCharFormat(f)
	before := formatAt(doc, 3)

	m := NewStyleManager()
	style := NewStyleDef()
	style.Bold = true
	style.Flags = NewFormatFlags(Bold)
	m.ApplyStyle(ed, m.AddStyle(style))

	after := formatAt(doc, 3)
	assert.Equal(t, WeightBold, after.FontWeight())
	assert.Equal(t, before.FontFamily(), after.FontFamily())
	assert.Equal(t, before.FontPointSize(), after.FontPointSize())
	assert.True(t, ColorsEqual(before.Foreground(), after.Foreground()))
	assert.True(t, ColorsEqual(before.Background(), after.Background()))
}

func TestApplyStyleClearsColors(t *testing.T) {
	doc := newTestDocument(t, "text")
	ed := selectRange(doc, 0, 4)
	SetTextColor(ed, color.RGBA{1, 2, 3, 255})
	m := NewStyleManager()
	style := NewStyleDef()
	style.Flags = NewFormatFlags(FGColorNone)
	m.ApplyStyle(ed, m.AddStyle(style))
	assert.False(t, formatAt(doc, 1).HasForeground())
}

func TestApplyStyleWithoutSelection(t *testing.T) {
	doc := newTestDocument(t, "text")
	ed := &testEditor{cursor: NewCursor(doc)}
	m := NewStyleManager()
	style := NewStyleDef()
	style.SetAllFormatFlags()
	id := m.AddStyle(style)
	rev := doc.Revision()
	m.ApplyStyle(ed, id)
	m.ApplyStyle(ed, id+1)
	assert.Equal(t, rev, doc.Revision())
}

func TestStyleXMLRoundTrip(t *testing.T) {
	m := NewStyleManager()
	s := NewStyleDef()
	s.Name = "Warning"
	s.Description = "red and bold"
	s.FontFamily = "Times"
	s.PointSize = 14.5
	s.TextColor = color.RGBA{255, 0, 0, 255}
	s.BackgroundColor = color.RGBA{}
	s.Bold = true
	s.Flags = NewFormatFlags(FGColor, Bold, FontSize)
	id := m.AddStyle(s)
	m.AddStyle(NewStyleDef())
	m.SetShortcutStyleId(1, id)

	path := filepath.Join(t.TempDir(), "styles.xml")
	require.NoError(t, m.SaveStyleDefs(path))

	loaded := NewStyleManager()
	require.NoError(t, loaded.LoadStyleDefs(path))
	assert.Equal(t, []int{1, 2}, loaded.StyleIds())
	got, ok := loaded.Style(id)
	require.True(t, ok)
	assert.Equal(t, "Warning", got.Name)
	assert.Equal(t, "red and bold", got.Description)
	assert.Equal(t, "Times", got.FontFamily)
	assert.Equal(t, float32(14.5), got.PointSize)
	assert.Equal(t, "#ff0000", ColorHex(got.TextColor))
	// a transparent background is saved as no color, not as black
	assert.Nil(t, got.BackgroundColor)
	assert.True(t, got.Bold)
	assert.False(t, got.Italic)
	assert.Equal(t, s.Flags, got.Flags)
	assert.Equal(t, id, loaded.ShortcutStyleId(1))
	assert.Equal(t, NoStyle, loaded.ShortcutStyleId(0))
	// ids continue after the loaded ones
	assert.Equal(t, 3, loaded.AddStyle(NewStyleDef()))
}

func TestReadStyleDefsSkipsBOM(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("\xef\xbb\xbf")
	buf.WriteString(`<styles><Style id="7" name="Quote"><Italic value="yes"/><Flags value="Italic"/></Style></styles>`)
	m := NewStyleManager()
	require.NoError(t, m.ReadStyleDefs(&buf))
	s, ok := m.Style(7)
	require.True(t, ok)
	assert.True(t, s.Italic)
	assert.True(t, s.Flags.Has(Italic))
}

func TestLoadMissingStyleFile(t *testing.T) {
	m := NewStyleManager()
	m.AddStyle(NewStyleDef())
	err := m.LoadStyleDefs(filepath.Join(t.TempDir(), "missing.xml"))
	assert.ErrorIs(t, err, ErrStyleFileNotFound)
	assert.Equal(t, 0, m.NumStyles())
}

func TestMalformedStyleFile(t *testing.T) {
	for _, doc := range []string{
		`<styles><Style id="1">`,
		`<styles><Style id="1"><TextColor value="nocolor"/></Style></styles>`,
		`<styles><Style id="1"><Flags value="Sparkle"/></Style></styles>`,
		`<other/>`,
	} {
		m := NewStyleManager()
		m.AddStyle(NewStyleDef())
		err := m.ReadStyleDefs(strings.NewReader(doc))
		assert.ErrorIs(t, err, ErrMalformedStyleFile, doc)
		assert.Equal(t, 0, m.NumStyles(), doc)
	}
}
