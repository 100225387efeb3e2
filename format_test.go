package richedit

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharFormatMerge(t *testing.T) {
	var base CharFormat
	base.SetFontFamily("Courier")
	base.SetFontPointSize(12)
	var bold CharFormat
	bold.SetFontWeight(WeightBold)

	merged := base
	merged.Merge(bold)
	assert.Equal(t, "Courier", merged.FontFamily())
	assert.Equal(t, float32(12), merged.FontPointSize())
	assert.Equal(t, WeightBold, merged.FontWeight())
	// the merged copy shares no state with its source
	assert.Equal(t, WeightNormal, base.FontWeight())
	assert.False(t, base.Equal(merged))
}

func TestCharFormatColors(t *testing.T) {
	var f CharFormat
	assert.Nil(t, f.Foreground())
	f.SetForeground(color.RGBA{255, 0, 0, 255})
	assert.True(t, f.HasForeground())
	f.SetForeground(nil)
	assert.False(t, f.HasForeground())
	f.SetBackground(White)
	f.ClearBackground()
	assert.Nil(t, f.Background())
	assert.True(t, f.IsEmpty())
}

func TestInsertionFormatDropsAnchor(t *testing.T) {
	var f CharFormat
	f.SetAnchorHref("https://example.com")
	f.SetFontItalic(true)
	g := f.insertionFormat()
	assert.False(t, g.IsAnchor())
	assert.True(t, g.FontItalic())
	assert.True(t, f.IsAnchor())
}

func TestTextLengthResolve(t *testing.T) {
	assert.Equal(t, float32(40), TextLength{Type: FixedLength, Value: 40}.Resolve(500))
	assert.Equal(t, float32(125), TextLength{Type: PercentageLength, Value: 25}.Resolve(500))
	assert.Equal(t, float32(500), TextLength{Type: PercentageLength, Value: 150}.Resolve(500))
	assert.Equal(t, float32(0), TextLength{}.Resolve(500))
}

func TestColumnConstraintsAreCopied(t *testing.T) {
	var f TableFormat
	in := []TextLength{{Type: FixedLength, Value: 10}}
	f.SetColumnWidthConstraints(in)
	in[0].Value = 99
	out := f.ColumnWidthConstraints()
	assert.Equal(t, float32(10), out[0].Value)
	out[0].Value = 77
	assert.Equal(t, float32(10), f.ColumnWidthConstraints()[0].Value)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, "#ff8000", ColorHex(c))
	c, err = ParseColor("#f80")
	require.NoError(t, err)
	assert.Equal(t, "#ff8800", ColorHex(c))
	c, err = ParseColor("DarkRed")
	require.NoError(t, err)
	assert.Equal(t, "#8b0000", ColorHex(c))
	_, err = ParseColor("nocolor")
	assert.ErrorIs(t, err, ErrInvalidColor)
	assert.Equal(t, "", ColorHex(color.RGBA{}))
	assert.Equal(t, "", ColorHex(nil))
	assert.Equal(t, "", ColorHex(nil))
	assert.True(t, ColorsEqual(nil, nil))
	assert.False(t, ColorsEqual(Black, nil))
}

func TestBlendColors(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	assert.Equal(t, red, BlendColors(BlendMultiply, nil, red))
	assert.Equal(t, red, BlendColors(BlendMultiply, red, nil))
	assert.Equal(t, red, BlendColors(BlendNormal, White, red))
	got := BlendColors(BlendDarken, White, red)
	assert.True(t, ColorsEqual(red, got), "darken keeps the darker components, got %v", got)
}
