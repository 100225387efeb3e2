package richedit

import (
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// cellSeparator separates the cells of a table row in the rich text rendering.
const cellSeparator = " │ "

// Segments renders the document as fyne rich text segments. Every block becomes one
// paragraph, list items are prefixed by their marker and table rows are drawn as one
// paragraph each with the cell texts separated by a bar.
func Segments(doc *Document) []widget.RichTextSegment {
	return frameSegments(doc.RootFrame(), nil)
}

func frameSegments(f *Frame, out []widget.RichTextSegment) []widget.RichTextSegment {
	for _, it := range f.Items() {
		switch v := it.(type) {
		case *Block:
			out = blockSegments(v, out)
		case *Table:
			out = tableSegments(v, out)
		}
	}
	return out
}

func textAlign(a Alignment) fyne.TextAlign {
	switch a {
	case AlignRight:
		return fyne.TextAlignTrailing
	case AlignHCenter:
		return fyne.TextAlignCenter
	default:
		return fyne.TextAlignLeading
	}
}

func textStyle(cf CharFormat) widget.RichTextStyle {
	s := widget.RichTextStyleInline
	s.TextStyle = fyne.TextStyle{Bold: cf.FontWeight() >= WeightBold, Italic: cf.FontItalic()}
	switch size := cf.FontPointSize(); {
	case size >= 18:
		s.SizeName = theme.SizeNameHeadingText
	case size >= 14:
		s.SizeName = theme.SizeNameSubHeadingText
	}
	return s
}

func blockSegments(b *Block, out []widget.RichTextSegment) []widget.RichTextSegment {
	align := textAlign(b.Format().Alignment)
	if l := b.List(); l != nil {
		prefix := strings.Repeat("    ", l.Format().Indent) + l.ItemText(b) + " "
		out = append(out, &widget.TextSegment{Text: prefix, Style: widget.RichTextStyleInline})
	} else if n := b.Format().Indent; n > 0 {
		out = append(out, &widget.TextSegment{Text: strings.Repeat("    ", n), Style: widget.RichTextStyleInline})
	}
	for _, frag := range b.Fragments() {
		cf := frag.Format
		switch {
		case cf.IsImageFormat():
			out = append(out, &widget.TextSegment{Text: "[" + cf.ImageName() + "]", Style: widget.RichTextStyleInline})
		case cf.IsAnchor():
			u, err := url.Parse(cf.AnchorHref())
			if err != nil {
				out = append(out, &widget.TextSegment{Text: frag.Text, Style: textStyle(cf)})
				continue
			}
			out = append(out, &widget.HyperlinkSegment{Text: frag.Text, URL: u, Alignment: align})
		default:
			out = append(out, &widget.TextSegment{Text: frag.Text, Style: textStyle(cf)})
		}
	}
	end := widget.RichTextStyleParagraph
	end.Alignment = align
	return append(out, &widget.TextSegment{Style: end})
}

func tableSegments(t *Table, out []widget.RichTextSegment) []widget.RichTextSegment {
	for r := 0; r < t.Rows(); r++ {
		cells := make([]string, t.Columns())
		for c := range cells {
			cells[c] = strings.ReplaceAll(TableCellText(t, r, c), "\n", " ")
		}
		out = append(out, &widget.TextSegment{
			Text:  strings.Join(cells, cellSeparator),
			Style: widget.RichTextStyleParagraph,
		})
	}
	return out
}
