package richedit

import "strings"

type fragmentBlock struct {
	format     BlockFormat
	runs       []textRun
	listKey    int
	listFormat ListFormat
}

func fragmentBlockLength(fb fragmentBlock) int {
	n := 0
	for _, r := range fb.runs {
		n += len(r.text)
	}
	return n
}

// Fragment is a detached piece of rich text, such as the clipboard content or the
// content of a copied table cell. Tables inside a fragment are flattened to their blocks.
type Fragment struct {
	blocks []fragmentBlock
}

// NewFragmentFromText returns an unformatted fragment, one block per line.
func NewFragmentFromText(text string) *Fragment {
	frag := &Fragment{}
	for _, line := range splitLines(text) {
		fb := fragmentBlock{listKey: -1}
		if line != "" {
			fb.runs = []textRun{{text: []rune(line)}}
		}
		frag.blocks = append(frag.blocks, fb)
	}
	return frag
}

// FragmentFromFrame returns a deep copy of the content of a frame.
func FragmentFromFrame(f *Frame) *Fragment {
	c := NewCursor(f.doc)
	c.SetPosition(f.FirstPosition(), MoveAnchor)
	c.SetPosition(f.LastPosition(), KeepAnchor)
	if !c.HasSelection() {
		return &Fragment{blocks: []fragmentBlock{{listKey: -1}}}
	}
	return c.Selection()
}

// IsEmpty returns true if the fragment contains neither text nor block breaks.
func (f *Fragment) IsEmpty() bool {
	if f == nil || len(f.blocks) == 0 {
		return true
	}
	return len(f.blocks) == 1 && fragmentBlockLength(f.blocks[0]) == 0
}

// PlainText returns the text of the fragment, blocks separated by newlines.
func (f *Fragment) PlainText() string {
	if f == nil {
		return ""
	}
	lines := make([]string, len(f.blocks))
	for i, fb := range f.blocks {
		var sb strings.Builder
		for _, r := range fb.runs {
			sb.WriteString(string(r.text))
		}
		lines[i] = sb.String()
	}
	return strings.Join(lines, "\n")
}
