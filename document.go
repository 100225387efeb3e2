package richedit

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/lindell/go-ordered-set/orderedset"
)

// ParagraphSeparator separates blocks in selected text.
const ParagraphSeparator = '\u2029'

// ObjectReplacementChar stands for an inline image in the text of a block.
const ObjectReplacementChar = '\ufffc'

// Item is an element of a frame, either a *Block or a *Table.
type Item interface {
	parentFrame() *Frame
}

// Frame is an ordered sequence of blocks and tables. The document has one root frame
// and every table cell owns a frame.
type Frame struct {
	format FrameFormat
	items  []Item
	cell   *Cell
	doc    *Document
}

func newFrame(doc *Document, cell *Cell) *Frame {
	f := &Frame{doc: doc, cell: cell}
	f.items = []Item{&Block{frame: f}}
	return f
}

// Items returns the direct children of the frame.
func (f *Frame) Items() []Item {
	return append([]Item(nil), f.items...)
}

func (f *Frame) Format() FrameFormat { return f.format }

func (f *Frame) SetFormat(format FrameFormat) {
	f.format = format
	f.doc.changed()
}

// Cell returns the table cell owning this frame, nil for the root frame.
func (f *Frame) Cell() *Cell { return f.cell }

func (f *Frame) Document() *Document { return f.doc }

// Blocks returns all blocks of the frame depth-first, including blocks in nested tables.
func (f *Frame) Blocks() []*Block {
	return f.appendBlocks(nil)
}

func (f *Frame) appendBlocks(out []*Block) []*Block {
	for _, it := range f.items {
		switch v := it.(type) {
		case *Block:
			out = append(out, v)
		case *Table:
			for _, row := range v.cells {
				for _, cell := range row {
					out = cell.content.appendBlocks(out)
				}
			}
		}
	}
	return out
}

func (f *Frame) FirstBlock() *Block {
	blocks := f.Blocks()
	if len(blocks) == 0 {
		return nil
	}
	return blocks[0]
}

func (f *Frame) LastBlock() *Block {
	blocks := f.Blocks()
	if len(blocks) == 0 {
		return nil
	}
	return blocks[len(blocks)-1]
}

// FirstPosition returns the position of the first character of the frame.
func (f *Frame) FirstPosition() int {
	return f.doc.BlockPosition(f.FirstBlock())
}

// LastPosition returns the position after the last character of the frame.
func (f *Frame) LastPosition() int {
	b := f.LastBlock()
	return f.doc.BlockPosition(b) + b.Length()
}

func (f *Frame) indexOf(it Item) int {
	for i := range f.items {
		if f.items[i] == it {
			return i
		}
	}
	return -1
}

func (f *Frame) insertItems(idx int, items ...Item) {
	for _, it := range items {
		switch v := it.(type) {
		case *Block:
			v.frame = f
		case *Table:
			v.frame = f
		}
	}
	tail := append([]Item(nil), f.items[idx:]...)
	f.items = append(append(f.items[:idx], items...), tail...)
}

// removeItem removes the item at idx. A frame never becomes empty: removing its last
// item leaves an empty block behind.
func (f *Frame) removeItem(idx int) {
	f.items = append(f.items[:idx], f.items[idx+1:]...)
	if len(f.items) == 0 {
		f.items = []Item{&Block{frame: f}}
	}
}

// contains returns true if the block lies in this frame or in a table nested in it.
func (f *Frame) contains(b *Block) bool {
	for g := b.frame; g != nil; {
		if g == f {
			return true
		}
		if g.cell == nil {
			return false
		}
		g = g.cell.table.frame
	}
	return false
}

type textRun struct {
	text   []rune
	format CharFormat
}

// Block is a paragraph: runs of formatted text, a block format and optionally the list
// it is an item of.
type Block struct {
	format     BlockFormat
	charFormat CharFormat
	runs       []textRun
	list       *List
	frame      *Frame
}

func (b *Block) parentFrame() *Frame { return b.frame }

// Text returns the plain text of the block. Images appear as U+FFFC.
func (b *Block) Text() string {
	var sb strings.Builder
	for _, r := range b.runs {
		sb.WriteString(string(r.text))
	}
	return sb.String()
}

// Length returns the number of characters in the block, excluding the separator.
func (b *Block) Length() int {
	n := 0
	for _, r := range b.runs {
		n += len(r.text)
	}
	return n
}

func (b *Block) Format() BlockFormat { return b.format }

// CharFormat returns the format used for text typed into the empty block.
func (b *Block) CharFormat() CharFormat { return b.charFormat }

// List returns the list the block is an item of, or nil.
func (b *Block) List() *List { return b.list }

func (b *Block) Frame() *Frame { return b.frame }

func (b *Block) Document() *Document { return b.frame.doc }

// Position returns the document position of the first character of the block.
func (b *Block) Position() int {
	return b.frame.doc.BlockPosition(b)
}

// Previous returns the block before b in document order, or nil.
func (b *Block) Previous() *Block {
	blocks := b.frame.doc.Blocks()
	for i := range blocks {
		if blocks[i] == b {
			if i == 0 {
				return nil
			}
			return blocks[i-1]
		}
	}
	return nil
}

// Next returns the block after b in document order, or nil.
func (b *Block) Next() *Block {
	blocks := b.frame.doc.Blocks()
	for i := range blocks {
		if blocks[i] == b && i+1 < len(blocks) {
			return blocks[i+1]
		}
	}
	return nil
}

// TextFragment is a maximal run of characters sharing one format.
type TextFragment struct {
	Text     string
	Format   CharFormat
	Position int
}

// Fragments returns the formatted runs of the block with their document positions.
func (b *Block) Fragments() []TextFragment {
	pos := b.Position()
	out := make([]TextFragment, 0, len(b.runs))
	for _, r := range b.runs {
		out = append(out, TextFragment{Text: string(r.text), Format: r.format, Position: pos})
		pos += len(r.text)
	}
	return out
}

// formatAt returns the format of the character at offset.
func (b *Block) formatAt(offset int) CharFormat {
	for _, r := range b.runs {
		if offset < len(r.text) {
			return r.format
		}
		offset -= len(r.text)
	}
	if len(b.runs) > 0 {
		return b.runs[len(b.runs)-1].format
	}
	return b.charFormat
}

// formatBefore returns the format that typing at offset continues.
func (b *Block) formatBefore(offset int) CharFormat {
	if b.Length() == 0 {
		return b.charFormat
	}
	if offset > 0 {
		return b.formatAt(offset - 1)
	}
	return b.formatAt(0)
}

func splitRuns(runs []textRun, offset int) (before, after []textRun) {
	for _, r := range runs {
		n := len(r.text)
		switch {
		case offset <= 0:
			after = append(after, r)
		case offset >= n:
			before = append(before, r)
		default:
			before = append(before, textRun{text: append([]rune(nil), r.text[:offset]...), format: r.format})
			after = append(after, textRun{text: append([]rune(nil), r.text[offset:]...), format: r.format})
		}
		offset -= n
	}
	return before, after
}

func normalizeRuns(runs []textRun) []textRun {
	out := make([]textRun, 0, len(runs))
	for _, r := range runs {
		if len(r.text) == 0 {
			continue
		}
		if n := len(out); n > 0 && out[n-1].format.Equal(r.format) {
			out[n-1].text = append(append([]rune(nil), out[n-1].text...), r.text...)
			continue
		}
		out = append(out, r)
	}
	return out
}

func cloneRuns(runs []textRun) []textRun {
	out := make([]textRun, len(runs))
	for i, r := range runs {
		out[i] = textRun{text: append([]rune(nil), r.text...), format: r.format}
	}
	return out
}

func (b *Block) insertRuns(offset int, runs []textRun) {
	before, after := splitRuns(b.runs, offset)
	all := append(append(before, runs...), after...)
	b.runs = normalizeRuns(all)
}

func (b *Block) deleteRange(from, to int) {
	if from >= to {
		return
	}
	before, _ := splitRuns(b.runs, from)
	_, after := splitRuns(b.runs, to)
	b.runs = normalizeRuns(append(before, after...))
}

func (b *Block) applyFormat(from, to int, fn func(*CharFormat)) {
	if from >= to {
		return
	}
	before, rest := splitRuns(b.runs, from)
	mid, after := splitRuns(rest, to-from)
	for i := range mid {
		fn(&mid[i].format)
	}
	b.runs = normalizeRuns(append(append(before, mid...), after...))
}

// List groups blocks into a bulleted or numbered list. Membership is stored on the
// blocks, so a list without items simply disappears from the document.
type List struct {
	format ListFormat
	doc    *Document
}

func (l *List) Format() ListFormat { return l.format }

func (l *List) SetFormat(f ListFormat) {
	l.format = f
	l.doc.changed()
}

// Items returns the blocks of the list in document order.
func (l *List) Items() []*Block {
	var items []*Block
	for _, b := range l.doc.Blocks() {
		if b.list == l {
			items = append(items, b)
		}
	}
	return items
}

func (l *List) Count() int { return len(l.Items()) }

// ItemNumber returns the index of b in the list, -1 if b is not an item.
func (l *List) ItemNumber(b *Block) int {
	for i, item := range l.Items() {
		if item == b {
			return i
		}
	}
	return -1
}

// Add makes b an item of the list.
func (l *List) Add(b *Block) {
	b.list = l
	l.doc.changed()
}

// Remove takes b out of the list.
func (l *List) Remove(b *Block) {
	if b.list != l {
		return
	}
	b.list = nil
	l.doc.changed()
}

// ItemText returns the marker drawn in front of the list item b.
func (l *List) ItemText(b *Block) string {
	n := l.ItemNumber(b) + 1
	if n <= 0 {
		return ""
	}
	switch l.format.Style {
	case ListDisc:
		return "•"
	case ListCircle:
		return "◦"
	case ListSquare:
		return "▪"
	case ListLowerAlpha:
		return alphaNumber(n, 'a') + "."
	case ListUpperAlpha:
		return alphaNumber(n, 'A') + "."
	case ListLowerRoman:
		return strings.ToLower(romanNumber(n)) + "."
	case ListUpperRoman:
		return romanNumber(n) + "."
	default:
		return strconv.Itoa(n) + "."
	}
}

func alphaNumber(n int, base rune) string {
	var s []rune
	for n > 0 {
		n--
		s = append([]rune{base + rune(n%26)}, s...)
		n /= 26
	}
	return string(s)
}

func romanNumber(n int) string {
	values := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	symbols := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}
	var sb strings.Builder
	for i, v := range values {
		for n >= v {
			sb.WriteString(symbols[i])
			n -= v
		}
	}
	return sb.String()
}

// Document is a rich-text document: a root frame of blocks and tables plus named image
// resources.
type Document struct {
	root      *Frame
	resources map[string][]byte
	names     *orderedset.OrderedSet[string]
	modified  bool
	revision  uint64
	listeners []func()
	// default font
	fontFamily string
	pointSize  float32
}

// NewDocument returns an empty document consisting of one empty block.
func NewDocument() *Document {
	d := &Document{}
	d.reset()
	return d
}

func (d *Document) reset() {
	d.root = newFrame(d, nil)
	d.resources = make(map[string][]byte)
	d.names = orderedset.New[string]()
}

// OnContentsChanged registers a function called after every change of the document.
func (d *Document) OnContentsChanged(fn func()) {
	d.listeners = append(d.listeners, fn)
}

func (d *Document) changed() {
	d.revision++
	d.modified = true
	for _, fn := range d.listeners {
		fn()
	}
}

// Revision is incremented on every change of the document.
func (d *Document) Revision() uint64 { return d.revision }

func (d *Document) IsModified() bool { return d.modified }

func (d *Document) SetModified(modified bool) { d.modified = modified }

func (d *Document) RootFrame() *Frame { return d.root }

// SetDefaultFont sets the font of text that has no font family or size of its own.
func (d *Document) SetDefaultFont(family string, pointSize float32) {
	d.fontFamily = family
	d.pointSize = pointSize
}

func (d *Document) DefaultFont() (string, float32) {
	return d.fontFamily, d.pointSize
}

// Clear removes all content and resources.
func (d *Document) Clear() {
	d.reset()
	d.changed()
}

// Blocks returns every block of the document in document order.
func (d *Document) Blocks() []*Block {
	return d.root.Blocks()
}

// CharacterCount returns the number of positions in the document, which is one more
// than the last valid cursor position.
func (d *Document) CharacterCount() int {
	n := 0
	for _, b := range d.Blocks() {
		n += b.Length() + 1
	}
	return n
}

// BlockPosition returns the position of the first character of b, -1 if b is not part
// of the document.
func (d *Document) BlockPosition(b *Block) int {
	pos := 0
	for _, c := range d.Blocks() {
		if c == b {
			return pos
		}
		pos += c.Length() + 1
	}
	return -1
}

// FindBlock returns the block containing pos and the offset of pos within the block.
// Out-of-range positions are clamped.
func (d *Document) FindBlock(pos int) (*Block, int) {
	blocks := d.Blocks()
	pos = max(pos, 0)
	start := 0
	for _, b := range blocks {
		if pos <= start+b.Length() {
			return b, pos - start
		}
		start += b.Length() + 1
	}
	last := blocks[len(blocks)-1]
	return last, last.Length()
}

// PlainText returns the text of all blocks separated by newlines.
func (d *Document) PlainText() string {
	blocks := d.Blocks()
	lines := make([]string, len(blocks))
	for i, b := range blocks {
		lines[i] = b.Text()
	}
	return strings.Join(lines, "\n")
}

// SetPlainText replaces the content by unformatted text, one block per line.
func (d *Document) SetPlainText(text string) {
	d.root = &Frame{doc: d}
	for _, line := range splitLines(text) {
		b := &Block{frame: d.root}
		if line != "" {
			b.runs = []textRun{{text: []rune(line)}}
		}
		d.root.items = append(d.root.items, b)
	}
	d.changed()
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, string(ParagraphSeparator), "\n")
	return strings.Split(text, "\n")
}

// AddResource stores image data under name, replacing earlier data of the same name.
func (d *Document) AddResource(name string, data []byte) {
	d.resources[name] = data
	d.names.Add(name)
}

func (d *Document) Resource(name string) ([]byte, bool) {
	data, ok := d.resources[name]
	return data, ok
}

// ResourceNames returns the resource names in the order they were first added.
func (d *Document) ResourceNames() []string {
	return d.names.Values()
}

// Lists returns the distinct lists of the document in order of their first item.
func (d *Document) Lists() []*List {
	seen := make(map[*List]bool)
	var lists []*List
	for _, b := range d.Blocks() {
		if b.list != nil && !seen[b.list] {
			seen[b.list] = true
			lists = append(lists, b.list)
		}
	}
	return lists
}

func (d *Document) fullText() []rune {
	var text []rune
	for i, b := range d.Blocks() {
		if i > 0 {
			text = append(text, ParagraphSeparator)
		}
		for _, r := range b.runs {
			text = append(text, r.text...)
		}
	}
	return text
}

// Find searches for text starting at position from. A forward search finds the first
// match starting at or after from, a backward search the last match ending at or
// before from.
func (d *Document) Find(text string, from int, backward, caseSensitive bool) (Range, bool) {
	needle := []rune(text)
	if len(needle) == 0 {
		return Range{}, false
	}
	hay := d.fullText()
	if !caseSensitive {
		needle = lowerRunes(needle)
		hay = lowerRunes(hay)
	}
	matchAt := func(i int) bool {
		for j := range needle {
			if hay[i+j] != needle[j] {
				return false
			}
		}
		return true
	}
	if backward {
		for i := min(from, len(hay)) - len(needle); i >= 0; i-- {
			if matchAt(i) {
				return Range{Start: i, End: i + len(needle)}, true
			}
		}
		return Range{}, false
	}
	for i := max(from, 0); i+len(needle) <= len(hay); i++ {
		if matchAt(i) {
			return Range{Start: i, End: i + len(needle)}, true
		}
	}
	return Range{}, false
}

func lowerRunes(s []rune) []rune {
	out := make([]rune, len(s))
	for i, r := range s {
		out[i] = unicode.ToLower(r)
	}
	return out
}
