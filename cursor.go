package richedit

import (
	"strings"
	"unicode"
)

// MoveMode determines whether moving the cursor keeps the anchor in place.
type MoveMode int

const (
	MoveAnchor MoveMode = iota
	KeepAnchor
)

// MoveOperation is a cursor movement.
type MoveOperation int

const (
	NoMove MoveOperation = iota
	Start
	End
	StartOfBlock
	EndOfBlock
	PreviousBlock
	NextBlock
	PreviousCharacter
	NextCharacter
	PreviousCell
	NextCell
)

// SelectionType is the unit selected by Cursor.Select.
type SelectionType int

const (
	SelectDocument SelectionType = iota
	SelectBlockUnderCursor
	SelectWordUnderCursor
)

// Cursor is an editing handle on a document: a position and an anchor. The text between
// them is the selection. All editing of a document goes through cursors.
type Cursor struct {
	doc     *Document
	pos     int
	anchor  int
	pending *CharFormat
}

// NewCursor returns a cursor at the start of doc.
func NewCursor(doc *Document) *Cursor {
	return &Cursor{doc: doc}
}

// IsNull returns true if the cursor is not bound to a document.
func (c *Cursor) IsNull() bool { return c == nil || c.doc == nil }

func (c *Cursor) Document() *Document { return c.doc }

// Clone returns an independent copy of the cursor.
func (c *Cursor) Clone() *Cursor {
	d := *c
	return &d
}

func (c *Cursor) Position() int { return c.pos }

func (c *Cursor) Anchor() int { return c.anchor }

func (c *Cursor) lastPosition() int {
	return c.doc.CharacterCount() - 1
}

// SetPosition moves the cursor to pos, clamped to the document.
func (c *Cursor) SetPosition(pos int, mode MoveMode) {
	pos = min(max(pos, 0), c.lastPosition())
	c.pos = pos
	if mode == MoveAnchor {
		c.anchor = pos
	}
	c.pending = nil
}

// MovePosition performs op n times and returns false if the cursor could not move.
func (c *Cursor) MovePosition(op MoveOperation, mode MoveMode, n int) bool {
	if n <= 0 {
		n = 1
	}
	moved := false
	for i := 0; i < n; i++ {
		pos, ok := c.target(op)
		if !ok {
			break
		}
		c.SetPosition(pos, mode)
		moved = true
	}
	return moved
}

func (c *Cursor) target(op MoveOperation) (int, bool) {
	b, off := c.doc.FindBlock(c.pos)
	start := c.pos - off
	switch op {
	case Start:
		return 0, true
	case End:
		return c.lastPosition(), true
	case StartOfBlock:
		return start, true
	case EndOfBlock:
		return start + b.Length(), true
	case PreviousBlock:
		if prev := b.Previous(); prev != nil {
			return prev.Position(), true
		}
	case NextBlock:
		if next := b.Next(); next != nil {
			return next.Position(), true
		}
	case PreviousCharacter:
		if c.pos > 0 {
			return c.pos - 1, true
		}
	case NextCharacter:
		if c.pos < c.lastPosition() {
			return c.pos + 1, true
		}
	case PreviousCell, NextCell:
		t := c.CurrentTable()
		if t == nil {
			return 0, false
		}
		cell := t.CellAtPosition(c.pos)
		idx := cell.Row()*t.Columns() + cell.Column()
		if op == NextCell {
			idx++
		} else {
			idx--
		}
		if idx < 0 || idx >= t.Rows()*t.Columns() {
			return 0, false
		}
		return t.CellAt(idx/t.Columns(), idx%t.Columns()).FirstPosition(), true
	}
	return 0, false
}

// Select selects the document, the block or the word under the cursor.
func (c *Cursor) Select(sel SelectionType) {
	switch sel {
	case SelectDocument:
		c.SetPosition(0, MoveAnchor)
		c.SetPosition(c.lastPosition(), KeepAnchor)
	case SelectBlockUnderCursor:
		b, off := c.doc.FindBlock(c.pos)
		start := c.pos - off
		c.SetPosition(start, MoveAnchor)
		c.SetPosition(start+b.Length(), KeepAnchor)
	case SelectWordUnderCursor:
		b, off := c.doc.FindBlock(c.pos)
		start := c.pos - off
		text := []rune(b.Text())
		from, to := off, off
		for from > 0 && isWordChar(text[from-1]) {
			from--
		}
		for to < len(text) && isWordChar(text[to]) {
			to++
		}
		c.SetPosition(start+from, MoveAnchor)
		c.SetPosition(start+to, KeepAnchor)
	}
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

func (c *Cursor) HasSelection() bool { return c.pos != c.anchor }

func (c *Cursor) SelectionStart() int { return min(c.pos, c.anchor) }

func (c *Cursor) SelectionEnd() int { return max(c.pos, c.anchor) }

// ClearSelection moves the anchor to the position.
func (c *Cursor) ClearSelection() { c.anchor = c.pos }

// blockSpan is the part of a block covered by a position range.
type blockSpan struct {
	block    *Block
	from, to int
	// separator is true if the block separator following the block is covered.
	separator bool
}

func (c *Cursor) spans(start, end int) []blockSpan {
	var spans []blockSpan
	pos := 0
	for _, b := range c.doc.Blocks() {
		n := b.Length()
		bStart, bEnd := pos, pos+n
		pos += n + 1
		if bEnd < start || bStart > end {
			continue
		}
		spans = append(spans, blockSpan{
			block:     b,
			from:      max(start, bStart) - bStart,
			to:        min(end, bEnd) - bStart,
			separator: end > bEnd,
		})
	}
	return spans
}

// SelectedText returns the selected text with U+2029 between blocks.
func (c *Cursor) SelectedText() string {
	if !c.HasSelection() {
		return ""
	}
	var sb strings.Builder
	for _, s := range c.spans(c.SelectionStart(), c.SelectionEnd()) {
		text := []rune(s.block.Text())
		sb.WriteString(string(text[s.from:s.to]))
		if s.separator {
			sb.WriteRune(ParagraphSeparator)
		}
	}
	return sb.String()
}

// RemoveSelectedText deletes the selection. Tables entirely inside the selection are
// removed. If the selection starts and ends in the same frame, the first and last
// selected blocks are joined; otherwise only text is deleted and the structure stays.
func (c *Cursor) RemoveSelectedText() {
	if !c.HasSelection() {
		return
	}
	start, end := c.SelectionStart(), c.SelectionEnd()
	spans := c.spans(start, end)
	first, last := spans[0], spans[len(spans)-1]
	if len(spans) == 1 {
		first.block.deleteRange(first.from, first.to)
	} else if first.block.frame == last.block.frame {
		f := first.block.frame
		_, tail := splitRuns(last.block.runs, last.to)
		head, _ := splitRuns(first.block.runs, first.from)
		first.block.runs = normalizeRuns(append(head, tail...))
		i, j := f.indexOf(first.block), f.indexOf(last.block)
		f.items = append(f.items[:i+1], f.items[j+1:]...)
	} else {
		for _, s := range spans {
			s.block.deleteRange(s.from, s.to)
		}
	}
	c.pos, c.anchor = start, start
	c.doc.changed()
}

func (c *Cursor) insertionFormat() CharFormat {
	if c.pending != nil {
		return *c.pending
	}
	b, off := c.doc.FindBlock(c.pos)
	return b.formatBefore(off).insertionFormat()
}

// InsertText inserts text at the cursor, replacing the selection. Newlines and U+2029
// start new blocks.
func (c *Cursor) InsertText(text string) {
	c.InsertTextWithFormat(text, c.insertionFormat())
}

// InsertTextWithFormat inserts text with the given format, replacing the selection.
func (c *Cursor) InsertTextWithFormat(text string, format CharFormat) {
	if c.HasSelection() {
		c.RemoveSelectedText()
	}
	for i, line := range splitLines(text) {
		if i > 0 {
			c.splitBlock()
		}
		if line == "" {
			continue
		}
		b, off := c.doc.FindBlock(c.pos)
		b.insertRuns(off, []textRun{{text: []rune(line), format: format}})
		c.pos += len([]rune(line))
	}
	c.anchor = c.pos
	c.doc.changed()
}

// InsertBlock splits the current block at the cursor.
func (c *Cursor) InsertBlock() {
	if c.HasSelection() {
		c.RemoveSelectedText()
	}
	c.splitBlock()
	c.anchor = c.pos
	c.doc.changed()
}

func (c *Cursor) splitBlock() *Block {
	b, off := c.doc.FindBlock(c.pos)
	nb := splitBlockAt(b, off)
	c.pos++
	return nb
}

// splitBlockAt moves the text after off into a new block inserted after b and returns
// the new block. The new block keeps b's formats and list membership.
func splitBlockAt(b *Block, off int) *Block {
	before, after := splitRuns(b.runs, off)
	nb := &Block{format: b.format, charFormat: b.formatBefore(off), runs: after, list: b.list}
	b.runs = before
	f := b.frame
	f.insertItems(f.indexOf(b)+1, nb)
	return nb
}

// CharFormat returns the format of the character before the cursor. Without a
// selection it returns the format that typing would use.
func (c *Cursor) CharFormat() CharFormat {
	if c.pending != nil && !c.HasSelection() {
		return *c.pending
	}
	b, off := c.doc.FindBlock(c.pos)
	return b.formatBefore(off)
}

// SetCharFormat replaces the format of the selection. Without a selection it sets the
// format for the next insertion.
func (c *Cursor) SetCharFormat(f CharFormat) {
	c.formatSelection(func(cf *CharFormat) { *cf = f })
}

// MergeCharFormat merges f into the format of the selection. Without a selection it
// merges into the format for the next insertion.
func (c *Cursor) MergeCharFormat(f CharFormat) {
	c.formatSelection(func(cf *CharFormat) { cf.Merge(f) })
}

func (c *Cursor) formatSelection(fn func(*CharFormat)) {
	if !c.HasSelection() {
		cf := c.insertionFormat()
		fn(&cf)
		c.pending = &cf
		b, _ := c.doc.FindBlock(c.pos)
		if b.Length() == 0 {
			b.charFormat = cf
		}
		return
	}
	for _, s := range c.spans(c.SelectionStart(), c.SelectionEnd()) {
		s.block.applyFormat(s.from, s.to, fn)
		if s.block.Length() == 0 {
			fn(&s.block.charFormat)
		}
	}
	c.doc.changed()
}

// BlockFormat returns the format of the block containing the cursor.
func (c *Cursor) BlockFormat() BlockFormat {
	b, _ := c.doc.FindBlock(c.pos)
	return b.format
}

// SetBlockFormat sets the format of every block touched by the selection.
func (c *Cursor) SetBlockFormat(f BlockFormat) {
	for _, b := range c.SelectedBlocks() {
		b.format = f
	}
	c.doc.changed()
}

// SelectedBlocks returns the blocks touched by the selection, or the current block.
func (c *Cursor) SelectedBlocks() []*Block {
	var blocks []*Block
	for _, s := range c.spans(c.SelectionStart(), c.SelectionEnd()) {
		blocks = append(blocks, s.block)
	}
	return blocks
}

// Block returns the block containing the cursor.
func (c *Cursor) Block() *Block {
	b, _ := c.doc.FindBlock(c.pos)
	return b
}

// CurrentList returns the list of the current block, or nil.
func (c *Cursor) CurrentList() *List {
	return c.Block().list
}

// CreateList makes every selected block an item of a new list.
func (c *Cursor) CreateList(f ListFormat) *List {
	l := &List{format: f, doc: c.doc}
	for _, b := range c.SelectedBlocks() {
		b.list = l
	}
	c.doc.changed()
	return l
}

// CurrentTable returns the innermost table containing the cursor, or nil.
func (c *Cursor) CurrentTable() *Table {
	if cell := c.Block().frame.cell; cell != nil {
		return cell.table
	}
	return nil
}

// InsertTable inserts a rows x cols table at the cursor, replacing the selection. The
// current block is split so that the table sits between two blocks, and the cursor
// moves into the first cell.
func (c *Cursor) InsertTable(rows, cols int, format TableFormat) *Table {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	if c.HasSelection() {
		c.RemoveSelectedText()
	}
	b, off := c.doc.FindBlock(c.pos)
	splitBlockAt(b, off)
	t := newTable(c.doc, rows, cols, format)
	f := b.frame
	f.insertItems(f.indexOf(b)+1, t)
	c.doc.changed()
	c.SetPosition(t.CellAt(0, 0).FirstPosition(), MoveAnchor)
	return t
}

// InsertImage inserts an inline image referring to the resource name.
func (c *Cursor) InsertImage(name string) {
	if c.HasSelection() {
		c.RemoveSelectedText()
	}
	var f CharFormat
	f.SetImageName(name)
	b, off := c.doc.FindBlock(c.pos)
	b.insertRuns(off, []textRun{{text: []rune{ObjectReplacementChar}, format: f}})
	c.pos++
	c.anchor = c.pos
	c.doc.changed()
}

// Selection returns a deep copy of the selected content.
func (c *Cursor) Selection() *Fragment {
	frag := &Fragment{}
	if !c.HasSelection() {
		return frag
	}
	lists := make(map[*List]int)
	for _, s := range c.spans(c.SelectionStart(), c.SelectionEnd()) {
		_, rest := splitRuns(s.block.runs, s.from)
		mid, _ := splitRuns(rest, s.to-s.from)
		fb := fragmentBlock{format: s.block.format, runs: cloneRuns(mid), listKey: -1}
		if s.block.list != nil {
			key, ok := lists[s.block.list]
			if !ok {
				key = len(lists)
				lists[s.block.list] = key
			}
			fb.listKey = key
			fb.listFormat = s.block.list.format
		}
		frag.blocks = append(frag.blocks, fb)
	}
	return frag
}

// InsertFragment inserts a copy of frag at the cursor, replacing the selection. The
// first fragment block joins the current block, the last one joins the text after the
// cursor.
func (c *Cursor) InsertFragment(frag *Fragment) {
	if frag == nil || frag.IsEmpty() {
		return
	}
	if c.HasSelection() {
		c.RemoveSelectedText()
	}
	lists := make(map[int]*List)
	listOf := func(fb fragmentBlock) *List {
		if fb.listKey < 0 {
			return nil
		}
		l, ok := lists[fb.listKey]
		if !ok {
			l = &List{format: fb.listFormat, doc: c.doc}
			lists[fb.listKey] = l
		}
		return l
	}
	b, off := c.doc.FindBlock(c.pos)
	tail := splitBlockAt(b, off)
	first := frag.blocks[0]
	b.runs = normalizeRuns(append(b.runs, cloneRuns(first.runs)...))
	if len(frag.blocks) > 1 && first.listKey >= 0 && b.list == nil {
		b.list = listOf(first)
	}
	inserted := len(frag.blocks) - 1
	for _, fb := range frag.blocks {
		inserted += fragmentBlockLength(fb)
	}
	prev := b
	for _, fb := range frag.blocks[1:] {
		nb := &Block{format: fb.format, runs: cloneRuns(fb.runs), list: listOf(fb)}
		f := prev.frame
		f.insertItems(f.indexOf(prev)+1, nb)
		prev = nb
	}
	prev.runs = normalizeRuns(append(prev.runs, tail.runs...))
	tf := tail.frame
	tf.removeItem(tf.indexOf(tail))
	c.pos += inserted
	c.anchor = c.pos
	c.doc.changed()
}
