package richedit

// Bullet styles form two cycles: Disc, Circle, Square for plain lists and Decimal,
// LowerAlpha, UpperAlpha, LowerRoman, UpperRoman for numbered lists.
var (
	bulletCycle = []ListStyle{ListDisc, ListCircle, ListSquare}
	numberCycle = []ListStyle{ListDecimal, ListLowerAlpha, ListUpperAlpha, ListLowerRoman, ListUpperRoman}
)

func stepBullet(style ListStyle, step int) ListStyle {
	cycle := bulletCycle
	if style.IsNumbered() {
		cycle = numberCycle
	}
	for i, s := range cycle {
		if s == style {
			return cycle[(i+step+len(cycle))%len(cycle)]
		}
	}
	return style
}

// NextBullet returns the style used one indent level deeper.
func NextBullet(style ListStyle) ListStyle { return stepBullet(style, 1) }

// PrevBullet returns the style used one indent level shallower.
func PrevBullet(style ListStyle) ListStyle { return stepBullet(style, -1) }

// IncreaseSelectionIndent indents the selected paragraphs. List items move into a new
// list one level deeper with the next bullet style; other paragraphs get their block
// indent increased.
func IncreaseSelectionIndent(c *Cursor) {
	if l := c.CurrentList(); l != nil {
		lf := l.Format()
		c.CreateList(ListFormat{Style: NextBullet(lf.Style), Indent: lf.Indent + 1})
		return
	}
	for _, b := range c.SelectedBlocks() {
		b.format.Indent++
	}
	c.doc.changed()
}

// ReduceSelectionIndent outdents the selected paragraphs. List items move one level
// up: if a preceding list at that level is reached before any shallower paragraph, the
// items join it, otherwise they form a new list with the previous bullet style. The
// indent never goes below 0.
func ReduceSelectionIndent(c *Cursor) {
	l := c.CurrentList()
	if l == nil {
		for _, b := range c.SelectedBlocks() {
			b.format.Indent = max(b.format.Indent-1, 0)
		}
		c.doc.changed()
		return
	}
	lf := l.Format()
	if lf.Indent <= 0 {
		return
	}
	target := lf.Indent - 1
	blocks := c.SelectedBlocks()
	if join := precedingListAt(blocks[0], target); join != nil {
		for _, b := range blocks {
			b.list = join
		}
		c.doc.changed()
		return
	}
	c.CreateList(ListFormat{Style: PrevBullet(lf.Style), Indent: target})
}

// precedingListAt walks back from b over deeper list items and returns the first list
// at the given indent. It stops at a paragraph that is not a list item or belongs to a
// shallower list.
func precedingListAt(b *Block, indent int) *List {
	for prev := b.Previous(); prev != nil; prev = prev.Previous() {
		pl := prev.list
		switch {
		case pl == nil:
			return nil
		case pl.format.Indent == indent:
			return pl
		case pl.format.Indent < indent:
			return nil
		}
	}
	return nil
}

// CanMergeWithPreviousList returns true if the cursor is in a list and the paragraph
// before the current one belongs to a different list at the same indent.
func CanMergeWithPreviousList(c *Cursor) bool {
	return previousMergeableList(c) != nil
}

func previousMergeableList(c *Cursor) *List {
	cur := c.CurrentList()
	if cur == nil {
		return nil
	}
	prev := c.Block().Previous()
	if prev == nil || prev.list == nil || prev.list == cur {
		return nil
	}
	if prev.list.format.Indent != cur.format.Indent {
		return nil
	}
	return prev.list
}

// MergeListWithPrevious moves every item of the current list into the previous list.
func MergeListWithPrevious(c *Cursor) {
	prev := previousMergeableList(c)
	if prev == nil {
		return
	}
	for _, b := range c.CurrentList().Items() {
		b.list = prev
	}
	c.doc.changed()
}
