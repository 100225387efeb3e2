package richedit

import (
	"sync"

	"github.com/rdleal/intervalst/interval"
)

// Anchor is a maximal run of characters carrying the same href.
type Anchor struct {
	Range
	Href string
}

// LinkIndex answers which anchor lies at a document position. The index is rebuilt
// lazily whenever the document has changed since the last lookup.
type LinkIndex struct {
	doc      *Document
	revision uint64
	built    bool
	anchors  []Anchor
	lookup   *interval.MultiValueSearchTree[Anchor, int]
	mutex    sync.Mutex
}

func NewLinkIndex(doc *Document) *LinkIndex {
	return &LinkIndex{doc: doc}
}

func (x *LinkIndex) refresh() {
	if x.built && x.revision == x.doc.Revision() {
		return
	}
	x.lookup = interval.NewMultiValueSearchTreeWithOptions[Anchor, int](CmpPos, interval.TreeWithIntervalPoint())
	x.anchors = collectAnchors(x.doc)
	for _, a := range x.anchors {
		// intervals are closed, anchors half-open
		x.lookup.Insert(a.Start, a.End-1, a)
	}
	x.revision = x.doc.Revision()
	x.built = true
}

func collectAnchors(doc *Document) []Anchor {
	var anchors []Anchor
	for _, b := range doc.Blocks() {
		var cur *Anchor
		for _, frag := range b.Fragments() {
			href := frag.Format.AnchorHref()
			end := frag.Position + len([]rune(frag.Text))
			if !frag.Format.IsAnchor() || href == "" {
				cur = nil
				continue
			}
			if cur != nil && cur.Href == href && cur.End == frag.Position {
				cur.End = end
				continue
			}
			anchors = append(anchors, Anchor{Range: Range{Start: frag.Position, End: end}, Href: href})
			cur = &anchors[len(anchors)-1]
		}
	}
	return anchors
}

// AnchorAt returns the anchor covering pos.
func (x *LinkIndex) AnchorAt(pos int) (Anchor, bool) {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	x.refresh()
	found, ok := x.lookup.AnyIntersection(pos, pos)
	if !ok || len(found) == 0 {
		return Anchor{}, false
	}
	return found[0], true
}

// Anchors returns every anchor of the document in document order.
func (x *LinkIndex) Anchors() []Anchor {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	x.refresh()
	return append([]Anchor(nil), x.anchors...)
}
