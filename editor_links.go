package richedit

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"go.uber.org/zap"
)

// ErrInvalidLink is returned when a link target can not be used.
var ErrInvalidLink = errors.New("invalid link")

// linkColor is the foreground of inserted links.
var linkColor = color.RGBA{0, 0, 238, 255}

// PointOverLink returns the link under the point, if any.
func (e *TextEdit) PointOverLink(p fyne.Position) (Link, bool) {
	if e.Locator == nil {
		return Link{}, false
	}
	pos, ok := e.Locator.PositionAt(p)
	if !ok {
		return Link{}, false
	}
	a, ok := e.links.AnchorAt(pos)
	if !ok {
		return Link{}, false
	}
	return ClassifyAnchor(a.Href)
}

func (e *TextEdit) statusMessage(msg string) {
	if e.OnStatusMessage != nil {
		e.OnStatusMessage(msg)
	}
}

// linkMessage describes a link for the status line.
func (e *TextEdit) linkMessage(l Link) string {
	if l.Kind == WebLink {
		return l.URL.String()
	}
	if e.store != nil {
		if title, ok := e.store.PageTitle(l.Page); ok {
			return fmt.Sprintf("Go to page %q", title)
		}
	}
	return fmt.Sprintf("Go to page %d", l.Page)
}

// hover updates the pointer override for the link under p. The override is pushed once
// when the pointer enters a link and popped once when it leaves.
func (e *TextEdit) hover(p fyne.Position) {
	l, ok := e.PointOverLink(p)
	e.mutex.Lock()
	was := e.hovered
	if ok {
		e.hovered = &l
	} else {
		e.hovered = nil
	}
	e.mutex.Unlock()
	switch {
	case ok && was == nil:
		e.override.Push(desktop.PointerCursor)
		e.statusMessage(e.linkMessage(l))
	case ok && was.Href != l.Href:
		e.statusMessage(e.linkMessage(l))
	case !ok && was != nil:
		e.override.Pop()
		e.statusMessage("")
	}
}

func (e *TextEdit) MouseIn(evt *desktop.MouseEvent) {
	e.hover(evt.Position)
}

func (e *TextEdit) MouseMoved(evt *desktop.MouseEvent) {
	e.hover(evt.Position)
}

func (e *TextEdit) MouseOut() {
	e.mutex.Lock()
	was := e.hovered
	e.hovered = nil
	e.mutex.Unlock()
	if was != nil {
		e.override.Pop()
		e.statusMessage("")
	}
}

// Cursor returns the pointer cursor, the pointing hand while over a link.
func (e *TextEdit) Cursor() desktop.Cursor {
	return e.override.Current(desktop.TextCursor)
}

// Tapped follows the link under the pointer or moves the cursor there.
func (e *TextEdit) Tapped(evt *fyne.PointEvent) {
	if l, ok := e.PointOverLink(evt.Position); ok {
		e.FollowLink(l)
		return
	}
	if e.Locator == nil {
		return
	}
	if pos, ok := e.Locator.PositionAt(evt.Position); ok {
		e.withCursor(func(c *Cursor) { c.SetPosition(pos, MoveAnchor) })
	}
}

// FollowLink opens a web link with the opener or asks the switchboard to go to a page.
func (e *TextEdit) FollowLink(l Link) {
	switch l.Kind {
	case PageLink:
		if l.Page == InvalidPageID {
			logger.Warn("link to invalid page", zap.String("href", l.Href))
			return
		}
		e.board.EmitGotoPage(l.Page)
	case WebLink:
		if e.Opener == nil {
			return
		}
		if err := e.Opener.OpenURL(l.URL); err != nil {
			logger.Error("cannot open link", zap.String("href", l.Href), zap.Error(err))
		}
	}
}

func linkFormat(base CharFormat, href string) CharFormat {
	f := base.insertionFormat()
	f.SetAnchorHref(href)
	f.SetFontUnderline(true)
	f.SetForeground(linkColor)
	return f
}

// insertLink inserts text as an anchor and leaves the cursor with a plain format so
// that typing after the link does not extend it.
func (e *TextEdit) insertLink(href, text string) {
	c := e.cursor
	if c.HasSelection() {
		c.RemoveSelectedText()
	}
	c.InsertTextWithFormat(text, linkFormat(c.CharFormat(), href))
	e.cursorChanged()
}

// InsertPageLink inserts a link to a notebook page. An empty text is replaced by the
// page title, or by "Page n" if the store does not know the page.
func (e *TextEdit) InsertPageLink(id PageID, text string) error {
	if id == InvalidPageID {
		return fmt.Errorf("%w: page %d", ErrInvalidLink, id)
	}
	if text == "" && e.store != nil {
		text, _ = e.store.PageTitle(id)
	}
	if text == "" {
		text = fmt.Sprintf("Page %d", id)
	}
	e.insertLink(NotebookLink(id), text)
	return nil
}

// InsertWebLink inserts a link to a web address. The href must be an absolute URL; an
// empty text is replaced by the href.
func (e *TextEdit) InsertWebLink(href, text string) error {
	l, ok := ClassifyAnchor(href)
	if !ok || l.Kind != WebLink {
		return fmt.Errorf("%w: %q", ErrInvalidLink, href)
	}
	if text == "" {
		text = href
	}
	e.insertLink(href, text)
	return nil
}

// UrlifySelection turns the selected text into a web link to itself. Text without a
// scheme gets https. It returns false if the selection is not a usable address.
func (e *TextEdit) UrlifySelection() bool {
	text := e.trimmedSelection()
	if text == "" || strings.ContainsAny(text, " \t\n"+string(ParagraphSeparator)) {
		return false
	}
	href := text
	if !strings.Contains(href, "://") {
		href = "https://" + href
	}
	l, ok := ClassifyAnchor(href)
	if !ok || l.Kind != WebLink || l.URL.Host == "" {
		return false
	}
	e.withCursor(func(c *Cursor) {
		c.formatSelection(func(f *CharFormat) {
			f.SetAnchorHref(href)
			f.SetFontUnderline(true)
			f.SetForeground(linkColor)
		})
	})
	return true
}
