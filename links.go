package richedit

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"fyne.io/fyne/v2/driver/desktop"
)

// InternalLinkPrefix starts every link to a notebook page.
const InternalLinkPrefix = "NB://"

// PageID identifies a notebook page.
type PageID int

// InvalidPageID is returned for links that name no page.
const InvalidPageID PageID = 0

var pagePattern = regexp.MustCompile(`page=(\d+)`)

// IsNotebookLink returns true if href points to a notebook page.
func IsNotebookLink(href string) bool {
	return strings.HasPrefix(href, InternalLinkPrefix)
}

// NotebookLinkPage extracts the page id of a notebook link, InvalidPageID if there is none.
func NotebookLinkPage(href string) PageID {
	m := pagePattern.FindStringSubmatch(href)
	if m == nil {
		return InvalidPageID
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return InvalidPageID
	}
	return PageID(id)
}

// NotebookLink returns the href of a link to the page.
func NotebookLink(id PageID) string {
	return fmt.Sprintf("%spage=%d", InternalLinkPrefix, id)
}

type LinkKind int

const (
	PageLink LinkKind = iota + 1
	WebLink
)

// Link is a resolved anchor.
type Link struct {
	Kind LinkKind
	Href string
	Page PageID   // for page links
	URL  *url.URL // for web links
}

// ClassifyAnchor resolves an anchor href. Only absolute hrefs containing "://" are
// links; web links must parse as URLs with a scheme.
func ClassifyAnchor(href string) (Link, bool) {
	if !strings.Contains(href, "://") {
		return Link{}, false
	}
	if IsNotebookLink(href) {
		return Link{Kind: PageLink, Href: href, Page: NotebookLinkPage(href)}, true
	}
	u, err := url.Parse(href)
	if err != nil || u.Scheme == "" {
		return Link{}, false
	}
	return Link{Kind: WebLink, Href: href, URL: u}, true
}

// CursorOverride is a stack of pointer cursors shown instead of the widget's default.
// Every Push must be matched by a Pop; Release pops whatever is left, for instance when
// the widget goes away while a link is hovered.
type CursorOverride struct {
	stack []desktop.Cursor
	mutex sync.Mutex
}

func (o *CursorOverride) Push(c desktop.Cursor) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.stack = append(o.stack, c)
}

// Pop removes the topmost override. Popping an empty stack does nothing.
func (o *CursorOverride) Pop() {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	if len(o.stack) > 0 {
		o.stack = o.stack[:len(o.stack)-1]
	}
}

func (o *CursorOverride) Active() bool {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	return len(o.stack) > 0
}

// Current returns the topmost override, or def if there is none.
func (o *CursorOverride) Current(def desktop.Cursor) desktop.Cursor {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	if len(o.stack) == 0 {
		return def
	}
	return o.stack[len(o.stack)-1]
}

// Release pops every override.
func (o *CursorOverride) Release() {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.stack = nil
}
