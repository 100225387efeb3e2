package richedit

import "sync"

// observers is a list of callbacks called in registration order.
type observers[T any] struct {
	fns   []func(T)
	mutex sync.Mutex
}

func (o *observers[T]) add(fn func(T)) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.fns = append(o.fns, fn)
}

func (o *observers[T]) emit(v T) {
	o.mutex.Lock()
	fns := append(([]func(T))(nil), o.fns...)
	o.mutex.Unlock()
	for _, fn := range fns {
		fn(v)
	}
}

// PageTitle is the payload of page creation, import and title events.
type PageTitle struct {
	Page           PageID
	Title          string
	IsModification bool
}

// Switchboard connects the editor to the navigation components of the host. Events are
// delivered synchronously on the emitting goroutine, in the order observers registered.
type Switchboard struct {
	pageSelected         observers[PageID]
	gotoPage             observers[PageID]
	newPageCreated       observers[PageTitle]
	pageTitleUpdated     observers[PageTitle]
	pageDeleted          observers[PageID]
	pageImported         observers[PageTitle]
	pageImportUpdated    observers[PageTitle]
	pageImportDeleted    observers[PageID]
	tableFormatRequested observers[*TextTable]
	textChanged          observers[struct{}]
}

func NewSwitchboard() *Switchboard {
	return &Switchboard{}
}

func (s *Switchboard) OnPageSelected(fn func(PageID)) { s.pageSelected.add(fn) }
func (s *Switchboard) EmitPageSelected(id PageID) { s.pageSelected.emit(id) }
func (s *Switchboard) OnGotoPage(fn func(PageID)) { s.gotoPage.add(fn) }
func (s *Switchboard) EmitGotoPage(id PageID) { s.gotoPage.emit(id) }
func (s *Switchboard) OnNewPageCreated(fn func(PageTitle)) { s.newPageCreated.add(fn) }
func (s *Switchboard) EmitNewPageCreated(p PageTitle) { s.newPageCreated.emit(p) }
func (s *Switchboard) OnPageTitleUpdated(fn func(PageTitle)) { s.pageTitleUpdated.add(fn) }
func (s *Switchboard) EmitPageTitleUpdated(p PageTitle) { s.pageTitleUpdated.emit(p) }
func (s *Switchboard) OnPageDeleted(fn func(PageID)) { s.pageDeleted.add(fn) }
func (s *Switchboard) EmitPageDeleted(id PageID) { s.pageDeleted.emit(id) }
func (s *Switchboard) OnPageImported(fn func(PageTitle)) { s.pageImported.add(fn) }
func (s *Switchboard) EmitPageImported(p PageTitle) { s.pageImported.emit(p) }
func (s *Switchboard) OnPageImportUpdated(fn func(PageTitle)) { s.pageImportUpdated.add(fn) }
func (s *Switchboard) EmitPageImportUpdated(p PageTitle) { s.pageImportUpdated.emit(p) }
func (s *Switchboard) OnPageImportDeleted(fn func(PageID)) { s.pageImportDeleted.add(fn) }
func (s *Switchboard) EmitPageImportDeleted(id PageID) { s.pageImportDeleted.emit(id) }

// OnTableFormatRequested registers a handler that shows the table format dialog.
func (s *Switchboard) OnTableFormatRequested(fn func(*TextTable)) { s.tableFormatRequested.add(fn) }
func (s *Switchboard) EmitTableFormatRequested(t *TextTable) { s.tableFormatRequested.emit(t) }

func (s *Switchboard) OnTextChanged(fn func()) {
	s.textChanged.add(func(struct{}) { fn() })
}

func (s *Switchboard) EmitTextChanged() { s.textChanged.emit(struct{}{}) }
