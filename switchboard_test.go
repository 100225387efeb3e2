package richedit

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwitchboardOrder(t *testing.T) {
	s := NewSwitchboard()
	var got []string
	s.OnGotoPage(func(id PageID) { got = append(got, "first") })
	s.OnGotoPage(func(id PageID) { got = append(got, "second") })
	s.EmitGotoPage(3)
	assert.Equal(t, []string{"first", "second"}, got)
}

func TestSwitchboardPayloads(t *testing.T) {
	s := NewSwitchboard()
	var titles []PageTitle
	var deleted []PageID
	texts := 0
	s.OnNewPageCreated(func(p PageTitle) { titles = append(titles, p) })
	s.OnPageTitleUpdated(func(p PageTitle) { titles = append(titles, p) })
	s.OnPageImported(func(p PageTitle) { titles = append(titles, p) })
	s.OnPageDeleted(func(id PageID) { deleted = append(deleted, id) })
	s.OnPageImportDeleted(func(id PageID) { deleted = append(deleted, -id) })
	s.OnTextChanged(func() { texts++ })

	s.EmitNewPageCreated(PageTitle{Page: 1, Title: "one"})
	s.EmitPageTitleUpdated(PageTitle{Page: 1, Title: "uno", IsModification: true})
	s.EmitPageImported(PageTitle{Page: 2, Title: "two"})
	s.EmitPageImportUpdated(PageTitle{Page: 2, Title: "dos"})
	s.EmitPageDeleted(1)
	s.EmitPageImportDeleted(2)
	s.EmitPageSelected(5)
	s.EmitTextChanged()
	s.EmitTextChanged()

	assert.Equal(t, []PageTitle{
		{Page: 1, Title: "one"},
		{Page: 1, Title: "uno", IsModification: true},
		{Page: 2, Title: "two"},
	}, titles)
	assert.Equal(t, []PageID{1, -2}, deleted)
	assert.Equal(t, 2, texts)
}

func TestSwitchboardTableFormatRequest(t *testing.T) {
	s := NewSwitchboard()
	var req *TextTable
	s.OnTableFormatRequested(func(tt *TextTable) { req = tt })
	tt := &TextTable{}
	s.EmitTableFormatRequested(tt)
	assert.Same(t, tt, req)
}

func TestSwitchboardConcurrentEmit(t *testing.T) {
	s := NewSwitchboard()
	var mutex sync.Mutex
	count := 0
	s.OnPageSelected(func(PageID) {
		mutex.Lock()
		count++
		mutex.Unlock()
	})
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id PageID) {
			defer wg.Done()
			s.EmitPageSelected(id)
		}(PageID(i))
	}
	wg.Wait()
	assert.Equal(t, 10, count)
}

// A handler may register further handlers without deadlocking; they see later events.
func TestSwitchboardRegisterDuringEmit(t *testing.T) {
	s := NewSwitchboard()
	late := 0
	s.OnGotoPage(func(PageID) {
		s.OnGotoPage(func(PageID) { late++ })
	})
	s.EmitGotoPage(1)
	assert.Equal(t, 0, late)
	s.EmitGotoPage(1)
	assert.Equal(t, 1, late)
}
