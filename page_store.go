package richedit

import (
	"sync"

	"golang.org/x/exp/slices"
)

// PageStore is the part of the notebook database the editor needs.
type PageStore interface {
	PageTitle(id PageID) (string, bool)
	AddImage(name string, data []byte, page PageID) bool
	Image(name string) ([]byte, bool)
}

type storedImage struct {
	data []byte
	page PageID
}

// MemoryPageStore is a PageStore kept in memory.
type MemoryPageStore struct {
	titles map[PageID]string
	images map[string]storedImage
	mutex  sync.RWMutex
}

func NewMemoryPageStore() *MemoryPageStore {
	return &MemoryPageStore{
		titles: make(map[PageID]string),
		images: make(map[string]storedImage),
	}
}

func (s *MemoryPageStore) SetPageTitle(id PageID, title string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.titles[id] = title
}

func (s *MemoryPageStore) PageTitle(id PageID) (string, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	title, ok := s.titles[id]
	return title, ok
}

// AddImage stores image data. It fails for an empty name, empty data or a name in use.
func (s *MemoryPageStore) AddImage(name string, data []byte, page PageID) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if name == "" || len(data) == 0 {
		return false
	}
	if _, ok := s.images[name]; ok {
		return false
	}
	s.images[name] = storedImage{data: append([]byte(nil), data...), page: page}
	return true
}

func (s *MemoryPageStore) Image(name string) ([]byte, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	img, ok := s.images[name]
	return img.data, ok
}

// ImagesOfPage returns the sorted names of all images stored for the page.
func (s *MemoryPageStore) ImagesOfPage(page PageID) []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	var names []string
	for name, img := range s.images {
		if img.page == page {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
