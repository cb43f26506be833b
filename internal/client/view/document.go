package view

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

// Stable region identifiers.
const (
	AdminNavRegion = "admin-nav-section"
	GuestNavRegion = "guest-nav-section"
)

type Region interface {
	Show()
	Hide()
	Visible() bool
}

// Document looks regions up by id. A missing region is not an error.
type Document interface {
	Region(id string) (Region, bool)
}

// TextRegion is a region rendered as a fixed block of text.
type TextRegion struct {
	mu      sync.Mutex
	visible bool
	text    string
}

func NewTextRegion(text string) *TextRegion {
	return &TextRegion{text: text}
}

func (r *TextRegion) Show() {
	r.mu.Lock()
	r.visible = true
	r.mu.Unlock()
}

func (r *TextRegion) Hide() {
	r.mu.Lock()
	r.visible = false
	r.mu.Unlock()
}

func (r *TextRegion) Visible() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.visible
}

func (r *TextRegion) Text() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.text
}

// Screen is the terminal Document.
type Screen struct {
	mu      sync.RWMutex
	order   []string
	regions map[string]*TextRegion
}

func NewScreen() *Screen {
	return &Screen{regions: make(map[string]*TextRegion)}
}

// NewNavScreen returns a screen with both navigation regions mounted.
func NewNavScreen() *Screen {
	s := NewScreen()
	s.Mount(GuestNavRegion, NewTextRegion("Guest mode: browse with semesters/subjects/open/tab/list, or login"))
	s.Mount(AdminNavRegion, NewTextRegion("Admin mode: upload, add, delete, storage, uploads, logout"))
	return s
}

func (s *Screen) Mount(id string, r *TextRegion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.regions[id]; !ok {
		s.order = append(s.order, id)
	}
	s.regions[id] = r
}

func (s *Screen) Unmount(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.regions, id)
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Screen) Region(id string) (Region, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.regions[id]
	if !ok {
		return nil, false
	}
	return r, true
}

// VisibleIDs lists visible regions, sorted.
func (s *Screen) VisibleIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ids []string
	for id, r := range s.regions {
		if r.Visible() {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Render writes every visible region in mount order.
func (s *Screen) Render(w io.Writer) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		if r := s.regions[id]; r.Visible() {
			fmt.Fprintln(w, r.Text())
		}
	}
}
