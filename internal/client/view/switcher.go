package view

import (
	"context"

	"github.com/eduhub/eduhub/internal/logging"
)

// Switcher projects the session mode onto the two navigation regions.
// Both calls are idempotent and tolerate missing regions.
type Switcher struct {
	doc Document
	log logging.Logger
}

func NewSwitcher(doc Document, logger logging.Logger) *Switcher {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Switcher{doc: doc, log: logger}
}

func (s *Switcher) ShowAdmin() {
	s.toggle(AdminNavRegion, GuestNavRegion)
}

func (s *Switcher) ShowGuest() {
	s.toggle(GuestNavRegion, AdminNavRegion)
}

func (s *Switcher) toggle(show, hide string) {
	if r, ok := s.region(show); ok {
		r.Show()
	}
	if r, ok := s.region(hide); ok {
		r.Hide()
	}
}

func (s *Switcher) region(id string) (Region, bool) {
	if s.doc == nil {
		s.log.Warn(context.Background(), "no document bound, region skipped", "region", id)
		return nil, false
	}
	r, ok := s.doc.Region(id)
	if !ok {
		s.log.Warn(context.Background(), "region not found", "region", id)
	}
	return r, ok
}
