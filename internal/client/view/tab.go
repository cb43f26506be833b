package view

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/eduhub/eduhub/internal/client/models"
)

// ItemState is the visible lifecycle of a listed item:
// listed → deleting → removed, or back to listed on failure.
type ItemState int

const (
	ItemListed ItemState = iota
	ItemDeleting
	ItemRemoved
)

func (s ItemState) String() string {
	switch s {
	case ItemDeleting:
		return "deleting"
	case ItemRemoved:
		return "removed"
	default:
		return "listed"
	}
}

type row struct {
	item  models.ContentItem
	state ItemState
}

// TabView is the visible list of one (semester, subject, category) tab.
type TabView struct {
	mu    sync.Mutex
	query models.ContentQuery
	rows  []row
}

func NewTabView(q models.ContentQuery) *TabView {
	return &TabView{query: q}
}

func (v *TabView) Query() models.ContentQuery { return v.query }

func (v *TabView) Tab() models.Category { return v.query.Category }

// SetItems replaces the list; every item starts as listed.
func (v *TabView) SetItems(items []models.ContentItem) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rows = make([]row, 0, len(items))
	for _, it := range items {
		v.rows = append(v.rows, row{item: it})
	}
}

// Items returns the items still on screen (listed or deleting).
func (v *TabView) Items() []models.ContentItem {
	v.mu.Lock()
	defer v.mu.Unlock()
	var out []models.ContentItem
	for _, r := range v.rows {
		if r.state != ItemRemoved {
			out = append(out, r.item)
		}
	}
	return out
}

func (v *TabView) Len() int {
	return len(v.Items())
}

// At returns the n-th visible item, 1-based, as numbered by Render.
func (v *TabView) At(n int) (models.ContentItem, bool) {
	items := v.Items()
	if n < 1 || n > len(items) {
		return models.ContentItem{}, false
	}
	return items[n-1], true
}

func (v *TabView) State(id string) (ItemState, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, r := range v.rows {
		if r.item.ID == id {
			return r.state, true
		}
	}
	return ItemListed, false
}

func (v *TabView) set(id string, from []ItemState, to ItemState) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.rows {
		if v.rows[i].item.ID != id {
			continue
		}
		for _, f := range from {
			if v.rows[i].state == f {
				v.rows[i].state = to
				return true
			}
		}
		return false
	}
	return false
}

// MarkDeleting dims a listed item. It reports false if the item is absent
// or not listed.
func (v *TabView) MarkDeleting(id string) bool {
	return v.set(id, []ItemState{ItemListed}, ItemDeleting)
}

// Restore puts a deleting item back to listed.
func (v *TabView) Restore(id string) bool {
	return v.set(id, []ItemState{ItemDeleting}, ItemListed)
}

// Remove drops the item from the visible list and returns how many remain.
func (v *TabView) Remove(id string) int {
	v.set(id, []ItemState{ItemListed, ItemDeleting}, ItemRemoved)
	return v.Len()
}

// Render prints the numbered list. now anchors relative upload times.
func (v *TabView) Render(w io.Writer, now time.Time) {
	v.mu.Lock()
	defer v.mu.Unlock()

	n := 0
	for _, r := range v.rows {
		if r.state == ItemRemoved {
			continue
		}
		n++
		line := fmt.Sprintf("%3d. %s [%s, %s]", n, r.item.Title, r.item.Type, r.item.Size)
		if !r.item.CreatedAt.IsZero() {
			line += " uploaded " + humanize.RelTime(r.item.CreatedAt, now, "ago", "from now")
		}
		if !r.item.HasFile() {
			line += " (no file)"
		}
		if r.state == ItemDeleting {
			line += " (deleting...)"
		}
		fmt.Fprintln(w, line)
	}
	if n == 0 {
		fmt.Fprintf(w, "No %s yet.\n", v.query.Category.Label())
	}
}
