package view

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduhub/eduhub/internal/client/models"
	"github.com/eduhub/eduhub/internal/logging"
)

type captureLogger struct {
	mu   sync.Mutex
	msgs []string
}

func (c *captureLogger) add(msg string) {
	c.mu.Lock()
	c.msgs = append(c.msgs, msg)
	c.mu.Unlock()
}

func (c *captureLogger) Debug(_ context.Context, msg string, _ ...any) { c.add(msg) }
func (c *captureLogger) Info(_ context.Context, msg string, _ ...any)  { c.add(msg) }
func (c *captureLogger) Warn(_ context.Context, msg string, _ ...any)  { c.add(msg) }
func (c *captureLogger) Error(_ context.Context, msg string, _ ...any) { c.add(msg) }
func (c *captureLogger) With(...any) logging.Logger                    { return c }

func TestSwitcher_TogglesRegions(t *testing.T) {
	screen := NewNavScreen()
	sw := NewSwitcher(screen, nil)

	sw.ShowAdmin()
	assert.Equal(t, []string{AdminNavRegion}, screen.VisibleIDs())

	sw.ShowGuest()
	assert.Equal(t, []string{GuestNavRegion}, screen.VisibleIDs())
}

func TestSwitcher_ShowGuestIsIdempotent(t *testing.T) {
	screen := NewNavScreen()
	sw := NewSwitcher(screen, nil)

	sw.ShowGuest()
	once := screen.VisibleIDs()
	var first bytes.Buffer
	screen.Render(&first)

	sw.ShowGuest()
	var second bytes.Buffer
	screen.Render(&second)

	assert.Equal(t, once, screen.VisibleIDs())
	assert.Equal(t, first.String(), second.String())
}

func TestSwitcher_MissingRegionsAreLogged(t *testing.T) {
	screen := NewScreen()
	guest := NewTextRegion("guest")
	screen.Mount(GuestNavRegion, guest)
	log := &captureLogger{}
	sw := NewSwitcher(screen, log)

	require.NotPanics(t, sw.ShowAdmin)
	require.NotPanics(t, sw.ShowGuest)
	assert.True(t, guest.Visible())
	assert.Len(t, log.msgs, 2)

	require.NotPanics(t, NewSwitcher(nil, log).ShowGuest)
}

func TestScreen_UnmountAndRender(t *testing.T) {
	screen := NewNavScreen()
	NewSwitcher(screen, nil).ShowAdmin()
	screen.Unmount(AdminNavRegion)

	var buf bytes.Buffer
	screen.Render(&buf)
	assert.Empty(t, buf.String())
	_, ok := screen.Region(AdminNavRegion)
	assert.False(t, ok)
}

func items(ids ...string) []models.ContentItem {
	var out []models.ContentItem
	for _, id := range ids {
		out = append(out, models.ContentItem{ID: id, Title: "T-" + id, Type: "PDF", Size: "1 KiB", FileURL: "/f/" + id})
	}
	return out
}

func TestTabView_DeleteLifecycle(t *testing.T) {
	v := NewTabView(models.ContentQuery{Semester: 1, Subject: "physics", Category: models.CategoryResources})
	v.SetItems(items("a", "b"))

	require.True(t, v.MarkDeleting("a"))
	assert.False(t, v.MarkDeleting("a"), "already deleting")
	st, _ := v.State("a")
	assert.Equal(t, ItemDeleting, st)
	assert.Equal(t, 2, v.Len())

	require.True(t, v.Restore("a"))
	st, _ = v.State("a")
	assert.Equal(t, ItemListed, st)

	require.True(t, v.MarkDeleting("b"))
	assert.Equal(t, 1, v.Remove("b"))
	assert.Equal(t, 0, v.Remove("a"))
	assert.False(t, v.Restore("a"))
	assert.False(t, v.MarkDeleting("zzz"))
}

func TestTabView_AtAndRender(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	v := NewTabView(models.ContentQuery{Category: models.CategoryPYQs})
	list := items("a", "b")
	list[1].FileURL = ""
	list[1].CreatedAt = now.Add(-2 * time.Hour)
	v.SetItems(list)

	it, ok := v.At(2)
	require.True(t, ok)
	assert.Equal(t, "b", it.ID)
	_, ok = v.At(3)
	assert.False(t, ok)

	v.MarkDeleting("a")
	var buf bytes.Buffer
	v.Render(&buf, now)
	out := buf.String()
	assert.Contains(t, out, "1. T-a [PDF, 1 KiB] (deleting...)")
	assert.Contains(t, out, "2. T-b [PDF, 1 KiB] uploaded 2 hours ago (no file)")

	v.SetItems(nil)
	buf.Reset()
	v.Render(&buf, now)
	assert.Equal(t, "No PYQs yet.\n", buf.String())
}
