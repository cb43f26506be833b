package contentcache

import (
	"context"
	"time"

	"github.com/eduhub/eduhub/internal/client/models"
)

// Snapshot is a cached list with the time it was stored.
type Snapshot struct {
	Items    []models.ContentItem
	CachedAt time.Time
}

type Repository interface {
	// Replace swaps the stored list for query with items, atomically.
	Replace(ctx context.Context, query models.ContentQuery, items []models.ContentItem) error
	// Get returns the stored list for query; ok is false when nothing was cached.
	Get(ctx context.Context, query models.ContentQuery) (snap Snapshot, ok bool, err error)
	// RemoveItem drops the item from every cached list.
	RemoveItem(ctx context.Context, id string) error
}
