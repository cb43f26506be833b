package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/eduhub/eduhub/internal/client/catalog"
	"github.com/eduhub/eduhub/internal/client/client"
	"github.com/eduhub/eduhub/internal/client/models"
	"github.com/eduhub/eduhub/internal/client/repositories/contentcache"
	"github.com/eduhub/eduhub/internal/logging"
)

// ContentLoader reads content lists from the backend with a local snapshot
// as offline fallback.
//
//   - Fetch: one backend call, classified error, no fallback.
//   - Load: never fails. Successful fetches are snapshotted; failures fall
//     back to the last snapshot or an empty list.
//   - Add: registers a metadata-only item (admin only).
//   - Forget: drops a deleted item from every snapshot.
type ContentLoader interface {
	Fetch(ctx context.Context, q models.ContentQuery) ([]models.ContentItem, error)
	Load(ctx context.Context, q models.ContentQuery) []models.ContentItem
	Add(ctx context.Context, nc models.NewContent) error
	Forget(ctx context.Context, id string)
}

type contentLoader struct {
	client  client.Client
	cache   contentcache.Repository
	catalog *catalog.Catalog
	store   SessionStore
	log     logging.Logger
}

func NewContentLoader(c client.Client, cache contentcache.Repository, cat *catalog.Catalog, store SessionStore, logger logging.Logger) ContentLoader {
	if logger == nil {
		logger = logging.Discard()
	}
	if cat == nil {
		cat = catalog.Default()
	}
	return &contentLoader{client: c, cache: cache, catalog: cat, store: store, log: logger.With("service", "content")}
}

func (l *contentLoader) validate(q models.ContentQuery) error {
	if q.Category != "" && !q.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidQuery, q.Category)
	}
	if q.Semester == 0 {
		return nil
	}
	if err := l.catalog.Validate(q.Semester, q.Subject); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}
	return nil
}

func (l *contentLoader) Fetch(ctx context.Context, q models.ContentQuery) ([]models.ContentItem, error) {
	if err := l.validate(q); err != nil {
		return nil, err
	}
	return l.client.ListContent(ctx, q)
}

func (l *contentLoader) Load(ctx context.Context, q models.ContentQuery) []models.ContentItem {
	items, err := l.Fetch(ctx, q)
	if err == nil {
		if l.cache != nil {
			if cerr := l.cache.Replace(ctx, q, items); cerr != nil {
				l.log.Warn(ctx, "content snapshot not saved", "query", q.Key(), "error", cerr)
			}
		}
		return items
	}

	l.log.Warn(ctx, "content load failed, using local snapshot", "query", q.Key(), "kind", client.Kind(err), "error", err)
	if l.cache == nil {
		return []models.ContentItem{}
	}
	snap, ok, cerr := l.cache.Get(ctx, q)
	if cerr != nil {
		l.log.Error(ctx, "content snapshot unreadable", "query", q.Key(), "error", cerr)
		return []models.ContentItem{}
	}
	if !ok {
		return []models.ContentItem{}
	}
	l.log.Info(ctx, "serving cached content", "query", q.Key(), "items", len(snap.Items), "cached_at", snap.CachedAt)
	return snap.Items
}

func (l *contentLoader) Add(ctx context.Context, nc models.NewContent) error {
	token := l.store.Token()
	if token == "" {
		return client.ErrUnauthenticated
	}
	nc.Title = strings.TrimSpace(nc.Title)
	if nc.Title == "" {
		return ErrTitleRequired
	}
	if err := l.validate(models.ContentQuery{Semester: nc.Semester, Subject: nc.Subject, Category: nc.Category}); err != nil {
		return err
	}
	if nc.Size == "" {
		nc.Size = models.UnknownSize
	}
	if nc.Type == "" {
		nc.Type = models.DetectType(nc.Title)
	}
	if err := l.client.CreateContent(ctx, token, nc); err != nil {
		return err
	}
	l.log.Info(ctx, "content registered", "title", nc.Title, "semester", nc.Semester, "subject", nc.Subject, "category", nc.Category)
	return nil
}

func (l *contentLoader) Forget(ctx context.Context, id string) {
	if l.cache == nil {
		return
	}
	if err := l.cache.RemoveItem(ctx, id); err != nil {
		l.log.Warn(ctx, "deleted item left in snapshot", "id", id, "error", err)
	}
}
