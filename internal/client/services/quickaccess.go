package services

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/eduhub/eduhub/internal/client/catalog"
	"github.com/eduhub/eduhub/internal/client/models"
)

// SubjectGroup is one subject's share of a semester-wide listing.
type SubjectGroup struct {
	Subject string
	Title   string
	Items   []models.ContentItem
}

// QuickAccess lists a semester's items of one kind across all subjects.
type QuickAccess interface {
	// Assignments combines assignments and PYQs, fetched concurrently.
	Assignments(ctx context.Context, semester int) ([]SubjectGroup, error)
	PYQs(ctx context.Context, semester int) ([]SubjectGroup, error)
	Syllabus(ctx context.Context, semester int) ([]SubjectGroup, error)
}

type quickAccess struct {
	loader  ContentLoader
	catalog *catalog.Catalog
}

func NewQuickAccess(loader ContentLoader, cat *catalog.Catalog) QuickAccess {
	if cat == nil {
		cat = catalog.Default()
	}
	return &quickAccess{loader: loader, catalog: cat}
}

func (q *quickAccess) Assignments(ctx context.Context, semester int) ([]SubjectGroup, error) {
	return q.collect(ctx, semester, models.CategoryAssignments, models.CategoryPYQs)
}

func (q *quickAccess) PYQs(ctx context.Context, semester int) ([]SubjectGroup, error) {
	return q.collect(ctx, semester, models.CategoryPYQs)
}

func (q *quickAccess) Syllabus(ctx context.Context, semester int) ([]SubjectGroup, error) {
	return q.collect(ctx, semester, models.CategorySyllabus)
}

func (q *quickAccess) collect(ctx context.Context, semester int, categories ...models.Category) ([]SubjectGroup, error) {
	sem, err := q.catalog.Semester(semester)
	if err != nil {
		return nil, err
	}

	results := make([][]models.ContentItem, len(categories))
	g, gctx := errgroup.WithContext(ctx)
	for i, cat := range categories {
		i, cat := i, cat
		g.Go(func() error {
			results[i] = q.loader.Load(gctx, models.ContentQuery{Semester: semester, Category: cat})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []models.ContentItem
	for _, r := range results {
		all = append(all, r...)
	}
	return group(sem, q.catalog, all), nil
}

// group buckets items by subject in catalog order; subjects outside the
// catalog follow, sorted by key.
func group(sem catalog.Semester, cat *catalog.Catalog, items []models.ContentItem) []SubjectGroup {
	byKey := make(map[string][]models.ContentItem)
	for _, it := range items {
		byKey[it.Subject] = append(byKey[it.Subject], it)
	}

	var out []SubjectGroup
	for _, sub := range sem.Subjects {
		if list, ok := byKey[sub.Key]; ok {
			out = append(out, SubjectGroup{Subject: sub.Key, Title: sub.Title, Items: list})
			delete(byKey, sub.Key)
		}
	}

	rest := make([]string, 0, len(byKey))
	for k := range byKey {
		rest = append(rest, k)
	}
	sort.Strings(rest)
	for _, k := range rest {
		out = append(out, SubjectGroup{Subject: k, Title: cat.SubjectTitle(k, sem.Number), Items: byKey[k]})
	}
	return out
}
