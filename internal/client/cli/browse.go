package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/eduhub/eduhub/internal/client/models"
	"github.com/eduhub/eduhub/internal/client/services"
	"github.com/eduhub/eduhub/internal/client/view"
)

// Semesters prints the course layout.
func (a *App) Semesters(ctx context.Context) error {
	for _, s := range a.catalog.Semesters() {
		fmt.Fprintf(a.out, "%d. %s (%d subjects)\n", s.Number, s.Title, len(s.Subjects))
	}
	return nil
}

// Subjects prints the subjects of one semester, the open one by default.
func (a *App) Subjects(ctx context.Context, args []string) error {
	n, err := a.semesterArg(args)
	if err != nil {
		return err
	}
	sem, err := a.catalog.Semester(n)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, sem.Title)
	for _, sub := range sem.Subjects {
		fmt.Fprintf(a.out, "  %-30s %s  %s\n", sub.Key, sub.Code, sub.Title)
	}
	return nil
}

// Open selects a subject by key or by title and shows its first tab.
func (a *App) Open(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return &msgError{msg: "Usage: open <sem> <subject>"}
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return &msgError{msg: "Usage: open <sem> <subject>", err: err}
	}
	name := strings.Join(args[1:], " ")

	key := name
	if _, err := a.catalog.Subject(n, key); err != nil {
		byTitle, ok := a.catalog.FindSubjectKeyByTitle(name)
		if !ok {
			return err
		}
		key = byTitle
	}
	sub, err := a.catalog.Subject(n, key)
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.semester, a.subject = n, sub.Key
	a.mu.Unlock()

	fmt.Fprintf(a.out, "%s (%s): %s\n", sub.Title, sub.Code, sub.Description)
	return a.showTab(ctx, models.Categories[0])
}

// Tab switches the open subject to another category.
func (a *App) Tab(ctx context.Context, args []string) error {
	if len(args) == 0 {
		labels := make([]string, len(models.Categories))
		for i, c := range models.Categories {
			labels[i] = string(c)
		}
		return &msgError{msg: "Usage: tab <" + strings.Join(labels, "|") + ">"}
	}
	cat, err := models.ParseCategory(strings.Join(args, " "))
	if err != nil {
		return err
	}
	return a.showTab(ctx, cat)
}

// List reloads and prints the active tab.
func (a *App) List(ctx context.Context) error {
	tab := a.ActiveTab()
	if tab == nil {
		return errNoTab
	}
	tab.SetItems(a.contentLoader.Load(ctx, tab.Query()))
	a.renderTab(tab)
	return nil
}

func (a *App) showTab(ctx context.Context, cat models.Category) error {
	sem, subject := a.location()
	if subject == "" {
		return errNoTab
	}
	q := models.ContentQuery{Semester: sem, Subject: subject, Category: cat}
	tab := view.NewTabView(q)
	tab.SetItems(a.contentLoader.Load(ctx, q))

	a.mu.Lock()
	if a.tab == nil || a.tab.Query() != q {
		a.upload = nil
	}
	a.tab = tab
	a.mu.Unlock()

	a.renderTab(tab)
	return nil
}

func (a *App) renderTab(tab *view.TabView) {
	fmt.Fprintf(a.out, "== %s ==\n", tab.Tab().Label())
	tab.Render(a.out, a.now())
	if a.isAdmin() {
		fmt.Fprintf(a.out, "Upload: %s\n", a.draft(tab.Query()).Status())
	}
}

// QuickAccess lists one kind of content across a semester's subjects.
func (a *App) QuickAccess(ctx context.Context, kind models.Category, args []string) error {
	n, err := a.semesterArg(args)
	if err != nil {
		return err
	}

	var groups []services.SubjectGroup
	switch kind {
	case models.CategoryAssignments:
		groups, err = a.quickAccess.Assignments(ctx, n)
	case models.CategoryPYQs:
		groups, err = a.quickAccess.PYQs(ctx, n)
	default:
		groups, err = a.quickAccess.Syllabus(ctx, n)
	}
	if err != nil {
		return err
	}

	if len(groups) == 0 {
		fmt.Fprintf(a.out, "No %s found for semester %d.\n", kind.Label(), n)
		return nil
	}
	for _, g := range groups {
		fmt.Fprintf(a.out, "== %s ==\n", g.Title)
		for _, it := range g.Items {
			fmt.Fprintf(a.out, "  - %s [%s, %s, %s]\n", it.Title, it.Category.Label(), it.Type, it.Size)
		}
	}
	return nil
}

// Download saves item n of the active tab into the download directory.
func (a *App) Download(ctx context.Context, args []string) error {
	item, err := a.pick(args)
	if err != nil {
		return err
	}
	path, size, err := a.downloadService.Download(ctx, item)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved %s (%s)\n", path, models.FormatSize(size))
	return nil
}

// semesterArg reads a semester number from args, falling back to the open one.
func (a *App) semesterArg(args []string) (int, error) {
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, &msgError{msg: fmt.Sprintf("invalid semester %q", args[0]), err: err}
		}
		return n, nil
	}
	if sem, _ := a.location(); sem != 0 {
		return sem, nil
	}
	return 0, &msgError{msg: "Which semester? Pass a number, e.g. 3"}
}

// pick resolves a 1-based item number on the active tab.
func (a *App) pick(args []string) (models.ContentItem, error) {
	tab := a.ActiveTab()
	if tab == nil {
		return models.ContentItem{}, errNoTab
	}
	if len(args) == 0 {
		return models.ContentItem{}, errBadNumber
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return models.ContentItem{}, errBadNumber
	}
	item, ok := tab.At(n)
	if !ok {
		return models.ContentItem{}, fmt.Errorf("no item %d on this tab", n)
	}
	return item, nil
}
