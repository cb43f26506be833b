package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/eduhub/eduhub/internal/client/models"
	"github.com/eduhub/eduhub/internal/client/services"
)

// Upload sends a local file to the active tab through the tab's upload
// widget. A missing title is asked for interactively.
func (a *App) Upload(ctx context.Context, args []string) error {
	tab := a.ActiveTab()
	if tab == nil {
		return errNoTab
	}
	if len(args) == 0 {
		return &msgError{msg: "Usage: upload <path> [title]"}
	}

	q := tab.Query()
	draft := a.draft(q)

	file, err := models.BlobFromPath(args[0])
	if err != nil {
		return &msgError{msg: fmt.Sprintf("Cannot read %s: %s", args[0], err.Error()), err: err}
	}
	draft.Select(file)

	title := strings.Join(args[1:], " ")
	if title == "" && a.isAdmin() {
		if title, err = getSimpleText(a.reader, "Enter topic/title", a.out); err != nil {
			return err
		}
	}
	draft.SetTitle(title)

	if a.isAdmin() {
		fmt.Fprintln(a.out, a.storageService.Status(ctx).Describe())
		fmt.Fprintf(a.out, "Uploading %s (%s)...\n", file.Name, models.FormatSize(file.Size))
	}

	res := a.uploader.Upload(ctx, services.UploadRequest{
		Draft:    draft,
		Semester: q.Semester,
		Subject:  q.Subject,
		Category: q.Category,
	})
	fmt.Fprintln(a.out, res.Message)
	if !res.Success && res.Err != nil {
		a.log.Debug(ctx, "upload result", "kind", res.Kind, "error", res.Err)
	}
	return nil
}

// Add registers a metadata-only item on the active tab.
func (a *App) Add(ctx context.Context) error {
	tab := a.ActiveTab()
	if tab == nil {
		return errNoTab
	}
	if !a.isAdmin() {
		return errNotAdmin
	}

	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	description, err := getMultiline(a.reader, "Enter description", a.out)
	if err != nil {
		return err
	}
	kind, err := getSimpleText(a.reader, "Enter type (empty to detect from title)", a.out)
	if err != nil {
		return err
	}
	size, err := getSimpleText(a.reader, "Enter size (empty if unknown)", a.out)
	if err != nil {
		return err
	}

	q := tab.Query()
	err = a.contentLoader.Add(ctx, models.NewContent{
		Semester:    q.Semester,
		Subject:     q.Subject,
		Category:    q.Category,
		Title:       title,
		Description: description,
		Type:        strings.ToUpper(kind),
		Size:        size,
	})
	if err != nil {
		return &services.OpError{Op: "add", Title: title, Message: userMessage(err), Err: err}
	}
	fmt.Fprintf(a.out, "Added %q\n", title)
	a.Refresh(ctx, q)
	return nil
}

// Delete removes item n of the active tab after confirmation.
func (a *App) Delete(ctx context.Context, args []string) error {
	item, err := a.pick(args)
	if err != nil {
		return err
	}
	if err := a.deleter.Delete(ctx, item.ID, item.Title); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted %q\n", item.Title)
	if tab := a.ActiveTab(); tab != nil && tab.Len() > 0 {
		a.renderTab(tab)
	}
	return nil
}

// Storage prints where the backend keeps uploaded files.
func (a *App) Storage(ctx context.Context) error {
	if !a.isAdmin() {
		return errNotAdmin
	}
	fmt.Fprintln(a.out, a.storageService.Status(ctx).Describe())
	return nil
}

// Uploads prints the most recent upload attempts from the local journal.
func (a *App) Uploads(ctx context.Context) error {
	recs, err := a.journal.Recent(ctx, 10)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Fprintln(a.out, "No uploads yet.")
		return nil
	}
	for _, r := range recs {
		line := fmt.Sprintf("%-8s %s  %q (%s, %s) sem %d/%s/%s", r.Status,
			humanize.RelTime(r.CreatedAt, a.now(), "ago", "from now"),
			r.Title, r.FileName, models.FormatSize(r.Size), r.Semester, r.Subject, r.Category)
		if r.Message != "" {
			line += ": " + r.Message
		}
		fmt.Fprintln(a.out, line)
	}
	return nil
}
