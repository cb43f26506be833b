package services

import (
	"context"
	"fmt"

	"github.com/eduhub/eduhub/internal/client/client"
	"github.com/eduhub/eduhub/internal/client/view"
	"github.com/eduhub/eduhub/internal/logging"
)

// User-facing delete messages.
const (
	MsgDeleteNotFound    = "File not found. It may have already been deleted."
	MsgDeleteAuthFailed  = "Authentication failed. Please login again."
	MsgDeleteUnreachable = "Server connection failed. Please check if the server is running."
)

// Deleter removes one content item after the user confirms.
//
// The item is dimmed on the active tab while the request runs, removed on
// success and restored on failure. When the last item of the tab goes, the
// tab is reloaded.
type Deleter interface {
	Delete(ctx context.Context, id, title string) error
}

type deleter struct {
	client    client.Client
	store     SessionStore
	loader    ContentLoader
	confirm   Confirmer
	active    ActiveTab
	refresher Refresher
	log       logging.Logger
}

func NewDeleter(c client.Client, store SessionStore, loader ContentLoader, confirm Confirmer, active ActiveTab, refresher Refresher, logger logging.Logger) Deleter {
	if logger == nil {
		logger = logging.Discard()
	}
	return &deleter{
		client:    c,
		store:     store,
		loader:    loader,
		confirm:   confirm,
		active:    active,
		refresher: refresher,
		log:       logger.With("service", "delete"),
	}
}

func (d *deleter) Delete(ctx context.Context, id, title string) error {
	if title == "" {
		title = id
	}
	token := d.store.Token()
	if token == "" {
		return &OpError{Op: "delete", Title: title, Message: "Please login as admin first", Err: client.ErrUnauthenticated}
	}

	prompt := fmt.Sprintf("Are you sure you want to delete %q? This action cannot be undone.", title)
	if d.confirm == nil || !d.confirm.Confirm(ctx, prompt) {
		d.log.Debug(ctx, "delete cancelled", "id", id)
		return ErrCancelled
	}

	tab := d.activeTab()
	if tab != nil {
		tab.MarkDeleting(id)
	}

	if err := d.client.DeleteContent(ctx, token, id); err != nil {
		if tab != nil {
			tab.Restore(id)
		}
		d.log.Warn(ctx, "delete failed", "id", id, "title", title, "kind", client.Kind(err), "error", err)
		return &OpError{Op: "delete", Title: title, Message: deleteMessage(err), Err: err}
	}

	if d.loader != nil {
		d.loader.Forget(ctx, id)
	}
	d.log.Info(ctx, "content deleted", "id", id, "title", title)

	if tab == nil {
		return nil
	}
	if remaining := tab.Remove(id); remaining == 0 && d.refresher != nil {
		d.log.Debug(ctx, "last item deleted, refreshing tab", "tab", tab.Tab())
		d.refresher.Refresh(ctx, tab.Query())
	}
	return nil
}

func (d *deleter) activeTab() *view.TabView {
	if d.active == nil {
		return nil
	}
	return d.active.ActiveTab()
}

func deleteMessage(err error) string {
	switch client.Kind(err) {
	case client.KindNotFound:
		return MsgDeleteNotFound
	case client.KindUnauthorized:
		return MsgDeleteAuthFailed
	case client.KindUnreachable:
		return MsgDeleteUnreachable
	default:
		return serverMessage(err)
	}
}
