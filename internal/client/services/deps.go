package services

import (
	"context"

	"github.com/eduhub/eduhub/internal/client/models"
	"github.com/eduhub/eduhub/internal/client/session"
	"github.com/eduhub/eduhub/internal/client/view"
)

// SessionStore is the part of session.Store the services rely on.
type SessionStore interface {
	Load(ctx context.Context) models.Session
	Save(ctx context.Context, token string, user *models.User) error
	Clear(ctx context.Context) error
	ClearInMemory()
	Get() models.Session
	Token() string
	Claims() (session.TokenClaims, bool)
}

// ViewSwitcher toggles the admin and guest navigation.
type ViewSwitcher interface {
	ShowAdmin()
	ShowGuest()
}

// Refresher reloads a tab after a mutation.
type Refresher interface {
	Refresh(ctx context.Context, q models.ContentQuery)
}

// Confirmer asks the user a yes/no question and blocks until answered.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ActiveTab exposes the tab currently on screen, or nil.
type ActiveTab interface {
	ActiveTab() *view.TabView
}

var (
	_ SessionStore = (*session.Store)(nil)
	_ ViewSwitcher = (*view.Switcher)(nil)
)
