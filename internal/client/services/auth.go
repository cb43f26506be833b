package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eduhub/eduhub/internal/client/client"
	"github.com/eduhub/eduhub/internal/client/models"
	"github.com/eduhub/eduhub/internal/client/session"
	"github.com/eduhub/eduhub/internal/logging"
)

// Mode is the interface the user currently sees.
type Mode int

const (
	ModeGuest Mode = iota
	ModeAdmin
)

func (m Mode) String() string {
	if m == ModeAdmin {
		return "admin"
	}
	return "guest"
}

// VerifyResult is the outcome of a token check. Indeterminate means the
// backend could not be asked; the token was neither accepted nor rejected.
type VerifyResult struct {
	Valid         bool
	User          *models.User
	Indeterminate bool
}

// AuthService owns the admin session lifecycle.
//
//   - Restore: startup flow. Verifies a persisted session; a rejected token
//     is cleared, an unreachable backend only drops the in-memory copy.
//   - Verify: asks the backend about a token. Pure query.
//   - Check: manual re-verification; any failure logs out.
//   - Login / Logout / ForceGuest: create or destroy the session.
type AuthService interface {
	Restore(ctx context.Context) (Mode, error)
	Verify(ctx context.Context, token string) (VerifyResult, error)
	Check(ctx context.Context) (VerifyResult, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	Logout(ctx context.Context) error
	ForceGuest(ctx context.Context) error
	IsAdmin() bool
	CurrentUser() *models.User
	// TokenExpiry reads the expiry claim of the current token, if any.
	TokenExpiry() (time.Time, bool)
}

type authService struct {
	client client.Client
	store  SessionStore
	view   ViewSwitcher
	log    logging.Logger
	now    func() time.Time
}

func NewAuthService(c client.Client, store SessionStore, sw ViewSwitcher, logger logging.Logger) AuthService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &authService{client: c, store: store, view: sw, log: logger.With("service", "auth"), now: time.Now}
}

func (a *authService) Verify(ctx context.Context, token string) (VerifyResult, error) {
	if token == "" {
		return VerifyResult{}, client.ErrUnauthenticated
	}

	if claims, ok := session.ParseClaims(token); ok && claims.Expired(a.now()) {
		a.log.Info(ctx, "token expired locally, skipping backend check", "expired_at", claims.ExpiresAt)
		return VerifyResult{}, nil
	}

	user, err := a.client.Verify(ctx, token)
	switch {
	case err == nil:
		return VerifyResult{Valid: true, User: user}, nil
	case errors.Is(err, client.ErrUnauthorized):
		return VerifyResult{}, nil
	default:
		return VerifyResult{Indeterminate: true}, fmt.Errorf("verify token: %w", err)
	}
}

func (a *authService) Restore(ctx context.Context) (Mode, error) {
	sess := a.store.Load(ctx)
	if !sess.Complete() {
		a.log.Info(ctx, "no admin session found, starting in guest mode")
		a.store.ClearInMemory()
		a.view.ShowGuest()
		return ModeGuest, nil
	}

	res, err := a.Verify(ctx, sess.Token)
	switch {
	case res.Valid:
		a.log.Info(ctx, "admin session restored", "user", sess.User.DisplayName())
		a.view.ShowAdmin()
		return ModeAdmin, nil
	case res.Indeterminate:
		// Keep the persisted token; the backend may just be down.
		a.log.Warn(ctx, "admin session could not be verified, continuing as guest", "error", err)
		a.store.ClearInMemory()
		a.view.ShowGuest()
		return ModeGuest, nil
	default:
		a.log.Info(ctx, "admin token rejected, clearing session")
		a.view.ShowGuest()
		if err := a.store.Clear(ctx); err != nil {
			return ModeGuest, err
		}
		return ModeGuest, nil
	}
}

func (a *authService) Check(ctx context.Context) (VerifyResult, error) {
	sess := a.store.Load(ctx)
	if !sess.Complete() {
		a.log.Info(ctx, "no admin token, showing guest interface")
		a.view.ShowGuest()
		return VerifyResult{}, nil
	}

	res, err := a.Verify(ctx, sess.Token)
	if res.Valid {
		a.view.ShowAdmin()
		return res, nil
	}

	a.log.Info(ctx, "token verification failed, logging out", "indeterminate", res.Indeterminate, "error", err)
	if lerr := a.Logout(ctx); lerr != nil {
		return res, lerr
	}
	return res, nil
}

func (a *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	token, user, err := a.client.Login(ctx, username, password)
	if err != nil {
		a.log.Warn(ctx, "login failed", "username", username, "error", err)
		return nil, err
	}
	if err := a.store.Save(ctx, token, user); err != nil {
		return nil, err
	}
	a.log.Info(ctx, "admin logged in", "user", user.DisplayName())
	a.view.ShowAdmin()
	return user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.view.ShowGuest()
	if err := a.store.Clear(ctx); err != nil {
		return err
	}
	a.log.Info(ctx, "admin logged out")
	return nil
}

// ForceGuest drops any session without telling the user, e.g. before a
// fresh login.
func (a *authService) ForceGuest(ctx context.Context) error {
	a.view.ShowGuest()
	if err := a.store.Clear(ctx); err != nil {
		return err
	}
	a.log.Debug(ctx, "forced back to guest mode")
	return nil
}

func (a *authService) IsAdmin() bool {
	return a.store.Token() != ""
}

func (a *authService) CurrentUser() *models.User {
	return a.store.Get().User
}

func (a *authService) TokenExpiry() (time.Time, bool) {
	claims, ok := a.store.Claims()
	if !ok || claims.ExpiresAt.IsZero() {
		return time.Time{}, false
	}
	return claims.ExpiresAt, true
}
