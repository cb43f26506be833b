package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/dustin/go-humanize"

	"github.com/eduhub/eduhub/internal/client/client"
	"github.com/eduhub/eduhub/internal/common"
)

// Login prompts for admin credentials and opens a session.
//
// Any previous session is dropped first, so a failed attempt always leaves
// the client in guest mode. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter admin username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.ForceGuest(ctx); err != nil {
		log.Printf("error clearing previous session: %s", err.Error())
	}

	user, err := a.authService.Login(ctx, userName, string(password))
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return loginError(err)
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", user.DisplayName())
	a.screen.Render(a.out)
	return nil
}

func loginError(err error) error {
	switch client.Kind(err) {
	case client.KindUnauthorized:
		return &msgError{msg: "Invalid credentials", err: err}
	case client.KindUnreachable:
		return &msgError{msg: msgServerUnreachable, err: err}
	}
	return err
}

// Logout clears the persisted and in-memory session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	a.screen.Render(a.out)
	return nil
}

// Check re-verifies the session with the backend. Any failure, including an
// unreachable backend, ends the session.
func (a *App) Check(ctx context.Context) error {
	res, err := a.authService.Check(ctx)
	switch {
	case res.Valid:
		fmt.Fprintf(a.out, "Session valid (%s)\n", res.User.DisplayName())
	case res.Indeterminate:
		fmt.Fprintln(a.out, "Could not reach the server; logged out")
	default:
		fmt.Fprintln(a.out, "No valid admin session")
	}
	a.screen.Render(a.out)
	return err
}

// WhoAmI prints the current mode, the admin user and the token expiry.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isAdmin() {
		fmt.Fprintln(a.out, "guest")
		return nil
	}
	line := "admin"
	if u := a.authService.CurrentUser(); u != nil {
		line += ": " + u.DisplayName()
	}
	if exp, ok := a.authService.TokenExpiry(); ok {
		if exp.Before(a.now()) {
			line += ", token expired " + humanize.RelTime(exp, a.now(), "ago", "from now")
		} else {
			line += ", token expires " + humanize.RelTime(exp, a.now(), "ago", "from now")
		}
	}
	fmt.Fprintln(a.out, line)
	return nil
}
