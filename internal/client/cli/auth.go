package cli

import (
	"context"
	"fmt"
)

// Signup prompts for a username, an email and a password and creates an
// account. The session is not changed; the user logs in separately.
//
// The password byte slice is wiped before returning.
func (a *App) Signup(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer clear(password)

	user, err := a.session.Signup(ctx, username, email, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Account %s created. You can now log in.\n", user.Username)
	return nil
}

// Login prompts for credentials and authenticates. On success the prompt
// switches to the logged-in user.
//
// The password byte slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer clear(password)

	if _, err := a.session.Login(ctx, username, string(password)); err != nil {
		return err
	}

	a.setMode(ModeOnline)
	if u := a.session.CurrentUser(); u != nil {
		fmt.Fprintf(a.out, "Logged in as %s\n", u.Username)
	}
	return nil
}

// Logout forgets the session locally.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	u := a.session.CurrentUser()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "ID:       %d\nUsername: %s\nEmail:    %s\n", u.ID, u.Username, u.Email)
	return nil
}

// ChangePassword prompts for the current password and the new one twice.
func (a *App) ChangePassword(ctx context.Context) error {
	current, err := getPassword(a.out, "Current password")
	if err != nil {
		return err
	}
	defer clear(current)

	next, err := getPassword(a.out, "New password")
	if err != nil {
		return err
	}
	defer clear(next)

	confirm, err := getPassword(a.out, "Confirm new password")
	if err != nil {
		return err
	}
	defer clear(confirm)

	msg, err := a.session.ChangePassword(ctx, string(current), string(next), string(confirm))
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, msg.Message)
	return nil
}
