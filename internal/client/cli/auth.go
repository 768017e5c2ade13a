package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/lovesurprise/internal/client/client"
	"github.com/dmitrijs2005/lovesurprise/internal/client/handoff"
	"github.com/dmitrijs2005/lovesurprise/internal/client/services"
	"github.com/dmitrijs2005/lovesurprise/internal/common"
)

// getSimpleText, getPassword and getSecret are indirections used to
// facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getSecret = GetSecret

// Register creates an account and hands off the pending draft, if any.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.authService.Register(ctx, name, email, string(password))
	if err != nil {
		return a.report(err)
	}

	a.userName = email
	fmt.Fprintln(a.out, "Account created.")
	a.printHandoff(res)
	return nil
}

// Login signs in and hands off the pending draft, if any.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.authService.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			fmt.Fprintln(a.out, "Wrong email or password.")
			return err
		}
		return a.report(err)
	}

	a.userName = email
	fmt.Fprintln(a.out, "Login successful.")
	a.printHandoff(res)
	return nil
}

// Resume retries the handoff of the newest pending draft.
func (a *App) Resume(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first.")
		return client.ErrUnauthorized
	}
	res, err := a.authService.Resume(ctx)
	if err != nil {
		return a.report(err)
	}
	if res == nil {
		fmt.Fprintln(a.out, "No pending draft.")
		return nil
	}
	a.printHandoff(res)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return a.report(err)
	}
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Settings changes the display name and/or the password. The current
// password is always asked for.
func (a *App) Settings(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first.")
		return client.ErrUnauthorized
	}

	name, err := getSimpleText(a.reader, "New display name (empty keeps the current one)", a.out)
	if err != nil {
		return err
	}
	newPassword, err := getSecret(a.out, "New password (empty keeps the current one): ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	var confirm []byte
	if len(newPassword) > 0 {
		if confirm, err = getSecret(a.out, "Repeat new password: "); err != nil {
			return err
		}
		defer common.WipeByteArray(confirm)
	}

	current, err := getSecret(a.out, "Current password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	s, err := a.authService.UpdateProfile(ctx, services.ProfileChange{
		CurrentPassword: string(current),
		NewName:         name,
		NewPassword:     string(newPassword),
		ConfirmPassword: string(confirm),
	})
	switch {
	case errors.Is(err, services.ErrPasswordMismatch):
		fmt.Fprintln(a.out, "The new passwords do not match.")
		return err
	case errors.Is(err, services.ErrNoChanges):
		fmt.Fprintln(a.out, "Nothing to change.")
		return err
	case errors.Is(err, client.ErrForbidden):
		fmt.Fprintln(a.out, "Current password is wrong.")
		return err
	case err != nil:
		return a.report(err)
	}

	fmt.Fprintf(a.out, "Profile updated. Display name: %s.\n", s.Name)
	return nil
}

func (a *App) Ping(ctx context.Context) error {
	if err := a.authService.Ping(ctx); err != nil {
		fmt.Fprintln(a.out, "Server unavailable.")
		return err
	}
	fmt.Fprintln(a.out, "Server is up.")
	return nil
}

func (a *App) printHandoff(res *handoff.Result) {
	if res == nil {
		return
	}
	switch res.State {
	case handoff.StateDone:
		fmt.Fprintf(a.out, "Your surprise %s was saved. Next: %s (use 'pay %s').\n", res.SurpriseID, res.Target, res.SurpriseID)
	default:
		fmt.Fprintf(a.out, "Could not publish your draft (%v).\nYour draft is kept; back to %s. Use 'resume' to try again.\n", res.Err, res.Target)
	}
}
