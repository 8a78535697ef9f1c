package cli

import (
	"context"
	"errors"
	"os"

	"github.com/hacksnooze/hacksnooze-go/internal/client/client"
	"github.com/hacksnooze/hacksnooze-go/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for a username, full name, and password, and creates a new
// account. On success the new user becomes current and the session is saved
// for the next run. A taken username is reported without creating a user.
func (a *App) Signup(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter your full name", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.Signup(ctx, username, string(password), name)
	if err != nil {
		if errors.Is(err, client.ErrDuplicateUsername) {
			printlnFn("That username is already taken, try another one.")
			return err
		}
		printlnFn("Signup failed:", err.Error())
		return err
	}

	a.user = user
	if err := a.auth.SaveSession(ctx, user); err != nil {
		a.log.Warn(ctx, "could not save session", "error", err)
	}
	printlnFn("Welcome,", user.Name)
	return nil
}

// Login prompts for credentials and authenticates. On success the user
// becomes current and the session is saved.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.Login(ctx, username, string(password))
	if err != nil {
		if errors.Is(err, client.ErrInvalidCredentials) {
			printlnFn("Invalid username or password.")
			return err
		}
		printlnFn("Login failed:", err.Error())
		return err
	}

	a.user = user
	if err := a.auth.SaveSession(ctx, user); err != nil {
		a.log.Warn(ctx, "could not save session", "error", err)
	}
	printlnFn("Welcome back,", user.Name)
	return nil
}

// Logout discards the current user and wipes the stored session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.ClearSession(ctx); err != nil {
		return err
	}
	a.user = nil
	printlnFn("Logged out.")
	return nil
}
