package cli

import (
	"context"
)

// Register prompts for a username and password and creates an account.
func (a *App) Register(ctx context.Context) error {
	userName, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Register(ctx, userName, password); err != nil {
		return err
	}

	printlnFn("Success! You can login now")
	return nil
}

// Login prompts for credentials, authenticates and fetches the user's data.
func (a *App) Login(ctx context.Context) error {
	userName, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, userName, password); err != nil {
		return err
	}

	printlnFn("Welcome,", a.session.Username())
	return a.Reload(ctx)
}

// Logout forgets the session and clears the local views.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	// without an identity both loads just reset local state
	a.tasks.Load(ctx)
	a.balance.Load(ctx)

	printlnFn("Logged out")
	return nil
}

func (a *App) Ping(ctx context.Context) error {
	if err := a.session.Ping(ctx); err != nil {
		return err
	}
	printlnFn("Server is available")
	return nil
}
