package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mycomarket/mycomarket-go/internal/client/models"
	"github.com/mycomarket/mycomarket-go/internal/client/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register collects the registration form, creates the account, and leaves
// the user logged in (the service persists the returned session).
func (a *App) Register(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone (optional)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	profile, err := a.auth.Register(ctx, services.RegisterForm{
		FullName: fullName,
		Email:    email,
		Phone:    phone,
		Password: password,
	})
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", profile.FullName))
	return nil
}

// Login prompts for credentials and authenticates. On success the session
// is persisted, so the next start of the CLI skips this step.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	profile, err := a.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Logged in as %s", profile.FullName))
	return nil
}

// Logout revokes the session where possible and clears all local state.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// Me prints the stored profile, refreshing it from the server first.
func (a *App) Me(ctx context.Context) error {
	profile, err := a.auth.RefreshProfile(ctx)
	if err != nil {
		return err
	}
	printProfile(profile)
	return nil
}

func printProfile(p *models.UserProfile) {
	printlnFn("Name: ", p.FullName)
	printlnFn("Email:", p.Email)
	if p.Phone != "" {
		printlnFn("Phone:", p.Phone)
	}
	if p.IsFarmer {
		printlnFn("Account type: farmer")
	} else {
		printlnFn("Account type: member")
	}
}
