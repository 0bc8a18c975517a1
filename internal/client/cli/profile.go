package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// Profile shows the account data.
func (a *App) Profile(ctx context.Context) error {
	if !a.guardView() {
		return nil
	}

	p, err := a.profile.Get(ctx)
	if err != nil {
		log.Printf("Could not load profile: %s", err)
		return err
	}

	fmt.Printf("Name:  %s\nEmail: %s\n", p.Name, p.Email)
	return nil
}

// UpdateProfile edits name, email and optionally the password. Empty input
// keeps the current value; in particular an empty password is never sent,
// so the stored one stays untouched.
func (a *App) UpdateProfile(ctx context.Context) error {
	if !a.guardView() {
		return nil
	}

	current, err := a.profile.Get(ctx)
	if err != nil {
		log.Printf("Could not load profile: %s", err)
		return err
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Name [%s]", current.Name), os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		name = current.Name
	}

	email, err := getSimpleText(a.reader, fmt.Sprintf("Email [%s]", current.Email), os.Stdout)
	if err != nil {
		return err
	}
	if email == "" {
		email = current.Email
	}

	fmt.Println("New password (leave empty to keep the current one)")
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	updated, err := a.profile.Update(ctx, name, email, string(password))
	if err != nil {
		log.Printf("Update failed: %s", err)
		return err
	}

	fmt.Printf("Profile updated: %s <%s>\n", updated.Name, updated.Email)
	return nil
}
