package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing; they point to the interactive input helpers.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, exchanges them for a bearer token, and
// stores it in the session. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	token, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		log.Printf("Login failed: %s", err)
		return err
	}

	if err := a.session.Login(token); err != nil {
		log.Printf("Login failed: %s", err)
		return err
	}

	log.Println("Login successful")
	return nil
}

// Signup prompts for account details and registers a new user. The backend
// answers with a message telling the user to check their inbox.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	msg, err := a.auth.Signup(ctx, name, email, string(password))
	if err != nil {
		log.Printf("Signup failed: %s", err)
		return err
	}

	fmt.Println(msg)
	return nil
}

// VerifyEmail confirms an account using the token from the verification
// email.
func (a *App) VerifyEmail(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter verification token", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.auth.VerifyEmail(ctx, token)
	if err != nil {
		log.Printf("Verification failed: %s", err)
		return err
	}

	fmt.Println(msg)
	return nil
}

// ResendVerification asks the backend to send the verification email again.
func (a *App) ResendVerification(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.auth.ResendVerification(ctx, email)
	if err != nil {
		log.Printf("Request failed: %s", err)
		return err
	}

	fmt.Println(msg)
	return nil
}

// Logout clears the stored credential. Callable in any state.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(); err != nil {
		log.Printf("Logout failed: %s", err)
		return err
	}
	log.Println("Logged out")
	return nil
}
