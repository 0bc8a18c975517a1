package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
)

// Keys lists the user's API keys in elided form.
func (a *App) Keys(ctx context.Context) error {
	if !a.guardView() {
		return nil
	}

	keys, err := a.keys.List(ctx)
	if err != nil {
		log.Printf("Could not load API keys: %s", err)
		return err
	}

	if len(keys) == 0 {
		fmt.Println("No API keys yet, create one with 'newkey'")
		return nil
	}

	for _, k := range keys {
		fmt.Printf("#%d  %s  created %s\n", k.ID, k.Elided(), k.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

// NewKey creates an API key and prints the full secret, the only time it
// is shown unelided.
func (a *App) NewKey(ctx context.Context) error {
	if !a.guardView() {
		return nil
	}

	key, err := a.keys.Create(ctx)
	if err != nil {
		log.Printf("Could not create API key: %s", err)
		return err
	}

	fmt.Printf("New API key #%d:\n%s\n", key.ID, key.Key)
	fmt.Println("Copy it now, it will be shown elided from here on.")
	return nil
}

// DeleteKey removes a key by id.
func (a *App) DeleteKey(ctx context.Context) error {
	if !a.guardView() {
		return nil
	}

	input, err := getSimpleText(a.reader, "Enter key id to delete", os.Stdout)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		fmt.Println("Key id must be a number")
		return nil
	}

	if err := a.keys.Delete(ctx, id); err != nil {
		log.Printf("Could not delete API key: %s", err)
		return err
	}

	fmt.Println("API key deleted")
	return nil
}
