package cli

import (
	"context"
	"fmt"
	"log"
)

// History prints past analyses in the order the backend returned them.
func (a *App) History(ctx context.Context) error {
	if !a.guardView() {
		return nil
	}

	items, err := a.detection.History(ctx)
	if err != nil {
		log.Printf("Could not load history: %s", err)
		return err
	}

	if len(items) == 0 {
		fmt.Println("No analyses yet")
		return nil
	}

	for _, item := range items {
		text := item.Text
		if len(text) > 60 {
			text = text[:57] + "..."
		}
		fmt.Printf("#%d  %-8s  %5.1f%%  %s  %s\n",
			item.ID, item.Classification, item.Confidence*100,
			item.CreatedAt.Format("2006-01-02 15:04"), text)
	}
	return nil
}
