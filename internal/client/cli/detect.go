package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/textwatch/textwatch/internal/client/models"
)

// Detect runs one analysis: pick an API key, enter the text, show the
// result.
func (a *App) Detect(ctx context.Context) error {
	if !a.guardView() {
		return nil
	}

	apiKey, err := a.selectAPIKey(ctx)
	if err != nil {
		return err
	}

	text, err := GetMultiline(a.reader, "Enter text to analyze", os.Stdout)
	if err != nil {
		return err
	}

	result, err := a.detection.Analyze(ctx, text, apiKey)
	if err != nil {
		log.Printf("Analysis failed: %s", err)
		return err
	}

	printDetectionResult(result)
	return nil
}

// selectAPIKey lets the user pick one of their keys for the request. With
// no keys the request goes out keyless and the backend decides; the
// original dashboard behaves the same way.
func (a *App) selectAPIKey(ctx context.Context) (string, error) {
	keys := a.keys.Cached()
	if len(keys) == 0 {
		if fetched, err := a.keys.List(ctx); err == nil {
			keys = fetched
		}
	}

	if len(keys) == 0 {
		log.Println("No API keys found; sending the request without one (the server may refuse it)")
		return "", nil
	}

	for i, k := range keys {
		fmt.Printf("  %d) %s\n", i+1, k.Elided())
	}

	choice, err := getSimpleText(a.reader, "Select API key number (empty for the first one)", os.Stdout)
	if err != nil {
		return "", err
	}
	if choice == "" {
		return keys[0].Key, nil
	}

	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(keys) {
		fmt.Println("No such key, using the first one")
		return keys[0].Key, nil
	}
	return keys[n-1].Key, nil
}

func printDetectionResult(r *models.DetectionResult) {
	fmt.Printf("Classification: %s\n", r.Classification)
	fmt.Printf("Confidence:     %.1f%%\n", r.Confidence*100)

	engine := r.Engine
	if engine == "" {
		engine = "n/a"
	}
	fmt.Printf("Engine:         %s\n", engine)

	if r.LatencyMS > 0 {
		fmt.Printf("Latency:        %.1f ms\n", r.LatencyMS)
	} else {
		fmt.Printf("Latency:        n/a\n")
	}

	if r.Sentiment != "" {
		fmt.Printf("Sentiment:      %s\n", r.Sentiment)
	}

	if !strings.EqualFold(r.Classification, "safe") && !strings.EqualFold(r.Classification, "clean") {
		fmt.Println("This content may contain harmful language, review before publishing.")
	}
}
