package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Priyanshu7318/SHIELD/internal/client/models"
)

// CheckFile submits a media file. The path comes from the command arguments
// or, when none were given, from a prompt.
func (a *App) CheckFile(ctx context.Context, kind models.MediaType, args []string) error {
	path := strings.Join(args, " ")
	if path == "" {
		var err error
		path, err = getSimpleText(a.reader, fmt.Sprintf("Enter path to %s file", kind), a.out)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(a.out, "Analyzing %s...\n", kind)
	res, err := a.detection.CheckFile(ctx, kind, path)
	if err != nil {
		return err
	}
	renderResult(a.out, res)
	return nil
}

func (a *App) CheckText(ctx context.Context) error {
	text, err := getMultiline(a.reader, "Enter text to analyze", a.out)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Analyzing text...")
	res, err := a.detection.CheckText(ctx, text)
	if err != nil {
		return err
	}
	renderResult(a.out, res)
	return nil
}

func (a *App) Risk(ctx context.Context) error {
	report, err := a.detection.RiskScore(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Risk level: %s (average confidence %s)\n", report.RiskLevel, percent(report.AverageConfidence))
	return nil
}

func (a *App) Feedback(ctx context.Context) error {
	message, err := getMultiline(a.reader, "Enter your feedback", a.out)
	if err != nil {
		return err
	}
	if _, err := a.detection.SendFeedback(ctx, message); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Thank you! Your feedback has been received.")
	return nil
}
