package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Priyanshu7318/SHIELD/internal/client/dashboard"
	"github.com/Priyanshu7318/SHIELD/internal/client/models"
	"github.com/Priyanshu7318/SHIELD/internal/client/services"
	"github.com/Priyanshu7318/SHIELD/internal/client/verdict"
)

// maxLogRows caps the request log printed by the dashboard.
const maxLogRows = 20

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

func badge(label string) string {
	switch verdict.Classify(label) {
	case verdict.Synthetic:
		return "[FAKE]"
	case verdict.Errored:
		return "[ERROR]"
	default:
		return "[REAL]"
	}
}

func renderResult(w io.Writer, res *models.DetectionResult) {
	fmt.Fprintf(w, "%s %s\n", badge(res.Result), res.Result)
	fmt.Fprintf(w, "Confidence: %s\n", percent(res.Confidence))
}

func renderOverview(w io.Writer, ov *services.Overview) {
	s := ov.Stats
	fmt.Fprintf(w, "Total scans: %d   Fake: %d   Real: %d   Safety score: %d%%\n",
		s.Total, s.Fake, s.Real, s.SafetyScore)

	parts := make([]string, 0, len(ov.Pie))
	for _, sl := range ov.Pie {
		parts = append(parts, fmt.Sprintf("%s %d", sl.Name, sl.Value))
	}
	fmt.Fprintf(w, "Distribution: %s\n\n", strings.Join(parts, ", "))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tTOTAL\tFAKE\tREAL")
	for _, ts := range ov.Breakdown {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", ts.Name, ts.Total, ts.Fake, ts.Real)
	}
	_ = tw.Flush()
	fmt.Fprintln(w)

	if len(ov.Logs) == 0 {
		fmt.Fprintln(w, "No activity recorded.")
		return
	}

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tRESULT\tTIME")
	for i, l := range ov.Logs {
		if i == maxLogRows {
			break
		}
		when := l.Timestamp
		if t := l.Time(); !t.IsZero() {
			when = t.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(tw, "%s\t%s %s\t%s\n", l.RequestType, badge(l.Result), l.Result, when)
	}
	_ = tw.Flush()
	if extra := len(ov.Logs) - maxLogRows; extra > 0 {
		fmt.Fprintf(w, "... and %d more\n", extra)
	}
}

func renderWeek(w io.Writer, days []dashboard.Day) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DAY\tDATE\tTOTAL\tFAKE\tREAL")
	for _, d := range days {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\n", d.Label, d.Date, d.Total, d.Fake, d.Real)
	}
	_ = tw.Flush()
}
