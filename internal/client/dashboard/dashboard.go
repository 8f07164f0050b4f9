// Package dashboard derives the dashboard's view data from what the API
// returns. Every function here is pure: no I/O, no shared state.
package dashboard

import (
	"slices"
	"strings"
	"time"

	"github.com/Priyanshu7318/SHIELD/internal/client/models"
	"github.com/Priyanshu7318/SHIELD/internal/client/verdict"
)

// WindowDays is the length of the trend window.
const WindowDays = 7

const dateLayout = "2006-01-02"

// Day is one point of the seven-day trend series.
type Day struct {
	Date  string // YYYY-MM-DD, UTC
	Label string // short weekday, e.g. "Mon"
	Total int
	Fake  int
	Real  int
}

// TypeStat is the fake/real split for a single media type.
type TypeStat struct {
	Type  models.MediaType
	Name  string
	Total int
	Fake  int
	Real  int
}

// Slice is one segment of the fake/real pie.
type Slice struct {
	Name  string
	Value int
}

// LastWeek returns the seven UTC dates ending at now's date, oldest first.
func LastWeek(now time.Time) []string {
	today := now.UTC()
	dates := make([]string, WindowDays)
	for i := range WindowDays {
		dates[WindowDays-1-i] = today.AddDate(0, 0, -i).Format(dateLayout)
	}
	return dates
}

// MergeWeek lays the sparse daily buckets onto the last seven days. Days the
// API did not report are zero; buckets outside the window are ignored. When
// a date is reported twice the first bucket wins.
func MergeWeek(buckets []models.ChartBucket, now time.Time) []Day {
	byDate := make(map[string]models.ChartBucket, len(buckets))
	for _, b := range buckets {
		if _, seen := byDate[b.Name]; !seen {
			byDate[b.Name] = b
		}
	}

	dates := LastWeek(now)
	days := make([]Day, 0, len(dates))
	for _, date := range dates {
		d := Day{Date: date, Label: weekdayLabel(date)}
		if b, ok := byDate[date]; ok {
			d.Total, d.Fake, d.Real = b.Total, b.Fake, b.Real
		}
		days = append(days, d)
	}
	return days
}

func weekdayLabel(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return t.Weekday().String()[:3]
}

// Breakdown counts logs per media type, in models.MediaTypes order. Entries
// with an unknown request type are not counted.
func Breakdown(logs []models.LogEntry) []TypeStat {
	stats := make([]TypeStat, len(models.MediaTypes))
	index := make(map[models.MediaType]int, len(models.MediaTypes))
	for i, mt := range models.MediaTypes {
		stats[i] = TypeStat{Type: mt, Name: capitalize(string(mt))}
		index[mt] = i
	}

	for _, l := range logs {
		i, ok := index[l.RequestType]
		if !ok {
			continue
		}
		stats[i].Total++
		if verdict.IsSynthetic(l.Result) {
			stats[i].Fake++
		}
	}
	for i := range stats {
		stats[i].Real = stats[i].Total - stats[i].Fake
	}
	return stats
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// SortLogs returns a copy of logs ordered newest first. Entries with equal
// or unparsable timestamps keep their relative order.
func SortLogs(logs []models.LogEntry) []models.LogEntry {
	sorted := slices.Clone(logs)
	slices.SortStableFunc(sorted, func(a, b models.LogEntry) int {
		return b.Time().Compare(a.Time())
	})
	return sorted
}

// Pie splits the totals into the fake and real segments.
func Pie(stats models.Stats) []Slice {
	return []Slice{
		{Name: "Fake / AI", Value: stats.Fake},
		{Name: "Real", Value: stats.Real},
	}
}

// DefaultStats is shown when the stats could not be fetched.
func DefaultStats() models.Stats {
	return models.Stats{SafetyScore: 100}
}
